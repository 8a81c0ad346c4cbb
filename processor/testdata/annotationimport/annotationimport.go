package annotationimport

import (
	"github.com/jhump/annobind"

	"github.com/jhump/annobind/processor/testdata/ids"
)

type Screen struct {
	// @annobind.Bind(ids.Submit)
	submit annobind.Element
}
