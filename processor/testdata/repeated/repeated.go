package repeated

import "github.com/jhump/annobind"

type Screen struct {
	// @annobind.Bind(1)
	// @annobind.Bind(2)
	title annobind.Element
}
