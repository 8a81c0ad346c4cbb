package unknown

import "github.com/jhump/annobind"

type Screen struct {
	// @annobind.Binding(1)
	title annobind.Element
}
