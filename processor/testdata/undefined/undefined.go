package undefined

import "github.com/jhump/annobind"

type Screen struct {
	// @annobind.Bind(NoSuch + 1)
	title annobind.Element
}
