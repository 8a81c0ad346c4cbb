package withtests

import "github.com/jhump/annobind"

// @annobind.Bind(20)
type fakePanel struct {
	// @annobind.Bind(21)
	title annobind.Element
}
