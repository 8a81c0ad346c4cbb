package withtests

import "github.com/jhump/annobind"

// @annobind.Bind(10)
type Panel struct {
	// @annobind.Bind(11)
	Title annobind.Element
}
