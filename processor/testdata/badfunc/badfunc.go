package badfunc

import "github.com/jhump/annobind"

var _ annobind.Bind

// Helper is not a method.
//
// @annobind.Bind(1)
func Helper() {}
