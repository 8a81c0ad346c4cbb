package iface

import "github.com/jhump/annobind"

type Clicker interface {
	// @annobind.Bind(7)
	Click()
}

var _ annobind.Bind
