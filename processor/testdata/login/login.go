package login

import (
	"github.com/jhump/annobind"

	"github.com/jhump/annobind/processor/testdata/ids"
)

const (
	fieldBase  = 200
	IDPassword = fieldBase + 2
)

// Login is a screen.
//
// @annobind.Bind(ids.LayoutLogin)
type Login struct {
	annobind.RootOwner

	// @annobind.Bind(fieldBase + 1)
	username annobind.Element
	// The password.
	//
	// @annobind.Bind{ID: IDPassword}
	password annobind.Element

	submitButton annobind.Element `bind:"203"`

	// @other.Thing(1)
	notes string
}

// @annobind.Bind(ids.Submit)
func (l *Login) submit() {}

// Cancel closes the screen.
//
// @annobind.Bind(ids.Cancel &^ 0)
func (l Login) Cancel() error { return nil }

// Hint is not bound.
//
// @annobind.Bind{}
func (l *Login) Hint() {}

func (l *Login) unannotated() {}

// The ids package is otherwise only named in annotations.
var _ = ids.LayoutLogin
