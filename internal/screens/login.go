package screens

import (
	"github.com/jhump/annobind"
	"github.com/jhump/annobind/annobindtest"
)

// Login is the login screen.
//
// @annobind.Bind(LayoutLogin)
type Login struct {
	*annobindtest.Screen

	// @annobind.Bind(IDUsername)
	username *annobindtest.TextField
	// @annobind.Bind(IDPassword)
	password *annobindtest.TextField

	Submit *annobindtest.Button `bind:"203"`

	// Notes is not an element, so it is never written.
	//
	// @annobind.Bind(IDNotes)
	Notes string

	// @annobind.Bind(IDAvatar)
	avatar *annobindtest.Node

	Submitted int
	Cancelled int
	// CancelErr is returned by Cancel.
	CancelErr error
}

var _ annobind.RootOwner = (*Login)(nil)

// NewLogin returns a login screen that has not been bound yet. Its content is
// empty until the login layout is set.
func NewLogin() *Login {
	return &Login{
		Screen: annobindtest.NewScreen(map[int]*annobindtest.Tree{
			LayoutLogin: LoginLayout(),
		}),
	}
}

// LoginLayout returns a fresh element tree for the login layout.
func LoginLayout() *annobindtest.Tree {
	return annobindtest.NewTree(
		annobindtest.NewTextField(IDUsername, ""),
		annobindtest.NewTextField(IDPassword, ""),
		annobindtest.NewButton(IDSubmit, "Sign in"),
		annobindtest.NewButton(IDCancel, "Cancel"),
		annobindtest.NewButton(IDFill, "Fill"),
		annobindtest.NewTextField(IDNotes, ""),
	)
}

// Username returns the bound username field.
func (l *Login) Username() *annobindtest.TextField {
	return l.username
}

// Password returns the bound password field.
func (l *Login) Password() *annobindtest.TextField {
	return l.password
}

// Avatar returns the bound avatar, which stays nil since the layout has none.
func (l *Login) Avatar() *annobindtest.Node {
	return l.avatar
}

// @annobind.Bind(IDSubmit)
func (l *Login) submit() {
	l.Submitted++
}

// Cancel closes the screen.
//
// @annobind.Bind(IDCancel)
func (l *Login) Cancel() error {
	l.Cancelled++
	return l.CancelErr
}

// fill takes an argument, so it is never bound.
//
// @annobind.Bind(IDFill)
func (l *Login) fill(text string) {
	l.username.Text = text
}
