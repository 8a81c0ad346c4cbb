// Package screens holds sample owners used to exercise the binder end to end.
// Their annotations are written in doc comments and registered by the
// generated screens.binds.go.
package screens

//go:generate go run github.com/jhump/annobind/cmd/bindgen generate .

// Layouts.
const (
	LayoutLogin = 100
	LayoutRow   = 300
)

// Element identifiers.
const (
	IDUsername = 201
	IDPassword = 202
	IDSubmit   = 203
	IDCancel   = 204
	IDNotes    = 205
	IDFill     = 206
	// IDAvatar is annotated but missing from the login layout.
	IDAvatar = 299

	IDRowTitle = 301
	IDRowOpen  = 302
)
