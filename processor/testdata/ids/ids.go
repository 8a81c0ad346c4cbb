// Package ids holds element identifiers shared by the test packages.
package ids

const (
	LayoutLogin = 100
	Submit      = 203
	Cancel      = 204
)
