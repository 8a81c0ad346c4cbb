package annobind

import "reflect"

// Element is an opaque UI node. The binder only needs to be able to attach
// click listeners to it.
type Element interface {
	// OnClick adds a listener that is invoked every time the element is
	// clicked. Adding a listener does not remove earlier ones.
	OnClick(listener func())
}

// ElementSource resolves identifiers to elements within some subtree. It
// returns nil when nothing in the subtree has the given identifier.
type ElementSource interface {
	FindElement(id int) Element
}

// ElementSourceFunc adapts a plain function to ElementSource.
type ElementSourceFunc func(id int) Element

// FindElement implements ElementSource.
func (f ElementSourceFunc) FindElement(id int) Element {
	return f(id)
}

// RootOwner is an owner that manages its own content, such as a screen or
// window. Its whole content subtree is searched when binding it, and a type
// annotation on it selects the content to display.
type RootOwner interface {
	ElementSource

	// SetContent replaces the owner's content with the given layout.
	SetContent(layout int)
}

// FieldSetter is implemented by owners that want to control how bound
// elements are stored. When an owner implements it, the binder never writes
// the owner's fields directly; it calls SetBoundField with the name of the
// annotated field instead. An error is reported as an access failure for
// that field and does not stop the rest of the pass.
type FieldSetter interface {
	SetBoundField(name string, e Element) error
}

var typeOfElement = reflect.TypeOf((*Element)(nil)).Elem()

// isNil reports whether e is nil or an interface holding a nil pointer, map,
// func, chan or slice. Element sources written in terms of concrete pointer
// types commonly return the latter.
func isNil(e Element) bool {
	return e == nil || isNilValue(reflect.ValueOf(e))
}
