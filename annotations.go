package annobind

import "fmt"

// Bind is the binding annotation. It carries a single identifier whose meaning
// depends on the annotated element:
//
//   - On a type, the identifier is a layout. Binding a root owner whose type
//     carries a non-zero layout sets that layout as the owner's content before
//     anything else is looked up.
//   - On a field, the identifier names the element that is looked up and
//     stored in the field. The field's type must implement Element.
//   - On a method, the identifier names the element whose clicks invoke the
//     method. The method must not take any arguments.
//
// An identifier of zero means "not bound": the annotation is present but is
// ignored by the binder.
//
// Annotations are written in doc comments and turned into registration code
// by the bindgen tool:
//
//	// @annobind.Bind(layout.Login)
//	type LoginScreen struct {
//	    // @annobind.Bind(id.Username)
//	    username *widget.TextField
//
//	    submit *widget.Button `bind:"12"`
//	}
//
//	// @annobind.Bind(id.Submit)
//	func (s *LoginScreen) Submit() { ... }
//
// Fields may use a struct tag instead of a comment, as the submit field above
// does. A blank field carrying a tag annotates the enclosing type:
//
//	type Dialog struct {
//	    _ struct{} `bind:"100"`
//	}
//
// When a field has both, the registered annotation, which is what bindgen
// generates from the comment, wins over the tag.
type Bind struct {
	ID int
}

// TagName is the struct tag key read for field and type annotations.
const TagName = "bind"

// ElementType is an enumeration of the kinds of elements that can be annotated.
type ElementType int

const (
	// Types are named struct types. A type annotation designates the layout
	// that is set as a root owner's content.
	Types ElementType = iota

	// Fields are fields declared directly in an annotated struct type. Fields
	// of embedded structs are not visited; the embedded field itself is.
	Fields

	// Methods are methods declared on a named type. Methods promoted from
	// embedded types are not considered declared by the embedding type.
	Methods
)

func (et ElementType) String() string {
	switch et {
	case Types:
		return "type"
	case Fields:
		return "field"
	case Methods:
		return "method"
	default:
		return fmt.Sprintf("?%d?", int(et))
	}
}
