// Package processor extracts Bind annotations from Go source and generates the
// code that registers them at run time.
//
// Annotations are written in doc comments. Everything from the first line that
// starts with '@' to the end of the comment is annotation text:
//
//	// Login is the login screen.
//	//
//	// @annobind.Bind(LayoutLogin)
//	type Login struct {
//		// @annobind.Bind(IDUsername)
//		username *widget.TextField
//	}
//
//	// @annobind.Bind{ID: IDSubmit}
//	func (l *Login) submit() { ... }
//
// The qualifier must name an import of github.com/jhump/annobind in the same
// file. Annotations whose qualifier names some other package are ignored, so
// other tools can put their own annotations in the same comments. The value
// is an integer constant expression that may refer to constants of the
// package or of its imports.
//
// Packages are type-checked before their annotations are read, so an import
// that is only named in annotations must still be used in code, for example
// with a blank variable:
//
//	var _ = ids.LayoutLogin
//
// Bind may be used on package-level named types, on the fields of struct
// types and on methods. Using it anywhere else, such as on a function, a
// variable or an interface method, is an error.
//
// # Processor Invocation
//
// Config describes the packages to load. Its Load method returns one Context
// per package, which lists the annotated elements. Its Execute method also
// writes a registration file for each package, named after the package with
// a ".binds.go" suffix. The generated init function calls
// annobind.RegisterTypeAnnotation, annobind.RegisterFieldAnnotation and
// annobind.RegisterMethodAnnotation. Methods are registered along with their
// method expression so that unexported methods can be bound.
//
// Errors about annotations are returned as *ErrorWithPosition so that they
// can point at the offending comment.
//
// # Processor Registration
//
// Additional processors can be registered with RegisterProcessor, typically
// from an init function. The bindgen command runs all registered processors
// after writing the registration files.
package processor
