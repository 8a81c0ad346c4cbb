package annobind

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry holds the annotations registered for types, fields and methods
// along with the binding descriptors derived from them. Registrations are
// normally made from the init functions of files generated by bindgen, which
// use DefaultRegistry through the package-level Register* functions.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu          sync.Mutex
	types       map[reflect.Type]Bind
	fields      map[reflect.Type]map[string]Bind
	methods     map[reflect.Type]map[string]methodAnnotation
	descriptors map[reflect.Type]*Descriptor
}

type methodAnnotation struct {
	fn   reflect.Value
	bind Bind
}

// DefaultRegistry is the registry used by the package-level Register*
// functions and by binders that do not configure their own.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types:       map[reflect.Type]Bind{},
		fields:      map[reflect.Type]map[string]Bind{},
		methods:     map[reflect.Type]map[string]methodAnnotation{},
		descriptors: map[reflect.Type]*Descriptor{},
	}
}

// RegisterTypeAnnotation records the given annotation for the given type in
// DefaultRegistry.
func RegisterTypeAnnotation(t reflect.Type, value Bind) {
	DefaultRegistry.RegisterTypeAnnotation(t, value)
}

// RegisterFieldAnnotation records the given annotation for the named field of
// the given struct type in DefaultRegistry.
func RegisterFieldAnnotation(t reflect.Type, fieldName string, value Bind) {
	DefaultRegistry.RegisterFieldAnnotation(t, fieldName, value)
}

// RegisterMethodAnnotation records the given annotation for the named method
// of the given type in DefaultRegistry. See Registry.RegisterMethodAnnotation
// for the meaning of fn.
func RegisterMethodAnnotation(t reflect.Type, methodName string, fn interface{}, value Bind) {
	DefaultRegistry.RegisterMethodAnnotation(t, methodName, fn, value)
}

// RegisterTypeAnnotation records the given annotation for the given type.
// The type must be a named, non-pointer type.
func (r *Registry) RegisterTypeAnnotation(t reflect.Type, value Bind) {
	mustBeNamed(t)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t] = value
	delete(r.descriptors, t)
}

// RegisterFieldAnnotation records the given annotation for the named field of
// the given struct type.
func (r *Registry) RegisterFieldAnnotation(t reflect.Type, fieldName string, value Bind) {
	mustBeNamed(t)
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("annobind: cannot register field annotation on %v: not a struct type", t))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fields := r.fields[t]
	if fields == nil {
		fields = map[string]Bind{}
		r.fields[t] = fields
	}
	fields[fieldName] = value
	delete(r.descriptors, t)
}

// RegisterMethodAnnotation records the given annotation for the named method
// of the given type.
//
// The fn argument is the method expression for the method, for example
// (*Screen).submit. Its first parameter is the receiver. Passing the method
// expression is what allows unexported methods to be bound, since reflection
// cannot call them by name. Generated registration code always provides it.
// If fn is nil, the method is looked up by name among the exported methods of
// *t when the descriptor is built. Methods promoted from embedded fields are
// not declared on t, so they are never found this way.
func (r *Registry) RegisterMethodAnnotation(t reflect.Type, methodName string, fn interface{}, value Bind) {
	mustBeNamed(t)
	var fv reflect.Value
	if fn != nil {
		fv = reflect.ValueOf(fn)
		if fv.Kind() != reflect.Func || fv.Type().NumIn() == 0 {
			panic(fmt.Sprintf("annobind: method %v.%s: %T is not a method expression", t, methodName, fn))
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	methods := r.methods[t]
	if methods == nil {
		methods = map[string]methodAnnotation{}
		r.methods[t] = methods
	}
	methods[methodName] = methodAnnotation{fn: fv, bind: value}
	delete(r.descriptors, t)
}

// TypeAnnotation returns the annotation registered for the given type, if
// any. Struct tag annotations are not consulted; use Descriptor for the
// merged view.
func (r *Registry) TypeAnnotation(t reflect.Type) (Bind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.types[t]
	return b, ok
}

// Descriptor returns the binding descriptor for the given type. Pointer types
// are dereferenced first. The descriptor is computed on first use and reused
// until another annotation is registered for the type.
func (r *Registry) Descriptor(t reflect.Type) *Descriptor {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.descriptors[t]; ok {
		return d
	}
	d := r.buildDescriptorLocked(t)
	r.descriptors[t] = d
	return d
}

func mustBeNamed(t reflect.Type) {
	if t == nil {
		panic("annobind: cannot register annotation on nil type")
	}
	if t.Name() == "" {
		panic(fmt.Sprintf("annobind: cannot register annotation on %v: only named types can be annotated", t))
	}
}
