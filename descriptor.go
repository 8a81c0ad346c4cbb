package annobind

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Descriptor is the binding plan for one owner type: the layout selected by
// its type annotation and one entry per annotated field and method. It is
// derived only from static declarations (registered annotations and struct
// tags), never from instance state, so it is computed once per type.
type Descriptor struct {
	// Type is the annotated type. It is never a pointer type.
	Type reflect.Type
	// Layout is the type annotation. It is only meaningful if HasLayout is
	// true.
	Layout    Bind
	HasLayout bool
	// LayoutErr is set when the type annotation could not be read, e.g. a
	// malformed struct tag on a blank field.
	LayoutErr error
	// Members holds the annotated fields, in declaration order, followed by the
	// annotated methods, sorted by name.
	Members []Member
}

// Member describes one annotated field or method.
type Member struct {
	Kind ElementType
	Name string
	Bind Bind
	// Type is the declared type of a field or the type of a method expression
	// (whose first parameter is the receiver).
	Type reflect.Type
	// Err is set when the annotation is malformed or refers to a member that
	// does not exist. Such members are never bound.
	Err error

	index int
	fn    reflect.Value
}

// Fields returns the annotated fields.
func (d *Descriptor) Fields() []Member {
	return d.filter(Fields)
}

// Methods returns the annotated methods.
func (d *Descriptor) Methods() []Member {
	return d.filter(Methods)
}

func (d *Descriptor) filter(kind ElementType) []Member {
	var ms []Member
	for _, m := range d.Members {
		if m.Kind == kind {
			ms = append(ms, m)
		}
	}
	return ms
}

func (r *Registry) buildDescriptorLocked(t reflect.Type) *Descriptor {
	d := &Descriptor{Type: t}
	if b, ok := r.types[t]; ok {
		d.Layout, d.HasLayout = b, true
	}

	if t.Kind() == reflect.Struct {
		registered := r.fields[t]
		seen := map[string]bool{}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Name == "_" {
				tag, ok := f.Tag.Lookup(TagName)
				if !ok || d.HasLayout || d.LayoutErr != nil {
					continue
				}
				id, err := parseTag(tag)
				if err != nil {
					d.LayoutErr = fmt.Errorf("type %v: %w", t, err)
					continue
				}
				d.Layout, d.HasLayout = Bind{ID: id}, true
				continue
			}
			seen[f.Name] = true
			m := Member{Kind: Fields, Name: f.Name, Type: f.Type, index: i}
			if b, ok := registered[f.Name]; ok {
				m.Bind = b
			} else if tag, ok := f.Tag.Lookup(TagName); ok {
				id, err := parseTag(tag)
				if err != nil {
					m.Err = fmt.Errorf("field %s: %w", f.Name, err)
				}
				m.Bind = Bind{ID: id}
			} else {
				continue
			}
			d.Members = append(d.Members, m)
		}
		for _, name := range sortedKeys(registered) {
			if !seen[name] {
				d.Members = append(d.Members, Member{
					Kind:  Fields,
					Name:  name,
					Bind:  registered[name],
					Err:   fmt.Errorf("%v has no field named %s", t, name),
					index: -1,
				})
			}
		}
	}

	methods := r.methods[t]
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ma := methods[name]
		m := Member{Kind: Methods, Name: name, Bind: ma.bind, fn: ma.fn}
		if !m.fn.IsValid() {
			if promoted(t, name) {
				m.Err = fmt.Errorf("%v method %s is promoted from an embedded field", t, name)
			} else if rm, ok := reflect.PtrTo(t).MethodByName(name); ok {
				m.fn = rm.Func
			} else {
				m.Err = fmt.Errorf("%v has no exported method named %s", t, name)
			}
		}
		if m.fn.IsValid() {
			m.Type = m.fn.Type()
		}
		d.Members = append(d.Members, m)
	}
	return d
}

// promoted reports whether an embedded field of t provides a method named
// name. Reflection cannot tell such a method apart from one declared on t, so
// a type that shadows a promoted method must register it with a method
// expression.
func promoted(t reflect.Type, name string) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if _, ok := f.Type.MethodByName(name); ok {
			return true
		}
		if k := f.Type.Kind(); k != reflect.Ptr && k != reflect.Interface {
			if _, ok := reflect.PtrTo(f.Type).MethodByName(name); ok {
				return true
			}
		}
	}
	return false
}

// parseTag reads a bind struct tag. The tag is an integer literal in any base
// Go accepts.
func parseTag(tag string) (int, error) {
	id, err := strconv.ParseInt(tag, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed %s tag %q: %w", TagName, tag, err)
	}
	return int(id), nil
}

func sortedKeys(m map[string]Bind) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
