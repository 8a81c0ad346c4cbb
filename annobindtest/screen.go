package annobindtest

import "github.com/jhump/annobind"

// Screen is a root owner with a fixed set of layouts. Test owners embed a
// *Screen to become root owners:
//
//	type loginScreen struct {
//	    *annobindtest.Screen
//	    _ struct{} `bind:"100"`
//	    submit *annobindtest.Button `bind:"201"`
//	}
type Screen struct {
	layouts map[int]*Tree
	content *Tree
	history []int
	lookups []int
}

// NewScreen returns a screen that can display the given layouts. It has no
// content until SetContent is called.
func NewScreen(layouts map[int]*Tree) *Screen {
	return &Screen{layouts: layouts}
}

// SetContent implements annobind.RootOwner. Unknown layouts clear the
// content.
func (s *Screen) SetContent(layout int) {
	s.history = append(s.history, layout)
	s.content = s.layouts[layout]
}

// FindElement implements annobind.ElementSource by searching the current
// content.
func (s *Screen) FindElement(id int) annobind.Element {
	s.lookups = append(s.lookups, id)
	if s.content == nil {
		return nil
	}
	return s.content.FindElement(id)
}

// Content returns the current content, or nil.
func (s *Screen) Content() *Tree {
	return s.content
}

// ContentHistory returns the layouts passed to SetContent, in order.
func (s *Screen) ContentHistory() []int {
	return append([]int(nil), s.history...)
}

// Lookups returns the identifiers looked up through the screen, in order.
func (s *Screen) Lookups() []int {
	return append([]int(nil), s.lookups...)
}

var _ annobind.RootOwner = (*Screen)(nil)
