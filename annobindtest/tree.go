// Package annobindtest provides in-memory elements and owners for testing
// code that uses annobind.
package annobindtest

import "github.com/jhump/annobind"

// Element is an element that knows its own identifier.
type Element interface {
	annobind.Element
	ElementID() int
}

// Node is a clickable element. Listeners run in the order they were added.
type Node struct {
	id        int
	listeners []func()
}

// NewNode returns a node with the given identifier.
func NewNode(id int) *Node {
	return &Node{id: id}
}

// ElementID returns the node's identifier.
func (n *Node) ElementID() int {
	return n.id
}

// OnClick implements annobind.Element.
func (n *Node) OnClick(listener func()) {
	n.listeners = append(n.listeners, listener)
}

// Click runs every listener.
func (n *Node) Click() {
	for _, l := range n.listeners {
		l()
	}
}

// Listeners returns the number of listeners added to the node.
func (n *Node) Listeners() int {
	return len(n.listeners)
}

// Button is a node with a label.
type Button struct {
	Node
	Label string
}

// NewButton returns a button with the given identifier.
func NewButton(id int, label string) *Button {
	return &Button{Node: Node{id: id}, Label: label}
}

// TextField is a node holding text.
type TextField struct {
	Node
	Text string
}

// NewTextField returns a text field with the given identifier.
func NewTextField(id int, text string) *TextField {
	return &TextField{Node: Node{id: id}, Text: text}
}

// Tree is a flat element subtree. It records every lookup.
type Tree struct {
	elements map[int]Element
	lookups  []int
}

// NewTree returns a tree holding the given elements.
func NewTree(elements ...Element) *Tree {
	t := &Tree{elements: map[int]Element{}}
	for _, e := range elements {
		t.elements[e.ElementID()] = e
	}
	return t
}

// FindElement implements annobind.ElementSource. It returns a nil interface,
// not a typed nil, for unknown identifiers.
func (t *Tree) FindElement(id int) annobind.Element {
	t.lookups = append(t.lookups, id)
	if e, ok := t.elements[id]; ok {
		return e
	}
	return nil
}

// Get returns the element with the given identifier without recording a
// lookup.
func (t *Tree) Get(id int) Element {
	return t.elements[id]
}

// Lookups returns the identifiers looked up so far, in order.
func (t *Tree) Lookups() []int {
	return append([]int(nil), t.lookups...)
}

var (
	_ annobind.ElementSource = (*Tree)(nil)
	_ Element                = (*Node)(nil)
	_ Element                = (*Button)(nil)
	_ Element                = (*TextField)(nil)
)
