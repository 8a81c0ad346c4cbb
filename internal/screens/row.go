package screens

import "github.com/jhump/annobind/annobindtest"

// Row is a list item holder. It is bound against the container of the item
// it displays, so its layout annotation is never used.
type Row struct {
	_ struct{} `bind:"300"`

	// @annobind.Bind(IDRowTitle)
	Title *annobindtest.TextField
	// The icon is not bound yet.
	//
	// @annobind.Bind(0)
	Icon *annobindtest.Node

	Opened int
	// OnSelect is called with the title text when the title is clicked.
	OnSelect func(title string)
}

// RowLayout returns a fresh element tree for one row.
func RowLayout(title string) *annobindtest.Tree {
	return annobindtest.NewTree(
		annobindtest.NewTextField(IDRowTitle, title),
		annobindtest.NewButton(IDRowOpen, "Open"),
	)
}

// @annobind.Bind(IDRowOpen)
func (r *Row) Open() {
	r.Opened++
}

// Select has a value receiver, so it sees the row as it is when clicked.
//
// @annobind.Bind(IDRowTitle)
func (r Row) Select() {
	if r.OnSelect != nil {
		r.OnSelect(r.Title.Text)
	}
}
