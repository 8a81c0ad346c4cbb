package parser

import (
	"fmt"
	"go/constant"
	"text/scanner"
)

// ExpressionNode is a node in the AST for constant expressions.
type ExpressionNode interface {
	Pos() scanner.Position
}

// LiteralNode is an expression node that represents an integer literal.
type LiteralNode struct {
	Val constant.Value
	pos scanner.Position
}

func (n LiteralNode) Pos() scanner.Position {
	return n.pos
}

// RefNode is an expression node that is a reference to an identifier, which is
// expected to resolve to a constant.
type RefNode struct {
	Ident Identifier
}

func (n RefNode) Pos() scanner.Position {
	return n.Ident.Pos
}

// BinaryOperatorNode is an expression node that represents a binary operator
// and its two arguments.
type BinaryOperatorNode struct {
	Left, Right ExpressionNode
	Operator    string
	OperatorPos scanner.Position
}

func (n BinaryOperatorNode) Pos() scanner.Position {
	return n.Left.Pos()
}

// ParenthesizedExpressionNode is an expression node that represents an
// expression surrounded by parentheses.
type ParenthesizedExpressionNode struct {
	Contents ExpressionNode
	pos      scanner.Position
}

func (n ParenthesizedExpressionNode) Pos() scanner.Position {
	return n.pos
}

// PrefixOperatorNode is an expression node that represents a prefix operator:
// unary minus (-), unary plus (+) or bitwise not (^).
type PrefixOperatorNode struct {
	Operator string
	Value    ExpressionNode
	pos      scanner.Position
}

func (n PrefixOperatorNode) Pos() scanner.Position {
	return n.pos
}

// Identifier is an AST node that refers to an identifier, possibly qualified
// with a package name/alias.
type Identifier struct {
	PackageAlias string
	Name         string
	Pos          scanner.Position
}

func (id Identifier) String() string {
	if id.PackageAlias == "" {
		return id.Name
	}
	return fmt.Sprintf("%s.%s", id.PackageAlias, id.Name)
}

// Field is a named value in an annotation written in struct form.
type Field struct {
	Name  string
	Value ExpressionNode
	Pos   scanner.Position
}

// Annotation is a fully parsed annotation. It identifies the annotation type
// and has an optional value, written either in call form, @Name(expr), or in
// struct form, @Name{Field: expr}. A bare @Name has neither.
type Annotation struct {
	Type Identifier
	// Value is the argument of the call form, nil otherwise.
	Value ExpressionNode
	// Fields holds the values of the struct form. Braced is true for the
	// struct form even when no fields are given.
	Fields []Field
	Braced bool
	Pos    scanner.Position
}
