package processor

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"math"

	"github.com/jhump/annobind/parser"
)

var binaryOps = map[string]token.Token{
	"+":  token.ADD,
	"-":  token.SUB,
	"|":  token.OR,
	"^":  token.XOR,
	"*":  token.MUL,
	"/":  token.QUO_ASSIGN, // forces integer division
	"%":  token.REM,
	"&":  token.AND,
	"&^": token.AND_NOT,
	"<<": token.SHL,
	">>": token.SHR,
}

var unaryOps = map[string]token.Token{
	"-": token.SUB,
	"+": token.ADD,
	"^": token.XOR,
}

// evaluate computes the value of an annotation expression. The result must be
// an integer constant that fits in an int.
func (c *Context) evaluate(file *ast.File, node parser.ExpressionNode, adjuster posAdjuster) (int, error) {
	v, err := c.determineConstantValue(file, node, adjuster)
	if err != nil {
		return 0, err
	}
	pos := adjuster.adjustPosition(node.Pos())
	i, exact := constant.Int64Val(v)
	if !exact || i < math.MinInt || i > math.MaxInt {
		return 0, posError(pos, "constant %v overflows int", v)
	}
	return int(i), nil
}

func (c *Context) determineConstantValue(file *ast.File, node parser.ExpressionNode, adjuster posAdjuster) (constant.Value, error) {
	switch node := node.(type) {
	case parser.LiteralNode:
		return node.Val, nil

	case parser.ParenthesizedExpressionNode:
		return c.determineConstantValue(file, node.Contents, adjuster)

	case parser.RefNode:
		obj, err := c.resolveSymbol(file, node.Ident, adjuster)
		if err != nil {
			return nil, err
		}
		pos := adjuster.adjustPosition(node.Ident.Pos)
		cnst, ok := obj.(*types.Const)
		if !ok {
			return nil, posError(pos, "%v is not a constant", node.Ident)
		}
		v := constant.ToInt(cnst.Val())
		if v.Kind() != constant.Int {
			return nil, posError(pos, "%v is not an integer constant", node.Ident)
		}
		return v, nil

	case parser.PrefixOperatorNode:
		v, err := c.determineConstantValue(file, node.Value, adjuster)
		if err != nil {
			return nil, err
		}
		op, ok := unaryOps[node.Operator]
		if !ok {
			return nil, posError(adjuster.adjustPosition(node.Pos()), "unsupported operator %s", node.Operator)
		}
		return constant.UnaryOp(op, v, 0), nil

	case parser.BinaryOperatorNode:
		lv, err := c.determineConstantValue(file, node.Left, adjuster)
		if err != nil {
			return nil, err
		}
		rv, err := c.determineConstantValue(file, node.Right, adjuster)
		if err != nil {
			return nil, err
		}
		opPos := adjuster.adjustPosition(node.OperatorPos)
		op, ok := binaryOps[node.Operator]
		if !ok {
			return nil, posError(opPos, "unsupported operator %s", node.Operator)
		}
		switch op {
		case token.SHL, token.SHR:
			s, exact := constant.Uint64Val(rv)
			if !exact || constant.Sign(rv) < 0 {
				return nil, posError(adjuster.adjustPosition(node.Right.Pos()), "invalid shift count %v", rv)
			}
			if s > 63 {
				return nil, posError(adjuster.adjustPosition(node.Right.Pos()), "shift count %v too large", rv)
			}
			return constant.Shift(lv, op, uint(s)), nil
		case token.QUO_ASSIGN, token.REM:
			if constant.Sign(rv) == 0 {
				return nil, posError(opPos, "division by zero")
			}
		}
		return constant.BinaryOp(lv, op, rv), nil

	default:
		return nil, posError(adjuster.adjustPosition(node.Pos()), "unsupported expression")
	}
}

// resolveSymbol finds the object that the given identifier refers to. An
// unqualified identifier is looked up in the package scope and then in the
// file's dot imports. A qualified one is looked up in the imported package
// with that name.
func (c *Context) resolveSymbol(file *ast.File, id parser.Identifier, adjuster posAdjuster) (types.Object, error) {
	pos := adjuster.adjustPosition(id.Pos)
	if id.PackageAlias == "" {
		if obj := c.Package.Types.Scope().Lookup(id.Name); obj != nil {
			return obj, nil
		}
		for _, imp := range file.Imports {
			if imp.Name == nil || imp.Name.Name != "." {
				continue
			}
			if obj := c.lookupImported(imp, id.Name); obj != nil {
				return obj, nil
			}
		}
		return nil, posError(pos, "undefined: %v", id)
	}

	path, ok := c.importPath(file, id.PackageAlias)
	if !ok {
		return nil, posError(pos, "undefined: %s", id.PackageAlias)
	}
	imported := c.Package.Imports[path]
	if imported == nil || imported.Types == nil {
		return nil, posError(pos, "package %q was not loaded", path)
	}
	obj := imported.Types.Scope().Lookup(id.Name)
	if obj == nil || !obj.Exported() {
		return nil, posError(pos, "undefined: %v", id)
	}
	return obj, nil
}

func (c *Context) lookupImported(imp *ast.ImportSpec, name string) types.Object {
	for path, p := range c.Package.Imports {
		if `"`+path+`"` != imp.Path.Value || p.Types == nil {
			continue
		}
		if obj := p.Types.Scope().Lookup(name); obj != nil && obj.Exported() {
			return obj
		}
	}
	return nil
}
