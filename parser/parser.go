package parser

import (
	"fmt"
	"io"
	"text/scanner"
)

// ParseError is a syntax error in annotation text.
type ParseError struct {
	err error
	pos scanner.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.pos.Line, e.pos.Column, e.err)
}

func (e *ParseError) Underlying() error {
	return e.err
}

func (e *ParseError) Pos() scanner.Position {
	return e.pos
}

// ParseAnnotations parses annotation text: one or more annotations, each on
// its own line. Newlines inside parentheses or braces are allowed after a
// comma, an opening bracket, a colon or an operator.
func ParseAnnotations(filename string, r io.Reader) ([]Annotation, *ParseError) {
	p := &annoParser{lex: newLexer(filename, r)}
	p.next()
	res, err := p.parseAll()
	if err != nil {
		return nil, err
	}
	return res, nil
}

type annoParser struct {
	lex *annoLex
	tok lexToken
}

func (p *annoParser) next() {
	p.tok = p.lex.Lex()
}

func (p *annoParser) errorf(pos scanner.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{err: fmt.Errorf(format, args...), pos: pos}
}

func (p *annoParser) unexpected(want string) *ParseError {
	if p.tok.tok == _ERROR {
		return &ParseError{err: p.lex.err, pos: p.tok.pos}
	}
	return p.errorf(p.tok.pos, "syntax error: unexpected %s, expecting %s", tokenName(p.tok.tok), want)
}

func (p *annoParser) expect(tok int) (lexToken, *ParseError) {
	t := p.tok
	if t.tok != tok {
		return t, p.unexpected(tokenName(tok))
	}
	p.next()
	return t, nil
}

func (p *annoParser) skipEOLs() {
	for p.tok.tok == _EOL {
		p.next()
	}
}

func (p *annoParser) parseAll() ([]Annotation, *ParseError) {
	var res []Annotation
	p.skipEOLs()
	for p.tok.tok != 0 {
		a, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		res = append(res, a)
		if p.tok.tok != 0 && p.tok.tok != _EOL {
			return nil, p.unexpected("end-of-line")
		}
		p.skipEOLs()
	}
	return res, nil
}

func (p *annoParser) parseAnnotation() (Annotation, *ParseError) {
	at, err := p.expect('@')
	if err != nil {
		return Annotation{}, err
	}
	id, err := p.parseQualifiedIdent()
	if err != nil {
		return Annotation{}, err
	}
	a := Annotation{Type: id, Pos: at.pos}
	switch p.tok.tok {
	case '(':
		p.next()
		if a.Value, err = p.parseExpression(); err != nil {
			return Annotation{}, err
		}
		if _, err := p.expect(')'); err != nil {
			return Annotation{}, err
		}
	case '{':
		p.next()
		a.Braced = true
		if a.Fields, err = p.parseFields(); err != nil {
			return Annotation{}, err
		}
	}
	return a, nil
}

func (p *annoParser) parseFields() ([]Field, *ParseError) {
	var fields []Field
	for {
		p.skipEOLs()
		if p.tok.tok == '}' {
			p.next()
			return fields, nil
		}
		name, err := p.expect(_IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(':'); err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name.text, Value: val, Pos: name.pos})
		p.skipEOLs()
		switch p.tok.tok {
		case ',':
			p.next()
		case '}':
		default:
			return nil, p.unexpected(`"," or "}"`)
		}
	}
}

func (p *annoParser) parseQualifiedIdent() (Identifier, *ParseError) {
	first, err := p.expect(_IDENT)
	if err != nil {
		return Identifier{}, err
	}
	if p.tok.tok != '.' {
		return Identifier{Name: first.text, Pos: first.pos}, nil
	}
	p.next()
	second, err := p.expect(_IDENT)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{PackageAlias: first.text, Name: second.text, Pos: first.pos}, nil
}

// Operator precedence follows Go. Only the two arithmetic levels are needed
// since annotation values are integer constants.
var additiveOps = map[int]string{'+': "+", '-': "-", '|': "|", '^': "^"}

var multiplicativeOps = map[int]string{'*': "*", '/': "/", '%': "%", '&': "&", _SHL: "<<", _SHR: ">>", _AND_NOT: "&^"}

func (p *annoParser) parseExpression() (ExpressionNode, *ParseError) {
	return p.parseBinary(additiveOps, func() (ExpressionNode, *ParseError) {
		return p.parseBinary(multiplicativeOps, p.parseUnary)
	})
}

func (p *annoParser) parseBinary(ops map[int]string, operand func() (ExpressionNode, *ParseError)) (ExpressionNode, *ParseError) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.tok.tok]
		if !ok {
			return left, nil
		}
		opPos := p.tok.pos
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = BinaryOperatorNode{Left: left, Right: right, Operator: op, OperatorPos: opPos}
	}
}

func (p *annoParser) parseUnary() (ExpressionNode, *ParseError) {
	switch p.tok.tok {
	case '-', '+', '^':
		t := p.tok
		p.next()
		val, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return PrefixOperatorNode{Operator: string(rune(t.tok)), Value: val, pos: t.pos}, nil
	}
	return p.parsePrimary()
}

func (p *annoParser) parsePrimary() (ExpressionNode, *ParseError) {
	switch p.tok.tok {
	case _INT_LIT:
		t := p.tok
		p.next()
		return LiteralNode{Val: t.val, pos: t.pos}, nil
	case _IDENT:
		id, err := p.parseQualifiedIdent()
		if err != nil {
			return nil, err
		}
		return RefNode{Ident: id}, nil
	case '(':
		t := p.tok
		p.next()
		contents, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(')'); err != nil {
			return nil, err
		}
		return ParenthesizedExpressionNode{Contents: contents, pos: t.pos}, nil
	case _FLOAT_LIT, _STRING_LIT, _RUNE_LIT:
		return nil, p.errorf(p.tok.pos, "%s %s not allowed: annotation values are integer constants", tokenName(p.tok.tok), p.tok.text)
	}
	return nil, p.unexpected("integer constant or identifier")
}
