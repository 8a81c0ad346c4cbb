package parser

import (
	"errors"
	"go/constant"
	"go/token"
	"io"
	"text/scanner"
)

const (
	_IDENT = 57346 + iota
	_INT_LIT
	_FLOAT_LIT
	_STRING_LIT
	_RUNE_LIT
	_EOL
	_SHL
	_SHR
	_AND_NOT
	_ERROR
)

var tokenNames = map[int]string{
	0:           "end of input",
	_IDENT:      "identifier",
	_INT_LIT:    "int literal",
	_FLOAT_LIT:  "float literal",
	_STRING_LIT: "string literal",
	_RUNE_LIT:   "rune literal",
	_EOL:        "end-of-line",
	_SHL:        `"<<"`,
	_SHR:        `">>"`,
	_AND_NOT:    `"&^"`,
}

func tokenName(t int) string {
	if n, ok := tokenNames[t]; ok {
		return n
	}
	return `"` + string(rune(t)) + `"`
}

type lexToken struct {
	tok  int
	text string
	val  constant.Value
	pos  scanner.Position
}

type annoLex struct {
	err      error
	lastRune rune

	s scanner.Scanner
}

func newLexer(filename string, r io.Reader) *annoLex {
	var l annoLex
	l.s.Init(r)
	l.s.Filename = filename
	l.s.Mode = l.s.Mode &^ (scanner.ScanComments | scanner.SkipComments)
	l.s.Whitespace = 0
	l.s.Error = func(s *scanner.Scanner, msg string) {
		l.err = errors.New(msg)
	}
	return &l
}

// Newlines that follow one of these are not significant, so values can be
// split over several lines.
var trailingRunes = map[rune]struct{}{
	',': {},
	'.': {},
	'{': {},
	'(': {},
	':': {},
	'+': {},
	'-': {},
	'*': {},
	'/': {},
	'%': {},
	'^': {},
	'&': {},
	'|': {},
	'<': {},
	'>': {},
}

// Lex returns the next token. At the end of input it returns a token whose
// tok is zero.
func (l *annoLex) Lex() (t lexToken) {
	var r rune
	defer func() {
		if r != scanner.EOF && l.err == nil {
			l.lastRune = r
		}
		if l.err != nil {
			t.tok = _ERROR
		}
	}()

	for {
		pos := l.s.Pos()
		r = l.s.Scan()
		tok := l.s.TokenText()
		if l.err != nil {
			return lexToken{tok: _ERROR, pos: pos}
		}

		if r == scanner.EOF {
			return lexToken{pos: pos}
		}

		// we handle whitespace ourselves so that we can easily know the
		// *start* position for a token
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}

		t = lexToken{text: tok, pos: pos}
		switch r {
		case scanner.Ident:
			t.tok = _IDENT
		case scanner.Int:
			t.tok = _INT_LIT
			t.val = constant.MakeFromLiteral(tok, token.INT, 0)
		case scanner.Float:
			t.tok = _FLOAT_LIT
			t.val = constant.MakeFromLiteral(tok, token.FLOAT, 0)
		case scanner.Char:
			t.tok = _RUNE_LIT
			t.val = constant.MakeFromLiteral(tok, token.CHAR, 0)
		case scanner.String, scanner.RawString:
			t.tok = _STRING_LIT
			t.val = constant.MakeFromLiteral(tok, token.STRING, 0)
		case '\n':
			if _, ok := trailingRunes[l.lastRune]; ok {
				continue
			}
			t.tok = _EOL
		case '<':
			t.tok = '<'
			if l.s.Peek() == '<' {
				l.s.Next() // consume it
				t.tok, t.text = _SHL, "<<"
			}
		case '>':
			t.tok = '>'
			if l.s.Peek() == '>' {
				l.s.Next() // consume it
				t.tok, t.text = _SHR, ">>"
			}
		case '&':
			t.tok = '&'
			if l.s.Peek() == '^' {
				l.s.Next() // consume it
				t.tok, t.text = _AND_NOT, "&^"
			}
		default:
			t.tok = int(r)
		}
		return t
	}
}
