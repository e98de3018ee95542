/*
File   : coffeebean/parser/parser.go
Package: parser

Implements a recursive-descent parser for Coffee Bean: tokens -> ordered
statement sequence. Grounded on original_source/src/parser.py's
eat/match/position scanning style (position index, a `token` shadow of
tokens[position], `_eat`/`_match` helpers), adapted to idiomatic Go:
errors are returned rather than tracked as a sticky error-flag field, so
a caller gets the first *Error instead of a partially built tree.
*/
package parser

import (
	"fmt"

	"coffeebean/ast"
	"coffeebean/token"
)

// Error reports a fatal parse failure: an unexpected token or a missing
// closing token ( `)` `]` `}` `end` ). Fatal for the current input; no
// error recovery is attempted (spec.md §7).
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// SourceLine implements errs.located, see lexer.Error.SourceLine.
func (e *Error) SourceLine() int { return e.Line }

// Parser holds parsing state over a fixed token slice produced by the
// lexer.
type Parser struct {
	tokens   []token.Token
	position int
	cur      token.Token
}

// New creates a parser over tokens, which must end with an Eof token.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	if len(tokens) > 0 {
		p.cur = tokens[0]
	}
	return p
}

// Parse is the contract spec.md names: tokens -> ordered Stmt sequence.
// Blank lines between top-level statements are skipped; parsing stops
// at Eof.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := New(tokens)
	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.check(token.Eof) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return stmts, nil
}

// eat consumes and returns the current token, advancing position.
func (p *Parser) eat() token.Token {
	eaten := p.cur
	p.position++
	if p.position < len(p.tokens) {
		p.cur = p.tokens[p.position]
	}
	return eaten
}

// check reports whether the current token has the given kind, without
// consuming it.
func (p *Parser) check(kind token.Kind) bool {
	return p.cur.Kind == kind
}

// match consumes and returns true if the current token has one of the
// given kinds; otherwise leaves position unchanged.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.eat()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the given kind, else
// fails with an *Error naming what was expected.
func (p *Parser) expect(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.eat(), nil
	}
	return token.Token{}, &Error{Line: p.cur.Line, Message: message}
}

// skipNewlines consumes a run of zero or more Newline tokens; spec.md
// §4.D: Newline is only significant as a top-level statement separator.
func (p *Parser) skipNewlines() {
	for p.check(token.Newline) {
		p.eat()
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Line: p.cur.Line, Message: fmt.Sprintf(format, args...)}
}
