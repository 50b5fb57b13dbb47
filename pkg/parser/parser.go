// Package parser turns one chunk of API definition text into the
// ordered declarations found at its top level.
//
// # Usage
//
//	children, err := parser.Parse(src, parser.Config{})
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser over a small
// Rust-like declaration syntax:
//
//	chunk       → use* declaration* EOF
//	declaration → annotation* [pub] (dto | rpc | enum | namespace)
//	dto         → struct name { field (, field)* [,] }
//	rpc         → fn name ( field (, field)* [,] ) [-> type] body
//	enum        → enum name { variant (, variant)* [,] }
//	namespace   → mod name ( ; | { declaration* } )
//	field       → name : type
//
// Statement bodies are skipped, never interpreted; the skip rule
// balances braces at the token level, so braces inside comments or
// string literals never desynchronize the count. Comments are legal
// between any two tokens. See each file for the detailed rules it
// implements.
package parser

import (
	"fmt"

	"github.com/chomey/apyxl/pkg/model"
	"github.com/chomey/apyxl/pkg/token"
)

// UserTypeRule maps a literal type-name pattern to a display name.
type UserTypeRule struct {
	Pattern string
	Display string
}

// Config carries the caller-supplied parse configuration.
//
// UserTypes is an ordered list of user-defined type rules. A rule
// matches when its pattern equals the complete type identifier at the
// current position; the first matching rule wins, so when two rules
// carry the same pattern the earlier-declared one silently shadows the
// later. A failed candidate consumes no input.
type Config struct {
	UserTypes []UserTypeRule
}

// Parser parses one chunk of API definition text.
type Parser struct {
	lexer *Lexer
	cfg   Config

	token token.Token // current token
	peek  token.Token // lookahead token

	err error // first grammar error; aborts the parse
}

// NewParser creates a parser for the given chunk text.
func NewParser(src string, cfg Config) *Parser {
	p := &Parser{
		lexer: NewLexer(src),
		cfg:   cfg,
	}
	// Read two tokens to initialize current and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a whole chunk: leading imports, then declarations, then
// end of input. Any unmatched leading or trailing content fails the
// parse. On failure the returned error is a *ParseError carrying the
// position of the offending text, and no declarations are returned.
func Parse(src string, cfg Config) ([]model.NamespaceChild, error) {
	p := NewParser(src, cfg)
	children := p.parseChunk()
	if p.err != nil {
		return nil, p.err
	}
	return children, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.token.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise records a
// grammar error.
func (p *Parser) expect(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.errorf(errUnexpectedToken, p.describeToken(), t)
	return false
}

// expectIdent consumes and returns an identifier, or records an error.
func (p *Parser) expectIdent(what string) string {
	if p.check(token.IDENT) {
		name := p.token.Literal
		p.nextToken()
		return name
	}
	p.errorf(errUnexpectedToken, p.describeToken(), what)
	return ""
}

// errorf records the first grammar error at the current token position.
// Subsequent errors are discarded; the parse is already dead.
func (p *Parser) errorf(format string, args ...any) {
	if p.err != nil {
		return
	}
	pos := p.token.Pos
	msg := fmt.Sprintf(format, args...)
	if p.check(token.ILLEGAL) {
		// The lexer encodes its diagnostic in the literal.
		msg = p.token.Literal
	}
	p.err = &ParseError{Pos: pos, Message: msg}
}

// failed reports whether the parse has already hit a grammar error.
func (p *Parser) failed() bool {
	return p.err != nil
}

// describeToken renders the current token for error messages.
func (p *Parser) describeToken() string {
	switch p.token.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT, token.NUMBER:
		return fmt.Sprintf("%q", p.token.Literal)
	default:
		return fmt.Sprintf("%q", p.token.Type.String())
	}
}
