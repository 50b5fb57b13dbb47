// Package token defines the lexical tokens of the API definition syntax.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Literals
	IDENT      // display_name, u128, SpecialId
	NUMBER     // 999, -1
	STRING     // "hello"
	ANNOTATION // #[derive(Default)], captured whole and discarded by the parser

	// Punctuation
	AMP       // &
	ARROW     // ->
	ASSIGN    // =
	COLON     // :
	COMMA     // ,
	DOT       // .
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;

	// Keywords
	ENUM
	FN
	MOD
	PUB
	STRUCT
	USE
)

// Token is a single lexical token with its source position.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:      "IDENT",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	ANNOTATION: "ANNOTATION",

	AMP:       "&",
	ARROW:     "->",
	ASSIGN:    "=",
	COLON:     ":",
	COMMA:     ",",
	DOT:       ".",
	LBRACE:    "{",
	RBRACE:    "}",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",

	ENUM:   "enum",
	FN:     "fn",
	MOD:    "mod",
	PUB:    "pub",
	STRUCT: "struct",
	USE:    "use",
}

var keywords = map[string]Type{
	"enum":   ENUM,
	"fn":     FN,
	"mod":    MOD,
	"pub":    PUB,
	"struct": STRUCT,
	"use":    USE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t Type) bool {
	return t >= ENUM && t <= USE
}
