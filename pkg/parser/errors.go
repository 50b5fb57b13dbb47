package parser

import (
	"fmt"

	"github.com/chomey/apyxl/pkg/token"
)

// ParseError represents a grammar error with position information. A
// chunk that fails to match the grammar is fatal to the whole parse
// operation; no partial result is produced.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	errUnexpectedToken        = "unexpected token %s, expected %s"
	errUnterminatedBody       = "unterminated fn body, expected }"
	errUnterminatedString     = "unterminated string literal"
	errUnterminatedComment    = "unterminated block comment"
	errUnterminatedAnnotation = "unterminated annotation, expected ]"
	errNotReferenceable       = "type %q cannot be spelled by reference"
	errBadDiscriminant        = "invalid enum discriminant %q"
)
