package parser

import (
	"strings"

	"github.com/chomey/apyxl/pkg/token"
)

// Lexer tokenizes API definition input. Whitespace and comments (both
// `//` line and non-nested `/* */` block) are skipped between tokens, so
// they are legal between nearly any two grammar elements and invisible
// to the parser.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	if tok, bad := l.skipWhitespaceAndComments(); bad {
		return tok
	}

	pos := l.currentPos()

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '&':
		tok = l.newToken(token.AMP, "&")
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Literal: "->", Pos: pos}
			l.readChar()
		} else if isDigit(l.peekChar()) {
			return l.readNumber(pos)
		} else {
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	case '=':
		tok = l.newToken(token.ASSIGN, "=")
	case ':':
		tok = l.newToken(token.COLON, ":")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '.':
		tok = l.newToken(token.DOT, ".")
	case ';':
		tok = l.newToken(token.SEMICOLON, ";")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '#':
		if l.peekChar() == '[' {
			return l.readAnnotation(pos)
		}
		tok = l.newToken(token.ILLEGAL, string(l.ch))
	case '"':
		return l.readString(pos)
	default:
		if isIdentStart(l.ch) {
			return l.readIdentifier(pos)
		}
		if isDigit(l.ch) {
			return l.readNumber(pos)
		}
		tok = l.newToken(token.ILLEGAL, string(l.ch))
	}

	return tok
}

// newToken builds a single-char (or pre-read) token and advances.
func (l *Lexer) newToken(t token.Type, literal string) token.Token {
	tok := token.Token{Type: t, Literal: literal, Pos: l.currentPos()}
	l.readChar()
	return tok
}

// skipWhitespaceAndComments consumes whitespace, `//` line comments, and
// non-nested `/* */` block comments. An unterminated block comment
// yields an ILLEGAL token.
func (l *Lexer) skipWhitespaceAndComments() (token.Token, bool) {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			pos := l.currentPos()
			l.readChar() // consume '/'
			l.readChar() // consume '*'
			for {
				if l.ch == 0 {
					return token.Token{Type: token.ILLEGAL, Literal: errUnterminatedComment, Pos: pos}, true
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
		default:
			return token.Token{}, false
		}
	}
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier(pos token.Position) token.Token {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	literal := l.input[start:l.pos]
	return token.Token{Type: token.LookupIdent(literal), Literal: literal, Pos: pos}
}

// readNumber reads an integer literal, optionally signed.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.NUMBER, Literal: l.input[start:l.pos], Pos: pos}
}

// readString reads a double-quoted string literal with backslash
// escapes. String literals only occur inside skipped statement bodies
// and annotations, but lexing them keeps brace counting immune to brace
// characters embedded in string text.
func (l *Lexer) readString(pos token.Position) token.Token {
	var sb strings.Builder
	l.readChar() // consume opening quote
	for {
		switch l.ch {
		case 0, '\n':
			return token.Token{Type: token.ILLEGAL, Literal: errUnterminatedString, Pos: pos}
		case '\\':
			l.readChar()
			if l.ch == 0 {
				return token.Token{Type: token.ILLEGAL, Literal: errUnterminatedString, Pos: pos}
			}
			sb.WriteByte(l.ch)
			l.readChar()
		case '"':
			l.readChar()
			return token.Token{Type: token.STRING, Literal: sb.String(), Pos: pos}
		default:
			sb.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readAnnotation reads a `#[...]` span as one token, balancing nested
// brackets. The parser recognizes and discards it.
func (l *Lexer) readAnnotation(pos token.Position) token.Token {
	start := l.pos
	l.readChar() // consume '#'
	l.readChar() // consume '['
	depth := 1
	for depth > 0 {
		switch l.ch {
		case 0:
			return token.Token{Type: token.ILLEGAL, Literal: errUnterminatedAnnotation, Pos: pos}
		case '[':
			depth++
		case ']':
			depth--
		}
		l.readChar()
	}
	return token.Token{Type: token.ANNOTATION, Literal: l.input[start:l.pos], Pos: pos}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
