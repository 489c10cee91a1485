// Package lexer converts tart source text into a stream of tokens.
//
// The source is loaded fully into memory before lexing begins (per the
// runtime's resource model), so unlike the teacher's stream-oriented
// scanner, Lexer walks an in-memory rune slice rather than an io.Reader.
package lexer

import (
	"strings"

	"github.com/ashn-dot-dev/tart/parser/token"
)

// Lexer produces tokens one at a time from a source string.
type Lexer struct {
	path string
	src  []rune
	pos  int
	line int
}

// New returns a Lexer over src, attributing tokens to path for diagnostics.
func New(path, src string) *Lexer {
	return &Lexer{
		path: path,
		src:  []rune(src),
		pos:  0,
		line: 1,
	}
}

func (lx *Lexer) loc() *token.Location {
	return &token.Location{Path: lx.path, Line: lx.line}
}

func (lx *Lexer) eof() bool {
	return lx.pos >= len(lx.src)
}

func (lx *Lexer) peek() rune {
	if lx.eof() {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) peekAt(offset int) rune {
	if lx.pos+offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+offset]
}

func (lx *Lexer) advance() rune {
	c := lx.src[lx.pos]
	lx.pos++
	if c == '\n' {
		lx.line++
	}
	return c
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDelim(c rune) bool {
	return c == '[' || c == ']' || c == '"'
}

// skipIgnorable consumes runs of whitespace and `#` line comments.
func (lx *Lexer) skipIgnorable() {
	for !lx.eof() {
		c := lx.peek()
		switch {
		case isSpace(c):
			lx.advance()
		case c == '#':
			for !lx.eof() && lx.peek() != '\n' {
				lx.advance()
			}
		default:
			return
		}
	}
}

// Next returns the next token in the stream, or an error at the offending
// location. Once EOF is returned, subsequent calls continue returning EOF.
func (lx *Lexer) Next() (*token.Token, error) {
	lx.skipIgnorable()
	loc := lx.loc()
	if lx.eof() {
		return &token.Token{Type: token.EOF, Location: loc}, nil
	}

	switch c := lx.peek(); c {
	case '[':
		lx.advance()
		return &token.Token{Type: token.LBRACKET, Literal: "[", Location: loc}, nil
	case ']':
		lx.advance()
		return &token.Token{Type: token.RBRACKET, Literal: "]", Location: loc}, nil
	case '"':
		return lx.readQuotedString(loc)
	default:
		return lx.readBareString(loc)
	}
}

func (lx *Lexer) readQuotedString(loc *token.Location) (*token.Token, error) {
	var literal strings.Builder
	var value strings.Builder

	literal.WriteRune(lx.advance()) // opening quote

	for {
		if lx.eof() {
			return nil, token.Errorf(loc, "unterminated string")
		}
		c := lx.peek()
		if c == '"' {
			literal.WriteRune(lx.advance())
			break
		}
		if c == '\n' {
			return nil, token.Errorf(lx.loc(), "newline within quoted string")
		}
		if c == '\\' {
			escLoc := lx.loc()
			literal.WriteRune(lx.advance())
			if lx.eof() {
				return nil, token.Errorf(escLoc, "unterminated string")
			}
			e := lx.advance()
			literal.WriteRune(e)
			switch e {
			case '\\':
				value.WriteRune('\\')
			case 't':
				value.WriteRune('\t')
			case 'n':
				value.WriteRune('\n')
			default:
				return nil, token.Errorf(escLoc, "invalid escape character %q", e)
			}
			continue
		}
		literal.WriteRune(c)
		value.WriteRune(c)
		lx.advance()
	}

	return &token.Token{
		Type:     token.STRING,
		Literal:  literal.String(),
		Value:    value.String(),
		Location: loc,
	}, nil
}

// readBareString consumes a maximal run of characters that are not
// whitespace, '[', ']', or '"'.
func (lx *Lexer) readBareString(loc *token.Location) (*token.Token, error) {
	var s strings.Builder
	for !lx.eof() {
		c := lx.peek()
		if isSpace(c) || isDelim(c) {
			break
		}
		s.WriteRune(lx.advance())
	}
	if s.Len() == 0 {
		return nil, token.Errorf(loc, "unexpected character %q", lx.peek())
	}
	lexeme := s.String()
	return &token.Token{
		Type:     token.STRING,
		Literal:  lexeme,
		Value:    lexeme,
		Location: loc,
	}, nil
}

// AllTokens drains the lexer, returning every token up to and including
// EOF. It is primarily useful for tests and diagnostics.
func AllTokens(lx *Lexer) ([]*token.Token, error) {
	var toks []*token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}
