// Package token defines the lexical tokens and source locations shared by
// the tart lexer, parser, and evaluator.
package token

import "fmt"

// Location identifies a position in a tart source document by file path and
// line number, per the SourceLocation data model.
type Location struct {
	Path string
	Line int
}

// NewLocation returns a Location at line 1 of path.
func NewLocation(path string) *Location {
	return &Location{Path: path, Line: 1}
}

// String renders loc the same way it appears in rendered diagnostics.
func (loc *Location) String() string {
	if loc == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s, line %d", loc.Path, loc.Line)
}

// Copy returns a value copy of loc, safe to attach to a token or AST node
// independently of further lexer advancement.
func (loc *Location) Copy() *Location {
	if loc == nil {
		return nil
	}
	cp := *loc
	return &cp
}

// Type enumerates the kinds of token the lexer produces.
type Type int

const (
	INVALID Type = iota
	EOF
	LBRACKET
	RBRACKET
	STRING
)

func (typ Type) String() string {
	switch typ {
	case EOF:
		return "EOF"
	case LBRACKET:
		return "["
	case RBRACKET:
		return "]"
	case STRING:
		return "string"
	default:
		return "invalid"
	}
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Type Type
	// Literal preserves the original source lexeme, quotes included for a
	// quoted string, for use in diagnostics.
	Literal string
	// Value carries the post-escape-decoding content for STRING tokens. For
	// LBRACKET, RBRACKET, and EOF tokens Value is unused.
	Value string
	// Location is the position of the first byte of the token.
	Location *Location
}

func (t *Token) String() string {
	if t.Type == STRING {
		return fmt.Sprintf("%s(%q)", t.Type, t.Value)
	}
	return t.Type.String()
}

// LocationError pairs an error with the source location it occurred at. It
// is the single error type threaded through the lexer, parser, and
// evaluator so that every diagnostic can be rendered uniformly.
type LocationError struct {
	Err      error
	Location *Location
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Location, e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// Errorf returns a *LocationError built from a formatted message.
func Errorf(loc *Location, format string, v ...interface{}) *LocationError {
	return &LocationError{Err: fmt.Errorf(format, v...), Location: loc}
}

// Rewrap returns a *LocationError carrying err's message (unwrapped from any
// existing LocationError) but relocated to loc. This backs the evaluator's
// rule that a failing call is reported at the calling node's location
// rather than the location of the innermost failure.
func Rewrap(err error, loc *Location) error {
	if err == nil {
		return nil
	}
	var lerr *LocationError
	if le, ok := err.(*LocationError); ok {
		lerr = le
	}
	if lerr != nil {
		return &LocationError{Err: lerr.Err, Location: loc}
	}
	return &LocationError{Err: err, Location: loc}
}
