// Package lang implements the tart value model, environment, evaluator,
// and builtin procedures — the interpreter core.
package lang

import (
	"fmt"
	"strings"

	"github.com/ashn-dot-dev/tart/ast"
)

// Kind identifies the tagged variant of a Value.
type Kind int

const (
	KindString Kind = iota
	KindVector
	KindLambda
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindLambda:
		return "lambda"
	case KindBuiltin:
		return "builtin"
	default:
		return "invalid"
	}
}

// Value is the runtime value universe: String, Vector, Lambda, or Builtin.
type Value interface {
	Kind() Kind
}

// String is an immutable sequence of characters.
type String string

func (String) Kind() Kind { return KindString }

// Vector is an ordered, immutable sequence of Values, produced whole by
// the vector builtin or the variadic capture mechanism. A Vector is never
// mutated after creation.
type Vector []Value

func (Vector) Kind() Kind { return KindVector }

// Lambda is a user-defined procedure: a parameter list, a body of AST
// nodes, and the environment captured at definition time.
type Lambda struct {
	Params   []string
	Variadic bool
	Body     []ast.Node
	Env      *Env
}

func (*Lambda) Kind() Kind { return KindLambda }

// BuiltinFunc implements a primitive procedure. It receives the
// unevaluated argument nodes of the call and the environment the call is
// being evaluated in; builtins control their own argument evaluation.
type BuiltinFunc func(env *Env, args []ast.Node) (Value, error)

// Builtin is an opaque callable installed into the root environment.
// Builtins are intentionally opaque: stringifying one is an error.
type Builtin struct {
	Name string
	Doc  string
	Fn   BuiltinFunc
}

func (*Builtin) Kind() Kind { return KindBuiltin }

// ToString renders v as it appears in tart output. Strings render as
// themselves; vectors drop empty elements and join the remainder with a
// single ASCII space (deliberately not the whitespace-aware rule, which
// is reserved for the `string` builtin and top-level emission); lambdas
// render a diagnostic-only textual form with no stable canonical shape;
// builtins cannot be stringified.
func ToString(v Value) (string, error) {
	switch val := v.(type) {
	case String:
		return string(val), nil
	case Vector:
		parts := make([]string, 0, len(val))
		for _, elem := range val {
			s, err := ToString(elem)
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		// Vector stringification is a plain space join, not the
		// whitespace-aware rule: that rule is reserved for `string` and
		// top-level document emission.
		return strings.Join(parts, " "), nil
	case *Lambda:
		var b strings.Builder
		b.WriteString("[lambda [")
		for i, p := range val.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p)
		}
		b.WriteString("] ...]")
		return b.String(), nil
	case *Builtin:
		return "", fmt.Errorf("attempted to stringify builtin")
	default:
		return "", fmt.Errorf("attempted to stringify unknown value")
	}
}

// JoinWhitespaceAware combines already-stringified, non-empty strings
// using the whitespace-aware assembly rule: a single ASCII space is
// inserted between consecutive pieces unless the boundary already has
// whitespace on either side. Zero inputs yield "".
func JoinWhitespaceAware(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(parts[0])
	acc := parts[0]
	for _, s := range parts[1:] {
		if !endsWithSpace(acc) && !startsWithSpace(s) {
			b.WriteByte(' ')
		}
		b.WriteString(s)
		acc = s
	}
	return b.String()
}

func endsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func startsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// StringifyAndJoin stringifies each value, drops empty results, and joins
// the remainder with the whitespace-aware rule. It backs both the
// `string` builtin and top-level program emission.
func StringifyAndJoin(vals []Value) (string, error) {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		s, err := ToString(v)
		if err != nil {
			return "", err
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return JoinWhitespaceAware(parts), nil
}
