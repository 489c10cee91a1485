// Package formatter renders a tart AST back into canonical source text.
//
// The AST retains no comment tokens (the lexer discards `#` comments
// entirely, per the language's lexical contract), so formatting is lossy
// with respect to comments: this printer reflows structure only.
package formatter

import (
	"strings"

	"github.com/ashn-dot-dev/tart/ast"
)

// Print renders prog as canonical tart source: one top-level expression
// per line, with nested vectors printed inline.
func Print(prog *ast.Program) string {
	var b strings.Builder
	for i, expr := range prog.Exprs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(printNode(expr))
	}
	if len(prog.Exprs) > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

func printNode(n ast.Node) string {
	switch node := n.(type) {
	case *ast.StringNode:
		return printString(node.Value)
	case *ast.VectorNode:
		parts := make([]string, len(node.Elements))
		for i, elem := range node.Elements {
			parts[i] = printNode(elem)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return ""
	}
}

// printString renders a string literal as a bare word when possible,
// falling back to a quoted, escaped form when the value contains
// whitespace, brackets, `"` or `#`, or is empty.
//
// The lexer's escape set is exactly `\\`, `\t`, `\n` (spec §4.1): a
// string value can never itself contain a `"`, since a raw quote always
// closes a quoted string and there is no escape that decodes to one.
// This printer relies on that invariant and never emits `\"`, since the
// lexer would reject it on the next parse.
func printString(s string) string {
	if s != "" && !needsQuoting(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '[', ']', '"', '#':
			return true
		}
	}
	return false
}
