// Package ast defines the two-node abstract syntax tree produced by the
// tart parser: string literals and bracketed vectors, plus the top-level
// Program that sequences them.
package ast

import "github.com/ashn-dot-dev/tart/parser/token"

// Node is any parsed tart expression.
type Node interface {
	// Loc returns the source location the node was parsed from.
	Loc() *token.Location
	node()
}

// StringNode is a literal string, whether it originated from a bare word
// or a quoted string.
type StringNode struct {
	Location *token.Location
	Value    string
}

func (n *StringNode) Loc() *token.Location { return n.Location }
func (*StringNode) node()                  {}

// VectorNode is a bracketed form `[a b c]`. By convention the first
// element names the callee.
type VectorNode struct {
	Location *token.Location
	Elements []Node
}

func (n *VectorNode) Loc() *token.Location { return n.Location }
func (*VectorNode) node()                  {}

// Program is the ordered sequence of top-level expressions in a document.
type Program struct {
	Exprs []Node
}
