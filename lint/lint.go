// Package lint performs static checks over a tart AST that don't require
// evaluation: the language has no static binding analysis (undeclared
// variable use is necessarily a runtime evaluator concern), so this walk
// is intentionally limited to structural issues visible from the AST
// alone.
package lint

import (
	"strings"

	"github.com/ashn-dot-dev/tart/ast"
	"github.com/ashn-dot-dev/tart/parser/token"
)

// Issue is a single static finding.
type Issue struct {
	Location *token.Location
	Message  string
}

// Walk returns every static issue found in prog, in source order.
func Walk(prog *ast.Program) []Issue {
	var issues []Issue
	for _, expr := range prog.Exprs {
		issues = append(issues, walkNode(expr)...)
	}
	return issues
}

func walkNode(n ast.Node) []Issue {
	vec, ok := n.(*ast.VectorNode)
	if !ok {
		return nil
	}

	var issues []Issue
	if len(vec.Elements) == 0 {
		issues = append(issues, Issue{
			Location: vec.Location,
			Message:  "empty vector call always fails at evaluation",
		})
		return issues
	}

	isLambda := false
	if head, ok := vec.Elements[0].(*ast.StringNode); ok && head.Value == "lambda" && len(vec.Elements) >= 1 {
		isLambda = true
		issues = append(issues, lintLambdaFormals(vec)...)
	}

	for i, elem := range vec.Elements {
		if isLambda && i == 1 {
			// A lambda's parameter list is not a call.
			continue
		}
		issues = append(issues, walkNode(elem)...)
	}
	return issues
}

func lintLambdaFormals(vec *ast.VectorNode) []Issue {
	if len(vec.Elements) < 2 {
		return []Issue{{Location: vec.Location, Message: "lambda: missing parameter list"}}
	}
	formals, ok := vec.Elements[1].(*ast.VectorNode)
	if !ok {
		return []Issue{{Location: vec.Elements[1].Loc(), Message: "lambda: parameter list must be a bracketed vector"}}
	}

	var issues []Issue
	seen := make(map[string]bool)
	for i, elem := range formals.Elements {
		sn, ok := elem.(*ast.StringNode)
		if !ok {
			issues = append(issues, Issue{Location: elem.Loc(), Message: "lambda: parameter must be a plain string"})
			continue
		}
		name := sn.Value
		isLast := i == len(formals.Elements)-1
		if strings.HasSuffix(name, "...") {
			if !isLast {
				issues = append(issues, Issue{
					Location: sn.Location,
					Message:  "lambda: variadic marker `...` may only appear on the last parameter",
				})
			}
			name = strings.TrimSuffix(name, "...")
		}
		if seen[name] {
			issues = append(issues, Issue{Location: sn.Location, Message: "lambda: duplicate parameter " + name})
		}
		seen[name] = true
	}
	return issues
}
