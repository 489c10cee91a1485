package lang

import (
	"fmt"

	"github.com/ashn-dot-dev/tart/ast"
	"github.com/ashn-dot-dev/tart/parser/token"
)

// Eval recursively evaluates node against env, dispatching bracketed calls
// to builtins or lambdas.
func Eval(node ast.Node, env *Env) (Value, error) {
	switch n := node.(type) {
	case *ast.StringNode:
		return String(n.Value), nil
	case *ast.VectorNode:
		return evalVector(n, env)
	default:
		return nil, fmt.Errorf("unknown AST node type %T", node)
	}
}

func evalVector(n *ast.VectorNode, env *Env) (Value, error) {
	if len(n.Elements) == 0 {
		return nil, token.Errorf(n.Location, "attempted procedure call on an empty vector")
	}

	callee, err := resolveCallee(n.Elements[0], env)
	if err != nil {
		return nil, token.Rewrap(err, n.Location)
	}

	args := n.Elements[1:]
	switch fn := callee.(type) {
	case *Builtin:
		v, err := fn.Fn(env, args)
		if err != nil {
			return nil, token.Rewrap(err, n.Location)
		}
		return v, nil
	case *Lambda:
		argVals := make([]Value, 0, len(args))
		for _, a := range args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, token.Rewrap(err, n.Location)
			}
			argVals = append(argVals, v)
		}
		v, err := callLambda(fn, argVals)
		if err != nil {
			return nil, token.Rewrap(err, n.Location)
		}
		return v, nil
	default:
		return nil, token.Rewrap(fmt.Errorf("expression is not callable"), n.Location)
	}
}

// resolveCallee evaluates the head element of a call. If the result is a
// String, it is looked up by name in env; otherwise it is used directly.
func resolveCallee(head ast.Node, env *Env) (Value, error) {
	v, err := Eval(head, env)
	if err != nil {
		return nil, err
	}
	if name, ok := v.(String); ok {
		return env.Get(string(name))
	}
	return v, nil
}

// callLambda invokes lam with already-evaluated argument values.
func callLambda(lam *Lambda, args []Value) (Value, error) {
	if err := checkArity(lam, len(args)); err != nil {
		return nil, err
	}

	rt := lam.Env.Runtime
	if !rt.enter() {
		return nil, fmt.Errorf("maximum call depth exceeded")
	}
	defer rt.leave()

	callEnv := NewChildEnv(lam.Env)
	fixed := len(lam.Params)
	if lam.Variadic {
		fixed--
	}
	for i := 0; i < fixed; i++ {
		_ = callEnv.Let(lam.Params[i], args[i])
	}
	if lam.Variadic {
		rest := make(Vector, 0, len(args)-fixed)
		for _, v := range args[fixed:] {
			rest = append(rest, v)
		}
		_ = callEnv.Let(lam.Params[fixed], rest)
	}

	if len(lam.Body) == 0 {
		return String(""), nil
	}
	var result Value = String("")
	for _, expr := range lam.Body {
		v, err := Eval(expr, callEnv)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func checkArity(lam *Lambda, got int) error {
	if lam.Variadic {
		want := len(lam.Params) - 1
		if got < want {
			return fmt.Errorf("lambda: expected at least %d argument(s), got %d", want, got)
		}
		return nil
	}
	if got != len(lam.Params) {
		return fmt.Errorf("lambda: expected %d argument(s), got %d", len(lam.Params), got)
	}
	return nil
}

// EvalProgram evaluates every top-level expression of prog against env, as
// if they were the arguments to the `string` builtin, and returns the
// resulting whitespace-joined string.
func EvalProgram(prog *ast.Program, env *Env) (string, error) {
	vals := make([]Value, 0, len(prog.Exprs))
	for _, expr := range prog.Exprs {
		v, err := Eval(expr, env)
		if err != nil {
			return "", err
		}
		vals = append(vals, v)
	}
	return StringifyAndJoin(vals)
}
