package lang

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ashn-dot-dev/tart/ast"
)

// builtinDef describes a single builtin's registration entry: its name,
// its documentation string, and its implementation.
type builtinDef struct {
	Name string
	Doc  string
	fn   BuiltinFunc
}

// Builtins lists every builtin procedure installed into the root
// environment, in the order documented by the builtin reference table.
var Builtins = []builtinDef{
	{"let", "Bind an identifier to a value in the current scope. Fails if the identifier is already bound in this scope. Returns \"\".", biLet},
	{"set", "Rebind an identifier already bound in the innermost scope. Returns \"\".", biSet},
	{"get", "Look up the value bound to an identifier.", biGet},
	{"string", "Stringify each argument and join them with the whitespace-aware rule.", biString},
	{"vector", "Return a vector of the evaluated arguments, in order.", biVector},
	{"lambda", "Construct a lambda closing over the current environment. Does not evaluate its arguments.", biLambda},
	{"print", "Stringify and space-join the arguments and emit one line to stdout. Returns \"\".", biPrint},
	{"cat", "Concatenate arguments of a single type (string or vector).", biCat},
	{"join", "Join a vector's stringified elements with a separator.", biJoin},
	{"map", "Apply a lambda to every element of a vector, returning a new vector.", biMap},
	{"run", "Load and evaluate another source file against the current environment.", biRun},
}

// InstallBuiltins binds every builtin in Builtins into env.
func InstallBuiltins(env *Env) {
	for i := range Builtins {
		b := Builtins[i]
		_ = env.Let(b.Name, &Builtin{Name: b.Name, Doc: b.Doc, Fn: b.fn})
	}
}

// evalArgs evaluates each argument node in env, in order, stopping at the
// first error.
func evalArgs(env *Env, args []ast.Node) ([]Value, error) {
	vals := make([]Value, 0, len(args))
	for _, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func asString(name string, index int, v Value) (String, error) {
	s, ok := v.(String)
	if !ok {
		return "", argTypeError(name, index, KindString, v.Kind())
	}
	return s, nil
}

func asVector(name string, index int, v Value) (Vector, error) {
	vec, ok := v.(Vector)
	if !ok {
		return nil, argTypeError(name, index, KindVector, v.Kind())
	}
	return vec, nil
}

func asLambda(name string, index int, v Value) (*Lambda, error) {
	lam, ok := v.(*Lambda)
	if !ok {
		return nil, fmt.Errorf("%s: argument %d: expected lambda, got %s", name, index, v.Kind())
	}
	return lam, nil
}

func biLet(env *Env, args []ast.Node) (Value, error) {
	if len(args) != 2 {
		return nil, argCountError("let", "2", len(args))
	}
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	name, err := asString("let", 1, vals[0])
	if err != nil {
		return nil, err
	}
	if err := env.Let(string(name), vals[1]); err != nil {
		return nil, fmt.Errorf("let: %w", err)
	}
	return String(""), nil
}

func biSet(env *Env, args []ast.Node) (Value, error) {
	if len(args) != 2 {
		return nil, argCountError("set", "2", len(args))
	}
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	name, err := asString("set", 1, vals[0])
	if err != nil {
		return nil, err
	}
	if err := env.Set(string(name), vals[1]); err != nil {
		return nil, fmt.Errorf("set: %w", err)
	}
	return String(""), nil
}

func biGet(env *Env, args []ast.Node) (Value, error) {
	if len(args) != 1 {
		return nil, argCountError("get", "1", len(args))
	}
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	name, err := asString("get", 1, vals[0])
	if err != nil {
		return nil, err
	}
	v, err := env.Get(string(name))
	if err != nil {
		return nil, err
	}
	return v, nil
}

func biString(env *Env, args []ast.Node) (Value, error) {
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	s, err := StringifyAndJoin(vals)
	if err != nil {
		return nil, fmt.Errorf("string: %w", err)
	}
	return String(s), nil
}

func biVector(env *Env, args []ast.Node) (Value, error) {
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	return Vector(vals), nil
}

func biLambda(env *Env, args []ast.Node) (Value, error) {
	if len(args) < 1 {
		return nil, argCountError("lambda", "at least 1", len(args))
	}
	formals, ok := args[0].(*ast.VectorNode)
	if !ok {
		return nil, fmt.Errorf("lambda: argument 1: parameter list must be a bracketed vector")
	}

	params := make([]string, 0, len(formals.Elements))
	variadic := false
	seen := make(map[string]bool, len(formals.Elements))
	for i, elem := range formals.Elements {
		sn, ok := elem.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("lambda: parameter %d is not a string", i+1)
		}
		name := sn.Value
		isLast := i == len(formals.Elements)-1
		if strings.HasSuffix(name, "...") {
			if !isLast {
				return nil, fmt.Errorf("lambda: variadic marker `...` may only appear on the last parameter")
			}
			name = strings.TrimSuffix(name, "...")
			variadic = true
		}
		if seen[name] {
			return nil, fmt.Errorf("lambda: duplicate parameter %q", name)
		}
		seen[name] = true
		params = append(params, name)
	}

	return &Lambda{
		Params:   params,
		Variadic: variadic,
		Body:     args[1:],
		Env:      env,
	}, nil
}

func biPrint(env *Env, args []ast.Node) (Value, error) {
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		s, err := ToString(v)
		if err != nil {
			return nil, fmt.Errorf("print: %w", err)
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	fmt.Fprintln(env.Runtime.Stdout, strings.Join(parts, " "))
	return String(""), nil
}

func biCat(env *Env, args []ast.Node) (Value, error) {
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return String(""), nil
	}
	switch vals[0].(type) {
	case String:
		var b strings.Builder
		for i, v := range vals {
			s, ok := v.(String)
			if !ok {
				return nil, argTypeError("cat", i+1, KindString, v.Kind())
			}
			b.WriteString(string(s))
		}
		return String(b.String()), nil
	case Vector:
		var out Vector
		for i, v := range vals {
			vec, ok := v.(Vector)
			if !ok {
				return nil, argTypeError("cat", i+1, KindVector, v.Kind())
			}
			out = append(out, vec...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cat: argument 1: expected string or vector, got %s", vals[0].Kind())
	}
}

func biJoin(env *Env, args []ast.Node) (Value, error) {
	if len(args) != 2 {
		return nil, argCountError("join", "2", len(args))
	}
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	sep, err := asString("join", 1, vals[0])
	if err != nil {
		return nil, err
	}
	vec, err := asVector("join", 2, vals[1])
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(vec))
	for _, v := range vec {
		s, err := ToString(v)
		if err != nil {
			return nil, fmt.Errorf("join: %w", err)
		}
		parts = append(parts, s)
	}
	return String(strings.Join(parts, string(sep))), nil
}

func biMap(env *Env, args []ast.Node) (Value, error) {
	if len(args) != 2 {
		return nil, argCountError("map", "2", len(args))
	}
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	lam, err := asLambda("map", 1, vals[0])
	if err != nil {
		return nil, err
	}
	vec, err := asVector("map", 2, vals[1])
	if err != nil {
		return nil, err
	}
	out := make(Vector, 0, len(vec))
	for _, elem := range vec {
		v, err := callLambda(lam, []Value{elem})
		if err != nil {
			return nil, fmt.Errorf("map: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func biRun(env *Env, args []ast.Node) (Value, error) {
	if len(args) != 1 {
		return nil, argCountError("run", "1", len(args))
	}
	vals, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	relPath, err := asString("run", 1, vals[0])
	if err != nil {
		return nil, err
	}

	fileVal, err := env.Get("file")
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	currentFile, ok := fileVal.(String)
	if !ok {
		return nil, fmt.Errorf("run: `file` is bound to a %s, expected string", fileVal.Kind())
	}

	target := string(relPath)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(string(currentFile)), target)
	}
	target = canonicalPath(target)

	data, err := env.Runtime.Loader.Load(target)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	restore := env.overrideBinding("file", String(target))
	defer restore()

	if err := EvalSource(target, string(data), env); err != nil {
		return nil, err
	}
	return String(""), nil
}

// canonicalPath resolves path to an absolute, symlink-free form when
// possible, falling back to the absolute path if symlink resolution
// fails.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}
