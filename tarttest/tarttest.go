// Package tarttest provides small helpers for exercising tart source
// against a fresh interpreter environment in tests.
package tarttest

import (
	"bytes"
	"testing"

	"github.com/ashn-dot-dev/tart/lang"
	"github.com/ashn-dot-dev/tart/parser"
)

// Runner evaluates tart source against a fresh environment per call and
// captures anything written via `print`.
type Runner struct {
	// Loader overrides the source loader used by `run`. When nil,
	// lang.FileLoader is used.
	Loader lang.SourceLoader
}

// Result is the outcome of evaluating a program: its stringified overall
// result plus whatever was written to stdout by `print`.
type Result struct {
	Value  string
	Stdout string
}

// NewEnv builds a fresh root environment with the standard builtins
// installed and `file` bound to path, capturing stdout into a buffer
// returned alongside the environment.
func (r *Runner) NewEnv(path string) (*lang.Env, *bytes.Buffer) {
	rt := lang.NewRuntime()
	var out bytes.Buffer
	rt.Stdout = &out
	if r.Loader != nil {
		rt.Loader = r.Loader
	}
	env := lang.NewRootEnv(rt)
	lang.InstallBuiltins(env)
	_ = env.Let("file", lang.String(path))
	return env, &out
}

// Eval parses and evaluates src as a complete program in a fresh
// environment, returning its result and any captured stdout.
func (r *Runner) Eval(t testing.TB, path, src string) (Result, error) {
	t.Helper()
	env, out := r.NewEnv(path)
	p, err := parser.New(path, src)
	if err != nil {
		return Result{}, err
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return Result{}, err
	}
	value, err := lang.EvalProgram(prog, env)
	if err != nil {
		return Result{Stdout: out.String()}, err
	}
	return Result{Value: value, Stdout: out.String()}, nil
}

// MustEval is like Eval but fails the test immediately on error.
func (r *Runner) MustEval(t testing.TB, path, src string) Result {
	t.Helper()
	res, err := r.Eval(t, path, src)
	if err != nil {
		t.Fatalf("tarttest: eval %s: %v", path, err)
	}
	return res
}

// MapLoader is a lang.SourceLoader backed by an in-memory map, letting
// tests exercise `run` without touching the filesystem.
type MapLoader map[string]string

// Load implements lang.SourceLoader.
func (m MapLoader) Load(path string) ([]byte, error) {
	src, ok := m[path]
	if !ok {
		return nil, &missingFileError{path: path}
	}
	return []byte(src), nil
}

type missingFileError struct{ path string }

func (e *missingFileError) Error() string {
	return "tarttest: no source registered for " + e.path
}
