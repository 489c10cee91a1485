package lang

import (
	"fmt"

	"github.com/ashn-dot-dev/tart/parser"
)

// EvalSource parses src (attributed to path) and evaluates every top-level
// expression against env in order, discarding the individual results. It
// backs `run`, where bindings introduced by the included document persist
// into the caller's environment.
func EvalSource(path, src string, env *Env) error {
	p, err := parser.New(path, src)
	if err != nil {
		return err
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return err
	}
	for _, expr := range prog.Exprs {
		if _, err := Eval(expr, env); err != nil {
			return err
		}
	}
	return nil
}

// Run loads path via rt's SourceLoader, parses it, evaluates it in a fresh
// root environment, and writes the resulting document to rt.Stdout
// followed by a newline if it is non-empty. Run is the entry point used by
// the command-line driver.
func Run(path string, rt *Runtime) error {
	data, err := rt.Loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	abs := canonicalPath(path)
	env := NewRootEnv(rt)
	InstallBuiltins(env)
	_ = env.Let("file", String(abs))

	p, err := parser.New(abs, string(data))
	if err != nil {
		return err
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return err
	}

	out, err := EvalProgram(prog, env)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintln(rt.Stdout, out)
	}
	return nil
}
