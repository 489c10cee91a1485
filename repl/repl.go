// Package repl implements an interactive read-eval-print loop that shares
// one root environment across lines.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ashn-dot-dev/tart/lang"
	"github.com/ashn-dot-dev/tart/parser"
	"github.com/ergochat/readline"
)

const prompt = "tart> "

// Run starts a REPL, reading lines from stdin and writing results and
// diagnostics to out.
func Run(out io.Writer) error {
	rt := lang.NewRuntime()
	rt.Stdout = out
	rt.Stderr = out
	env := lang.NewRootEnv(rt)
	lang.InstallBuiltins(env)
	_ = env.Let("file", lang.String("<repl>"))

	rl, err := readline.NewEx(&readline.Config{
		Stdout:      out,
		Stderr:      out,
		Prompt:      prompt,
		HistoryFile: historyPath(),
	})
	if err != nil {
		return err
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		if len(line) == 0 {
			continue
		}

		p, err := parser.New("<repl>", string(line))
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		prog, err := p.ParseProgram()
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		result, err := lang.EvalProgram(prog, env)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tart_history")
}
