// Package cmd implements the tart command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/ashn-dot-dev/tart/diagnostic"
	"github.com/ashn-dot-dev/tart/lang"
	"github.com/spf13/cobra"
)

var colorFlag string

// rootCmd is both the base command and the default "run a file" command,
// taking one required positional argument. Besides the conventional
// --help, it has a persistent --color flag for diagnostic output.
var rootCmd = &cobra.Command{
	Use:   "tart <file>",
	Short: "Tart — a procedural markup language interpreter",
	Long: `Tart evaluates a document of interleaved plain text and bracketed
procedure calls, [proc arg arg ...], concatenating the results with
whitespace-aware separation to produce the final output.

  tart doc.tart          Evaluate doc.tart and print its output
  tart fmt doc.tart       Reformat a document in canonical layout
  tart lint doc.tart      Report static issues without evaluating
  tart repl               Start an interactive read-eval-print loop
  tart doc                List builtin procedures and their descriptions`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func runFile(path string) error {
	rt := lang.NewRuntime()
	if err := lang.Run(path, rt); err != nil {
		mode, cerr := diagnostic.ParseColorMode(colorFlag)
		if cerr != nil {
			return cerr
		}
		r := &diagnostic.Renderer{Color: mode}
		_ = r.Render(os.Stderr, err)
		return errSilent
	}
	return nil
}

// errSilent signals that a diagnostic has already been rendered to stderr
// and Execute should merely exit non-zero without printing err again.
var errSilent = fmt.Errorf("")

// Execute runs the root command. It is called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if err != errSilent {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored diagnostic output: "auto", "always", or "never".`)
}
