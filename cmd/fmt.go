package cmd

import (
	"fmt"
	"os"

	"github.com/ashn-dot-dev/tart/diagnostic"
	"github.com/ashn-dot-dev/tart/formatter"
	"github.com/ashn-dot-dev/tart/parser"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a tart document in canonical layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		p, err := parser.New(path, string(data))
		if err != nil {
			return renderAndSilence(err)
		}
		prog, err := p.ParseProgram()
		if err != nil {
			return renderAndSilence(err)
		}
		out := formatter.Print(prog)
		if fmtWrite {
			return os.WriteFile(path, []byte(out), 0o644)
		}
		fmt.Print(out)
		return nil
	},
}

// renderAndSilence renders err through the diagnostic renderer and returns
// errSilent so Execute doesn't print it a second time.
func renderAndSilence(err error) error {
	mode, cerr := diagnostic.ParseColorMode(colorFlag)
	if cerr != nil {
		return cerr
	}
	r := &diagnostic.Renderer{Color: mode}
	_ = r.Render(os.Stderr, err)
	return errSilent
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write the result back to the file instead of stdout")
	rootCmd.AddCommand(fmtCmd)
}
