package cmd

import (
	"fmt"
	"os"

	"github.com/ashn-dot-dev/tart/lint"
	"github.com/ashn-dot-dev/tart/parser"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Report static issues in a tart document without evaluating it",
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

		issues := lint.Walk(prog)
		for _, issue := range issues {
			fmt.Fprintf(os.Stdout, "[%s] %s\n", issue.Location, issue.Message)
		}
		if len(issues) > 0 {
			return errSilent
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
