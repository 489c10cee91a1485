package cmd

import (
	"os"

	"github.com/ashn-dot-dev/tart/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
