package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/ashn-dot-dev/tart/lang"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const docWrapWidth = 76

var docCmd = &cobra.Command{
	Use:   "doc [builtin]",
	Short: "Show documentation for tart's builtin procedures",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return printBuiltinDoc(args[0])
		}
		return printBuiltinIndex()
	},
}

func printBuiltinDoc(name string) error {
	for _, b := range lang.Builtins {
		if b.Name == name {
			fmt.Fprintf(os.Stdout, "%s\n\n%s\n", b.Name, wordwrap.String(b.Doc, docWrapWidth))
			return nil
		}
	}
	return fmt.Errorf("doc: no such builtin %q", name)
}

func printBuiltinIndex() error {
	names := make([]string, 0, len(lang.Builtins))
	byName := make(map[string]string, len(lang.Builtins))
	for _, b := range lang.Builtins {
		names = append(names, b.Name)
		byName[b.Name] = b.Doc
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stdout, "%-8s %s\n", name, wordwrap.String(byName[name], docWrapWidth))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(docCmd)
}
