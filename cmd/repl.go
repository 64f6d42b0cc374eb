// Copyright © 2026 The golox authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loxlang/golox/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive lox REPL",
	Long: `Start an interactive read-eval-print loop for lox.

Line editing and in-session command history are supported via readline.
Statements spanning multiple lines are read with a continuation prompt
until the input balances. Use Ctrl-D or Ctrl-C to exit.

Example REPL session:
  golox> 1 + 2;
  3
  golox> fun square(x) { return x * x; }
  golox> square(5);
  25
  golox> var total = 0;
  golox> for (var i = 1; i <= 10; i = i + 1) {
  ...>   total = total + i;
  ...> }
  golox> print total;
  55`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(filepath.Base(os.Args[0]) + "> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
