/*
File   : golox/cmd/golox/cmd/root.go

Package cmd implements the golox CLI contract (spec.md §6 / SPEC_FULL.md
§7) via cobra: a root command that dispatches on positional-argument
count, plus `lex`/`parse` debug subcommands.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"golox/internal/lox"
	"golox/internal/repl"
)

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "golox is a tree-walking interpreter for Lox",
	Long: `golox is a tree-walking interpreter for a small dynamically-typed
scripting language: variables with lexical scoping, first-class functions
with closures, and the control-flow/primitive-type set of Lox.

Run with no arguments to start an interactive REPL, or pass a single
script path to execute it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return repl.New().Start(os.Stdout)
	}
	exitCode = lox.RunFile(args[0])
	return nil
}

// Execute runs the root command and returns the process exit code golox
// should terminate with.
func Execute() int {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "golox:", err)
		return lox.ExitUsage
	}
	return exitCode
}

func fail(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
