package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golox/internal/diag"
	"golox/internal/lexer"
	"golox/internal/parser"
	"golox/internal/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a golox source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fail("could not read file %q: %v", args[0], err)
	}

	diags := &diag.Bag{}
	tokens := lexer.New(string(content), diags).ScanTokens()
	stmts := parser.New(tokens, diags).Parse()

	if diags.HasErrors() {
		for _, d := range diags.Items() {
			fmt.Fprintln(os.Stderr, d.String())
		}
		exitCode = 65
		return nil
	}

	fmt.Print(printer.New().Print(stmts))
	return nil
}
