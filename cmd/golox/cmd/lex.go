package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golox/internal/diag"
	"golox/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a golox source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fail("could not read file %q: %v", args[0], err)
	}

	diags := &diag.Bag{}
	tokens := lexer.New(string(content), diags).ScanTokens()

	for _, t := range tokens {
		fmt.Println(t.String())
	}
	for _, d := range diags.Items() {
		fmt.Fprintln(os.Stderr, d.String())
	}
	if diags.HasErrors() {
		exitCode = 65
	}
	return nil
}
