/*
File   : golox/internal/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop spec.md §1
calls out as an external collaborator of the core (run_source, is_repl =
true). readline drives line editing/history, fatih/color renders the
banner and diagnostic coloring, and one
persistent lox.Runner per session so declarations survive across lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"golox/internal/lox"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = `           _
  __ _ ___| |_____ __
 / _` + "`" + ` / _ \ / _ \ \ /
 \__, \___/_\___/_\_\
 |___/
`
	line    = "----------------------------------------------------------------"
	version = "v0.1.0"
	prompt  = "golox >>> "
)

// Repl is one interactive session's configuration. Its zero value is not
// usable; construct with New.
type Repl struct {
	Prompt string
}

// New creates a Repl with the default prompt.
func New() *Repl {
	return &Repl{Prompt: prompt}
}

// printBanner writes the startup banner.
func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "golox %s\n", version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' or press Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop against stdin/stdout until the user exits.
func (r *Repl) Start(w io.Writer) error {
	printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	runner := lox.New(w)

	for {
		input, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Goodbye!\n")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			io.WriteString(w, "Goodbye!\n")
			return nil
		}
		rl.SaveHistory(input)

		diags, runErr := runner.RunSource(input, true)
		for _, d := range diags {
			redColor.Fprintln(w, d.String())
		}
		if runErr != nil {
			redColor.Fprintln(w, runErr)
		}
	}
}
