/*
File   : golox/internal/lox/lox.go

Package lox wires the three core passes (internal/lexer, internal/parser,
internal/interp) into the two entry points spec.md §1/§6 names as the
core's external contract: run_source(text, is_repl) and a diagnostic
sink. The REPL driver and CLI argument parsing live outside this
package. RunFile is the one place here that does I/O: it reads a script,
prints diagnostics and runtime errors to stderr, and maps the result to
a process exit code.
*/
package lox

import (
	"fmt"
	"io"
	"os"

	"golox/internal/diag"
	"golox/internal/interp"
	"golox/internal/lexer"
	"golox/internal/parser"
)

// Exit codes follow the conventional sysexits-derived contract SPEC_FULL.md
// §7 assigns: 0 success, 64 usage error, 65 static (lex/parse) error, 70
// runtime error.
const (
	ExitUsage   = 64
	ExitDataErr = 65
	ExitFailure = 70
)

// Runner holds the single Interpreter instance a REPL session or file run
// shares, so that top-level variable and function declarations persist
// across successive run_source calls within the same process.
type Runner struct {
	interp *interp.Interpreter
}

// New creates a Runner with output directed at w.
func New(w io.Writer) *Runner {
	in := interp.New()
	in.SetWriter(w)
	return &Runner{interp: in}
}

// RunSource is spec.md §1's run_source(text, is_repl) entry point: lex,
// parse, and (if no diagnostics occurred) evaluate text against the
// Runner's persistent environment. It returns the accumulated lex/parse
// diagnostics (possibly empty) and the first runtime error, if any —
// exactly the "two entry points" boundary spec.md draws between the core
// and its external collaborators.
func (r *Runner) RunSource(text string, isREPL bool) ([]diag.Diagnostic, error) {
	diags := &diag.Bag{}

	lx := lexer.New(text, diags)
	tokens := lx.ScanTokens()

	ps := parser.New(tokens, diags)
	stmts := ps.Parse()

	if diags.HasErrors() {
		return diags.Items(), nil
	}

	return nil, r.interp.Interpret(stmts, isREPL)
}

// RunFile reads path and runs it as a whole program (not REPL mode),
// returning the process exit code spec.md §6's CLI contract specifies.
func RunFile(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: could not read file %q: %v\n", path, err)
		return ExitFailure
	}

	r := New(os.Stdout)
	diags, runErr := r.RunSource(string(content), false)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d.String())
		}
		return ExitDataErr
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		return ExitFailure
	}
	return 0
}
