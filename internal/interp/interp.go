/*
File   : golox/internal/interp/interp.go

Package interp implements spec.md §4.4's tree-walking evaluator: recursive
AST interpretation over the lexically scoped Environment chain (internal
/env), producing value.Value results and threading the control-flow
signal set {Normal, Break, Return(Value)} through statement execution.

Dispatch is a plain type switch over ast.Expr/ast.Stmt rather than a
call through the Visitor/Accept pair ast also defines; that pair is kept
in package ast only for the print-visitor used by the `golox parse`
debug subcommand.
*/
package interp

import (
	"fmt"
	"io"
	"os"

	"golox/internal/ast"
	"golox/internal/env"
	"golox/internal/value"
)

// RuntimeError is spec.md §7's runtime error taxonomy surfaced as a Go
// error: TypeError, UndefinedVariable, ArityError, NotCallable,
// UncaughtBreak/UncaughtReturn all arrive here, tagged with the source
// line that raised them.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] runtime error: %s", e.Line, e.Message)
}

func runtimeErrorf(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// controlKind names which of spec.md §4.4's three statement outcomes a
// statement produced.
type controlKind int

const (
	ctrlNone controlKind = iota
	ctrlBreak
	ctrlReturn
)

// control is the "Normal | Break | Return(Value)" sum spec.md §9
// describes, threaded as an ordinary return value through every
// statement-executing method rather than via panic/recover.
type control struct {
	kind  controlKind
	value value.Value // populated only when kind == ctrlReturn
	line  int         // source line of the break/return keyword, for uncaught-signal errors
}

var none = control{kind: ctrlNone}

// Interpreter holds the single mutable piece of state a Lox program
// shares across its whole run: the current environment frame. Writer is
// where `print` sends its output — injectable so tests can capture it in
// a bytes.Buffer.
type Interpreter struct {
	globals *env.Environment
	current *env.Environment
	Writer  io.Writer
}

// New creates an Interpreter with a fresh global environment and output
// directed at os.Stdout.
func New() *Interpreter {
	g := env.NewGlobal()
	return &Interpreter{globals: g, current: g, Writer: os.Stdout}
}

// SetWriter redirects `print` output.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// Interpret runs stmts in order against the interpreter's environment.
// In REPL mode a bare expression-statement's result is printed (spec.md
// §4.4); in file mode it is not. It returns the first RuntimeError
// encountered, if any — per spec.md §7, a runtime error aborts the
// current top-level statement (here: the whole Interpret call, since
// run_source feeds it one REPL line or one whole program at a time).
func (in *Interpreter) Interpret(stmts []ast.Stmt, isREPL bool) error {
	for _, stmt := range stmts {
		if isREPL {
			if es, ok := stmt.(*ast.ExpressionStmt); ok {
				v, err := in.evalExpr(es.Expr)
				if err != nil {
					return err
				}
				fmt.Fprintln(in.Writer, v.String())
				continue
			}
		}
		ctrl, err := in.exec(stmt)
		if err != nil {
			return err
		}
		switch ctrl.kind {
		case ctrlBreak:
			return runtimeErrorf(ctrl.line, "uncaught break outside loop")
		case ctrlReturn:
			return runtimeErrorf(ctrl.line, "uncaught return outside function")
		}
	}
	return nil
}
