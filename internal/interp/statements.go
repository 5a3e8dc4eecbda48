/*
File   : golox/internal/interp/statements.go

Statement execution, matching spec.md §4.4's per-statement semantics.
*/
package interp

import (
	"fmt"

	"golox/internal/ast"
	"golox/internal/env"
	"golox/internal/value"
)

// exec runs a single statement and reports how control left it: normally,
// via `break`, or via `return`.
func (in *Interpreter) exec(stmt ast.Stmt) (control, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evalExpr(s.Expr)
		return none, err

	case *ast.PrintStmt:
		v, err := in.evalExpr(s.Expr)
		if err != nil {
			return none, err
		}
		fmt.Fprintln(in.Writer, v.String())
		return none, nil

	case *ast.VarStmt:
		v := value.Value(value.Nil{})
		if s.Initializer != nil {
			var err error
			v, err = in.evalExpr(s.Initializer)
			if err != nil {
				return none, err
			}
		}
		in.current.Define(s.Name.Lexeme, v)
		return none, nil

	case *ast.BlockStmt:
		return in.execBlock(s.Statements, env.NewChild(in.current))

	case *ast.IfStmt:
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return none, err
		}
		if value.IsTruthy(cond) {
			return in.exec(s.Then)
		}
		return in.exec(s.Else)

	case *ast.WhileStmt:
		return in.execWhile(s)

	case *ast.FunctionStmt:
		fn := &Function{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Closure: in.current}
		in.current.Define(s.Name.Lexeme, fn)
		return none, nil

	case *ast.ReturnStmt:
		v := value.Value(value.Nil{})
		if s.Value != nil {
			var err error
			v, err = in.evalExpr(s.Value)
			if err != nil {
				return none, err
			}
		}
		return control{kind: ctrlReturn, value: v, line: s.Keyword.Line}, nil

	case *ast.BreakStmt:
		return control{kind: ctrlBreak, line: s.Keyword.Line}, nil

	default:
		return none, runtimeErrorf(0, "unhandled statement type %T", stmt)
	}
}

// execBlock runs statements against a fresh child environment, restoring
// the interpreter's current environment on exit regardless of how control
// left the block (spec.md §4.4: "the child environment is dropped on
// exit").
func (in *Interpreter) execBlock(stmts []ast.Stmt, blockEnv *env.Environment) (control, error) {
	previous := in.current
	in.current = blockEnv
	defer func() { in.current = previous }()

	for _, stmt := range stmts {
		ctrl, err := in.exec(stmt)
		if err != nil || ctrl.kind != ctrlNone {
			return ctrl, err
		}
	}
	return none, nil
}

// execWhile repeats Body while Condition is truthy. A Break signal from
// the body exits the loop and is swallowed here; a Return signal
// propagates to the caller unchanged.
func (in *Interpreter) execWhile(s *ast.WhileStmt) (control, error) {
	for {
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return none, err
		}
		if !value.IsTruthy(cond) {
			return none, nil
		}
		ctrl, err := in.exec(s.Body)
		if err != nil {
			return none, err
		}
		switch ctrl.kind {
		case ctrlBreak:
			return none, nil
		case ctrlReturn:
			return ctrl, nil
		}
	}
}
