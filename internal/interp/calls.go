/*
File   : golox/internal/interp/calls.go

Function call evaluation, matching spec.md §4.4/§9's call semantics: the
callee is evaluated first, then arguments left to right, then a fresh
environment chained off the function's closure (not the caller's
environment) is populated with the bound parameters before the body runs.
*/
package interp

import (
	"golox/internal/ast"
	"golox/internal/env"
	"golox/internal/value"
)

func (in *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(*Function)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "'%s' is not callable", callee.Type())
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "expected %d argument(s) but got %d", fn.Arity(), len(args))
	}

	return in.call(fn, args)
}

// call invokes fn with already-evaluated args, binding parameters in a
// fresh frame chained off the closure captured at definition time — never
// off the caller's environment.
func (in *Interpreter) call(fn *Function, args []value.Value) (value.Value, error) {
	callEnv := env.NewChild(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	ctrl, err := in.execBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if ctrl.kind == ctrlReturn {
		return ctrl.value, nil
	}
	return value.Nil{}, nil
}
