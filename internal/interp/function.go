/*
File   : golox/internal/interp/function.go

Function is the runtime representation of a user-defined function: its
parameter list, body, and the environment captured at definition (its
closure). It lives in package interp — not package value — because
Function needs ast.Stmt and env.Environment, and neither of those
packages needs to know Function exists. value.Value is an interface, so
Function satisfies it structurally without anyone importing interp back.
*/
package interp

import (
	"fmt"

	"golox/internal/ast"
	"golox/internal/env"
	"golox/internal/token"
)

// Function is a closure: a user-defined function value paired with the
// environment chain active at its definition (spec.md §3/§9).
type Function struct {
	Name    string
	Params  []token.Token
	Body    []ast.Stmt
	Closure *env.Environment
}

// Type implements value.Value.
func (*Function) Type() string { return "function" }

// String implements value.Value with an opaque-tag convention,
// which spec.md §6 explicitly allows ("<fn name>").
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity is the number of formal parameters this function declares.
func (f *Function) Arity() int {
	return len(f.Params)
}
