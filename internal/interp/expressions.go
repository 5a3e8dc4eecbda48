/*
File   : golox/internal/interp/expressions.go

Expression evaluation, matching spec.md §4.4's per-expression semantics.
*/
package interp

import (
	"golox/internal/ast"
	"golox/internal/token"
	"golox/internal/value"
)

// evalExpr evaluates expr and returns its value.Value, or the first
// RuntimeError encountered.
func (in *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return in.evalExpr(e.Inner)

	case *ast.VariableExpr:
		if v, ok := in.current.Get(e.Name.Lexeme); ok {
			return v, nil
		}
		return nil, runtimeErrorf(e.Name.Line, "undefined variable '%s'", e.Name.Lexeme)

	case *ast.AssignExpr:
		v, err := in.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if !in.current.Assign(e.Name.Lexeme, v) {
			return nil, runtimeErrorf(e.Name.Line, "undefined variable '%s'", e.Name.Lexeme)
		}
		return v, nil

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.CallExpr:
		return in.evalCall(e)

	default:
		return nil, runtimeErrorf(0, "unhandled expression type %T", expr)
	}
}

// literalValue converts the raw host value an ast.LiteralExpr carries
// (nil, bool, float64, or string) into the interpreter's own Value type.
func literalValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		return value.Nil{}
	}
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	operand, err := in.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Bang:
		return value.Bool(!value.IsTruthy(operand)), nil
	case token.Minus:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, runtimeErrorf(e.Op.Line, "operand of unary '-' must be a number, got %s", operand.Type())
		}
		return -n, nil
	default:
		return nil, runtimeErrorf(e.Op.Line, "unknown unary operator %s", e.Op.Kind)
	}
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	truthy := value.IsTruthy(left)
	switch e.Op.Kind {
	case token.Or:
		if truthy {
			return left, nil
		}
	case token.And:
		if !truthy {
			return left, nil
		}
	}
	return in.evalExpr(e.Right)
}
