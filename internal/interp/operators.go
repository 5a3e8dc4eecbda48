/*
File   : golox/internal/interp/operators.go

Binary operator semantics, matching spec.md §4.4's operator table exactly:
arithmetic and string concatenation for '+', numeric-only for '-'/'*'/'/'
(division by zero yields IEEE infinities rather than erroring), ordering
comparisons over numbers or strings, and structural equality via
value.Equal for '=='/'!='.
*/
package interp

import (
	"golox/internal/ast"
	"golox/internal/token"
	"golox/internal/value"
)

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil

	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErrorf(e.Op.Line, "operands of '+' must both be numbers or both be strings, got %s and %s", left.Type(), right.Type())

	case token.Minus:
		ln, rn, err := in.numericOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.Star:
		ln, rn, err := in.numericOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.Slash:
		ln, rn, err := in.numericOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil

	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return in.compare(e.Op, left, right)

	default:
		return nil, runtimeErrorf(e.Op.Line, "unknown binary operator %s", e.Op.Kind)
	}
}

func (in *Interpreter) numericOperands(op token.Token, left, right value.Value) (value.Number, value.Number, error) {
	ln, ok := left.(value.Number)
	if !ok {
		return 0, 0, runtimeErrorf(op.Line, "left operand of '%s' must be a number, got %s", op.Lexeme, left.Type())
	}
	rn, ok := right.(value.Number)
	if !ok {
		return 0, 0, runtimeErrorf(op.Line, "right operand of '%s' must be a number, got %s", op.Lexeme, right.Type())
	}
	return ln, rn, nil
}

// compare implements the four ordering operators over either two numbers
// or two strings (lexicographic); any other operand pairing is a
// TypeError.
func (in *Interpreter) compare(op token.Token, left, right value.Value) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return value.Bool(numericCompare(op.Kind, float64(ln), float64(rn))), nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return value.Bool(stringCompare(op.Kind, string(ls), string(rs))), nil
		}
	}
	return nil, runtimeErrorf(op.Line, "operands of '%s' must both be numbers or both be strings, got %s and %s", op.Lexeme, left.Type(), right.Type())
}

func numericCompare(op token.Kind, l, r float64) bool {
	switch op {
	case token.Greater:
		return l > r
	case token.GreaterEqual:
		return l >= r
	case token.Less:
		return l < r
	case token.LessEqual:
		return l <= r
	}
	return false
}

func stringCompare(op token.Kind, l, r string) bool {
	switch op {
	case token.Greater:
		return l > r
	case token.GreaterEqual:
		return l >= r
	case token.Less:
		return l < r
	case token.LessEqual:
		return l <= r
	}
	return false
}
