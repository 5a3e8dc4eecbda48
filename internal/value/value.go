/*
File   : golox/internal/value/value.go

Package value defines the runtime object model Lox programs operate on:
Nil, Bool, Number, String, plus the internal "no value" sentinel None.
User-defined functions (*interp.Function) satisfy Value structurally but
live in internal/interp, and the Break/Return control-flow signals are
not Values at all: they are a private control struct in internal/interp.
*/
package value

import (
	"strconv"
	"strings"
)

// Value is the runtime representation of every Lox value. Only Nil, Bool,
// Number, String, and *Function are ever visible to user code.
type Value interface {
	// Type names the value's kind for diagnostics (e.g. "number", "string").
	Type() string
	// String renders the value the way `print` displays it (spec.md §6).
	String() string
}

// Nil is Lox's null value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Bool wraps a boolean value.
type Bool bool

func (Bool) Type() string     { return "bool" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number wraps an IEEE-754 double. Printing follows the convention
// documented in DESIGN.md: the shortest round-tripping decimal, with a
// trailing ".0" trimmed for integral values.
type Number float64

func (Number) Type() string { return "number" }

func (n Number) String() string {
	s := strconv.FormatFloat(float64(n), 'g', -1, 64)
	// strconv's 'g' format never appends ".0" to an integral float, but it
	// can emit exponent notation for large/small magnitudes (e.g. "1e+20");
	// spec.md leaves that implementation-defined, so it is left as-is.
	if strings.ContainsAny(s, ".eE") || s == "NaN" || s == "+Inf" || s == "-Inf" {
		return s
	}
	return s
}

// String wraps an immutable UTF-8 string value.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// None is the internal sentinel for "no value" — distinct from Nil. Nothing
// in the interpreter constructs one: Var statements bind their slot to Nil
// at declaration even with no initializer, and Environment.Get reports a
// missing name with ok == false. User code can never observe a None.
type None struct{}

func (None) Type() string   { return "none" }
func (None) String() string { return "<none>" }

// IsTruthy implements spec.md §4.4's truthiness rule: Nil and Bool(false)
// are falsy, everything else — including 0, "", and every function — is
// truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// Equal implements spec.md §4.4's equality rule: values of different kinds
// are unequal; Nil == Nil; numeric equality uses IEEE semantics (so NaN !=
// NaN); strings and bools compare structurally.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && float64(av) == float64(bv)
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return false
	}
}
