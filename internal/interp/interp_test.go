package interp

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/diag"
	"golox/internal/lexer"
	"golox/internal/parser"
)

// run lexes, parses, and interprets src against a fresh Interpreter,
// returning everything it printed. It fails the test on any lex/parse
// diagnostic or runtime error, since every scenario table entry here is
// expected to succeed.
func run(t *testing.T, src string) string {
	t.Helper()
	diags := &diag.Bag{}
	tokens := lexer.New(src, diags).ScanTokens()
	stmts := parser.New(tokens, diags).Parse()
	require.False(t, diags.HasErrors(), "unexpected lex/parse diagnostics: %v", diags.Items())

	var buf bytes.Buffer
	in := New()
	in.SetWriter(&buf)
	err := in.Interpret(stmts, false)
	require.NoError(t, err)
	return buf.String()
}

// runErr is like run but expects a RuntimeError and returns it.
func runErr(t *testing.T, src string) *RuntimeError {
	t.Helper()
	diags := &diag.Bag{}
	tokens := lexer.New(src, diags).ScanTokens()
	stmts := parser.New(tokens, diags).Parse()
	require.False(t, diags.HasErrors())

	var buf bytes.Buffer
	in := New()
	in.SetWriter(&buf)
	err := in.Interpret(stmts, false)
	require.Error(t, err)
	re, ok := err.(*RuntimeError)
	require.True(t, ok)
	return re
}

// Scenario table S1-S8 from spec.md's TESTABLE PROPERTIES section.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"S1_operatorPrecedence", `print 1 + 2 * 3;`, "7\n"},
		{"S2_stringConcatenation", `print "foo" + "bar";`, "foobar\n"},
		{"S3_variableArithmetic", `var a = 1; var b = 2; print a + b;`, "3\n"},
		{"S4_whileLoop", `var i = 0; while (i < 3) { print i; i = i + 1; }`, "0\n1\n2\n"},
		{"S5_functionCall", `fun add(a,b){ return a+b; } print add(40,2);`, "42\n"},
		{"S6_closureCapturesByReference", `fun mk(){ var n=0; fun inc(){ n = n+1; return n; } return inc; } var c = mk(); print c(); print c();`, "1\n2\n"},
		{"S7_forLoop", `for (var i=0;i<3;i=i+1) print i;`, "0\n1\n2\n"},
		{"S8_nilEquality", `print nil == nil; print nil == false;`, "true\nfalse\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := run(t, c.src)
			assert.Equal(t, c.want, got)
			snaps.MatchSnapshot(t, c.name, got)
		})
	}
}

func TestInvariant_VariableShadowing(t *testing.T) {
	got := run(t, `var x = 1; { var x = 2; print x; } print x;`)
	assert.Equal(t, "2\n1\n", got)
}

func TestInvariant_AssignmentPropagatesOutward(t *testing.T) {
	got := run(t, `var x = 1; { x = 2; } print x;`)
	assert.Equal(t, "2\n", got)
}

func TestInvariant_ShortCircuitOr_DoesNotEvaluateRightOperand(t *testing.T) {
	got := run(t, `fun sideEffect(){ print "evaluated"; return true; } print true or sideEffect();`)
	assert.Equal(t, "true\n", got)
}

func TestInvariant_ShortCircuitAnd_DoesNotEvaluateRightOperand(t *testing.T) {
	got := run(t, `fun sideEffect(){ print "evaluated"; return true; } print false and sideEffect();`)
	assert.Equal(t, "false\n", got)
}

func TestInvariant_BreakExitsOnlyInnermostLoop(t *testing.T) {
	got := run(t, `
		for (var i = 0; i < 2; i = i + 1) {
			for (var j = 0; j < 5; j = j + 1) {
				if (j == 1) { break; }
				print j;
			}
		}
		print "done";
	`)
	assert.Equal(t, "0\n0\ndone\n", got)
}

func TestInvariant_ReturnFromNestedBlockReturnsFromFunction(t *testing.T) {
	got := run(t, `
		fun f() {
			{
				{
					return 7;
				}
			}
			print "unreachable";
		}
		print f();
	`)
	assert.Equal(t, "7\n", got)
}

func TestNegative_PlusBetweenNumberAndStringIsTypeError(t *testing.T) {
	re := runErr(t, `print 1 + "x";`)
	assert.Contains(t, re.Message, "must both be numbers or both be strings")
}

func TestNegative_UndefinedVariableRead(t *testing.T) {
	re := runErr(t, `print undeclared;`)
	assert.Contains(t, re.Message, "undefined variable")
}

func TestNegative_CallingNonFunctionIsNotCallable(t *testing.T) {
	re := runErr(t, `var x = 1; x();`)
	assert.Contains(t, re.Message, "not callable")
}

func TestNegative_ArityMismatch(t *testing.T) {
	re := runErr(t, `fun f(a,b){ return a+b; } f(1);`)
	assert.Contains(t, re.Message, "expected 2 argument")
}

func TestNegative_UncaughtReturnAtTopLevel(t *testing.T) {
	re := runErr(t, `return 1;`)
	assert.Contains(t, re.Message, "uncaught return")
}

func TestNegative_UncaughtBreakOutsideLoop(t *testing.T) {
	re := runErr(t, `break;`)
	assert.Contains(t, re.Message, "uncaught break")
}
