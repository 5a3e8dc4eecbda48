package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/ast"
	"golox/internal/diag"
	"golox/internal/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diag.Bag) {
	t.Helper()
	diags := &diag.Bag{}
	tokens := lexer.New(src, diags).ScanTokens()
	stmts := New(tokens, diags).Parse()
	return stmts, diags
}

func TestParse_VarDeclarationWithInitializer(t *testing.T) {
	stmts, diags := parse(t, `var x = 1 + 2;`)
	require.False(t, diags.HasErrors())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	require.NotNil(t, v.Initializer)
	bin, ok := v.Initializer.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, float64(1), bin.Left.(*ast.LiteralExpr).Value)
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts, diags := parse(t, `var x;`)
	require.False(t, diags.HasErrors())
	v := stmts[0].(*ast.VarStmt)
	assert.Nil(t, v.Initializer)
}

func TestParse_IfWithoutElseGetsEmptyElseBranch(t *testing.T) {
	stmts, diags := parse(t, `if (true) print 1;`)
	require.False(t, diags.HasErrors())
	ifStmt := stmts[0].(*ast.IfStmt)
	require.NotNil(t, ifStmt.Else)
	es, ok := ifStmt.Else.(*ast.ExpressionStmt)
	require.True(t, ok)
	assert.Nil(t, es.Expr.(*ast.LiteralExpr).Value)
}

func TestParse_WhileLoop(t *testing.T) {
	stmts, diags := parse(t, `while (x < 10) { x = x + 1; }`)
	require.False(t, diags.HasErrors())
	w := stmts[0].(*ast.WhileStmt)
	_, ok := w.Condition.(*ast.BinaryExpr)
	assert.True(t, ok)
	block, ok := w.Body.(*ast.BlockStmt)
	require.True(t, ok)
	assert.Len(t, block.Statements, 1)
}

func TestParse_ForLoopDesugarsToWhileInBlock(t *testing.T) {
	stmts, diags := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, diags.HasErrors())
	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)
	_, ok = outer.Statements[0].(*ast.VarStmt)
	assert.True(t, ok)
	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	assert.Len(t, body.Statements, 2) // print i; then the increment
}

func TestParse_ForLoopWithOmittedConditionDefaultsToTrue(t *testing.T) {
	stmts, diags := parse(t, `for (;;) break;`)
	require.False(t, diags.HasErrors())
	outer := stmts[0].(*ast.WhileStmt)
	lit, ok := outer.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, diags := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, diags.HasErrors())
	fn := stmts[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
	_, ok := fn.Body[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts, diags := parse(t, `a = b = 3;`)
	require.False(t, diags.HasErrors())
	es := stmts[0].(*ast.ExpressionStmt)
	outer := es.Expr.(*ast.AssignExpr)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetRecordsDiagnosticButDoesNotAbort(t *testing.T) {
	stmts, diags := parse(t, `1 = 2;`)
	assert.True(t, diags.HasErrors())
	assert.Len(t, stmts, 1)
}

func TestParse_CallExpression(t *testing.T) {
	stmts, diags := parse(t, `add(1, 2);`)
	require.False(t, diags.HasErrors())
	es := stmts[0].(*ast.ExpressionStmt)
	call, ok := es.Expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParse_TooManyArgumentsIsAnError(t *testing.T) {
	args := "1"
	for i := 0; i < maxArgs; i++ {
		args += ", 1"
	}
	_, diags := parse(t, `add(`+args+`);`)
	assert.True(t, diags.HasErrors())
}

func TestParse_MissingSemicolonRecoversAtNextStatement(t *testing.T) {
	stmts, diags := parse(t, "var x = 1\nvar y = 2;")
	assert.True(t, diags.HasErrors())
	require.Len(t, stmts, 1)
	v := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "y", v.Name.Lexeme)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	stmts, diags := parse(t, `1 + 2 * 3;`)
	require.False(t, diags.HasErrors())
	es := stmts[0].(*ast.ExpressionStmt)
	top := es.Expr.(*ast.BinaryExpr)
	assert.Equal(t, "+", top.Op.Lexeme)
	_, ok := top.Left.(*ast.LiteralExpr)
	assert.True(t, ok)
	_, ok = top.Right.(*ast.BinaryExpr)
	assert.True(t, ok)
}
