/*
File   : golox/internal/printer/printer.go

Package printer implements ast.ExprVisitor/ast.StmtVisitor to render a
parsed program as an indented, parenthesized tree — the one place this
repo uses the Accept/Visitor dispatch ast.go defines, backing the
`golox parse` debug subcommand.
*/
package printer

import (
	"fmt"
	"strings"

	"golox/internal/ast"
)

// Printer accumulates a textual rendering of a statement list.
type Printer struct {
	buf    strings.Builder
	indent int
}

// New creates an empty Printer.
func New() *Printer {
	return &Printer{}
}

// Print renders stmts and returns the accumulated text.
func (p *Printer) Print(stmts []ast.Stmt) string {
	for _, s := range stmts {
		s.AcceptStmt(p)
	}
	return p.buf.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *Printer) exprString(e ast.Expr) string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", e.AcceptExpr(p))
}

// ---- ExprVisitor --------------------------------------------------------

func (p *Printer) VisitLiteralExpr(e *ast.LiteralExpr) interface{} {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", e.Value)
}

func (p *Printer) VisitVariableExpr(e *ast.VariableExpr) interface{} {
	return e.Name.Lexeme
}

func (p *Printer) VisitAssignExpr(e *ast.AssignExpr) interface{} {
	return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, p.exprString(e.Value))
}

func (p *Printer) VisitUnaryExpr(e *ast.UnaryExpr) interface{} {
	return fmt.Sprintf("(%s %s)", e.Op.Lexeme, p.exprString(e.Operand))
}

func (p *Printer) VisitBinaryExpr(e *ast.BinaryExpr) interface{} {
	return fmt.Sprintf("(%s %s %s)", e.Op.Lexeme, p.exprString(e.Left), p.exprString(e.Right))
}

func (p *Printer) VisitLogicalExpr(e *ast.LogicalExpr) interface{} {
	return fmt.Sprintf("(%s %s %s)", e.Op.Lexeme, p.exprString(e.Left), p.exprString(e.Right))
}

func (p *Printer) VisitGroupingExpr(e *ast.GroupingExpr) interface{} {
	return fmt.Sprintf("(group %s)", p.exprString(e.Inner))
}

func (p *Printer) VisitCallExpr(e *ast.CallExpr) interface{} {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = p.exprString(a)
	}
	return fmt.Sprintf("(call %s %s)", p.exprString(e.Callee), strings.Join(args, " "))
}

// ---- StmtVisitor --------------------------------------------------------

func (p *Printer) VisitExpressionStmt(s *ast.ExpressionStmt) {
	p.line("%s", p.exprString(s.Expr))
}

func (p *Printer) VisitPrintStmt(s *ast.PrintStmt) {
	p.line("(print %s)", p.exprString(s.Expr))
}

func (p *Printer) VisitVarStmt(s *ast.VarStmt) {
	if s.Initializer == nil {
		p.line("(var %s)", s.Name.Lexeme)
		return
	}
	p.line("(var %s %s)", s.Name.Lexeme, p.exprString(s.Initializer))
}

func (p *Printer) VisitBlockStmt(s *ast.BlockStmt) {
	p.line("(block")
	p.indent++
	for _, stmt := range s.Statements {
		stmt.AcceptStmt(p)
	}
	p.indent--
	p.line(")")
}

func (p *Printer) VisitIfStmt(s *ast.IfStmt) {
	p.line("(if %s", p.exprString(s.Condition))
	p.indent++
	s.Then.AcceptStmt(p)
	if s.Else != nil {
		s.Else.AcceptStmt(p)
	}
	p.indent--
	p.line(")")
}

func (p *Printer) VisitWhileStmt(s *ast.WhileStmt) {
	p.line("(while %s", p.exprString(s.Condition))
	p.indent++
	s.Body.AcceptStmt(p)
	p.indent--
	p.line(")")
}

func (p *Printer) VisitFunctionStmt(s *ast.FunctionStmt) {
	params := make([]string, len(s.Params))
	for i, t := range s.Params {
		params[i] = t.Lexeme
	}
	p.line("(fun %s(%s)", s.Name.Lexeme, strings.Join(params, ", "))
	p.indent++
	for _, stmt := range s.Body {
		stmt.AcceptStmt(p)
	}
	p.indent--
	p.line(")")
}

func (p *Printer) VisitReturnStmt(s *ast.ReturnStmt) {
	if s.Value == nil {
		p.line("(return)")
		return
	}
	p.line("(return %s)", p.exprString(s.Value))
}

func (p *Printer) VisitBreakStmt(s *ast.BreakStmt) {
	p.line("(break)")
}
