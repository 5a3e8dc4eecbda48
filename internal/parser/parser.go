/*
File   : golox/internal/parser/parser.go

Package parser implements spec.md §4.2's recursive-descent grammar: one
method per precedence level, from assignment down to primary expressions,
over a cursor-based token stream (Advance/Match/Check/Expect helpers
walking a flat token slice rather than a stack).

The parser never aborts on a syntax error: it records a diagnostic and
enters panic-mode recovery, resynchronizing at the next statement
boundary, then keeps parsing. Callers must check diags.HasErrors() before
trusting the returned statement list.
*/
package parser

import (
	"golox/internal/ast"
	"golox/internal/diag"
	"golox/internal/token"
)

const maxArgs = 8

// Parser walks a fixed token slice with a single cursor index. It holds no
// other mutable state (spec.md §9).
type Parser struct {
	tokens  []token.Token
	current int
	diags   *diag.Bag
}

// New constructs a Parser over tokens (which must end in an EOF token, as
// produced by lexer.Scanner.ScanTokens). diags receives parse diagnostics.
func New(tokens []token.Token, diags *diag.Bag) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

// Parse runs the full `program → declaration* EOF` production and returns
// the resulting statement list. The list may be partial if diagnostics
// were recorded; check diags.HasErrors() before evaluating it.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ---- declarations -----------------------------------------------------

func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()
	switch {
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// parseError is the panic payload used to unwind to declaration()'s
// recovery point; it carries no data beyond its type because the
// diagnostic has already been recorded at the point of failure.
type parseError struct{}

func (p *Parser) fail(line int, format string, args ...interface{}) {
	p.diags.Addf(diag.Parse, line, format, args...)
	panic(parseError{})
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.expect(token.Identifier, "expected %s name", kind)
	p.expect(token.LeftParen, "expected '(' after %s name", kind)
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.fail(p.peek().Line, "cannot have more than %d parameters", maxArgs)
			}
			params = append(params, p.expect(token.Identifier, "expected parameter name"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RightParen, "expected ')' after parameters")
	p.expect(token.LeftBrace, "expected '{' before %s body", kind)
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.expect(token.Identifier, "expected variable name")
	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.expect(token.Semicolon, "expected ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// ---- statements ---------------------------------------------------

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.Break):
		return p.breakStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.expect(token.Semicolon, "expected ';' after value")
	return &ast.PrintStmt{Expr: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.Semicolon, "expected ';' after expression")
	return &ast.ExpressionStmt{Expr: expr}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RightBrace, "expected '}' after block")
	return stmts
}

// emptyStmt represents a missing `else` arm as an empty expression
// statement, per spec.md §3 ("absence is represented by an empty
// expression-statement").
func emptyStmt() ast.Stmt {
	return &ast.ExpressionStmt{Expr: &ast.LiteralExpr{Value: nil}}
}

func (p *Parser) ifStatement() ast.Stmt {
	p.expect(token.LeftParen, "expected '(' after 'if'")
	condition := p.expression()
	p.expect(token.RightParen, "expected ')' after if condition")
	thenBranch := p.statement()
	elseBranch := emptyStmt()
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.expect(token.LeftParen, "expected '(' after 'while'")
	condition := p.expression()
	p.expect(token.RightParen, "expected ')' after while condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; update) body` into
// `{ init; while (cond) { body; update; } }`, per spec.md §3/§4.2.
func (p *Parser) forStatement() ast.Stmt {
	p.expect(token.LeftParen, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.expect(token.Semicolon, "expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.expect(token.RightParen, "expected ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment}}}
	}
	if condition == nil {
		condition = &ast.LiteralExpr{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.expect(token.Semicolon, "expected ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	p.expect(token.Semicolon, "expected ';' after 'break'")
	return &ast.BreakStmt{Keyword: keyword}
}

// ---- expressions --------------------------------------------------

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: `a = b = c` parses as `a = (b = c)`.
// The left-hand side must turn out to be a VariableExpr; anything else is
// reported (but does not abort the whole parse — see spec.md §4.2).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()
	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()
		if v, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: v.Name, Value: value}
		}
		p.diags.Addf(diag.Parse, equals.Line, "invalid assignment target")
		return expr
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.addition()
	for p.match(token.Less, token.LessEqual, token.Greater, token.GreaterEqual) {
		op := p.previous()
		right := p.addition()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) addition() ast.Expr {
	expr := p.multiplication()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.multiplication()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) multiplication() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return &ast.UnaryExpr{Op: op, Operand: operand}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.fail(p.peek().Line, "cannot have more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.expect(token.RightParen, "expected ')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{Value: false}
	case p.match(token.True):
		return &ast.LiteralExpr{Value: true}
	case p.match(token.Nil):
		return &ast.LiteralExpr{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(token.Identifier):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.expect(token.RightParen, "expected ')' after expression")
		return &ast.GroupingExpr{Inner: expr}
	default:
		p.fail(p.peek().Line, "expected expression, got %s", p.peek().Kind)
		return nil
	}
}

// ---- cursor helpers -------------------------------------------------

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) expect(k token.Kind, format string, args ...interface{}) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.fail(p.peek().Line, format, args...)
	return p.peek()
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a ';', or just before a statement-starting keyword.
// This is spec.md §4.2's panic-mode recovery.
//
// The token that triggered the error is stepped over unless it already
// starts a statement. Those keywords are consumed whenever a declaration
// begins with them, so stopping in front of one still makes progress;
// `class` has no statement rule and is stepped over like any other token.
func (p *Parser) synchronize() {
	switch p.peek().Kind {
	case token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
	default:
		p.advance()
	}
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
