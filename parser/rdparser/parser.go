// Copyright © 2026 The golox authors

// Package rdparser implements the recursive descent parser for Lox.  The
// grammar climbs from assignment at the lowest precedence through logical
// or/and, equality, comparison, term, factor, unary and call up to primary
// expressions.  Statement parse errors do not abort the parse; the parser
// synchronizes at the next statement boundary and keeps collecting errors.
package rdparser

import (
	"fmt"

	"github.com/loxlang/golox/parser/ast"
	"github.com/loxlang/golox/parser/token"
)

// Parser is a Lox parser.
type Parser struct {
	src  *TokenSource
	errs []string
}

// New initializes and returns a new Parser that reads from tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{src: NewTokenSource(tokens)}
}

// Parse parses tokens as a program.  Parse is shorthand for
// New(tokens).ParseProgram().
func Parse(tokens []token.Token) ([]ast.Stmt, []string) {
	return New(tokens).ParseProgram()
}

// ParseProgram parses statements until the end of input.  When syntax errors
// are encountered the accumulated messages are returned and the statement
// list should be discarded.
func (p *Parser) ParseProgram() ([]ast.Stmt, []string) {
	var stmts []ast.Stmt
	for !p.src.IsEOF() {
		stmt, err := p.statement()
		if err != nil {
			p.errs = append(p.errs, err.Error())
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return stmts, nil
}

// synchronize discards tokens until a statement boundary so that parsing can
// resume after a syntax error.
func (p *Parser) synchronize() {
	for !p.src.IsEOF() {
		if tok := p.src.Token(); tok != nil && tok.Type == token.SEMICOLON {
			return
		}
		switch p.src.Peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN, token.BRACE_R:
			return
		}
		p.src.Scan()
	}
}

func (p *Parser) consume(typ token.Type, message string) error {
	if p.src.AcceptType(typ) != nil {
		return nil
	}
	tok := p.src.Peek()
	if tok.Type == token.EOF {
		return fmt.Errorf("At EOF: %s", message)
	}
	return fmt.Errorf("Line %d at '%s': %s", tok.Line, tok, message)
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch p.src.Peek().Type {
	case token.IF:
		p.src.Scan()
		return p.ifStmt()
	case token.BRACE_L:
		p.src.Scan()
		return p.blockStmt()
	case token.PRINT:
		p.src.Scan()
		return p.printStmt()
	case token.VAR:
		p.src.Scan()
		return p.varStmt()
	case token.WHILE:
		p.src.Scan()
		return p.whileStmt()
	case token.FOR:
		p.src.Scan()
		return p.forStmt()
	case token.FUN:
		p.src.Scan()
		return p.functionStmt()
	case token.RETURN:
		p.src.Scan()
		return p.returnStmt()
	}
	return p.exprStmt()
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	if err := p.consume(token.PAREN_L, "Expected '(' after if"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.PAREN_R, "Expected ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.src.AcceptType(token.ELSE) != nil {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) blockStmt() (ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.src.AcceptType(token.BRACE_R) == nil {
		if p.src.IsEOF() {
			return nil, fmt.Errorf("At EOF: Expected '}' after block")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Block{Stmts: stmts}, nil
}

func (p *Parser) printStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{expr}
	for p.src.AcceptType(token.COMMA) != nil {
		expr, err = p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if err := p.consume(token.SEMICOLON, "Expected ';' after print statement"); err != nil {
		return nil, err
	}
	return &ast.Print{Exprs: exprs}, nil
}

func (p *Parser) varStmt() (ast.Stmt, error) {
	name := p.src.AcceptType(token.IDENTIFIER)
	if name == nil {
		return nil, fmt.Errorf("Expected identifier after 'var'")
	}
	varName, line := name.Text, name.Line
	if err := p.consume(token.EQUAL, "Expected '=' after var identifier"); err != nil {
		return nil, err
	}
	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.SEMICOLON, "Expected ';' after var declaration"); err != nil {
		return nil, err
	}
	return &ast.Var{Name: varName, Line: line, Init: init}, nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	if err := p.consume(token.PAREN_L, "Expected '(' after while statement"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.PAREN_R, "Expected ')' after while statement"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

// forStmt desugars a for loop into { init?; while (cond|true) { body; incr; } }.
func (p *Parser) forStmt() (ast.Stmt, error) {
	if err := p.consume(token.PAREN_L, "Expected '(' after for statement"); err != nil {
		return nil, err
	}

	var init ast.Stmt
	if p.src.AcceptType(token.SEMICOLON) == nil {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		init = stmt
	}

	var cond ast.Expr = &ast.LiteralBool{Value: true}
	if p.src.AcceptType(token.SEMICOLON) == nil {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		cond = expr
		if err := p.consume(token.SEMICOLON, "Expected ';' after for condition"); err != nil {
			return nil, err
		}
	}

	var incr ast.Expr
	if p.src.AcceptType(token.PAREN_R) == nil {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		incr = expr
		if err := p.consume(token.PAREN_R, "Expected ')' after for loop expr"); err != nil {
			return nil, err
		}
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if incr != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.ExprStmt{Expr: incr}}}
	}

	var loop ast.Stmt = &ast.While{Condition: cond, Body: body}
	if init != nil {
		loop = &ast.Block{Stmts: []ast.Stmt{init, loop}}
	}
	return loop, nil
}

func (p *Parser) functionStmt() (ast.Stmt, error) {
	name := p.src.AcceptType(token.IDENTIFIER)
	if name == nil {
		return nil, fmt.Errorf("Expected identifier after 'fun', found %s", p.src.Peek())
	}
	funName, line := name.Text, name.Line
	if err := p.consume(token.PAREN_L, "Expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []string
	if p.src.AcceptType(token.PAREN_R) == nil {
		for {
			param := p.src.AcceptType(token.IDENTIFIER)
			if param == nil {
				return nil, fmt.Errorf("Expected parameter name, found %s", p.src.Peek())
			}
			params = append(params, param.Text)
			if p.src.AcceptType(token.COMMA) == nil {
				break
			}
		}
		if err := p.consume(token.PAREN_R, "Expected ')' after function parameters"); err != nil {
			return nil, err
		}
	}

	if err := p.consume(token.BRACE_L, "Expected '{' after function parameters"); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for p.src.AcceptType(token.BRACE_R) == nil {
		if p.src.IsEOF() {
			return nil, fmt.Errorf("At EOF: Expected '}' after function body")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	return &ast.Function{Name: funName, Params: params, Body: body, Line: line}, nil
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.SEMICOLON, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.Return{Expr: expr}, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.SEMICOLON, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment is right associative and requires a plain variable on the left
// hand side.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if eq := p.src.AcceptType(token.EQUAL); eq != nil {
		variable, ok := expr.(*ast.Variable)
		if !ok {
			return nil, fmt.Errorf("Invalid assignment target at line %d", eq.Line)
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: variable.Name, Line: variable.Line, Value: value}, nil
	}
	return expr, nil
}

func (p *Parser) logicalOr() (ast.Expr, error) {
	expr, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for {
		op := p.src.AcceptType(token.OR)
		if op == nil {
			return expr, nil
		}
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: *op, Right: right}
	}
}

func (p *Parser) logicalAnd() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for {
		op := p.src.AcceptType(token.AND)
		if op == nil {
			return expr, nil
		}
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: *op, Right: right}
	}
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binaryLevel(p.comparison, token.EQUAL_EQUAL, token.BANG_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binaryLevel(p.term,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binaryLevel(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binaryLevel(p.unary, token.SLASH, token.STAR)
}

// binaryLevel parses a left-associative chain of operators at one precedence
// level, with next parsing the operands one level up.
func (p *Parser) binaryLevel(next func() (ast.Expr, error), types ...token.Type) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op := p.acceptAny(types...)
		if op == nil {
			return expr, nil
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: *op, Right: right}
	}
}

func (p *Parser) acceptAny(types ...token.Type) *token.Token {
	for _, typ := range types {
		if tok := p.src.AcceptType(typ); tok != nil {
			return tok
		}
	}
	return nil
}

func (p *Parser) unary() (ast.Expr, error) {
	switch {
	case p.src.AcceptType(token.BANG) != nil:
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.LogicalNot{Inner: inner}, nil
	case p.src.AcceptType(token.MINUS) != nil:
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryNegate{Inner: inner}, nil
	}
	return p.call()
}

// call parses a primary expression followed by any number of argument lists,
// supporting curried-style chains like f()().
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		paren := p.src.AcceptType(token.PAREN_L)
		if paren == nil {
			return expr, nil
		}
		var args []ast.Expr
		if p.src.AcceptType(token.PAREN_R) == nil {
			for {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.src.AcceptType(token.COMMA) == nil {
					break
				}
			}
			if err := p.consume(token.PAREN_R, "Expected ')' after function call arguments"); err != nil {
				return nil, err
			}
		}
		expr = &ast.Call{Callee: expr, Line: paren.Line, Args: args}
	}
}

func (p *Parser) primary() (ast.Expr, error) {
	if !p.src.Scan() {
		return nil, fmt.Errorf("Expected primary expression, found EOF")
	}
	tok := p.src.Token()
	switch tok.Type {
	case token.TRUE:
		return &ast.LiteralBool{Value: true}, nil
	case token.FALSE:
		return &ast.LiteralBool{Value: false}, nil
	case token.NIL:
		return &ast.LiteralNil{}, nil
	case token.NUMBER:
		return &ast.LiteralNumber{Value: tok.Num}, nil
	case token.STRING:
		return &ast.LiteralString{Value: tok.Text}, nil
	case token.IDENTIFIER:
		return &ast.Variable{Name: tok.Text, Line: tok.Line}, nil
	case token.PAREN_L:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.PAREN_R, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil
	}
	return nil, fmt.Errorf("Expected primary expression, found '%s' at line %d", tok, tok.Line)
}
