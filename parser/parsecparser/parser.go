// Copyright © 2026 The golox authors

/*
Package parsecparser provides a combinator-built Lox expression parser.

	expr       := <logicalOr>
	logicalOr  := <logicalAnd> ('or' <logicalAnd>)*
	logicalAnd := <equality> ('and' <equality>)*
	equality   := <comparison> (('=='|'!=') <comparison>)*
	comparison := <term> (('<='|'>='|'<'|'>') <term>)*
	term       := <factor> (('+'|'-') <factor>)*
	factor     := <unary> (('*'|'/') <unary>)*
	unary      := ('!'|'-') <unary> | <call>
	call       := <primary> ('(' <expr> (',' <expr>)* ')')*
	primary    := <number> | <string> | 'true' | 'false' | 'nil'
	            | <identifier> | '(' <expr> ')'

It accepts the expression grammar only, without assignment or statements,
and exists for one-shot expression evaluation where source positions are
all on line one.  Whole programs go through the recursive descent parser
in package rdparser.
*/
package parsecparser

import (
	"fmt"
	"strconv"

	parsec "github.com/prataprc/goparsec"

	"github.com/loxlang/golox/parser/ast"
	"github.com/loxlang/golox/parser/token"
)

// ParseExpr parses a single expression from text.  The number of bytes read
// is returned along with any error encountered in parsing.
func ParseExpr(text []byte) (ast.Expr, int, error) {
	s := parsec.NewScanner(text)
	s = s.TrackLineno()
	root, s := newParsecParser()(s)
	if root == nil {
		return nil, s.GetCursor(), fmt.Errorf("Expected an expression")
	}
	expr, ok := toExpr(root)
	if !ok {
		if err, isErr := unwrap(root).(error); isErr {
			return nil, s.GetCursor(), err
		}
		return nil, s.GetCursor(), fmt.Errorf("Expected an expression")
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		b, _ := s.Match(`.{1,16}`)
		if len(b) > 15 {
			b = append(b[:15:15], []byte("...")...)
		}
		return nil, s.GetCursor(), fmt.Errorf("Line %d: unexpected source text starting: %s", s.Lineno(), b)
	}
	return expr, s.GetCursor(), nil
}

// argsNode carries one parenthesized argument list up to the call nodify.
type argsNode struct {
	args []ast.Expr
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	comma := parsec.Atom(",", "COMMA")
	number := parsec.Token(`[0-9]+([.][0-9]+)?`, "NUMBER")
	ident := parsec.Token(`[A-Za-z_][A-Za-z0-9_]*`, "IDENT")
	unaryOp := parsec.Token(`[!-]`, "UNARYOP")
	factorOp := parsec.Token(`[*/]`, "FACTOROP")
	termOp := parsec.Token(`[+-]`, "TERMOP")
	cmpOp := parsec.Token(`(<=|>=|<|>)`, "CMPOP")
	eqOp := parsec.Token(`(==|!=)`, "EQOP")
	andOp := parsec.Token(`and\b`, "ANDOP")
	orOp := parsec.Token(`or\b`, "OROP")

	var expr parsec.Parser // forward declaration allows for recursive parsing
	group := parsec.And(nodifyGroup, openP, &expr, closeP)
	primary := parsec.OrdChoice(nodifyPrimary,
		number,
		parsec.String(),
		group,
		ident, // ident comes last because it also matches keyword literals
	)
	argList := parsec.And(nodifyArgs, openP, parsec.Kleene(nil, &expr, comma), closeP)
	call := parsec.And(nodifyCall, primary, parsec.Kleene(nil, argList))
	var unary parsec.Parser
	unary = parsec.OrdChoice(nil,
		parsec.And(nodifyUnary, unaryOp, &unary),
		call,
	)
	factor := parsec.And(nodifyBinary, unary, parsec.Kleene(nil, parsec.And(nil, factorOp, unary)))
	term := parsec.And(nodifyBinary, factor, parsec.Kleene(nil, parsec.And(nil, termOp, factor)))
	comparison := parsec.And(nodifyBinary, term, parsec.Kleene(nil, parsec.And(nil, cmpOp, term)))
	equality := parsec.And(nodifyBinary, comparison, parsec.Kleene(nil, parsec.And(nil, eqOp, comparison)))
	logicalAnd := parsec.And(nodifyBinary, equality, parsec.Kleene(nil, parsec.And(nil, andOp, equality)))
	expr = parsec.And(nodifyBinary, logicalAnd, parsec.Kleene(nil, parsec.And(nil, orOp, logicalAnd)))
	return expr
}

// unwrap flattens the singleton node lists that combinators with nil
// callbacks produce.
func unwrap(node parsec.ParsecNode) parsec.ParsecNode {
	if nodes, ok := node.([]parsec.ParsecNode); ok && len(nodes) == 1 {
		return unwrap(nodes[0])
	}
	return node
}

func toExpr(node parsec.ParsecNode) (ast.Expr, bool) {
	expr, ok := unwrap(node).(ast.Expr)
	return expr, ok
}

func nodifyPrimary(nodes []parsec.ParsecNode) parsec.ParsecNode {
	node := unwrap(nodes[0])
	switch term := node.(type) {
	case string:
		// The goparsec string parser returns the unescaped content wrapped
		// back in double quotes.
		return &ast.LiteralString{Value: term[1 : len(term)-1]}
	case *parsec.Terminal:
		switch term.Name {
		case "NUMBER":
			f, err := strconv.ParseFloat(term.Value, 64)
			if err != nil {
				return fmt.Errorf("Invalid numeric literal %q", term.Value)
			}
			return &ast.LiteralNumber{Value: f}
		case "IDENT":
			switch term.Value {
			case "true":
				return &ast.LiteralBool{Value: true}
			case "false":
				return &ast.LiteralBool{Value: false}
			case "nil":
				return &ast.LiteralNil{}
			}
			if _, isKeyword := token.Keyword(term.Value); isKeyword {
				return fmt.Errorf("Unexpected keyword '%s' in expression", term.Value)
			}
			return &ast.Variable{Name: term.Value, Line: 1}
		}
	}
	return node
}

func nodifyGroup(nodes []parsec.ParsecNode) parsec.ParsecNode {
	inner, ok := toExpr(nodes[1])
	if !ok {
		return unwrap(nodes[1])
	}
	return &ast.Grouping{Inner: inner}
}

func nodifyUnary(nodes []parsec.ParsecNode) parsec.ParsecNode {
	inner, ok := toExpr(nodes[1])
	if !ok {
		return unwrap(nodes[1])
	}
	op := nodes[0].(*parsec.Terminal)
	if op.Value == "!" {
		return &ast.LogicalNot{Inner: inner}
	}
	return &ast.UnaryNegate{Inner: inner}
}

func nodifyArgs(nodes []parsec.ParsecNode) parsec.ParsecNode {
	var args []ast.Expr
	if list, ok := nodes[1].([]parsec.ParsecNode); ok {
		for _, node := range list {
			arg, ok := toExpr(node)
			if !ok {
				return unwrap(node)
			}
			args = append(args, arg)
		}
	}
	return &argsNode{args: args}
}

func nodifyCall(nodes []parsec.ParsecNode) parsec.ParsecNode {
	expr, ok := toExpr(nodes[0])
	if !ok {
		return unwrap(nodes[0])
	}
	lists, _ := nodes[1].([]parsec.ParsecNode)
	for _, node := range lists {
		list, ok := unwrap(node).(*argsNode)
		if !ok {
			return unwrap(node)
		}
		expr = &ast.Call{Callee: expr, Line: 1, Args: list.args}
	}
	return expr
}

// nodifyBinary folds a left-associative operator chain over its first
// operand.
func nodifyBinary(nodes []parsec.ParsecNode) parsec.ParsecNode {
	expr, ok := toExpr(nodes[0])
	if !ok {
		return unwrap(nodes[0])
	}
	rest, _ := nodes[1].([]parsec.ParsecNode)
	for _, node := range rest {
		pair, ok := node.([]parsec.ParsecNode)
		if !ok || len(pair) != 2 {
			return unwrap(node)
		}
		op, ok := pair[0].(*parsec.Terminal)
		if !ok {
			return unwrap(pair[0])
		}
		right, ok := toExpr(pair[1])
		if !ok {
			return unwrap(pair[1])
		}
		expr = &ast.Binary{Left: expr, Operator: opToken(op.Value), Right: right}
	}
	return expr
}

func opToken(text string) token.Token {
	typ := token.INVALID
	switch text {
	case "+":
		typ = token.PLUS
	case "-":
		typ = token.MINUS
	case "*":
		typ = token.STAR
	case "/":
		typ = token.SLASH
	case "==":
		typ = token.EQUAL_EQUAL
	case "!=":
		typ = token.BANG_EQUAL
	case "<":
		typ = token.LESS
	case "<=":
		typ = token.LESS_EQUAL
	case ">":
		typ = token.GREATER
	case ">=":
		typ = token.GREATER_EQUAL
	case "and":
		typ = token.AND
	case "or":
		typ = token.OR
	}
	return token.Token{Type: typ, Text: text, Line: 1}
}
