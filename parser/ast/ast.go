// Copyright © 2026 The golox authors

// Package ast defines the node families produced by the parser.  Nodes are
// immutable once built; resolver slot annotations live in a side table keyed
// by node identity (see package lox), never inside the nodes themselves.
package ast

import "github.com/loxlang/golox/parser/token"

// Node is implemented by every expression and statement node.
type Node interface {
	node()
}

// Expr is the expression node family.
type Expr interface {
	Node
	expr()
}

// Stmt is the statement node family.
type Stmt interface {
	Node
	stmt()
}

type (
	// LiteralBool is a true or false literal.
	LiteralBool struct {
		Value bool
	}

	// LiteralNumber is a numeric literal.
	LiteralNumber struct {
		Value float64
	}

	// LiteralString is a string literal.  Value excludes the quotes.
	LiteralString struct {
		Value string
	}

	// LiteralNil is the nil literal.
	LiteralNil struct{}

	// Binary applies an infix operator, including the short-circuit
	// operators and/or.
	Binary struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// Grouping is a parenthesized expression.
	Grouping struct {
		Inner Expr
	}

	// LogicalNot is the prefix ! operator.
	LogicalNot struct {
		Inner Expr
	}

	// UnaryNegate is the prefix - operator.
	UnaryNegate struct {
		Inner Expr
	}

	// Variable is a read of a named binding.
	Variable struct {
		Name string
		Line int
	}

	// Assignment writes Value to the named target and yields the assigned
	// value.
	Assignment struct {
		Target string
		Line   int
		Value  Expr
	}

	// Call invokes Callee with Args.  Line records the opening paren for
	// error reporting.
	Call struct {
		Callee Expr
		Line   int
		Args   []Expr
	}
)

func (*LiteralBool) node()   {}
func (*LiteralNumber) node() {}
func (*LiteralString) node() {}
func (*LiteralNil) node()    {}
func (*Binary) node()        {}
func (*Grouping) node()      {}
func (*LogicalNot) node()    {}
func (*UnaryNegate) node()   {}
func (*Variable) node()      {}
func (*Assignment) node()    {}
func (*Call) node()          {}

func (*LiteralBool) expr()   {}
func (*LiteralNumber) expr() {}
func (*LiteralString) expr() {}
func (*LiteralNil) expr()    {}
func (*Binary) expr()        {}
func (*Grouping) expr()      {}
func (*LogicalNot) expr()    {}
func (*UnaryNegate) expr()   {}
func (*Variable) expr()      {}
func (*Assignment) expr()    {}
func (*Call) expr()          {}

type (
	// ExprStmt evaluates an expression for its side effects.  Its value is
	// reported to the driver as the result of the program when it is the
	// last statement executed.
	ExprStmt struct {
		Expr Expr
	}

	// Print evaluates each expression in order and writes the rendered
	// values space-joined with a trailing newline.
	Print struct {
		Exprs []Expr
	}

	// If executes Then when the condition is truthy, else Else when present.
	If struct {
		Condition Expr
		Then      Stmt
		Else      Stmt // nil when absent
	}

	// Block introduces a nested scope.
	Block struct {
		Stmts []Stmt
	}

	// Var declares a new binding in the active scope.
	Var struct {
		Name string
		Line int
		Init Expr
	}

	// While re-evaluates the condition before every iteration.
	While struct {
		Condition Expr
		Body      Stmt
	}

	// Function declares a named function.  The same node is shared by the
	// declaration and every closure value created from it.
	Function struct {
		Name   string
		Params []string
		Body   []Stmt
		Line   int
	}

	// Return unwinds the innermost call with the value of Expr.
	Return struct {
		Expr Expr
	}
)

// Arity returns the declared parameter count.
func (f *Function) Arity() int {
	return len(f.Params)
}

func (*ExprStmt) node() {}
func (*Print) node()    {}
func (*If) node()       {}
func (*Block) node()    {}
func (*Var) node()      {}
func (*While) node()    {}
func (*Function) node() {}
func (*Return) node()   {}

func (*ExprStmt) stmt() {}
func (*Print) stmt()    {}
func (*If) stmt()       {}
func (*Block) stmt()    {}
func (*Var) stmt()      {}
func (*While) stmt()    {}
func (*Function) stmt() {}
func (*Return) stmt()   {}
