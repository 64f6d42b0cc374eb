// Copyright © 2026 The golox authors

// Package parser ties the scanner and the recursive descent parser together.
package parser

import (
	"github.com/loxlang/golox/parser/ast"
	"github.com/loxlang/golox/parser/lexer"
	"github.com/loxlang/golox/parser/rdparser"
)

// Parse scans and parses source as a Lox program.  The error list batches
// every lexical error, or every syntax error once scanning succeeds.
func Parse(source string) ([]ast.Stmt, []string) {
	tokens, errs := lexer.Scan(source)
	if len(errs) > 0 {
		return nil, errs
	}
	return rdparser.Parse(tokens)
}
