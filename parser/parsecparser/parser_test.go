// Copyright © 2026 The golox authors

package parsecparser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/loxlang/golox/parser/ast"
	"github.com/loxlang/golox/parser/lexer"
	"github.com/loxlang/golox/parser/rdparser"
	"github.com/loxlang/golox/parser/token"
)

// The combinator grammar must agree with the recursive descent parser on
// every expression both accept.  Source positions differ (the combinator
// parser pins everything to line one) and are excluded from comparison.
func TestAgreesWithRDParser(t *testing.T) {
	exprs := []string{
		`1`,
		`1.5`,
		`"a string"`,
		`true`,
		`false`,
		`nil`,
		`x`,
		`1 + 2 * 3`,
		`(1 + 2) * 3`,
		`10 - 2 - 3`,
		`1 / 2 / 4`,
		`-x`,
		`!!ready`,
		`-2 * -3`,
		`1 < 2`,
		`1 <= 2 == true`,
		`a > b != c >= d`,
		`a and b or c and d`,
		`f()`,
		`f(1)`,
		`f(1, 2, x + 1)`,
		`f(1)(2)`,
		`f(g(x))`,
		`"foo" + "bar" == baz`,
		`!(a or b)`,
	}
	ignoreLines := cmpopts.IgnoreFields(token.Token{}, "Line")
	for _, src := range exprs {
		want := rdParse(t, src)
		got, n, err := ParseExpr([]byte(src))
		if err != nil {
			t.Errorf("%s: %s", src, err)
			continue
		}
		if n != len(src) {
			t.Errorf("%s: consumed %d of %d bytes", src, n, len(src))
			continue
		}
		if diff := cmp.Diff(want, got, ignoreLines); diff != "" {
			t.Errorf("%s: expression mismatch (-rdparser +parsec):\n%s", src, diff)
		}
	}
}

// rdParse parses src as an expression statement, normalizing node positions
// to line one for comparison.
func rdParse(t *testing.T, src string) ast.Expr {
	t.Helper()
	tokens, errs := lexer.Scan(src + ";")
	if len(errs) > 0 {
		t.Fatalf("%s: scan errors: %v", src, errs)
	}
	stmts, errs := rdparser.Parse(tokens)
	if len(errs) > 0 {
		t.Fatalf("%s: parse errors: %v", src, errs)
	}
	return stmts[0].(*ast.ExprStmt).Expr
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{``, "Expected an expression"},
		{`(1 + 2`, "Expected an expression"},
		{`1 + 2 )`, "unexpected source text"},
		{`var`, "Unexpected keyword 'var' in expression"},
		{`1 2`, "unexpected source text"},
	}
	for _, test := range tests {
		_, _, err := ParseExpr([]byte(test.src))
		if err == nil {
			t.Errorf("%q: expected an error", test.src)
			continue
		}
		if !strings.Contains(err.Error(), test.message) {
			t.Errorf("%q: expected error containing %q (got %q)", test.src, test.message, err)
		}
	}
}
