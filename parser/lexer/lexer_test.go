// Copyright © 2026 The golox authors

package lexer

import (
	"strings"
	"testing"

	"github.com/loxlang/golox/parser/token"
)

func testToken(typ token.Type, text string) token.Token {
	return token.Token{Type: typ, Text: text}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input  string
		tokens []token.Token
	}{
		{``, []token.Token{
			testToken(token.EOF, ""),
		}},
		{`abc`, []token.Token{
			testToken(token.IDENTIFIER, "abc"),
			testToken(token.EOF, ""),
		}},
		{`_tmp1`, []token.Token{
			testToken(token.IDENTIFIER, "_tmp1"),
			testToken(token.EOF, ""),
		}},
		{`(){},.;`, []token.Token{
			testToken(token.PAREN_L, "("),
			testToken(token.PAREN_R, ")"),
			testToken(token.BRACE_L, "{"),
			testToken(token.BRACE_R, "}"),
			testToken(token.COMMA, ","),
			testToken(token.DOT, "."),
			testToken(token.SEMICOLON, ";"),
			testToken(token.EOF, ""),
		}},
		{`! != = == < <= > >=`, []token.Token{
			testToken(token.BANG, "!"),
			testToken(token.BANG_EQUAL, "!="),
			testToken(token.EQUAL, "="),
			testToken(token.EQUAL_EQUAL, "=="),
			testToken(token.LESS, "<"),
			testToken(token.LESS_EQUAL, "<="),
			testToken(token.GREATER, ">"),
			testToken(token.GREATER_EQUAL, ">="),
			testToken(token.EOF, ""),
		}},
		{`<>===`, []token.Token{
			testToken(token.LESS, "<"),
			testToken(token.GREATER_EQUAL, ">="),
			testToken(token.EQUAL_EQUAL, "=="),
			testToken(token.EOF, ""),
		}},
		{`1 + 2 * 3 - 4 / 5`, []token.Token{
			testToken(token.NUMBER, "1"),
			testToken(token.PLUS, "+"),
			testToken(token.NUMBER, "2"),
			testToken(token.STAR, "*"),
			testToken(token.NUMBER, "3"),
			testToken(token.MINUS, "-"),
			testToken(token.NUMBER, "4"),
			testToken(token.SLASH, "/"),
			testToken(token.NUMBER, "5"),
			testToken(token.EOF, ""),
		}},
		{`1234.5678`, []token.Token{
			testToken(token.NUMBER, "1234.5678"),
			testToken(token.EOF, ""),
		}},
		{`"a string"`, []token.Token{
			testToken(token.STRING, "a string"),
			testToken(token.EOF, ""),
		}},
		{`""`, []token.Token{
			testToken(token.STRING, ""),
			testToken(token.EOF, ""),
		}},
		{"// a comment\nx", []token.Token{
			testToken(token.IDENTIFIER, "x"),
			testToken(token.EOF, ""),
		}},
		{"// ==== ", []token.Token{
			testToken(token.EOF, ""),
		}},
		{" \t\n\r", []token.Token{
			testToken(token.EOF, ""),
		}},
		{`var x = true and false or nil;`, []token.Token{
			testToken(token.VAR, "var"),
			testToken(token.IDENTIFIER, "x"),
			testToken(token.EQUAL, "="),
			testToken(token.TRUE, "true"),
			testToken(token.AND, "and"),
			testToken(token.FALSE, "false"),
			testToken(token.OR, "or"),
			testToken(token.NIL, "nil"),
			testToken(token.SEMICOLON, ";"),
			testToken(token.EOF, ""),
		}},
		{`fun forward(iff) { return iff; }`, []token.Token{
			testToken(token.FUN, "fun"),
			testToken(token.IDENTIFIER, "forward"),
			testToken(token.PAREN_L, "("),
			testToken(token.IDENTIFIER, "iff"),
			testToken(token.PAREN_R, ")"),
			testToken(token.BRACE_L, "{"),
			testToken(token.RETURN, "return"),
			testToken(token.IDENTIFIER, "iff"),
			testToken(token.SEMICOLON, ";"),
			testToken(token.BRACE_R, "}"),
			testToken(token.EOF, ""),
		}},
	}
	for i, test := range tests {
		tokens, errs := Scan(test.input)
		if len(errs) > 0 {
			t.Errorf("test %d: unexpected errors: %v", i, errs)
			continue
		}
		if len(tokens) != len(test.tokens) {
			t.Errorf("test %d: expected %d tokens (got %d: %v)",
				i, len(test.tokens), len(tokens), tokens)
			continue
		}
		for j := range tokens {
			if tokens[j].Type != test.tokens[j].Type {
				t.Errorf("test %d: token %d: expected type %s (got %s)",
					i, j, test.tokens[j].Type, tokens[j].Type)
			}
			if tokens[j].Text != test.tokens[j].Text {
				t.Errorf("test %d: token %d: expected text %q (got %q)",
					i, j, test.tokens[j].Text, tokens[j].Text)
			}
		}
	}
}

// A dot not followed by a digit is not part of a number, which keeps
// member-call style syntax scannable.
func TestNumberDotBoundary(t *testing.T) {
	tokens, errs := Scan("1234.call")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Type{token.NUMBER, token.DOT, token.IDENTIFIER, token.EOF}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens (got %d: %v)", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i].Type != want[i] {
			t.Errorf("token %d: expected %s (got %s)", i, want[i], tokens[i].Type)
		}
	}
	if tokens[0].Num != 1234 {
		t.Errorf("expected number payload 1234 (got %v)", tokens[0].Num)
	}
}

func TestNumberTrailingAlpha(t *testing.T) {
	_, errs := Scan("123ab")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error (got %v)", errs)
	}
	if !strings.Contains(errs[0], "123ab") {
		t.Errorf("error should quote the bad literal: %s", errs[0])
	}
}

func TestScanErrorRecovery(t *testing.T) {
	tokens, errs := Scan("@ var # x")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors (got %v)", errs)
	}
	// Scanning continued past both bad characters.
	want := []token.Type{token.VAR, token.IDENTIFIER, token.EOF}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens (got %d)", len(want), len(tokens))
	}
	for i := range want {
		if tokens[i].Type != want[i] {
			t.Errorf("token %d: expected %s (got %s)", i, want[i], tokens[i].Type)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens, errs := Scan(`"abc`)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 2 || tokens[0].Type != token.STRING || tokens[0].Text != "abc" {
		t.Fatalf("expected STRING(abc) EOF (got %v)", tokens)
	}
}

func TestLineTracking(t *testing.T) {
	tokens, errs := Scan("var a = 1;\nvar b = 2;\n")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, tok := range tokens[:5] {
		if tok.Line != 1 {
			t.Errorf("token %q: expected line 1 (got %d)", tok.Text, tok.Line)
		}
	}
	for _, tok := range tokens[5:10] {
		if tok.Line != 2 {
			t.Errorf("token %q: expected line 2 (got %d)", tok.Text, tok.Line)
		}
	}
	if eofTok := tokens[len(tokens)-1]; eofTok.Line != 3 {
		t.Errorf("EOF: expected line 3 (got %d)", eofTok.Line)
	}
}

// Rescanning the concatenated lexemes of a valid token stream reproduces an
// equivalent stream (line numbers aside).
func TestRescanRoundTrip(t *testing.T) {
	src := `fun add(a, b) { return a + b; }
var total = 0;
for (var i = 0; i < 10; i = i + 1) { total = add(total, i); }
print total, "done", 1.5, !true;`
	tokens, errs := Scan(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	var buf strings.Builder
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.STRING {
			buf.WriteString(`"` + tok.Text + `"`)
		} else {
			buf.WriteString(tok.Text)
		}
		buf.WriteString(" ")
	}

	rescanned, errs := Scan(buf.String())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors rescanning: %v", errs)
	}
	if len(rescanned) != len(tokens) {
		t.Fatalf("expected %d tokens (got %d)", len(tokens), len(rescanned))
	}
	for i := range tokens {
		if rescanned[i].Type != tokens[i].Type || rescanned[i].Text != tokens[i].Text {
			t.Errorf("token %d: expected %s %q (got %s %q)", i,
				tokens[i].Type, tokens[i].Text, rescanned[i].Type, rescanned[i].Text)
		}
	}
}
