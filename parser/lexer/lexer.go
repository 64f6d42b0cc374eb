// Copyright © 2026 The golox authors

// Package lexer converts Lox source text into a flat token sequence.  The
// scanner makes a single forward pass with one rune of lookahead (two at the
// number/dot boundary) and accumulates recoverable errors instead of aborting
// on the first bad character.
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/loxlang/golox/parser/token"
)

const eof = rune(0)

// Scan tokenizes source.  The returned token sequence always ends with a
// single EOF token.  When at least one lexical error was encountered the
// accumulated error messages are returned and the token sequence should be
// discarded.
func Scan(source string) ([]token.Token, []string) {
	lex := &Lexer{src: source, line: 1}
	lex.scan()
	return lex.tokens, lex.errs
}

// Lexer holds scanner state for a single pass over one source text.
type Lexer struct {
	src    string
	start  int // byte offset of the current token's first rune
	pos    int // byte offset of the next rune to scan
	line   int
	tokens []token.Token
	errs   []string
}

func (lex *Lexer) scan() {
	for lex.peek() != eof {
		lex.start = lex.pos
		lex.scanToken()
	}
	lex.tokens = append(lex.tokens, token.Token{Type: token.EOF, Line: lex.line})
}

func (lex *Lexer) scanToken() {
	c := lex.advance()
	switch {
	case c == eof:
		return
	case c == '\n', c == ' ', c == '\t', c == '\r':
		return
	case c == '/':
		if lex.peek() == '/' {
			lex.eatWhile(func(c rune) bool { return c != '\n' })
			return
		}
		lex.emit(token.SLASH)
	case c == '"':
		lex.scanString()
	case c == '(':
		lex.emit(token.PAREN_L)
	case c == ')':
		lex.emit(token.PAREN_R)
	case c == '{':
		lex.emit(token.BRACE_L)
	case c == '}':
		lex.emit(token.BRACE_R)
	case c == ',':
		lex.emit(token.COMMA)
	case c == '.':
		lex.emit(token.DOT)
	case c == '-':
		lex.emit(token.MINUS)
	case c == '+':
		lex.emit(token.PLUS)
	case c == ';':
		lex.emit(token.SEMICOLON)
	case c == '*':
		lex.emit(token.STAR)
	case c == '!':
		lex.emit(lex.matchEqual(token.BANG_EQUAL, token.BANG))
	case c == '=':
		lex.emit(lex.matchEqual(token.EQUAL_EQUAL, token.EQUAL))
	case c == '>':
		lex.emit(lex.matchEqual(token.GREATER_EQUAL, token.GREATER))
	case c == '<':
		lex.emit(lex.matchEqual(token.LESS_EQUAL, token.LESS))
	case isDigit(c):
		lex.scanNumber()
	case isAlpha(c):
		lex.scanIdentifier()
	default:
		lex.errorf("Unexpected character %q at line %d", c, lex.line)
	}
}

// matchEqual implements the longest-first disambiguation for the one or two
// character operators: != before !, <= before <, and so on.
func (lex *Lexer) matchEqual(matched, unmatched token.Type) token.Type {
	if lex.peek() != '=' {
		return unmatched
	}
	lex.advance()
	return matched
}

func (lex *Lexer) scanNumber() {
	lex.eatWhile(isDigit)

	// A dot is part of the number only when a digit follows it.  "1234.call"
	// scans as NUMBER DOT IDENTIFIER.
	if lex.peek() == '.' && isDigit(lex.peekNext()) {
		lex.advance()
		lex.eatWhile(isDigit)
	}

	if isAlpha(lex.peek()) {
		lex.eatWhile(isAlphaNumeric)
		lex.errorf("Invalid numeric literal %q at line %d", lex.text(), lex.line)
		return
	}

	num, err := strconv.ParseFloat(lex.text(), 64)
	if err != nil {
		lex.errorf("Invalid numeric literal %q at line %d", lex.text(), lex.line)
		return
	}
	lex.tokens = append(lex.tokens, token.Token{
		Type: token.NUMBER,
		Text: lex.text(),
		Num:  num,
		Line: lex.line,
	})
}

func (lex *Lexer) scanIdentifier() {
	lex.eatWhile(isAlphaNumeric)
	if typ, ok := token.Keyword(lex.text()); ok {
		lex.emit(typ)
		return
	}
	lex.emit(token.IDENTIFIER)
}

// scanString consumes up to the closing quote.  An unterminated string
// consumes the rest of the input and still produces a STRING token.
func (lex *Lexer) scanString() {
	startLine := lex.line
	lex.eatWhile(func(c rune) bool { return c != '"' })
	text := lex.src[lex.start+1 : lex.pos]
	lex.advance() // closing quote, or EOF
	lex.tokens = append(lex.tokens, token.Token{
		Type: token.STRING,
		Text: text,
		Line: startLine,
	})
}

func (lex *Lexer) emit(typ token.Type) {
	lex.tokens = append(lex.tokens, token.Token{
		Type: typ,
		Text: lex.text(),
		Line: lex.line,
	})
}

func (lex *Lexer) errorf(format string, v ...interface{}) {
	lex.errs = append(lex.errs, fmt.Sprintf(format, v...))
}

func (lex *Lexer) text() string {
	return lex.src[lex.start:lex.pos]
}

func (lex *Lexer) peek() rune {
	if lex.pos >= len(lex.src) {
		return eof
	}
	c, _ := utf8.DecodeRuneInString(lex.src[lex.pos:])
	return c
}

func (lex *Lexer) peekNext() rune {
	if lex.pos >= len(lex.src) {
		return eof
	}
	_, size := utf8.DecodeRuneInString(lex.src[lex.pos:])
	if lex.pos+size >= len(lex.src) {
		return eof
	}
	c, _ := utf8.DecodeRuneInString(lex.src[lex.pos+size:])
	return c
}

func (lex *Lexer) advance() rune {
	if lex.pos >= len(lex.src) {
		return eof
	}
	c, size := utf8.DecodeRuneInString(lex.src[lex.pos:])
	lex.pos += size
	if c == '\n' {
		lex.line++
	}
	return c
}

func (lex *Lexer) eatWhile(pred func(rune) bool) {
	for {
		c := lex.peek()
		if c == eof || !pred(c) {
			return
		}
		lex.advance()
	}
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
