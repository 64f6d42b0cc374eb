// Copyright © 2026 The golox authors

package rdparser

import "github.com/loxlang/golox/parser/token"

// TokenSource is a peekable cursor over a scanned token sequence.  The
// sequence must be terminated by an EOF token; Peek holds at EOF once the
// stream is exhausted.
type TokenSource struct {
	tokens []token.Token
	pos    int // index of the next unscanned token
	tok    *token.Token
}

var _ token.Source = (*TokenSource)(nil)

// NewTokenSource initializes a TokenSource reading from tokens.
func NewTokenSource(tokens []token.Token) *TokenSource {
	if len(tokens) == 0 {
		tokens = []token.Token{{Type: token.EOF, Line: 1}}
	}
	return &TokenSource{tokens: tokens}
}

// Token returns the most recently scanned token, or nil before the first
// call to Scan.
func (s *TokenSource) Token() *token.Token {
	return s.tok
}

// Peek returns the next unscanned token.
func (s *TokenSource) Peek() *token.Token {
	if s.pos >= len(s.tokens) {
		return &s.tokens[len(s.tokens)-1]
	}
	return &s.tokens[s.pos]
}

// Scan advances the stream.  Scan returns false once the EOF token has been
// reached.
func (s *TokenSource) Scan() bool {
	if s.pos >= len(s.tokens) {
		return false
	}
	s.tok = &s.tokens[s.pos]
	s.pos++
	return s.tok.Type != token.EOF
}

// IsEOF returns true when the next token is the end of input.
func (s *TokenSource) IsEOF() bool {
	return s.Peek().Type == token.EOF
}

// AcceptType scans the next token if it has type typ, returning the accepted
// token or nil.
func (s *TokenSource) AcceptType(typ token.Type) *token.Token {
	if s.Peek().Type != typ {
		return nil
	}
	s.Scan()
	return s.tok
}
