// Copyright © 2026 The golox authors

package token

import "fmt"

// Source is an abstract stream of tokens which allows one token lookahead.
type Source interface {
	// Token returns the current token.  Token returns nil if Scan has not been
	// called.
	Token() *Token
	// Peek returns the next token in the stream.  At the end of the stream
	// Peek should return a value to indicate the lack of a token (EOF).
	Peek() *Token
	// Scan advances the token stream if possible.  If there are no tokens
	// remaining Scan returns false.
	Scan() bool
}

// Token is a lexeme classified by the scanner.  Num holds the parsed value of
// NUMBER tokens and is zero otherwise.  Text holds the literal contents of
// STRING tokens (without the surrounding quotes) and the lexeme for
// everything else.
type Token struct {
	Type Type
	Text string
	Num  float64
	Line int
}

func (tok *Token) String() string {
	if tok.Type == EOF {
		return "EOF"
	}
	return tok.Text
}

type Type uint

// Type constants used by the golox scanner and parser.
const (
	INVALID Type = iota
	EOF

	// Literals and identifiers
	NUMBER
	STRING
	IDENTIFIER

	// Single character punctuation
	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character operators
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:       "invalid",
		EOF:           "EOF",
		NUMBER:        "number",
		STRING:        "string",
		IDENTIFIER:    "identifier",
		PAREN_L:       "(",
		PAREN_R:       ")",
		BRACE_L:       "{",
		BRACE_R:       "}",
		COMMA:         ",",
		DOT:           ".",
		MINUS:         "-",
		PLUS:          "+",
		SEMICOLON:     ";",
		SLASH:         "/",
		STAR:          "*",
		BANG:          "!",
		BANG_EQUAL:    "!=",
		EQUAL:         "=",
		EQUAL_EQUAL:   "==",
		GREATER:       ">",
		GREATER_EQUAL: ">=",
		LESS:          "<",
		LESS_EQUAL:    "<=",
		AND:           "and",
		CLASS:         "class",
		ELSE:          "else",
		FALSE:         "false",
		FUN:           "fun",
		FOR:           "for",
		IF:            "if",
		NIL:           "nil",
		OR:            "or",
		PRINT:         "print",
		RETURN:        "return",
		SUPER:         "super",
		THIS:          "this",
		TRUE:          "true",
		VAR:           "var",
		WHILE:         "while",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

var keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Keyword returns the keyword type for an identifier lexeme, or (INVALID,
// false) when the lexeme is not a reserved word.
func Keyword(lexeme string) (Type, bool) {
	typ, ok := keywords[lexeme]
	return typ, ok
}

// Keywords returns the reserved words in unspecified order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	return words
}

// LocationError decorates an error with the source line it originated from.
type LocationError struct {
	Err  error
	Line int
}

func (err *LocationError) Error() string {
	return fmt.Sprintf("line %d: %s", err.Line, err.Err)
}

func (err *LocationError) Unwrap() error {
	return err.Err
}
