// Copyright © 2026 The golox authors

package repl

import (
	"testing"

	"github.com/loxlang/golox/lox"
)

func TestIdentifierCompleter(t *testing.T) {
	interp := lox.New(lox.NewBindings())
	interp.Globals().Define("greet", lox.Nil())
	interp.Globals().Define("greeting", lox.String("hi"))
	interp.Globals().Define("total", lox.Number(0))

	c := &identifierCompleter{interp: interp}

	// "gre" should match greet and greeting.
	candidates, offset := c.Do([]rune("print gre"), 9)
	if offset != 3 {
		t.Errorf("offset = %d, want 3", offset)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 completions for 'gre', got %d", len(candidates))
	}
	if string(candidates[0]) != "et" || string(candidates[1]) != "eting" {
		t.Errorf("unexpected completions: %q %q", candidates[0], candidates[1])
	}

	// Reserved words complete alongside globals.
	candidates, _ = c.Do([]rune("whi"), 3)
	if len(candidates) != 1 || string(candidates[0]) != "le" {
		t.Errorf("expected 'while' completion, got %v", candidates)
	}

	// The word is delimited by non-identifier characters.
	candidates, offset = c.Do([]rune("f(tot"), 5)
	if offset != 3 {
		t.Errorf("offset = %d, want 3", offset)
	}
	if len(candidates) != 1 || string(candidates[0]) != "al" {
		t.Errorf("expected 'total' completion, got %v", candidates)
	}

	// No completions for an unknown prefix.
	candidates, _ = c.Do([]rune("zzz"), 3)
	if len(candidates) != 0 {
		t.Errorf("expected no completions, got %d", len(candidates))
	}
}
