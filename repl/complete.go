// Copyright © 2026 The golox authors

package repl

import (
	"sort"
	"strings"

	"github.com/loxlang/golox/lox"
	"github.com/loxlang/golox/parser/token"
)

// identifierCompleter implements readline.AutoCompleter by enumerating
// global bindings from the running interpreter plus the reserved words.
type identifierCompleter struct {
	interp *lox.Interp
}

func (c *identifierCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to the nearest
	// non-identifier character).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if !isIdentRune(ch) {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collectNames(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, name := range candidates {
		result = append(result, []rune(name[len(prefix):]))
	}
	return result, len(prefix)
}

func (c *identifierCompleter) collectNames(prefix string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	for _, name := range c.interp.Globals().Names() {
		add(name)
	}
	for _, word := range token.Keywords() {
		add(word)
	}
	sort.Strings(result)
	return result
}

func isIdentRune(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
