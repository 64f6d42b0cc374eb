// Copyright © 2026 The golox authors

// Package repl implements the interactive golox session.  Input is read
// line by line; a line that leaves a paren or brace open switches to a
// continuation prompt until the input balances, so multi-line function
// declarations work naturally.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/loxlang/golox/lox"
	"github.com/loxlang/golox/parser"
	"github.com/loxlang/golox/parser/lexer"
	"github.com/loxlang/golox/parser/token"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// RunRepl runs an interactive session on a fresh interpreter.
func RunRepl(prompt string, opts ...Option) {
	binds := lox.NewBindings()
	res := lox.NewResolver(binds)
	interp := lox.New(binds)
	RunInterp(interp, res, prompt, strings.Repeat(" ", len(prompt)), opts...)
}

// RunInterp runs an interactive session against an existing interpreter.
// Bindings accumulate across inputs the way top-level declarations in a
// program would.
func RunInterp(interp *lox.Interp, res *lox.Resolver, prompt, cont string, opts ...Option) {
	cfg := newConfig(opts...)
	if cfg.stderr != nil {
		interp.Runtime().Stderr = cfg.stderr
	}
	stderr := interp.Runtime().Stderr

	history := historyPath()
	ensureHistoryFilePermissions(history)
	rlCfg := &readline.Config{
		Stdout:            stderr,
		Stderr:            stderr,
		Prompt:            prompt,
		HistoryFile:       history,
		HistorySearchFold: true,
		AutoComplete:      &identifierCompleter{interp: interp},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		src, err := readInput(rl, prompt, cont)
		if err != nil {
			break
		}
		stmts, errs := parser.Parse(src)
		if len(errs) > 0 {
			renderErrors(stderr, errs)
			continue
		}
		if err := res.Resolve(stmts); err != nil {
			renderError(stderr, err.Error())
			continue
		}
		val, err := interp.Execute(stmts)
		if err != nil {
			renderError(stderr, err.Error())
			continue
		}
		if !val.IsNil() {
			fmt.Fprintln(stderr, val) //nolint:errcheck // best-effort REPL output
		}
	}
}

// readInput reads one complete input, collecting continuation lines until
// every paren and brace is matched.  Interrupt discards the pending input.
func readInput(rl *readline.Instance, prompt, cont string) (string, error) {
	var buf strings.Builder
	rl.SetPrompt(prompt)
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if buf.Len() > 0 {
				return buf.String(), nil
			}
			return "", err
		}
		if buf.Len() == 0 && len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		buf.Write(line)
		buf.WriteString("\n")
		if inputBalanced(buf.String()) {
			return buf.String(), nil
		}
		rl.SetPrompt(cont)
	}
}

// inputBalanced reports whether src has no unclosed parens or braces.
// Inputs that do not scan cleanly count as balanced so the parser gets to
// report the real error.
func inputBalanced(src string) bool {
	tokens, errs := lexer.Scan(src)
	if len(errs) > 0 {
		return true
	}
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case token.PAREN_L, token.BRACE_L:
			depth++
		case token.PAREN_R, token.BRACE_R:
			depth--
		}
	}
	return depth <= 0
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".golox_history")
}

// ensureHistoryFilePermissions restricts the history file to the owning
// user, creating it when absent.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600) //nolint:gosec // user-owned history file
	if err != nil {
		return
	}
	f.Close() //nolint:errcheck,gosec // best-effort cleanup
	_ = os.Chmod(path, 0600)
}
