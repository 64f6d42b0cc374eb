// Copyright © 2026 The golox authors

// Package loxtest provides a harness for testing Lox program execution end
// to end: source text in, printed output and errors out.
package loxtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxlang/golox/lox"
	"github.com/loxlang/golox/parser"
)

// TestSequence is a sequence of Lox source fragments which are executed
// sequentially against a single interpreter, the way a REPL session would.
type TestSequence []struct {
	Src    string // lox source text
	Output string // output written to Runtime.Stdout by print statements
	Err    string // expected error message ("" means no error)
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated interpreter.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var out bytes.Buffer
			binds := lox.NewBindings()
			res := lox.NewResolver(binds)
			interp := lox.New(binds,
				lox.WithStdout(&out),
				lox.WithStderr(NewLogger(t)),
			)
			for j, step := range test.TestSequence {
				out.Reset()
				errmsg := run(res, interp, step.Src)
				if errmsg != step.Err {
					t.Errorf("step %d: expected error %q (got %q)", j, step.Err, errmsg)
				}
				if out.String() != step.Output {
					t.Errorf("step %d: expected output %q (got %q)", j, step.Output, out.String())
				}
			}
		})
	}
}

// run pushes src through the full pipeline and returns the first error
// message, mirroring what the driver reports.
func run(res *lox.Resolver, interp *lox.Interp, src string) string {
	stmts, errs := parser.Parse(src)
	if len(errs) > 0 {
		return errs[0]
	}
	if err := res.Resolve(stmts); err != nil {
		return err.Error()
	}
	if _, err := interp.Execute(stmts); err != nil {
		return err.Error()
	}
	return ""
}

// RunProgram executes a standalone program on a fresh interpreter and
// returns its printed output.  Errors fail the test.
func RunProgram(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	binds := lox.NewBindings()
	res := lox.NewResolver(binds)
	interp := lox.New(binds,
		lox.WithStdout(&out),
		lox.WithStderr(NewLogger(t)),
	)
	if errmsg := run(res, interp, src); errmsg != "" {
		t.Fatalf("program failed: %s", errmsg)
	}
	return out.String()
}

// Lines joins printed lines the way the interpreter renders them: every
// value followed by a space, every print statement followed by a newline.
// It keeps expected-output literals in tests readable.
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString(" \n")
	}
	return buf.String()
}
