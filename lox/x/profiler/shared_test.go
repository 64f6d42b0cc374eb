// Copyright © 2026 The golox authors

package profiler_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/lox"
	"github.com/loxlang/golox/parser"
)

// Some spurious functions to check we get a profile out.  printIt runs
// twice, addIt three times, and recurseIt three times, so a full trace
// holds eight call spans.
const testProgram = `
fun printIt(x) {
  print x;
}
fun addIt(x, y) {
  return x + y;
}
fun recurseIt(x) {
  if (x < 4) {
    return addIt(x, 3);
  }
  return recurseIt(x - 1);
}
printIt("Hello");
printIt(addIt(addIt(3, recurseIt(5)), 8));
`

func newTestInterp(t *testing.T) (*lox.Interp, *lox.Bindings) {
	t.Helper()
	binds := lox.NewBindings()
	interp := lox.New(binds, lox.WithStdout(io.Discard))
	return interp, binds
}

func evalProgram(t *testing.T, interp *lox.Interp, binds *lox.Bindings, src string) {
	t.Helper()
	stmts, errs := parser.Parse(src)
	require.Empty(t, errs)
	require.NoError(t, lox.NewResolver(binds).Resolve(stmts))
	_, err := interp.Execute(stmts)
	require.NoError(t, err)
}
