// Copyright © 2026 The golox authors

package profiler_test

import (
	"os"
	"path/filepath"
	"runtime/pprof"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/lox/x/profiler"
)

// This is a bit of a silly test but it demonstrates the issue
// with sampling pretty well - to get a meaningful profile, you
// have to do a lot of work
func TestNewPprofAnnotator(t *testing.T) {
	interp, binds := newTestInterp(t)
	ppa := profiler.NewPprofAnnotator(interp.Runtime(), nil)
	file, err := os.Create(filepath.Join(t.TempDir(), "pprof"))
	require.NoError(t, err)
	require.NoError(t, pprof.StartCPUProfile(file))
	defer pprof.StopCPUProfile()
	assert.NoError(t, ppa.Enable())
	evalProgram(t, interp, binds, testProgram)
	evalProgram(t, interp, binds, `
fun fib(n) {
  if (n < 2) {
    return n;
  }
  return fib(n - 1) + fib(n - 2);
}
fib(18);
`)
	assert.NoError(t, ppa.Complete())
}

func TestPprofAnnotatorDoubleEnable(t *testing.T) {
	interp, _ := newTestInterp(t)
	ppa := profiler.NewPprofAnnotator(interp.Runtime(), nil)
	assert.NoError(t, ppa.Enable())
	assert.Error(t, ppa.Enable())
}
