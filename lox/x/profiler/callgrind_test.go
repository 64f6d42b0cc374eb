// Copyright © 2026 The golox authors

package profiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/lox/x/profiler"
)

func TestNewCallgrind(t *testing.T) {
	interp, binds := newTestInterp(t)
	// Create a profiler
	p := profiler.NewCallgrindProfiler(interp.Runtime())
	outfile := filepath.Join(t.TempDir(), "callgrind.test_prof")
	// Tell it what to do with the output
	require.NoError(t, p.SetFile(outfile))
	// Enable the profiler
	require.NoError(t, p.Enable())
	evalProgram(t, interp, binds, testProgram)
	// Mark the profile as complete and dump the rest of the profile
	require.NoError(t, p.Complete())

	out, err := os.ReadFile(outfile)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "version: 1")
	assert.Contains(t, text, "events: Time_(ns) Memory_(bytes)")
	assert.Contains(t, text, "ENTRYPOINT")
	assert.Contains(t, text, "addIt")
	assert.Contains(t, text, "recurseIt")
	assert.Contains(t, text, "summary ")
}

func TestCallgrindRequiresFile(t *testing.T) {
	interp, _ := newTestInterp(t)
	p := profiler.NewCallgrindProfiler(interp.Runtime())
	assert.Error(t, p.Enable())
}
