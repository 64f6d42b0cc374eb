// Copyright © 2026 The golox authors

package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDefineGet(t *testing.T) {
	env := NewEnv()
	_, ok := env.Get("x")
	assert.False(t, ok)

	env.Define("x", Number(1))
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, Number(1), v)

	// Redeclaration in the same scope rebinds.
	env.Define("x", Number(2))
	v, _ = env.Get("x")
	assert.Equal(t, Number(2), v)
	assert.Equal(t, 1, env.Len())
}

func TestEnvSet(t *testing.T) {
	env := NewEnv()
	assert.False(t, env.Set("x", Number(1)), "Set must not create bindings")

	env.Define("x", Number(1))
	assert.True(t, env.Set("x", Number(2)))
	v, _ := env.Get("x")
	assert.Equal(t, Number(2), v)
}

func TestEnvShadowing(t *testing.T) {
	env := NewEnv()
	env.Define("x", Number(1))
	env.PushScope()
	env.Define("x", Number(2))

	v, _ := env.Get("x")
	assert.Equal(t, Number(2), v)

	// Set targets the innermost binding.
	env.Set("x", Number(3))
	v, _ = env.Get("x")
	assert.Equal(t, Number(3), v)

	env.PopScope()
	v, _ = env.Get("x")
	assert.Equal(t, Number(1), v, "outer binding survives the inner scope")
}

func TestEnvPopScopeDiscards(t *testing.T) {
	env := NewEnv()
	env.Define("a", Number(1))
	env.PushScope()
	env.Define("b", Number(2))
	env.Define("c", Number(3))
	assert.Equal(t, 3, env.Len())

	env.PopScope()
	assert.Equal(t, 1, env.Len())
	_, ok := env.Get("b")
	assert.False(t, ok)
}

func TestEnvSlots(t *testing.T) {
	env := NewEnv()
	env.Define("a", Number(1))
	env.Define("b", Number(2))
	env.PushScope()
	env.Define("a", Number(3))

	i, ok := env.GetIndex("a")
	assert.True(t, ok)
	assert.Equal(t, 2, i, "GetIndex finds the innermost binding")
	assert.Equal(t, Number(3), env.GetSlot(2))
	assert.Equal(t, Number(1), env.GetSlot(0))

	env.SetSlot(0, Number(10))
	assert.Equal(t, Number(10), env.GetSlot(0))
}

func TestCaptureEnvSharesCells(t *testing.T) {
	outer := NewEnv()
	outer.Define("n", Number(0))

	captured := NewCaptureEnv(outer)
	v, ok := captured.Get("n")
	assert.True(t, ok)
	assert.Equal(t, Number(0), v)

	// Writes through either environment are visible through both.
	captured.Set("n", Number(1))
	v, _ = outer.Get("n")
	assert.Equal(t, Number(1), v)

	outer.Set("n", Number(2))
	v, _ = captured.Get("n")
	assert.Equal(t, Number(2), v)
}

func TestCaptureEnvIsolation(t *testing.T) {
	outer := NewEnv()
	outer.Define("n", Number(0))
	captured := NewCaptureEnv(outer)

	// New definitions never leak back into the enclosing environment.
	captured.Define("m", Number(1))
	_, ok := outer.Get("m")
	assert.False(t, ok)

	// Redeclaring a captured name installs a fresh cell; the enclosing
	// binding keeps its value.
	captured.Define("n", Number(9))
	v, _ := outer.Get("n")
	assert.Equal(t, Number(0), v)
}

func TestCaptureEnvSnapshot(t *testing.T) {
	outer := NewEnv()
	outer.Define("n", Number(0))
	captured := NewCaptureEnv(outer)

	// Bindings added to the enclosing environment after the snapshot are
	// invisible to the capture.
	outer.Define("late", Number(1))
	_, ok := captured.Get("late")
	assert.False(t, ok)
}

func TestEnvNames(t *testing.T) {
	env := NewEnv()
	env.Define("a", Number(1))
	env.PushScope()
	env.Define("b", Number(2))
	env.Define("a", Number(3))
	assert.Equal(t, []string{"a", "b", "a"}, env.Names())
}
