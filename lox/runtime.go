// Copyright © 2026 The golox authors

package lox

import (
	"io"
	"os"
)

// Runtime holds the shared state underlying an interpreter: output streams
// and the optional call profiler.
type Runtime struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Profiler Profiler
}

// StandardRuntime returns a new Runtime writing to the process streams.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Profiler annotates function calls during evaluation.  Implementations live
// in lox/x/profiler.
type Profiler interface {
	// IsEnabled returns true when call annotation is active.
	IsEnabled() bool
	// Enable starts call annotation.
	Enable() error
	// Start records entry into fun and returns a function recording the
	// matching exit.
	Start(fun *Closure) func()
	// Complete flushes any annotation state at the end of execution.
	Complete() error
}

// Config is a function that configures a Runtime.
type Config func(*Runtime)

// WithStdout returns a Config directing program output (print statements)
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

// WithStderr returns a Config directing driver diagnostics to w instead of
// the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stderr = w
	}
}

// WithProfiler returns a Config installing a call profiler.
func WithProfiler(p Profiler) Config {
	return func(rt *Runtime) {
		rt.Profiler = p
	}
}
