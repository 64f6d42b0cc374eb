// Copyright © 2026 The golox authors

// Package profiler provides lox.Profiler implementations that annotate
// function calls during evaluation: pprof goroutine labels, OpenTelemetry
// spans, OpenCensus spans, and callgrind output files.
package profiler

import (
	"fmt"

	"github.com/loxlang/golox/lox"
)

// profiler is a minimal lox.Profiler
type profiler struct {
	runtime    *lox.Runtime
	enabled    bool
	skipFilter SkipFilter
	funLabeler FunLabeler
}

var _ lox.Profiler = &profiler{}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

type Option func(*profiler)

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) Start(fun *lox.Closure) func() {
	return func() {}
}

func (p *profiler) Complete() error {
	return nil
}

// defaultFunName returns the declared name of fun.
func defaultFunName(fun *lox.Closure) string {
	if fun == nil || fun.Decl == nil {
		return ""
	}
	return fun.Decl.Name
}

// prettyFunName returns a pretty name and original name for a fun.  If there
// is no pretty name, then the pretty name is the original name.
func (p *profiler) prettyFunName(fun *lox.Closure) (string, string) {
	origLabel := defaultFunName(fun)
	if origLabel == "" {
		return "", ""
	}
	prettyLabel := origLabel
	if p.funLabeler != nil {
		prettyLabel = p.funLabeler(p.runtime, fun)
	}
	if prettyLabel == "" {
		prettyLabel = origLabel
	}
	return prettyLabel, origLabel
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(fun *lox.Closure) bool {
	return !p.enabled || defaultSkipFilter(fun) || p.skipFilter != nil && p.skipFilter(fun)
}

// funLine returns the declaration line of fun, or zero when unknown.
func funLine(fun *lox.Closure) int {
	if fun == nil || fun.Decl == nil {
		return 0
	}
	return fun.Decl.Line
}
