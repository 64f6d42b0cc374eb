// Copyright © 2026 The golox authors

package profiler

import (
	"context"
	"runtime/pprof"

	"github.com/loxlang/golox/lox"
)

// pprofAnnotator appends tags to pprof output if pprof is enabled.  It does
// not start pprof for the user; that would be more annoying than useful in
// most contexts where this could be used.
type pprofAnnotator struct {
	profiler
	currentContext context.Context
}

var _ lox.Profiler = &pprofAnnotator{}

func NewPprofAnnotator(runtime *lox.Runtime, parentContext context.Context, opts ...Option) *pprofAnnotator {
	p := &pprofAnnotator{
		profiler: profiler{
			runtime: runtime,
		},
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *pprofAnnotator) Enable() error {
	p.runtime.Profiler = p
	if p.currentContext == nil {
		p.currentContext = context.Background()
	}
	return p.profiler.Enable()
}

func (p *pprofAnnotator) Complete() error {
	pprof.SetGoroutineLabels(context.Background())
	return nil
}

func (p *pprofAnnotator) Start(fun *lox.Closure) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	// The context is kept on a stack here rather than using pprof.Do so
	// that evaluation of non-profiled programs does not pay for an extra
	// closure on every call.
	oldContext := p.currentContext
	prettyLabel, _ := p.prettyFunName(fun)
	p.currentContext = pprof.WithLabels(p.currentContext, pprof.Labels("function", prettyLabel))
	// apply the selected labels to the current goroutine (NB this will propagate if the code branches further down...
	pprof.SetGoroutineLabels(p.currentContext)

	return func() {
		p.currentContext = oldContext
		pprof.SetGoroutineLabels(p.currentContext)
	}
}
