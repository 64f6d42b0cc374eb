// Copyright © 2026 The golox authors

package profiler

import (
	"context"
	"errors"

	"go.opencensus.io/trace"

	"github.com/loxlang/golox/lox"
)

var _ lox.Profiler = &ocAnnotator{}

type ocAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       []context.Context
}

func NewOpenCensusAnnotator(runtime *lox.Runtime, parentContext context.Context, opts ...Option) *ocAnnotator {
	p := &ocAnnotator{
		profiler: profiler{
			runtime: runtime,
		},
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *ocAnnotator) Enable() error {
	p.runtime.Profiler = p
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.profiler.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) Start(fun *lox.Closure) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	prettyLabel, _ := p.prettyFunName(fun)
	p.contexts = append(p.contexts, p.currentContext)
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, prettyLabel)
	return func() {
		p.end(fun)
	}
}

func (p *ocAnnotator) end(fun *lox.Closure) {
	if !p.enabled || len(p.contexts) == 0 {
		return
	}
	p.currentSpan.Annotate([]trace.Attribute{
		trace.Int64Attribute("line", int64(funLine(fun))),
	}, "source")
	p.currentSpan.End()
	// And pop the current context back
	p.currentContext = p.contexts[len(p.contexts)-1]
	p.contexts = p.contexts[:len(p.contexts)-1]
	p.currentSpan = trace.FromContext(p.currentContext)
}
