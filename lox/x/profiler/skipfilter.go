// Copyright © 2026 The golox authors

package profiler

import (
	"regexp"

	"github.com/loxlang/golox/lox"
)

// SkipFilter reports whether a call to fun should be left out of the trace.
type SkipFilter func(fun *lox.Closure) bool

func defaultSkipFilter(fun *lox.Closure) bool {
	return fun == nil || fun.Decl == nil || fun.Decl.Name == ""
}

// WithSkipFilter sets the filter for tracing spans.
func WithSkipFilter(skipFilter SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = skipFilter
	}
}

// WithNameFilter filters to only include spans for functions whose declared
// name matches pattern.
func WithNameFilter(pattern *regexp.Regexp) Option {
	return WithSkipFilter(func(fun *lox.Closure) bool {
		return !pattern.MatchString(defaultFunName(fun))
	})
}
