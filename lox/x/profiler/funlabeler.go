// Copyright © 2026 The golox authors

package profiler

import (
	"regexp"

	"github.com/loxlang/golox/lox"
)

// FunLabeler provides an alternative name for a function label in the trace.
type FunLabeler func(runtime *lox.Runtime, fun *lox.Closure) string

// WithFunLabeler sets the labeler for tracing spans.
func WithFunLabeler(funLabeler FunLabeler) Option {
	return func(p *profiler) {
		p.funLabeler = funLabeler
	}
}

// WithSanitizedLabeler labels spans with the declared function name reduced
// to a single printable word.
func WithSanitizedLabeler() Option {
	return WithFunLabeler(func(runtime *lox.Runtime, fun *lox.Closure) string {
		return sanitizeLabel(defaultFunName(fun))
	})
}

var (
	sanitizeRegExp   = regexp.MustCompile(`[\s_]+`)
	validLabelRegExp = regexp.MustCompile(`[[:graph:]]*`)
)

func sanitizeLabel(userLabel string) string {
	if userLabel == "" {
		return ""
	}

	// Replace spaces with underscores
	userLabel = sanitizeRegExp.ReplaceAllString(userLabel, "_")

	// Find the first valid label match
	matches := validLabelRegExp.FindStringSubmatch(userLabel)
	if len(matches) > 0 {
		return matches[0]
	}

	return ""
}
