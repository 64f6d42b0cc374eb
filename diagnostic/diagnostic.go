// Copyright © 2026 The golox authors

// Package diagnostic provides annotated error rendering for golox CLI
// output.  It is intentionally independent of the lox/ package so that it
// can be used by any CLI command without creating import cycles.
package diagnostic

import (
	"regexp"
	"strconv"
)

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span identifies a source line to highlight in the diagnostic.  Scanner,
// parser and runtime errors carry line numbers only, so spans cover whole
// lines.
type Span struct {
	File  string // path for reading source; display name if unreadable
	Line  int    // 1-based line number
	Label string // text shown under the underline
}

// Diagnostic represents a single error, warning, or note with optional
// source annotations and trailing notes.
type Diagnostic struct {
	Severity Severity
	Message  string
	Spans    []Span
	Notes    []string
}

// Error messages embed their position as either "at line N" or a
// "Line N at 'tok'" prefix.
var lineNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`at line ([0-9]+)$`),
	regexp.MustCompile(`^Line ([0-9]+) at`),
}

// FromMessage builds an error diagnostic from one of the interpreter's
// error strings, recovering the source line from the message text when it
// carries one.
func FromMessage(file, message string) Diagnostic {
	d := Diagnostic{
		Severity: SeverityError,
		Message:  message,
	}
	for _, pattern := range lineNumberPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		line, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		d.Spans = append(d.Spans, Span{File: file, Line: line})
		break
	}
	return d
}

// FromMessages builds one diagnostic per message, for parsers that report
// multiple errors in a single pass.
func FromMessages(file string, messages []string) []Diagnostic {
	diags := make([]Diagnostic, len(messages))
	for i, message := range messages {
		diags[i] = FromMessage(file, message)
	}
	return diags
}
