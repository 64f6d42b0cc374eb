// Copyright © 2026 The golox authors

package cmd

import (
	"os"

	"github.com/loxlang/golox/diagnostic"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// renderErrors renders interpreter error messages with diagnostic
// formatting to stderr, annotated with source snippets from file when it
// names a readable path.
func renderErrors(file string, messages ...string) {
	r := newRenderer()
	_ = r.RenderAll(os.Stderr, diagnostic.FromMessages(file, messages))
}
