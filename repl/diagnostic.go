// Copyright © 2026 The golox authors

package repl

import (
	"io"

	"github.com/loxlang/golox/diagnostic"
)

// renderError renders an interpreter error using the diagnostic renderer.
// REPL input comes from stdin rather than a file, so there is no source
// snippet; the renderer degrades to the location and error message.
func renderError(w io.Writer, message string) {
	r := &diagnostic.Renderer{Color: diagnostic.ColorAuto}
	_ = r.Render(w, diagnostic.FromMessage("<stdin>", message))
}

// renderErrors renders every message from a parse with multiple syntax
// errors.
func renderErrors(w io.Writer, messages []string) {
	r := &diagnostic.Renderer{Color: diagnostic.ColorAuto}
	_ = r.RenderAll(w, diagnostic.FromMessages("<stdin>", messages))
}
