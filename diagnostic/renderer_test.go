// Copyright © 2026 The golox authors

package diagnostic

import (
	"bytes"
	"strings"
	"testing"
)

func TestFromMessage(t *testing.T) {
	tests := []struct {
		message string
		line    int // 0 means no span expected
	}{
		{"Undefined variable x at line 4", 4},
		{"Expected 2 arguments but got 1 at line 12", 12},
		{"Line 3 at ';': Expected '=' after var identifier", 3},
		{"Must be numbers", 0},
		{"At EOF: Expected '}' after block", 0},
	}
	for _, test := range tests {
		d := FromMessage("prog.lox", test.message)
		if d.Severity != SeverityError {
			t.Errorf("%q: expected error severity", test.message)
		}
		if d.Message != test.message {
			t.Errorf("%q: message mangled: %q", test.message, d.Message)
		}
		if test.line == 0 {
			if len(d.Spans) != 0 {
				t.Errorf("%q: unexpected span %v", test.message, d.Spans)
			}
			continue
		}
		if len(d.Spans) != 1 {
			t.Errorf("%q: expected 1 span (got %d)", test.message, len(d.Spans))
			continue
		}
		if d.Spans[0].Line != test.line {
			t.Errorf("%q: expected line %d (got %d)", test.message, test.line, d.Spans[0].Line)
		}
		if d.Spans[0].File != "prog.lox" {
			t.Errorf("%q: expected file prog.lox (got %s)", test.message, d.Spans[0].File)
		}
	}
}

const rendererSource = `var x = 1;
print missing;
print x;
`

func testRenderer() *Renderer {
	return &Renderer{
		Color: ColorNever,
		SourceReader: func(name string) ([]byte, error) {
			return []byte(rendererSource), nil
		},
	}
}

func TestRenderSpan(t *testing.T) {
	var buf bytes.Buffer
	d := FromMessage("prog.lox", "Undefined variable missing at line 2")
	if err := testRenderer().Render(&buf, d); err != nil {
		t.Fatal(err)
	}
	want := `error: Undefined variable missing at line 2
  --> prog.lox:2
   |
 2 |  print missing;
   |  ^^^^^^^^^^^^^^
   |
`
	if buf.String() != want {
		t.Errorf("unexpected rendering:\n%s", buf.String())
	}
}

func TestRenderNoSource(t *testing.T) {
	var buf bytes.Buffer
	d := FromMessage("<stdin>", "Undefined variable missing at line 2")
	if err := testRenderer().Render(&buf, d); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "error: Undefined variable missing at line 2\n") {
		t.Errorf("missing header:\n%s", out)
	}
	if strings.Contains(out, "print missing") {
		t.Errorf("stdin input must not read a source file:\n%s", out)
	}
}

func TestRenderNotes(t *testing.T) {
	var buf bytes.Buffer
	d := Diagnostic{
		Severity: SeverityError,
		Message:  "Must be numbers",
		Notes:    []string{"operands to '-' must both be numbers"},
	}
	if err := testRenderer().Render(&buf, d); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "= note: operands to '-' must both be numbers") {
		t.Errorf("missing note:\n%s", buf.String())
	}
}

func TestRenderAll(t *testing.T) {
	var buf bytes.Buffer
	diags := FromMessages("prog.lox", []string{
		"Line 1 at ';': Expected '=' after var identifier",
		"Line 3 at ')': Expected primary expression, found ')' at line 3",
	})
	if err := testRenderer().RenderAll(&buf, diags); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "error:"); got != 2 {
		t.Errorf("expected 2 rendered errors (got %d):\n%s", got, buf.String())
	}
}
