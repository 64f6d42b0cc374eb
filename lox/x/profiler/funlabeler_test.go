// Copyright © 2026 The golox authors

package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{
			name:     "empty",
			label:    "",
			expected: "",
		},
		{
			name:     "normal",
			label:    "addIt",
			expected: "addIt",
		},
		{
			name:     "spaces",
			label:    "add  it",
			expected: "add_it",
		},
		{
			name:     "underscores collapse",
			label:    "add__it",
			expected: "add_it",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := sanitizeLabel(tc.label)
			assert.Equal(t, tc.expected, actual, "sanitizeLabel(%s)", tc.label)
		})
	}
}
