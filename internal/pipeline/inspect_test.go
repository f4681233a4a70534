package pipeline

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestInspect - Structure counts
// ---------------------------------------------------------------------------

func TestInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Stats
	}{
		{
			name:     "empty",
			input:    "",
			expected: Stats{},
		},
		{
			name:     "two paragraphs with a break",
			input:    "<p>a<br />\nb</p>\n<p>c</p>\n",
			expected: Stats{Paragraphs: 2, LineBreaks: 1},
		},
		{
			name:     "pre block",
			input:    "<pre>\nx\n</pre>\n<p>y</p>\n",
			expected: Stats{Paragraphs: 1, PreBlocks: 1},
		},
		{
			name:     "full document",
			input:    "<!DOCTYPE html><html><body><p>a</p></body></html>",
			expected: Stats{Paragraphs: 1},
		},
		{
			name:     "unclosed paragraph reported",
			input:    "<p>a\n<div>b</div>",
			expected: Stats{Paragraphs: 1, Unbalanced: []string{"p"}},
		},
		{
			name:     "void elements ignored",
			input:    "<p>a<br><img src=x></p><hr>",
			expected: Stats{Paragraphs: 1, LineBreaks: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Inspect(tt.input)
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Inspect(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
			if got.Balanced() != (len(tt.expected.Unbalanced) == 0) {
				t.Errorf("Balanced() = %v, want %v", got.Balanced(), len(tt.expected.Unbalanced) == 0)
			}
		})
	}
}
