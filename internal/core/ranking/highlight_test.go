package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func brackets(s string) string { return "[" + s + "]" }

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{"single term", "Tracing with xray", "xray", "Tracing with [xray]"},
		{"case insensitive", "Agents and agents", "AGENTS", "[Agents] and [agents]"},
		{"longest first", "Multi-agent agents", "agent agents", "Multi-[agent] [agents]"},
		{"stop words skipped", "How to use the tools", "the tools", "How to use the [tools]"},
		{"no terms", "Getting Started", "the", "Getting Started"},
		{"no match", "Memory", "xray", "Memory"},
		{"empty text", "", "xray", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.query, brackets))
		})
	}
}

func TestHighlight_NilMark(t *testing.T) {
	assert.Equal(t, "xray", Highlight("xray", "xray", nil))
}
