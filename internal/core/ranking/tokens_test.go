package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace", "  \t ", []string{}},
		{"lowercases", "Agent TOOLS", []string{"agent", "tools"}},
		{"dedupes", "agent agent tools", []string{"agent", "tools"}},
		{"trims punctuation", "\"agents,\" (tools)?", []string{"agents", "tools"}},
		{"keeps inner hyphen", "getting-started", []string{"getting-started"}},
		{"drops punctuation only", "-- agent", []string{"agent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestContentTerms_StripsStopWords(t *testing.T) {
	terms := ContentTerms("The agent and the Tools, with memory.")

	assert.Equal(t, map[string]struct{}{"agent": {}, "tools": {}, "memory": {}}, terms)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "xray2", Clean("X-Ray 2!"))
	assert.Equal(t, "", Clean("  -- "))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "getting-started", Slugify("Getting   Started"))
	assert.Equal(t, "agent", Slugify(" agent "))
}

func TestNGrams(t *testing.T) {
	assert.Equal(t, []string{"abc", "bcd"}, NGrams("abcd", 3))
	assert.Equal(t, []string{"aaa"}, NGrams("aaaaa", 3))
	assert.Nil(t, NGrams("ab", 3))
	assert.Nil(t, NGrams("abc", 0))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.False(t, IsStopWord("agent"))
}
