package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicon_ExpandKey(t *testing.T) {
	lex := NewLexicon(map[string][]string{"debug": {"trace", "inspect"}}, nil)

	assert.Equal(t, []string{"trace", "inspect"}, lex.Expand("debug"))
}

func TestLexicon_ExpandIsSymmetric(t *testing.T) {
	lex := NewLexicon(map[string][]string{"debug": {"trace", "inspect"}}, nil)

	assert.Equal(t, []string{"debug"}, lex.Expand("trace"))
	assert.Equal(t, []string{"debug"}, lex.Expand("INSPECT"))
}

func TestLexicon_ExpandTypo(t *testing.T) {
	lex := NewLexicon(
		map[string][]string{"agent": {"assistant"}},
		map[string]string{"agnet": "agent"},
	)

	terms := lex.Expand("agnet")
	assert.Equal(t, []string{"agent", "assistant"}, terms)
}

func TestLexicon_ExpandUnknown(t *testing.T) {
	lex := DefaultLexicon()

	assert.Empty(t, lex.Expand("zebra"))
	assert.Empty(t, lex.Expand("   "))
}

func TestLexicon_ExpandExcludesToken(t *testing.T) {
	lex := NewLexicon(map[string][]string{"a": {"b"}, "b": {"a"}}, nil)

	assert.NotContains(t, lex.Expand("a"), "a")
	assert.NotContains(t, lex.Expand("b"), "b")
}

func TestLexicon_Immutable(t *testing.T) {
	syn := map[string][]string{"debug": {"trace"}}
	typos := map[string]string{"debgu": "debug"}
	lex := NewLexicon(syn, typos)

	syn["debug"] = append(syn["debug"], "xray")
	typos["dbug"] = "debug"

	assert.Equal(t, []string{"trace"}, lex.Expand("debug"))
	_, ok := lex.Correct("dbug")
	assert.False(t, ok)

	copied := lex.Synonyms()
	copied["debug"][0] = "changed"
	assert.Equal(t, []string{"trace"}, lex.Expand("debug"))
}

func TestLexicon_Correct(t *testing.T) {
	lex := DefaultLexicon()

	fixed, ok := lex.Correct("XREY")
	require.True(t, ok)
	assert.Equal(t, "xray", fixed)

	_, ok = lex.Correct("xray")
	assert.False(t, ok)
}

func TestLexicon_Merge(t *testing.T) {
	base := NewLexicon(map[string][]string{"debug": {"trace"}}, nil)

	merged := base.Merge(
		map[string][]string{"debug": {"logs"}, "cache": {"memo"}},
		map[string]string{"cahce": "cache"},
	)

	assert.ElementsMatch(t, []string{"trace", "logs"}, merged.Expand("debug"))
	assert.Equal(t, []string{"cache", "memo"}, merged.Expand("cahce"))
	assert.Equal(t, []string{"trace"}, base.Expand("debug"))
}

func TestDefaultLexicon_TraceFindsDebug(t *testing.T) {
	assert.Contains(t, DefaultLexicon().Expand("trace"), "debug")
}
