package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_HasKeyword(t *testing.T) {
	doc := Document{Keywords: []string{"Agents", "tools"}}

	assert.True(t, doc.HasKeyword("agents"))
	assert.True(t, doc.HasKeyword("TOOLS"))
	assert.False(t, doc.HasKeyword("tool"))
}

func TestDocument_InSection(t *testing.T) {
	doc := Document{Section: "Guides"}

	assert.True(t, doc.InSection(nil))
	assert.True(t, doc.InSection([]string{"blog", " guides "}))
	assert.False(t, doc.InSection([]string{"blog"}))
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultResultLimit, s.Search.Limit)
	assert.Equal(t, DefaultSnippetLength, s.Search.SnippetLength)
	assert.Contains(t, s.Search.Curated, "/docs/getting-started")
	assert.True(t, s.Corpus.Static)
	assert.False(t, s.History.Enabled)
	assert.False(t, s.GitHub.IsConfigured())
}

func TestGitHubSettings_IsConfigured(t *testing.T) {
	assert.True(t, GitHubSettings{Owner: "acme", Repo: "docs"}.IsConfigured())
	assert.False(t, GitHubSettings{Owner: "acme"}.IsConfigured())
}
