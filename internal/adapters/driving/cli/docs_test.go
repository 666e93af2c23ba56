package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/static"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func TestDocsCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range docsCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["show"])
	assert.True(t, names["sections"])
	assert.True(t, names["reload"])
}

func TestDocsList_PrintsEveryPage(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "/docs/concepts/agents")
	assert.Contains(t, out, "[Concepts]")
	assert.Contains(t, out, "Total: ")
}

func TestDocsList_SectionFilter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs", "list", "--json", "--section", "Deployment")

	require.NoError(t, err)

	var docs []domain.Document
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 3)
	for _, d := range docs {
		assert.Equal(t, static.SectionDeployment, d.Section)
	}
}

func TestDocsList_UnknownSection(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs", "list", "--section", "Nope")

	require.NoError(t, err)
	assert.Contains(t, out, "No pages found.")
}

func TestDocsShow_PrintsPage(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs", "show", "/docs/deployment/docker")

	require.NoError(t, err)
	assert.Contains(t, out, "Page: /docs/deployment/docker")
	assert.Contains(t, out, "Title:    Deploy with Docker")
	assert.Contains(t, out, "Section:  Deployment")
	assert.Contains(t, out, "Keywords: deploy, container, docker, fastapi")
	assert.Contains(t, out, "FastAPI endpoint")
}

func TestDocsShow_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs", "show", "--json", "/")

	require.NoError(t, err)

	var doc domain.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Home", doc.Title)
}

func TestDocsShow_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "docs", "show", "/docs/missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocsShow_RequiresHref(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "docs", "show")

	assert.Error(t, err)
}

func TestDocsSections(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs", "sections")

	require.NoError(t, err)
	assert.Contains(t, out, static.SectionObservability)
	assert.Contains(t, out, static.SectionReference)
}

func TestDocsReload(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs", "reload")

	require.NoError(t, err)
	assert.Contains(t, out, "Loaded ")
	assert.Contains(t, out, " pages")
}

func TestDocs_NotConfigured(t *testing.T) {
	cleanup := clearServices()
	defer cleanup()

	for _, args := range [][]string{
		{"docs", "list"},
		{"docs", "show", "/"},
		{"docs", "sections"},
		{"docs", "reload"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "corpus service not configured")
	}
}
