package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range settingsCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["show"])
	assert.True(t, names["set"])
	assert.True(t, names["path"])
}

func TestSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Limit: 10")
	assert.Contains(t, out, "Snippet length: 160")
	assert.Contains(t, out, "exact_title")
	assert.Contains(t, out, "Built-in pages: true")
	assert.Contains(t, out, "Status: not configured")
	assert.Contains(t, out, "Enabled: false")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsSet_ThenShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "search.limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set search.limit = 5")

	out, err = execute(t, "settings", "set", "weights.exact_title", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "Set weights.exact_title = 250")

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Limit: 5")
	assert.Contains(t, out, "250")
}

func TestSettingsSet_GitHubMasksToken(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	for _, kv := range [][2]string{
		{"github.owner", "acme"},
		{"github.repo", "agents"},
		{"github.token", "ghp_abcdefgh1234"},
	} {
		_, err := execute(t, "settings", "set", kv[0], kv[1])
		require.NoError(t, err)
	}

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Repository: acme/agents")
	assert.Contains(t, out, "1234")
	assert.NotContains(t, out, "ghp_abcdefgh1234")
}

func TestSettingsSet_InvalidValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "search.limit", "lots")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "search.limit")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsPath(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "path")

	require.NoError(t, err)
	assert.Contains(t, out, ":memory:")
}

func TestSettings_NotConfigured(t *testing.T) {
	cleanup := clearServices()
	defer cleanup()

	for _, args := range [][]string{
		{"settings", "show"},
		{"settings", "set", "search.limit", "5"},
		{"settings", "path"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", maskToken("abc"))
	assert.Equal(t, "****5678", maskToken("ghp_12345678"))
}

func TestListOrNone(t *testing.T) {
	assert.Equal(t, "(none)", listOrNone(nil))
	assert.Equal(t, "/a, /b", listOrNone([]string{"/a", "/b"}))
}
