package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/filesystem"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/github"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/static"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0600))
}

func TestBootstrap_Defaults(t *testing.T) {
	dir := t.TempDir()

	svc, err := bootstrap(context.Background(), cli.BootstrapOptions{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	assert.False(t, svc.History.Enabled())
	assert.Equal(t, filepath.Join(dir, "config.toml"), svc.Settings.Path())

	results, err := svc.Search.Search(context.Background(), "getting started", domain.SearchOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "/docs/getting-started", results[0].Document.Href)
}

func TestBootstrap_DirectoryOverridesStaticPages(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "index.md"),
		[]byte("---\ntitle: Local Home\n---\n# Local Home\n\nWelcome from disk.\n"), 0600))

	writeConfig(t, dir, "[corpus]\ndir = '"+docs+"'\n")

	svc, err := bootstrap(context.Background(), cli.BootstrapOptions{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	doc, err := svc.Corpus.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "Local Home", doc.Title)
}

func TestBootstrap_HistoryEnabled(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[history]\nenabled = true\n")

	svc, err := bootstrap(context.Background(), cli.BootstrapOptions{ConfigDir: dir})
	require.NoError(t, err)

	require.True(t, svc.History.Enabled())

	_, err = svc.Search.Search(context.Background(), "xray", domain.SearchOptions{})
	require.NoError(t, err)

	records, err := svc.History.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "xray", records[0].Query)

	require.NoError(t, svc.Close())
	assert.FileExists(t, filepath.Join(dir, "history.db"))
}

func TestBootstrap_NoSources(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[corpus]\nstatic = false\n")

	_, err := bootstrap(context.Background(), cli.BootstrapOptions{ConfigDir: dir})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no corpus sources enabled")
}

func TestBuildSources_Order(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Corpus.Dir = "/srv/docs"
	settings.GitHub.Owner = "acme"
	settings.GitHub.Repo = "agents"

	sources, err := buildSources(&settings)

	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, filesystem.SourceName, sources[0].Name())
	assert.Equal(t, github.SourceName, sources[1].Name())
	assert.IsType(t, &static.Source{}, sources[2])
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "docs"), expandHome("~/docs"))
	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, "/srv/docs", expandHome("/srv/docs"))
	assert.Equal(t, "~other/docs", expandHome("~other/docs"))
}
