package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/static"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsearch/internal/core/services"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// setupTestServices wires real services over the built-in pages and
// in-memory stores. The returned func restores the previous services.
func setupTestServices() func() {
	prevSearch, prevCorpus := searchService, corpusService
	prevHistory, prevSettings := historyService, settingsService
	prevBootstrap, prevClose := bootstrap, closeService

	queryLog := memory.NewQueryLog(100)
	corpus := services.NewCorpusService(static.New())

	SetServices(&Services{
		Search:   services.NewSearchService(corpus, nil, services.WithQueryLog(queryLog)),
		Corpus:   corpus,
		History:  services.NewHistoryService(queryLog),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})
	bootstrap = nil

	return func() {
		searchService, corpusService = prevSearch, prevCorpus
		historyService, settingsService = prevHistory, prevSettings
		bootstrap, closeService = prevBootstrap, prevClose
		resetFlags()
	}
}

// clearServices removes every service so commands report they are not configured.
func clearServices() func() {
	restore := setupTestServices()
	searchService = nil
	corpusService = nil
	historyService = nil
	settingsService = nil
	return restore
}

// resetFlags puts flag variables back to their defaults. Cobra keeps
// parsed values between Execute calls on the same command tree.
func resetFlags() {
	verbose = false
	configDir = ""
	logger.SetVerbose(false)
	searchLimit = 0
	searchOffset = 0
	searchSections = nil
	searchJSON = false
	searchExplain = false
	docsListSection = nil
	docsListJSON = false
	docsShowJSON = false
	historyLimit = 20
	historyJSON = false
	_ = mcpServeCmd.Flags().Set("port", "0")
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	}()

	err := run(context.Background())
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "docsearch", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "typo-tolerant")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
	assert.Equal(t, "false", v.DefValue)

	dir := rootCmd.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, dir)
	assert.Equal(t, "", dir.DefValue)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"search", "suggest", "docs", "history", "settings", "mcp", "tui", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestSetServices_NilIsIgnored(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	before := searchService
	SetServices(nil)
	assert.Equal(t, before, searchService)
}

func TestBootstrap_ReceivesFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var got BootstrapOptions
	SetBootstrap(func(_ context.Context, opts BootstrapOptions) (*Services, error) {
		got = opts
		return &Services{
			Search:   searchService,
			Corpus:   corpusService,
			History:  historyService,
			Settings: settingsService,
		}, nil
	})

	_, err := execute(t, "--config-dir", "/tmp/docsearch-test", "-v", "version")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/docsearch-test", got.ConfigDir)
	assert.True(t, got.Verbose)
}

func TestBootstrap_ErrorStopsCommand(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetBootstrap(func(context.Context, BootstrapOptions) (*Services, error) {
		return nil, errors.New("config unreadable")
	})

	_, err := execute(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialise")
	assert.Contains(t, err.Error(), "config unreadable")
}

func TestTeardown_ClosesServicesOnce(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	closed := 0
	SetBootstrap(func(context.Context, BootstrapOptions) (*Services, error) {
		return &Services{
			Search: searchService,
			Corpus: corpusService,
			Close: func() error {
				closed++
				return nil
			},
		}, nil
	})

	_, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	assert.Nil(t, closeService)
}

func TestTeardown_ClosesServicesWhenCommandFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	closed := 0
	SetBootstrap(func(context.Context, BootstrapOptions) (*Services, error) {
		return &Services{
			Search: searchService,
			Corpus: corpusService,
			Close: func() error {
				closed++
				return nil
			},
		}, nil
	})

	_, err := execute(t, "docs", "show", "/missing")

	require.Error(t, err)
	assert.Equal(t, 1, closed)
	assert.Nil(t, closeService)
}

func TestTeardown_CloseErrorIsReported(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetBootstrap(func(context.Context, BootstrapOptions) (*Services, error) {
		return &Services{
			Search: searchService,
			Corpus: corpusService,
			Close:  func() error { return errors.New("database locked") },
		}, nil
	})

	_, err := execute(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database locked")
}

func TestCommandContext_FallsBackToBackground(t *testing.T) {
	assert.NotNil(t, commandContext(versionCmd))
}
