// Command docsearch searches the agent framework documentation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/filesystem"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/github"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus/static"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ranking"
	"github.com/custodia-labs/docsearch/internal/core/services"
	"github.com/custodia-labs/docsearch/internal/logger"
	"github.com/custodia-labs/docsearch/internal/metrics"
	"github.com/custodia-labs/docsearch/internal/normalisers"
	"github.com/custodia-labs/docsearch/internal/normalisers/html"
	"github.com/custodia-labs/docsearch/internal/normalisers/markdown"
	"github.com/custodia-labs/docsearch/internal/normalisers/plaintext"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(ctx, version); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap reads settings from the config directory and wires every
// service the commands use.
func bootstrap(ctx context.Context, opts cli.BootstrapOptions) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	sources, err := buildSources(settings)
	if err != nil {
		return nil, err
	}
	for i, src := range sources {
		sources[i] = metrics.InstrumentSource(src)
	}
	corpusService := services.NewCorpusService(sources...)
	if settings.Corpus.Watch {
		if err := corpusService.WatchSources(ctx); err != nil {
			logger.Warn("corpus watch disabled: %v", err)
		}
	}

	ranker := ranking.NewRanker(settings.Weights, settings.Lexicon, settings.Search.Curated)

	var queryLog driven.QueryLog
	if settings.History.Enabled {
		store, err := sqlite.NewStore(settings.History.Dir)
		if err != nil {
			return nil, fmt.Errorf("open query log: %w", err)
		}
		queryLog = store.QueryLog()
		logger.Debug("query log at %s", store.Path())
	}

	searchOpts := []services.SearchOption{
		services.WithDefaultLimit(settings.Search.Limit),
		services.WithSnippetLength(settings.Search.SnippetLength),
	}
	if queryLog != nil {
		searchOpts = append(searchOpts, services.WithQueryLog(queryLog))
	}

	return &cli.Services{
		Search:   metrics.InstrumentSearch(services.NewSearchService(corpusService, ranker, searchOpts...)),
		Corpus:   corpusService,
		History:  services.NewHistoryService(queryLog),
		Settings: settingsService,
		Close: func() error {
			if queryLog == nil {
				return nil
			}
			return queryLog.Close()
		},
	}, nil
}

// buildSources returns the corpus sources in precedence order. The first
// source to claim an href wins.
func buildSources(settings *domain.AppSettings) ([]driven.CorpusSource, error) {
	registry := normalisers.NewRegistry(markdown.New(), html.New(), plaintext.New())

	var sources []driven.CorpusSource
	if settings.Corpus.Dir != "" {
		sources = append(sources, filesystem.New(
			expandHome(settings.Corpus.Dir),
			registry,
			filesystem.WithExclude(settings.Corpus.Exclude...),
		))
	}
	if settings.GitHub.IsConfigured() {
		client, err := github.NewClient(settings.GitHub.Token)
		if err != nil {
			return nil, fmt.Errorf("github client: %w", err)
		}
		sources = append(sources, github.New(github.Config{
			Owner: settings.GitHub.Owner,
			Repo:  settings.GitHub.Repo,
			Ref:   settings.GitHub.Ref,
			Path:  settings.GitHub.Path,
		}, client, registry))
	}
	if settings.Corpus.Static {
		sources = append(sources, static.New())
	}

	if len(sources) == 0 {
		return nil, errors.New("no corpus sources enabled: set corpus.static, corpus.dir or github.repo")
	}
	return sources, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
