package metrics

import (
	"context"
	"time"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// InstrumentSearch wraps svc so every call is counted and timed.
func InstrumentSearch(svc driving.SearchService) driving.SearchService {
	return &searchService{next: svc}
}

type searchService struct {
	next driving.SearchService
}

func (s *searchService) Search(
	ctx context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	start := time.Now()
	results, err := s.next.Search(ctx, query, opts)
	searchDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	searchRequestsTotal.WithLabelValues("search", status(err)).Inc()
	if err == nil {
		searchResults.Observe(float64(len(results)))
	}
	return results, err
}

func (s *searchService) Suggest(ctx context.Context, query string) ([]string, error) {
	start := time.Now()
	suggestions, err := s.next.Suggest(ctx, query)
	searchDuration.WithLabelValues("suggest").Observe(time.Since(start).Seconds())
	searchRequestsTotal.WithLabelValues("suggest", status(err)).Inc()
	return suggestions, err
}

// InstrumentSource wraps src so each load is timed and its document count
// recorded. A source that can watch for changes keeps that ability.
func InstrumentSource(src driven.CorpusSource) driven.CorpusSource {
	inner := &corpusSource{next: src}
	if w, ok := src.(driven.SourceWatcher); ok {
		return &watchingSource{corpusSource: inner, watcher: w}
	}
	return inner
}

type corpusSource struct {
	next driven.CorpusSource
}

func (s *corpusSource) Name() string {
	return s.next.Name()
}

func (s *corpusSource) Load(ctx context.Context) ([]domain.Document, error) {
	start := time.Now()
	docs, err := s.next.Load(ctx)
	name := s.next.Name()
	sourceLoadDuration.WithLabelValues(name, status(err)).Observe(time.Since(start).Seconds())
	if err == nil {
		sourceDocuments.WithLabelValues(name).Set(float64(len(docs)))
	}
	return docs, err
}

type watchingSource struct {
	*corpusSource
	watcher driven.SourceWatcher
}

func (s *watchingSource) Watch(ctx context.Context) (<-chan struct{}, error) {
	return s.watcher.Watch(ctx)
}
