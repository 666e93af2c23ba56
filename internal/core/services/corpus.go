package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

const corpusKey = "corpus"

// CorpusService loads the configured sources once and memoizes the merged corpus.
type CorpusService struct {
	sources []driven.CorpusSource
	group   singleflight.Group

	mu     sync.RWMutex
	docs   []domain.Document
	loaded bool

	// generation changes on every Invalidate; a load started before the
	// change must not publish its result.
	generation uint64
}

// NewCorpusService creates a corpus service over the given sources.
// Source order decides which document wins when two share an href.
func NewCorpusService(sources ...driven.CorpusSource) *CorpusService {
	return &CorpusService{sources: sources}
}

// Documents returns the corpus, loading it on first use.
// Concurrent first callers share a single load. A caller whose ctx ends
// stops waiting; the shared load carries on for the others.
func (s *CorpusService) Documents(ctx context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	if s.loaded {
		docs := s.docs
		s.mu.RUnlock()
		return docs, nil
	}
	s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(corpusKey, func() (any, error) {
		s.mu.RLock()
		if s.loaded {
			docs := s.docs
			s.mu.RUnlock()
			return docs, nil
		}
		generation := s.generation
		s.mu.RUnlock()

		docs, err := s.load(loadCtx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.generation == generation {
			s.docs = docs
			s.loaded = true
		} else {
			logger.Debug("corpus changed during load, not caching")
		}
		s.mu.Unlock()

		return docs, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		docs, _ := res.Val.([]domain.Document)
		return docs, nil
	}
}

// Get retrieves a document by href.
func (s *CorpusService) Get(ctx context.Context, href string) (*domain.Document, error) {
	docs, err := s.Documents(ctx)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if docs[i].Href == href {
			doc := docs[i]
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("document %q: %w", href, domain.ErrNotFound)
}

// Sections returns the distinct section labels in corpus order.
func (s *CorpusService) Sections(ctx context.Context) ([]string, error) {
	docs, err := s.Documents(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	sections := make([]string, 0)
	for i := range docs {
		sec := docs[i].Section
		if sec == "" {
			continue
		}
		if _, ok := seen[sec]; ok {
			continue
		}
		seen[sec] = struct{}{}
		sections = append(sections, sec)
	}
	return sections, nil
}

// Reload drops the cached corpus and loads it again.
func (s *CorpusService) Reload(ctx context.Context) ([]domain.Document, error) {
	s.Invalidate()
	return s.Documents(ctx)
}

// Invalidate drops the cached corpus. The next call loads it again, and a
// load already in flight is neither cached nor shared with later callers.
func (s *CorpusService) Invalidate() {
	s.mu.Lock()
	s.docs = nil
	s.loaded = false
	s.generation++
	s.mu.Unlock()

	s.group.Forget(corpusKey)
}

// WatchSources invalidates the cache whenever a watching source reports a change.
// It returns once every watcher has been started; watching stops when ctx is done.
func (s *CorpusService) WatchSources(ctx context.Context) error {
	started := 0
	for _, src := range s.sources {
		w, ok := src.(driven.SourceWatcher)
		if !ok {
			continue
		}

		changes, err := w.Watch(ctx)
		if err != nil {
			return fmt.Errorf("watch %s: %w", src.Name(), err)
		}
		started++

		go func(name string, changes <-chan struct{}) {
			for range changes {
				logger.Debug("source %s changed, invalidating corpus", name)
				s.Invalidate()
			}
		}(src.Name(), changes)
	}

	logger.Debug("watching %d corpus source(s)", started)
	return nil
}

// load fetches every source in order. A failing source is logged and skipped.
func (s *CorpusService) load(ctx context.Context) ([]domain.Document, error) {
	logger.Section("Loading corpus")

	seen := make(map[string]struct{})
	docs := make([]domain.Document, 0)

	for _, src := range s.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		loaded, err := src.Load(ctx)
		if err != nil {
			logger.Warn("corpus source %s unavailable: %v", src.Name(), err)
			continue
		}

		added := 0
		for i := range loaded {
			doc := loaded[i]
			if doc.Href == "" {
				continue
			}
			if _, dup := seen[doc.Href]; dup {
				logger.Debug("skipping duplicate href %s from %s", doc.Href, src.Name())
				continue
			}
			if doc.Source == "" {
				doc.Source = src.Name()
			}
			seen[doc.Href] = struct{}{}
			docs = append(docs, doc)
			added++
		}
		logger.Info("loaded %d document(s) from %s", added, src.Name())
	}

	return docs, nil
}
