package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/core/ranking"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks the corpus for a query and shapes the results.
type SearchService struct {
	corpus        driving.CorpusService
	ranker        *ranking.Ranker
	queryLog      driven.QueryLog
	defaultLimit  int
	snippetLength int
	now           func() time.Time
}

// SearchOption configures a SearchService.
type SearchOption func(*SearchService)

// WithQueryLog records every search in log.
func WithQueryLog(log driven.QueryLog) SearchOption {
	return func(s *SearchService) {
		s.queryLog = log
	}
}

// WithDefaultLimit sets the limit used when a search does not specify one.
func WithDefaultLimit(limit int) SearchOption {
	return func(s *SearchService) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithSnippetLength sets the maximum snippet length in runes.
func WithSnippetLength(n int) SearchOption {
	return func(s *SearchService) {
		if n > 0 {
			s.snippetLength = n
		}
	}
}

// NewSearchService creates a new search service.
func NewSearchService(corpus driving.CorpusService, ranker *ranking.Ranker, opts ...SearchOption) *SearchService {
	if ranker == nil {
		ranker = ranking.NewDefaultRanker()
	}
	s := &SearchService{
		corpus:        corpus,
		ranker:        ranker,
		defaultLimit:  domain.DefaultResultLimit,
		snippetLength: domain.DefaultSnippetLength,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search ranks the corpus against query and returns a page of results.
func (s *SearchService) Search(
	ctx context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	if opts.Offset < 0 {
		return nil, fmt.Errorf("offset %d: %w", opts.Offset, domain.ErrInvalidInput)
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	docs, err := s.corpus.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	start := s.now()
	matches := s.ranker.Rank(query, docs)
	if len(opts.Sections) > 0 {
		filtered := matches[:0:0]
		for i := range matches {
			if matches[i].Document.InSection(opts.Sections) {
				filtered = append(filtered, matches[i])
			}
		}
		matches = filtered
	}
	elapsed := s.now().Sub(start)

	logger.Debug("query %q matched %d document(s) in %s", query, len(matches), elapsed)
	s.record(ctx, query, matches, elapsed)

	if opts.Offset >= len(matches) {
		return []domain.SearchResult{}, nil
	}
	end := opts.Offset + limit
	if end > len(matches) {
		end = len(matches)
	}

	page := matches[opts.Offset:end]
	results := make([]domain.SearchResult, 0, len(page))
	for i := range page {
		r := domain.SearchResult{
			Document: page[i].Document,
			Score:    page[i].Score,
			Snippet:  ranking.Snippet(page[i].Document.Content, query, s.snippetLength),
		}
		if opts.Explain {
			r.Details = page[i].Details
		}
		results = append(results, r)
	}

	return results, nil
}

// Suggest proposes corrected queries for likely misspellings.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]string, error) {
	docs, err := s.corpus.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return s.ranker.Suggest(query, docs), nil
}

// record writes the query to the log. Failures never fail the search.
func (s *SearchService) record(ctx context.Context, query string, matches []domain.MatchResult, elapsed time.Duration) {
	if s.queryLog == nil {
		return
	}

	rec := domain.QueryRecord{
		Query:       query,
		ResultCount: len(matches),
		Duration:    elapsed,
		CreatedAt:   s.now(),
	}
	if len(matches) > 0 {
		rec.TopHref = matches[0].Document.Href
	}

	if err := s.queryLog.Record(ctx, rec); err != nil {
		logger.Warn("failed to record query: %v", err)
	}
}
