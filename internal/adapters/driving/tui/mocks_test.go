package tui

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

var (
	_ driving.SearchService  = (*mockSearchService)(nil)
	_ driving.CorpusService  = (*mockCorpusService)(nil)
	_ driving.HistoryService = (*mockHistoryService)(nil)
)

type mockSearchService struct {
	results     []domain.SearchResult
	suggestions []string
	err         error
}

func (m *mockSearchService) Search(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func (m *mockSearchService) Suggest(context.Context, string) ([]string, error) {
	return m.suggestions, nil
}

type mockCorpusService struct {
	docs []domain.Document
	err  error
}

func (m *mockCorpusService) Documents(context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockCorpusService) Get(_ context.Context, href string) (*domain.Document, error) {
	for i := range m.docs {
		if m.docs[i].Href == href {
			doc := m.docs[i]
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("document %q: %w", href, domain.ErrNotFound)
}

func (m *mockCorpusService) Sections(context.Context) ([]string, error) {
	return []string{"Concepts"}, nil
}

func (m *mockCorpusService) Reload(ctx context.Context) ([]domain.Document, error) {
	return m.Documents(ctx)
}

type mockHistoryService struct {
	records []domain.QueryRecord
}

func (m *mockHistoryService) Recent(context.Context, int) ([]domain.QueryRecord, error) {
	return m.records, nil
}

func (m *mockHistoryService) Enabled() bool { return true }
