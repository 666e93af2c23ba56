package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Verify interface compliance.
var (
	_ driving.SearchService = (*mockSearchService)(nil)
	_ driving.CorpusService = (*mockCorpusService)(nil)
)

type mockSearchService struct {
	results     []domain.SearchResult
	suggestions []string
	err         error

	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSearchService) Suggest(_ context.Context, query string) ([]string, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.suggestions, nil
}

type mockCorpusService struct {
	docs []domain.Document
	err  error
}

func (m *mockCorpusService) Documents(_ context.Context) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockCorpusService) Get(_ context.Context, href string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.docs {
		if m.docs[i].Href == href {
			doc := m.docs[i]
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("document %q: %w", href, domain.ErrNotFound)
}

func (m *mockCorpusService) Sections(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var sections []string
	seen := make(map[string]bool)
	for _, d := range m.docs {
		if d.Section != "" && !seen[d.Section] {
			seen[d.Section] = true
			sections = append(sections, d.Section)
		}
	}
	return sections, nil
}

func (m *mockCorpusService) Reload(ctx context.Context) ([]domain.Document, error) {
	return m.Documents(ctx)
}

func testDocs() []domain.Document {
	return []domain.Document{
		{Title: "Home", Href: "/", Section: "General", Content: "Welcome to the docs."},
		{Title: "Agents", Href: "/docs/concepts/agents", Section: "Concepts", Content: "An agent combines a model with tools."},
		{Title: "Tracing with xray", Href: "/docs/observability/xray", Section: "Observability", Content: "Send traces to xray."},
	}
}

func newTestPorts() (*Ports, *mockSearchService, *mockCorpusService) {
	search := &mockSearchService{}
	corpus := &mockCorpusService{docs: testDocs()}
	return &Ports{Search: search, Corpus: corpus}, search, corpus
}
