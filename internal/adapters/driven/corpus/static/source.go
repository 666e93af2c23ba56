// Package static provides the built-in page list of the documentation site.
package static

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// SourceName identifies the built-in source.
const SourceName = "static"

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// Source serves a fixed list of documents.
type Source struct {
	pages []domain.Document
}

// New returns a source serving the built-in pages.
func New() *Source {
	return &Source{pages: Pages()}
}

// NewWithPages returns a source serving the given pages.
func NewWithPages(pages []domain.Document) *Source {
	return &Source{pages: pages}
}

// Name returns "static".
func (s *Source) Name() string {
	return SourceName
}

// Load returns a copy of the page list.
func (s *Source) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, len(s.pages))
	for i, p := range s.pages {
		p.Keywords = append([]string(nil), p.Keywords...)
		if p.Source == "" {
			p.Source = SourceName
		}
		docs[i] = p
	}
	return docs, nil
}
