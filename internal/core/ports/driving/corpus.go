package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// CorpusService exposes the loaded corpus.
type CorpusService interface {
	// Documents returns the corpus, loading it on first use.
	Documents(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by href.
	Get(ctx context.Context, href string) (*domain.Document, error)

	// Sections returns the distinct section labels in corpus order.
	Sections(ctx context.Context) ([]string, error)

	// Reload drops the cached corpus and loads it again.
	Reload(ctx context.Context) ([]domain.Document, error)
}
