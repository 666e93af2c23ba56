package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search ranks the corpus against query and returns a page of results.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Suggest proposes corrected queries for likely misspellings.
	Suggest(ctx context.Context, query string) ([]string, error)
}
