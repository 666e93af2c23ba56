package driven

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// CorpusSource loads documents for the searchable corpus.
// A source is loaded in full; there is no incremental sync.
type CorpusSource interface {
	// Name identifies the source in logs and on documents.
	Name() string

	// Load returns every document the source provides.
	// An error excludes the whole source from the corpus.
	Load(ctx context.Context) ([]domain.Document, error)
}

// SourceWatcher is implemented by sources that can detect changes.
type SourceWatcher interface {
	// Watch sends on the returned channel whenever the source changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
