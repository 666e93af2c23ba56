package driven

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// QueryLog persists executed queries for later tuning of ranking weights.
type QueryLog interface {
	// Record appends a query record.
	Record(ctx context.Context, rec domain.QueryRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error)

	// Close releases resources.
	Close() error
}
