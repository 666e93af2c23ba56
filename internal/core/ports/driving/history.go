package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// HistoryService exposes the query log.
type HistoryService interface {
	// Recent returns up to limit queries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error)

	// Enabled reports whether queries are being recorded.
	Enabled() bool
}
