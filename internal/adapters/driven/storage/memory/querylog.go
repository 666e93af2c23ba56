package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// Ensure QueryLog implements the interface.
var _ driven.QueryLog = (*QueryLog)(nil)

// QueryLog keeps query records in a bounded ring in memory.
type QueryLog struct {
	mu       sync.RWMutex
	records  []domain.QueryRecord
	capacity int
}

// NewQueryLog creates a query log holding at most capacity records.
// A non-positive capacity keeps everything.
func NewQueryLog(capacity int) *QueryLog {
	return &QueryLog{capacity: capacity}
}

// Record appends a query record, assigning an ID if it has none.
func (l *QueryLog) Record(_ context.Context, rec domain.QueryRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	if l.capacity > 0 && len(l.records) > l.capacity {
		l.records = l.records[len(l.records)-l.capacity:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (l *QueryLog) Recent(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.QueryRecord, 0, n)
	for i := len(l.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}

// Close is a no-op for the memory log.
func (l *QueryLog) Close() error {
	return nil
}
