package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// queryLog implements driven.QueryLog.
type queryLog struct {
	store *Store
}

var _ driven.QueryLog = (*queryLog)(nil)

// Record appends a query record, assigning an ID and timestamp if missing.
func (q *queryLog) Record(ctx context.Context, rec domain.QueryRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := q.store.db.ExecContext(ctx, `
		INSERT INTO query_log (id, query, result_count, top_href, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Query, rec.ResultCount, rec.TopHref, int64(rec.Duration), rec.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("inserting query record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first. A non-positive limit returns all.
func (q *queryLog) Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := q.store.db.QueryContext(ctx, `
		SELECT id, query, result_count, top_href, duration_ns, created_at
		FROM query_log
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying query log: %w", err)
	}
	defer rows.Close()

	var records []domain.QueryRecord
	for rows.Next() {
		var (
			rec       domain.QueryRecord
			duration  int64
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.ResultCount, &rec.TopHref, &duration, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning query record: %w", err)
		}
		rec.Duration = time.Duration(duration)
		rec.CreatedAt = time.Unix(0, createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query log: %w", err)
	}
	return records, nil
}

// Close closes the underlying store.
func (q *queryLog) Close() error {
	return q.store.Close()
}
