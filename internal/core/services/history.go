package services

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads back the query log.
type HistoryService struct {
	queryLog driven.QueryLog
}

// NewHistoryService creates a history service. A nil log means history is disabled.
func NewHistoryService(queryLog driven.QueryLog) *HistoryService {
	return &HistoryService{queryLog: queryLog}
}

// Recent returns up to limit queries, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	if s.queryLog == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.queryLog.Recent(ctx, limit)
}

// Enabled reports whether queries are being recorded.
func (s *HistoryService) Enabled() bool {
	return s.queryLog != nil
}
