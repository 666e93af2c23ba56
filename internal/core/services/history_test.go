package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func TestHistoryService_Disabled(t *testing.T) {
	svc := NewHistoryService(nil)

	assert.False(t, svc.Enabled())
	_, err := svc.Recent(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
}

func TestHistoryService_Recent(t *testing.T) {
	log := memory.NewQueryLog(10)
	ctx := context.Background()
	require.NoError(t, log.Record(ctx, domain.QueryRecord{Query: "agents"}))
	require.NoError(t, log.Record(ctx, domain.QueryRecord{Query: "xray"}))

	svc := NewHistoryService(log)
	recs, err := svc.Recent(ctx, 1)

	require.NoError(t, err)
	assert.True(t, svc.Enabled())
	require.Len(t, recs, 1)
	assert.Equal(t, "xray", recs[0].Query)
}

func TestHistoryService_WithSearch(t *testing.T) {
	log := memory.NewQueryLog(10)
	search := newTestSearchService(WithQueryLog(log))
	history := NewHistoryService(log)
	ctx := context.Background()

	_, err := search.Search(ctx, "getting started", domain.SearchOptions{})
	require.NoError(t, err)

	recs, err := history.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "/docs/getting-started", recs[0].TopHref)
}
