package chromem_test

import (
	"context"
	"testing"
	"time"

	"github.com/reportsext/agent/docstore"
	"github.com/reportsext/agent/docstore/providers/embedder/fallback"
	"github.com/reportsext/agent/docstore/providers/storer"
	"github.com/reportsext/agent/docstore/providers/storer/chromem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSearchRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := chromem.NewStorer(storer.WithVectorSize(16))
	require.NoError(t, err)

	rec := storer.Record{
		Id:        docstore.DeriveId("show orders", "SELECT * FROM ordhdr"),
		Vector:    fallback.HashVector("show orders", 16),
		Query:     "show orders",
		SQLQuery:  "SELECT * FROM ordhdr",
		Result:    "10 rows",
		Success:   true,
		Kind:      docstore.KindQueryHistory,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.Upsert(ctx, rec))

	records, err := s.Search(ctx, fallback.HashVector("show orders", 16), 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.Id, records[0].Id)
	assert.Equal(t, "show orders", records[0].Query)
	assert.Equal(t, "SELECT * FROM ordhdr", records[0].SQLQuery)
	assert.True(t, records[0].Success)
	assert.Equal(t, docstore.KindQueryHistory, records[0].Kind)
}

func TestScanWithZeroVectorSizeDoesNotPanic(t *testing.T) {
	ctx := context.Background()
	s, err := chromem.NewStorer(storer.WithVectorSize(0))
	require.NoError(t, err)

	defaultSize := storer.NewOptions().VectorSize
	require.NoError(t, s.Upsert(ctx, storer.Record{
		Id:     "a",
		Vector: fallback.HashVector("a", defaultSize),
		Query:  "a",
		Kind:   docstore.KindQueryHistory,
	}))

	assert.NotPanics(t, func() {
		records, err := s.Scan(ctx, []string{docstore.KindQueryHistory}, 10)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestScanOnEmptyCollection(t *testing.T) {
	ctx := context.Background()
	s, err := chromem.NewStorer(storer.WithVectorSize(8))
	require.NoError(t, err)

	records, err := s.Scan(ctx, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
