package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/reportsext/agent/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeTrackingDatabase struct {
	closed bool
	err    error
}

func (db *closeTrackingDatabase) ListTables(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (db *closeTrackingDatabase) TableSchema(ctx context.Context, table string) (string, error) {
	return "", nil
}

func (db *closeTrackingDatabase) RunQuery(ctx context.Context, query string) (string, error) {
	return "", nil
}

func (db *closeTrackingDatabase) Close() error {
	db.closed = true
	return db.err
}

type closeTrackingStore struct {
	closed bool
	err    error
}

func (s *closeTrackingStore) RecordQuery(ctx context.Context, query, sqlQuery, result string, success bool) bool {
	return false
}

func (s *closeTrackingStore) RecordDocument(ctx context.Context, title, content, kind string) bool {
	return false
}

func (s *closeTrackingStore) SearchSimilarQueries(ctx context.Context, query string, limit int) []docstore.Match {
	return nil
}

func (s *closeTrackingStore) SearchDocumentation(ctx context.Context, query string, limit int) []docstore.DocMatch {
	return nil
}

func (s *closeTrackingStore) QuerySuggestions(ctx context.Context, partial string) []string {
	return nil
}

func (s *closeTrackingStore) Stats(ctx context.Context) docstore.Stats {
	return docstore.Stats{}
}

func (s *closeTrackingStore) Close() error {
	s.closed = true
	return s.err
}

type noopGenerator struct{}

func (g *noopGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func TestCloseClosesBothHandles(t *testing.T) {
	db := &closeTrackingDatabase{}
	store := &closeTrackingStore{}

	a := New(db, store, &noopGenerator{}, nil, 1, "")
	require.NoError(t, a.Close())
	assert.True(t, db.closed)
	assert.True(t, store.closed)
}

func TestCloseStillClosesStoreWhenDatabaseFails(t *testing.T) {
	dbErr := errors.New("db close failed")
	db := &closeTrackingDatabase{err: dbErr}
	store := &closeTrackingStore{}

	a := New(db, store, &noopGenerator{}, nil, 1, "")
	err := a.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.True(t, store.closed)
}
