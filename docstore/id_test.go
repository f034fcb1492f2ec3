package docstore_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/reportsext/agent/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveIdIsDeterministic(t *testing.T) {
	a := docstore.DeriveId("show all orders", "SELECT * FROM ordhdr")
	b := docstore.DeriveId("show all orders", "SELECT * FROM ordhdr")
	require.Equal(t, a, b)

	c := docstore.DeriveId("show all orders", "SELECT * FROM ordlin")
	assert.NotEqual(t, a, c)
}

func TestDeriveIdIsValidUUID(t *testing.T) {
	id := docstore.DeriveId("title", "content")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestDeriveIdUniqueness(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 10000; i++ {
		id := docstore.DeriveId(fmt.Sprintf("query %d", i), fmt.Sprintf("SELECT %d", i))
		_, dup := seen[id]
		require.False(t, dup, "duplicate id at %d", i)
		seen[id] = struct{}{}
	}
}
