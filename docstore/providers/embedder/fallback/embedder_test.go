package fallback_test

import (
	"context"
	"errors"
	"testing"

	"github.com/reportsext/agent/docstore/providers/embedder"
	"github.com/reportsext/agent/docstore/providers/embedder/fallback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingEmbedder struct {
	dims int
}

func (e *failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("api unavailable")
}

func (e *failingEmbedder) Dimensions() int {
	return e.dims
}

func TestHashVectorShapeAndRange(t *testing.T) {
	vec := fallback.HashVector("show me the orders", 1536)
	require.Len(t, vec, 1536)

	for _, v := range vec {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestHashVectorIsDeterministic(t *testing.T) {
	a := fallback.HashVector("same text", 64)
	b := fallback.HashVector("same text", 64)
	require.Equal(t, a, b)

	c := fallback.HashVector("different text", 64)
	assert.NotEqual(t, a, c)
}

func TestEmbedWithoutPrimaryNeverErrors(t *testing.T) {
	e := fallback.NewEmbedder(nil, embedder.WithDimensions(32))

	vec, err := e.Embed(context.Background(), "anything at all")
	require.NoError(t, err)
	require.Len(t, vec, 32)
	assert.Equal(t, 32, e.Dimensions())
}

func TestEmbedFallsBackWhenPrimaryFails(t *testing.T) {
	e := fallback.NewEmbedder(&failingEmbedder{dims: 16})

	vec, err := e.Embed(context.Background(), "orders last month")
	require.NoError(t, err)
	require.Equal(t, fallback.HashVector("orders last month", 16), vec)
}
