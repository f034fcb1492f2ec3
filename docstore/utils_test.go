package docstore_test

import (
	"testing"

	"github.com/reportsext/agent/docstore"
	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, docstore.CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, docstore.CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, docstore.CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func TestCosineSimilarityDegenerateInputs(t *testing.T) {
	assert.Zero(t, docstore.CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Zero(t, docstore.CosineSimilarity(nil, nil))
	assert.Zero(t, docstore.CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}
