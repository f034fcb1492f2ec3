package google

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMaxTokens(t *testing.T) {
	model := &genai.GenerativeModel{}

	applyMaxTokens(model, 42)
	require.NotNil(t, model.MaxOutputTokens)
	assert.Equal(t, int32(42), *model.MaxOutputTokens)
}

func TestApplyMaxTokensIgnoresNonPositive(t *testing.T) {
	model := &genai.GenerativeModel{}

	applyMaxTokens(model, 0)
	assert.Nil(t, model.MaxOutputTokens)
}
