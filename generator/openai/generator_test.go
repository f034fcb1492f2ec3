package openai

import (
	"testing"

	"github.com/reportsext/agent/generator"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCarriesMaxTokens(t *testing.T) {
	g := NewGenerator(
		generator.WithModel("gpt-4o-mini"),
		generator.WithMaxTokens(42),
	).(*openAIGenerator)

	req := g.request("how many orders?")
	assert.Equal(t, 42, req.MaxTokens)
	assert.Equal(t, "gpt-4o-mini", req.Model)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
	assert.Equal(t, "how many orders?", req.Messages[0].Content)
}

func TestRequestAppliesPromptPrefix(t *testing.T) {
	g := NewGenerator(
		generator.WithPromptPrefix("Assistant response:"),
	).(*openAIGenerator)

	req := g.request("hello")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "Assistant response:\nhello", req.Messages[0].Content)
	assert.Equal(t, 1024, req.MaxTokens)
}
