package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	name, args := splitCommand(`run_query {"query": "SELECT 1"}`)
	assert.Equal(t, "run_query", name)
	assert.Equal(t, `{"query": "SELECT 1"}`, args)

	name, args = splitCommand("list_tables")
	assert.Equal(t, "list_tables", name)
	assert.Empty(t, args)

	name, args = splitCommand("")
	assert.Empty(t, name)
	assert.Empty(t, args)
}

func TestParseToolArguments(t *testing.T) {
	parsed := parseToolArguments(`{"table": "ordhdr"}`)
	assert.Equal(t, "ordhdr", parsed["table"])

	parsed = parseToolArguments("just some text")
	assert.Equal(t, "just some text", parsed["input"])

	parsed = parseToolArguments(`[1, 2]`)
	require.Contains(t, parsed, "items")

	assert.Empty(t, parseToolArguments("  "))
}

func TestFindToolCommand(t *testing.T) {
	payload, ok := findToolCommand("Let me check.\ntool:list_tables {}\n")
	require.True(t, ok)
	assert.Equal(t, "list_tables {}", payload)

	payload, ok = findToolCommand("`tool:run_query {\"query\": \"SELECT 1\"}`")
	require.True(t, ok)
	assert.Equal(t, `run_query {"query": "SELECT 1"}`, payload)

	_, ok = findToolCommand("No tools needed, the answer is 42.")
	assert.False(t, ok)
}
