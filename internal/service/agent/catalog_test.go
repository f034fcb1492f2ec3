package agent

import (
	"testing"

	toolhandler "github.com/reportsext/agent/tool_handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRegisterAndGet(t *testing.T) {
	catalog := NewCatalog([]toolhandler.ToolHandler{
		&recordingHandler{name: "run_query"},
		&recordingHandler{name: "list_tables"},
	})

	specs := catalog.ListSpecs()
	require.Len(t, specs, 2)
	assert.Equal(t, "run_query", specs[0].Name)
	assert.Equal(t, "list_tables", specs[1].Name)

	_, spec, ok := catalog.Get("RUN_QUERY")
	require.True(t, ok)
	assert.Equal(t, "run_query", spec.Name)

	_, _, ok = catalog.Get("missing")
	assert.False(t, ok)
}

func TestCatalogSanitizesNames(t *testing.T) {
	catalog := NewCatalog([]toolhandler.ToolHandler{
		&recordingHandler{name: "weather lookup"},
	})

	_, spec, ok := catalog.Get("weather lookup")
	require.True(t, ok)
	assert.Equal(t, "weather_lookup", spec.Name)
}

func TestCatalogSkipsDuplicatesAndNil(t *testing.T) {
	catalog := NewCatalog([]toolhandler.ToolHandler{
		&recordingHandler{name: "run_query"},
		&recordingHandler{name: "run_query"},
		nil,
		&recordingHandler{name: ""},
	})

	assert.Len(t, catalog.ListSpecs(), 1)
}
