package toolhandler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "run_query", SanitizeName("run_query"))
	assert.Equal(t, "my_tool", SanitizeName("my tool"))
	assert.Equal(t, "api_v2-search", SanitizeName("api.v2-search"))
	assert.Equal(t, "______", SanitizeName("日本語ツール"))
}

func TestSanitizeNameTruncates(t *testing.T) {
	long := strings.Repeat("a", 100)
	assert.Len(t, SanitizeName(long), 64)
}
