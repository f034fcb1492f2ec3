package mimir

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPreviewLeavesShortTextAlone(t *testing.T) {
	assert.Equal(t, "short", preview("short", 500))
	assert.Equal(t, "no limit", preview("no limit", 0))
}

func TestPreviewTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := preview(long, 500)
	assert.Equal(t, long[:500]+"...", got)
}

func TestPreviewNeverSplitsRunes(t *testing.T) {
	text := strings.Repeat("注文", 300)
	for limit := 1; limit < 16; limit++ {
		got := preview(text, limit)
		assert.True(t, utf8.ValidString(got), "limit %d produced invalid UTF-8", limit)
	}
}
