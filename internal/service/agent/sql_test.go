package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSQLFromFencedBlock(t *testing.T) {
	reply := "Here is the answer.\n```sql\nSELECT COUNT(*) FROM ordhdr\n```\nThere are 42 orders."
	assert.Equal(t, "SELECT COUNT(*) FROM ordhdr", ExtractSQL(reply))
}

func TestExtractSQLFromBareFence(t *testing.T) {
	reply := "```\nSELECT id FROM cust WHERE active = true\n```"
	assert.Equal(t, "SELECT id FROM cust WHERE active = true", ExtractSQL(reply))
}

func TestExtractSQLFromInlineBackticks(t *testing.T) {
	reply := "I ran `SELECT name FROM cust LIMIT 5` to get the list."
	assert.Equal(t, "SELECT name FROM cust LIMIT 5", ExtractSQL(reply))
}

func TestExtractSQLFromBareStatement(t *testing.T) {
	reply := "The query was SELECT region, COUNT(*) FROM ordhdr GROUP BY region; and it returned 4 rows."
	assert.Equal(t, "SELECT region, COUNT(*) FROM ordhdr GROUP BY region;", ExtractSQL(reply))
}

func TestExtractSQLPrefersFencedBlock(t *testing.T) {
	reply := "Maybe SELECT 1; but actually:\n```sql\nSELECT 2\n```"
	assert.Equal(t, "SELECT 2", ExtractSQL(reply))
}

func TestExtractSQLWithNoSQL(t *testing.T) {
	assert.Empty(t, ExtractSQL("There is no query here."))
	assert.Empty(t, ExtractSQL(""))
}
