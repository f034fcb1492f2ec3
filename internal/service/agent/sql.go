package agent

import (
	"regexp"
	"strings"
)

var sqlPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?is)```sql\\s*(.+?)\\s*```"),
	regexp.MustCompile("(?is)```\\s*(SELECT.+?)\\s*```"),
	regexp.MustCompile("(?is)`(SELECT[^`]+)`"),
	regexp.MustCompile(`(?is)\b(SELECT\s.+?;)`),
}

// ExtractSQL pulls the first SQL statement out of a model reply, preferring
// fenced code blocks over inline statements.
func ExtractSQL(reply string) string {
	for _, pattern := range sqlPatterns {
		if m := pattern.FindStringSubmatch(reply); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
