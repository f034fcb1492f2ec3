package database

import "strings"

var readOnlyKeywords = map[string]struct{}{
	"select":  {},
	"with":    {},
	"show":    {},
	"explain": {},
}

// IsReadOnly reports whether query is a single statement that can only read.
// The check is keyword-based on purpose: the database user should also lack
// write grants, this guard just fails fast before a round trip.
func IsReadOnly(query string) bool {
	stripped := stripComments(query)

	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(stripped), ";"))
	if len(trimmed) == 0 {
		return false
	}

	if strings.Contains(trimmed, ";") {
		return false
	}

	fields := strings.Fields(trimmed)
	keyword := strings.ToLower(fields[0])

	_, ok := readOnlyKeywords[keyword]
	return ok
}

func stripComments(query string) string {
	var sb strings.Builder

	lines := strings.Split(query, "\n")
	for _, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	out := sb.String()

	for {
		start := strings.Index(out, "/*")
		if start < 0 {
			break
		}
		end := strings.Index(out[start:], "*/")
		if end < 0 {
			out = out[:start]
			break
		}
		out = out[:start] + out[start+end+2:]
	}

	return out
}
