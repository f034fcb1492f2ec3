package docstore

import "time"

const (
	KindQueryHistory          = "query_history"
	KindDocument              = "document"
	KindTableDocumentation    = "table_documentation"
	KindDatabaseDocumentation = "database_documentation"
)

// Kinds lists every tag the store recognizes.
func Kinds() []string {
	return []string{
		KindQueryHistory,
		KindDocument,
		KindTableDocumentation,
		KindDatabaseDocumentation,
	}
}

// Match is a query-history search hit. Similarity is always
// higher-is-more-similar, whatever the backend's native metric.
type Match struct {
	Query      string    `json:"query"`
	SQLQuery   string    `json:"sql_query"`
	Result     string    `json:"result"`
	Success    bool      `json:"success"`
	Timestamp  time.Time `json:"timestamp"`
	Kind       string    `json:"kind"`
	Similarity float64   `json:"similarity_score"`
}

// DocMatch is a documentation search hit.
type DocMatch struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Kind       string  `json:"kind"`
	Similarity float64 `json:"similarity_score"`
}

type Stats struct {
	Total        int `json:"total_documents"`
	QueryHistory int `json:"query_history"`
	Documents    int `json:"documents"`
	Successful   int `json:"successful_queries"`
	Failed       int `json:"failed_queries"`
}
