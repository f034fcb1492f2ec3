package docstore

import "context"

// DocStore keeps query history and documentation as embedded records and
// ranks them by similarity to later questions. Every operation is
// best-effort: failures surface as false or empty results, never as errors,
// so a broken store can only cost answer quality, not the answer itself.
type DocStore interface {
	RecordQuery(ctx context.Context, query string, sqlQuery string, result string, success bool) bool
	RecordDocument(ctx context.Context, title string, content string, kind string) bool
	SearchSimilarQueries(ctx context.Context, query string, limit int) []Match
	SearchDocumentation(ctx context.Context, query string, limit int) []DocMatch
	QuerySuggestions(ctx context.Context, partial string) []string
	Stats(ctx context.Context) Stats
	Close() error
}
