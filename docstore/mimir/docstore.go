package mimir

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reportsext/agent/docstore"
	"github.com/reportsext/agent/docstore/providers/embedder/fallback"
	"github.com/reportsext/agent/docstore/providers/storer"
)

const scanCap = 10000

type mimirDocStore struct {
	options docstore.Options
}

func (s *mimirDocStore) RecordQuery(ctx context.Context, query string, sqlQuery string, result string, success bool) bool {
	if s.degraded(ctx) {
		return false
	}

	// Long results blow up embedding cost without adding much signal, so
	// only a preview goes into the blob. The full result is still stored.
	blob := fmt.Sprintf("Query: %s\nSQL: %s\nResult: %s", query, sqlQuery, preview(result, s.options.ResultPreview))

	vector, err := s.options.Embedder.Embed(ctx, blob)
	if err != nil {
		slog.WarnContext(ctx, "failed to embed query history", "error", err)
		return false
	}

	rec := storer.Record{
		Id:        docstore.DeriveId(query, sqlQuery),
		Vector:    vector,
		Query:     query,
		SQLQuery:  sqlQuery,
		Result:    result,
		Success:   success,
		Kind:      docstore.KindQueryHistory,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.options.Storer.Upsert(ctx, rec); err != nil {
		slog.WarnContext(ctx, "failed to store query history", "error", err)
		return false
	}

	return true
}

func (s *mimirDocStore) RecordDocument(ctx context.Context, title string, content string, kind string) bool {
	if s.degraded(ctx) {
		return false
	}

	if len(strings.TrimSpace(kind)) == 0 {
		kind = docstore.KindDocument
	}

	vector, err := s.options.Embedder.Embed(ctx, content)
	if err != nil {
		slog.WarnContext(ctx, "failed to embed document", "title", title, "error", err)
		return false
	}

	rec := storer.Record{
		Id:        docstore.DeriveId(title, content),
		Vector:    vector,
		Query:     title,
		Result:    content,
		Success:   true,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.options.Storer.Upsert(ctx, rec); err != nil {
		slog.WarnContext(ctx, "failed to store document", "title", title, "error", err)
		return false
	}

	return true
}

func (s *mimirDocStore) SearchSimilarQueries(ctx context.Context, query string, limit int) []docstore.Match {
	if limit < 1 || s.degraded(ctx) {
		return nil
	}

	vector, err := s.options.Embedder.Embed(ctx, query)
	if err != nil {
		slog.WarnContext(ctx, "failed to embed search query", "error", err)
		return nil
	}

	records, err := s.options.Storer.Search(ctx, vector, limit)
	if err != nil {
		slog.WarnContext(ctx, "similar query search failed", "error", err)
		return nil
	}

	return s.toMatches(ctx, records)
}

func (s *mimirDocStore) SearchDocumentation(ctx context.Context, query string, limit int) []docstore.DocMatch {
	if limit < 1 || s.degraded(ctx) {
		return nil
	}

	vector, err := s.options.Embedder.Embed(ctx, query)
	if err != nil {
		slog.WarnContext(ctx, "failed to embed search query", "error", err)
		return nil
	}

	// Backends with shaky filter support make over-fetch-then-filter the
	// portable strategy: ask for 3x and keep the first non-history hits.
	records, err := s.options.Storer.Search(ctx, vector, limit*3)
	if err != nil {
		slog.WarnContext(ctx, "documentation search failed, retrying unfiltered", "error", err)
		records, err = s.options.Storer.Search(ctx, vector, limit*2)
		if err != nil {
			slog.WarnContext(ctx, "documentation search retry failed", "error", err)
			return nil
		}
	}

	var matches []docstore.DocMatch
	for _, rec := range records {
		if !s.wellFormed(ctx, rec) {
			continue
		}
		if rec.Kind == docstore.KindQueryHistory {
			continue
		}
		matches = append(matches, docstore.DocMatch{
			Title:      rec.Query,
			Content:    rec.Result,
			Kind:       rec.Kind,
			Similarity: float64(rec.Score),
		})
		if len(matches) >= limit {
			break
		}
	}

	return matches
}

func (s *mimirDocStore) QuerySuggestions(ctx context.Context, partial string) []string {
	matches := s.SearchSimilarQueries(ctx, partial, 10)

	seen := map[string]struct{}{}
	var suggestions []string

	for _, match := range matches {
		if !match.Success || match.Kind != docstore.KindQueryHistory {
			continue
		}
		if _, exists := seen[match.Query]; exists {
			continue
		}
		seen[match.Query] = struct{}{}
		suggestions = append(suggestions, match.Query)
		if len(suggestions) >= 5 {
			break
		}
	}

	return suggestions
}

func (s *mimirDocStore) Stats(ctx context.Context) docstore.Stats {
	if s.degraded(ctx) {
		return docstore.Stats{}
	}

	records, err := s.options.Storer.Scan(ctx, docstore.Kinds(), scanCap)
	if err != nil {
		slog.WarnContext(ctx, "filtered stats scan failed, retrying unfiltered", "error", err)
		records, err = s.options.Storer.Scan(ctx, nil, scanCap)
		if err != nil {
			slog.WarnContext(ctx, "stats scan failed", "error", err)
			return docstore.Stats{}
		}
	}

	stats := docstore.Stats{
		Total: len(records),
	}

	for _, rec := range records {
		switch rec.Kind {
		case docstore.KindQueryHistory:
			stats.QueryHistory++
			if rec.Success {
				stats.Successful++
			} else {
				stats.Failed++
			}
		case docstore.KindDocument:
			stats.Documents++
		}
	}

	return stats
}

func (s *mimirDocStore) Close() error {
	if s.options.Storer == nil {
		return nil
	}
	return s.options.Storer.Close()
}

func (s *mimirDocStore) toMatches(ctx context.Context, records []storer.Record) []docstore.Match {
	var matches []docstore.Match

	for _, rec := range records {
		if !s.wellFormed(ctx, rec) {
			continue
		}

		kind := rec.Kind
		if len(kind) == 0 {
			kind = docstore.KindQueryHistory
		}

		matches = append(matches, docstore.Match{
			Query:      rec.Query,
			SQLQuery:   rec.SQLQuery,
			Result:     rec.Result,
			Success:    rec.Success,
			Timestamp:  rec.CreatedAt,
			Kind:       kind,
			Similarity: float64(rec.Score),
		})
	}

	return matches
}

// wellFormed is the single gate for malformed stored records on every read
// path. A record without an id cannot have come from this store.
func (s *mimirDocStore) wellFormed(ctx context.Context, rec storer.Record) bool {
	if len(rec.Id) == 0 {
		slog.WarnContext(ctx, "skipping malformed search result")
		return false
	}
	return true
}

func (s *mimirDocStore) degraded(ctx context.Context) bool {
	if s.options.Storer == nil {
		slog.WarnContext(ctx, "document store is degraded, no storage backend")
		return true
	}
	return false
}

func preview(text string, limit int) string {
	if limit < 1 || len(text) <= limit {
		return text
	}

	// Back off to a rune boundary so the cut never leaves invalid UTF-8.
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}

	return text[:limit] + "..."
}

// NewDocStore never fails: without a storer the store degrades to answering
// false and empty rather than taking the query pipeline down with it, and
// without an embedder the deterministic hash fallback keeps it functional.
func NewDocStore(opts ...docstore.Option) docstore.DocStore {
	options := docstore.NewOptions(opts...)

	if options.Embedder == nil {
		options.Embedder = fallback.NewEmbedder(nil)
	}

	if options.Storer == nil {
		slog.Warn("document store created without a storage backend, operating degraded")
	}

	return &mimirDocStore{
		options: options,
	}
}
