package chromem

import (
	"context"
	"fmt"
	"strconv"
	"time"

	chromem "github.com/philippgille/chromem-go"
	"github.com/reportsext/agent/docstore/providers/storer"
)

// chromemStorer keeps the collection in an embedded, pure Go vector database
// persisted under options.Location (in-memory when empty). chromem-go's
// query scores are cosine similarities already, so no normalization needed.
type chromemStorer struct {
	options    storer.Options
	db         *chromem.DB
	collection *chromem.Collection
}

func (s *chromemStorer) Upsert(ctx context.Context, rec storer.Record) error {
	doc := chromem.Document{
		ID:        rec.Id,
		Content:   contentFor(rec),
		Embedding: rec.Vector,
		Metadata: map[string]string{
			"query":      rec.Query,
			"sql_query":  rec.SQLQuery,
			"result":     rec.Result,
			"success":    strconv.FormatBool(rec.Success),
			"kind":       rec.Kind,
			"created_at": rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
	}

	if err := s.collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("add document: %w", err)
	}

	return nil
}

func (s *chromemStorer) Search(ctx context.Context, vector []float32, limit int) ([]storer.Record, error) {
	if limit < 1 {
		return nil, nil
	}

	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}

	if limit > count {
		limit = count
	}

	results, err := s.collection.QueryEmbedding(ctx, vector, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query embedding: %w", err)
	}

	records := make([]storer.Record, 0, len(results))
	for _, result := range results {
		records = append(records, recordFrom(result))
	}

	return records, nil
}

func (s *chromemStorer) Scan(ctx context.Context, kinds []string, limit int) ([]storer.Record, error) {
	if limit < 1 {
		return nil, nil
	}

	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}

	if limit > count {
		limit = count
	}

	// chromem has no listing call; ranking the whole collection against a
	// fixed probe vector is the portable scan. Kind filtering happens here
	// because the metadata filter only matches one value at a time.
	probe := make([]float32, s.options.VectorSize)
	probe[0] = 1

	results, err := s.collection.QueryEmbedding(ctx, probe, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("scan collection: %w", err)
	}

	wanted := map[string]struct{}{}
	for _, kind := range kinds {
		wanted[kind] = struct{}{}
	}

	records := make([]storer.Record, 0, len(results))
	for _, result := range results {
		rec := recordFrom(result)
		if len(wanted) > 0 {
			if _, ok := wanted[rec.Kind]; !ok {
				continue
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *chromemStorer) Close() error {
	return nil
}

func contentFor(rec storer.Record) string {
	if len(rec.Result) > 0 {
		return rec.Query + "\n" + rec.Result
	}
	return rec.Query
}

func recordFrom(result chromem.Result) storer.Record {
	success, _ := strconv.ParseBool(result.Metadata["success"])
	createdAt, _ := time.Parse(time.RFC3339Nano, result.Metadata["created_at"])

	return storer.Record{
		Id:        result.ID,
		Vector:    result.Embedding,
		Query:     result.Metadata["query"],
		SQLQuery:  result.Metadata["sql_query"],
		Result:    result.Metadata["result"],
		Success:   success,
		Kind:      result.Metadata["kind"],
		CreatedAt: createdAt,
		Score:     result.Similarity,
	}
}

func NewStorer(opts ...storer.Option) (storer.Storer, error) {
	options := storer.NewOptions(opts...)

	// The scan probe is sized from this, so it must be positive.
	if options.VectorSize < 1 {
		options.VectorSize = storer.NewOptions().VectorSize
	}

	var db *chromem.DB
	if len(options.Location) > 0 {
		var err error
		db, err = chromem.NewPersistentDB(options.Location, false)
		if err != nil {
			return nil, fmt.Errorf("open persistent db: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	collection, err := db.GetOrCreateCollection(options.Collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get or create collection: %w", err)
	}

	return &chromemStorer{
		options:    options,
		db:         db,
		collection: collection,
	}, nil
}
