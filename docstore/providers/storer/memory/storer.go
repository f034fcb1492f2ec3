package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/reportsext/agent/docstore"
	"github.com/reportsext/agent/docstore/providers/storer"
)

type memoryStorer struct {
	options storer.Options
	records map[string]storer.Record
	mtx     sync.RWMutex
}

func (s *memoryStorer) Upsert(ctx context.Context, rec storer.Record) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cpy := make([]float32, len(rec.Vector))
	copy(cpy, rec.Vector)
	rec.Vector = cpy

	s.records[rec.Id] = rec

	return nil
}

func (s *memoryStorer) Search(ctx context.Context, vector []float32, limit int) ([]storer.Record, error) {
	if limit < 1 {
		return nil, nil
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	candidates := make([]storer.Record, 0, len(s.records))

	for _, rec := range s.records {
		score := docstore.CosineSimilarity(vector, rec.Vector)
		rec.Score = float32(score)
		candidates = append(candidates, rec)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

func (s *memoryStorer) Scan(ctx context.Context, kinds []string, limit int) ([]storer.Record, error) {
	if limit < 1 {
		return nil, nil
	}

	wanted := map[string]struct{}{}
	for _, kind := range kinds {
		wanted[kind] = struct{}{}
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	var records []storer.Record

	for _, rec := range s.records {
		if len(wanted) > 0 {
			if _, ok := wanted[rec.Kind]; !ok {
				continue
			}
		}
		records = append(records, rec)
		if len(records) >= limit {
			break
		}
	}

	return records, nil
}

func (s *memoryStorer) Close() error {
	return nil
}

func NewStorer(opts ...storer.Option) storer.Storer {
	options := storer.NewOptions(opts...)

	return &memoryStorer{
		options: options,
		records: map[string]storer.Record{},
		mtx:     sync.RWMutex{},
	}
}
