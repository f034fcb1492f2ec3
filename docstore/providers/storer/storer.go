package storer

import "context"

type Storer interface {
	Upsert(ctx context.Context, rec Record) error
	Search(ctx context.Context, vector []float32, limit int) ([]Record, error)
	Scan(ctx context.Context, kinds []string, limit int) ([]Record, error)
	Close() error
}
