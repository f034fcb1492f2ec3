package docstore

import (
	"context"

	"github.com/reportsext/agent/docstore/providers/embedder"
	"github.com/reportsext/agent/docstore/providers/storer"
)

type Option func(*Options)

type Options struct {
	Storer        storer.Storer
	Embedder      embedder.Embedder
	ResultPreview int
	Context       context.Context
}

func WithStorer(s storer.Storer) Option {
	return func(o *Options) {
		o.Storer = s
	}
}

func WithEmbedder(e embedder.Embedder) Option {
	return func(o *Options) {
		o.Embedder = e
	}
}

// WithResultPreview bounds how much of a query result is embedded. The full
// result is still stored.
func WithResultPreview(n int) Option {
	return func(o *Options) {
		o.ResultPreview = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		ResultPreview: 500,
		Context:       context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
