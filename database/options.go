package database

import "context"

type Option func(*Options)

type Options struct {
	Location string
	MaxRows  int
	Context  context.Context
}

func WithLocation(loc string) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

func WithMaxRows(n int) Option {
	return func(o *Options) {
		o.MaxRows = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		MaxRows: 50,
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
