package build

import (
	"context"

	"github.com/andersonbraz/linkbio/pkg/events"
)

func defaultOptions() *Options {
	return &Options{
		Context: context.Background(),
		Events:  events.Discard(),
		Minify:  false,
	}
}

type Options struct {
	Context context.Context
	Events  events.Handler
	Minify  bool
}

func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*Options)

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

func WithEvents(handler events.Handler) Option {
	return func(o *Options) {
		o.Events = handler
	}
}

func WithMinify(enabled bool) Option {
	return func(o *Options) {
		o.Minify = enabled
	}
}
