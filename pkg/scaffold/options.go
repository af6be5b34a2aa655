package scaffold

import (
	"net/http"

	"github.com/andersonbraz/linkbio/pkg/events"
)

func defaultOptions() *options {
	return &options{
		source: DefaultSourceURL,
		client: http.DefaultClient,
		events: events.Discard(),
	}
}

type options struct {
	source string
	client *http.Client
	events events.Handler
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*options)

// WithSource overrides the remote base URL resources are fetched from.
func WithSource(url string) Option {
	return func(o *options) {
		if url != "" {
			o.source = url
		}
	}
}

func WithClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}

func WithEvents(handler events.Handler) Option {
	return func(o *options) {
		if handler != nil {
			o.events = handler
		}
	}
}
