package internal

import (
	"context"
	"time"

	"github.com/andersonbraz/linkbio/pkg/build"
	"github.com/andersonbraz/linkbio/pkg/events"
)

type Builder struct {
	layout  build.Layout
	minify  bool
	handler events.Handler
}

type BuilderConfig struct {
	Minify bool
	Events events.Handler
}

type BuildResult struct {
	Duration    time.Duration
	Error       error
	Diagnostics *events.Collector
}

func NewBuilder(layout build.Layout, config BuilderConfig) *Builder {
	return &Builder{
		layout:  layout,
		minify:  config.Minify,
		handler: config.Events,
	}
}

// Build runs one full build and returns its outcome along with every
// diagnostic the pipeline emitted. Each run re-reads the config from disk.
func (b *Builder) Build(ctx context.Context) BuildResult {
	start := time.Now()

	collector := events.NewCollector(b.handler)

	err := build.Run(b.layout,
		build.WithContext(ctx),
		build.WithEvents(collector),
		build.WithMinify(b.minify),
	)

	return BuildResult{
		Duration:    time.Since(start),
		Error:       err,
		Diagnostics: collector,
	}
}
