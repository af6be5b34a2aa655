package build

import (
	"errors"
	"fmt"

	"github.com/andersonbraz/linkbio/pkg/config"
	"github.com/andersonbraz/linkbio/pkg/events"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrRender           = errors.New("render failed")
	ErrWrite            = errors.New("write failed")
	ErrCopy             = errors.New("asset copy failed")
	ErrBuildFailed      = errors.New("build failed")
)

// Run performs one full build: load config, render templates, publish
// assets. Phases run sequentially and the first failure aborts the run;
// files already written stay on disk (no rollback).
func Run(layout Layout, opts ...Option) error {
	o := defaultOptions().Apply(opts...)

	if err := o.Context.Err(); err != nil {
		return err
	}

	o.Events.Handle(events.Event{Level: events.Info, Phase: "load", Message: "loading " + layout.ConfigPath()})
	site, err := config.Load(layout.ConfigPath())
	if err != nil {
		o.Events.Handle(events.Event{Level: events.Error, Phase: "load", Message: "config load failed", Err: err})
		return fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	if err := o.Context.Err(); err != nil {
		return err
	}

	o.Events.Handle(events.Event{Level: events.Info, Phase: "render", Message: "rendering templates into " + layout.OutputDir()})
	if err := Render(layout, site, o); err != nil {
		o.Events.Handle(events.Event{Level: events.Error, Phase: "render", Message: "render failed", Err: err})
		return fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	if err := o.Context.Err(); err != nil {
		return err
	}

	if err := Publish(layout, o.Events); err != nil {
		o.Events.Handle(events.Event{Level: events.Error, Phase: "publish", Message: "asset copy failed", Err: err})
		return fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	return nil
}
