package build

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/andersonbraz/linkbio/pkg/config"
	"github.com/andersonbraz/linkbio/pkg/events"
	"github.com/andersonbraz/linkbio/pkg/utils/fileutils"
	"github.com/tdewolff/minify/v2"
)

// Template and output filenames are fixed; authors customize content, not
// the set of files the generator produces.
const (
	MarkupTemplate     = "index.html.tmpl"
	StylesheetTemplate = "style.css.tmpl"
	ScriptTemplate     = "script.js.tmpl"

	MarkupOutput     = "index.html"
	StylesheetOutput = "style.css"
	ScriptOutput     = "script.js"
)

// TemplateFiles lists every template the renderer loads, in render order.
func TemplateFiles() []string {
	return []string{MarkupTemplate, StylesheetTemplate, ScriptTemplate}
}

type artifact struct {
	template string
	target   string
	data     any
}

// Render loads the three named templates from the templates directory and
// writes the rendered results into the output directory. The markup template
// sees every top-level config key; stylesheet and script render with no data.
// Config values are substituted verbatim, with no escaping; template authors
// own the markup they interpolate into.
func Render(layout Layout, site *config.Site, o *Options) error {
	if err := os.MkdirAll(layout.OutputDir(), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	m := newMinifier(o.Minify)

	artifacts := []artifact{
		{template: MarkupTemplate, target: MarkupOutput, data: site.Bindings()},
		{template: StylesheetTemplate, target: StylesheetOutput, data: nil},
		{template: ScriptTemplate, target: ScriptOutput, data: nil},
	}

	for _, a := range artifacts {
		if err := renderArtifact(layout, a, m); err != nil {
			return err
		}
		o.Events.Handle(events.Event{
			Level:   events.Info,
			Phase:   "render",
			Message: fmt.Sprintf("rendered %s -> %s", a.template, a.target),
		})
	}

	return nil
}

func renderArtifact(layout Layout, a artifact, m *minify.M) error {
	src := filepath.Join(layout.TemplatesDir(), a.template)

	content, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s (expected in %s)", ErrTemplateNotFound, a.template, layout.TemplatesDir())
		}
		return fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, a.template, err)
	}

	tmpl, err := template.New(a.template).Parse(string(content))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRender, a.template, err)
	}

	var buf bytes.Buffer
	var w io.Writer = &buf

	var mw io.WriteCloser
	if m != nil {
		if mime, ok := mimeFor(a.target); ok {
			mw = m.Writer(mime, &buf)
			w = mw
		}
	}

	if err := tmpl.Execute(w, a.data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRender, a.template, err)
	}
	if mw != nil {
		if err := mw.Close(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRender, a.template, err)
		}
	}

	dst := filepath.Join(layout.OutputDir(), a.target)
	err = fileutils.AtomicWrite(dst, func(w io.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, dst, err)
	}

	return nil
}
