package build

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andersonbraz/linkbio/pkg/config"
	"github.com/andersonbraz/linkbio/pkg/events"
)

func TestRunFullFlow(t *testing.T) {
	layout := testLayout(t)
	writeStockTemplates(t, layout)
	writeAssets(t, layout, map[string]string{"avatar.png": "png-bytes"})

	doc := "title: 'Full Flow Test'\ndescription: 'end to end'\n"
	if err := os.WriteFile(layout.ConfigPath(), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	collector := events.NewCollector(nil)
	if err := Run(layout, WithEvents(collector)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	html, err := os.ReadFile(filepath.Join(layout.OutputDir(), MarkupOutput))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "Full Flow Test") {
		t.Errorf("index.html missing title: %s", html)
	}

	for _, name := range []string{StylesheetOutput, ScriptOutput} {
		data, err := os.ReadFile(filepath.Join(layout.OutputDir(), name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if _, err := os.Stat(filepath.Join(layout.OutputAssetsDir(), "avatar.png")); err != nil {
		t.Errorf("published asset missing: %v", err)
	}

	if collector.HasLevel(events.Error) {
		t.Errorf("successful build emitted error events: %+v", collector.AtLevel(events.Error))
	}
}

func TestRunMissingConfig(t *testing.T) {
	layout := testLayout(t)
	writeStockTemplates(t, layout)

	err := Run(layout)
	if !errors.Is(err, ErrBuildFailed) {
		t.Fatalf("Run() error = %v, want ErrBuildFailed", err)
	}
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("Run() error = %v, want wrapped config.ErrNotFound", err)
	}
}

func TestRunRenderFailureLeavesEarlierOutput(t *testing.T) {
	layout := testLayout(t)
	writeTemplate(t, layout, MarkupTemplate, "<h1>{{.title}}</h1>")
	writeTemplate(t, layout, StylesheetTemplate, "body {}")
	// script template missing: render fails after index.html and style.css

	if err := os.WriteFile(layout.ConfigPath(), []byte("title: partial\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Run(layout)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("Run() error = %v, want ErrTemplateNotFound", err)
	}

	// no rollback: artifacts written before the failure stay on disk
	if _, err := os.Stat(filepath.Join(layout.OutputDir(), MarkupOutput)); err != nil {
		t.Errorf("index.html should remain after failed build: %v", err)
	}
}

func TestRunWithoutAssetsDirSucceeds(t *testing.T) {
	layout := testLayout(t)
	writeStockTemplates(t, layout)
	if err := os.WriteFile(layout.ConfigPath(), []byte("title: no assets\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	collector := events.NewCollector(nil)
	if err := Run(layout, WithEvents(collector)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !collector.HasLevel(events.Warning) {
		t.Error("expected warning about the missing assets directory")
	}
}
