package build

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andersonbraz/linkbio/pkg/config"
)

func testLayout(t *testing.T) Layout {
	t.Helper()
	layout, err := NewLayout(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(layout.TemplatesDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	return layout
}

func writeTemplate(t *testing.T, layout Layout, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(layout.TemplatesDir(), name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeStockTemplates(t *testing.T, layout Layout) {
	t.Helper()
	writeTemplate(t, layout, MarkupTemplate, "<h1>{{.title}}</h1><p>{{.description}}</p>")
	writeTemplate(t, layout, StylesheetTemplate, "body { color: #333; }")
	writeTemplate(t, layout, ScriptTemplate, "console.log('ready');")
}

func testSite(t *testing.T, doc string) *config.Site {
	t.Helper()
	site, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return site
}

func TestRenderWritesAllOutputs(t *testing.T) {
	layout := testLayout(t)
	writeStockTemplates(t, layout)
	site := testSite(t, "title: 'My Links'\ndescription: 'hello there'\n")

	if err := Render(layout, site, defaultOptions()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html, err := os.ReadFile(filepath.Join(layout.OutputDir(), MarkupOutput))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	for _, want := range []string{"My Links", "hello there"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("index.html missing %q:\n%s", want, html)
		}
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
}

func TestRenderSubstitutesValuesVerbatim(t *testing.T) {
	layout := testLayout(t)
	writeStockTemplates(t, layout)
	site := testSite(t, "title: 'Links & Things'\ndescription: 'a < b, \"quoted\"'\n")

	if err := Render(layout, site, defaultOptions()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html, err := os.ReadFile(filepath.Join(layout.OutputDir(), MarkupOutput))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Links & Things", `a < b, "quoted"`} {
		if !strings.Contains(string(html), want) {
			t.Errorf("index.html does not contain %q verbatim:\n%s", want, html)
		}
	}
	for _, entity := range []string{"&amp;", "&lt;", "&#34;"} {
		if strings.Contains(string(html), entity) {
			t.Errorf("index.html escaped a config value (%s):\n%s", entity, html)
		}
	}
}

func TestRenderOverwritesPreviousOutput(t *testing.T) {
	layout := testLayout(t)
	writeStockTemplates(t, layout)

	if err := Render(layout, testSite(t, "title: first"), defaultOptions()); err != nil {
		t.Fatalf("first Render() error: %v", err)
	}
	if err := Render(layout, testSite(t, "title: second"), defaultOptions()); err != nil {
		t.Fatalf("second Render() error: %v", err)
	}

	html, err := os.ReadFile(filepath.Join(layout.OutputDir(), MarkupOutput))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "second") || strings.Contains(string(html), "first") {
		t.Errorf("index.html not overwritten: %s", html)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	layout := testLayout(t)
	writeTemplate(t, layout, MarkupTemplate, "<h1>{{.title}}</h1>")
	writeTemplate(t, layout, ScriptTemplate, "// js")
	// stylesheet template intentionally absent

	err := Render(layout, testSite(t, "title: x"), defaultOptions())
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("Render() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestRenderFailures(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{
			name:   "template syntax error",
			markup: "{{range}}",
		},
		{
			name:   "template evaluation error",
			markup: "{{index .nav 99}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := testLayout(t)
			writeTemplate(t, layout, MarkupTemplate, tt.markup)
			writeTemplate(t, layout, StylesheetTemplate, "body {}")
			writeTemplate(t, layout, ScriptTemplate, "// js")

			err := Render(layout, testSite(t, "title: x"), defaultOptions())
			if !errors.Is(err, ErrRender) {
				t.Fatalf("Render() error = %v, want ErrRender", err)
			}
		})
	}
}

func TestRenderMinified(t *testing.T) {
	layout := testLayout(t)
	writeTemplate(t, layout, MarkupTemplate, "<h1>\n  {{.title}}\n</h1>\n")
	writeTemplate(t, layout, StylesheetTemplate, "body {\n  color: #333333;\n}\n")
	writeTemplate(t, layout, ScriptTemplate, "console.log( 'ready' );\n")

	o := defaultOptions().Apply(WithMinify(true))
	if err := Render(layout, testSite(t, "title: Minified Title"), o); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html, err := os.ReadFile(filepath.Join(layout.OutputDir(), MarkupOutput))
	if err != nil {
		t.Fatal(err)
	}
	// minification must never lose the substituted text content
	if !strings.Contains(string(html), "Minified Title") {
		t.Errorf("minified index.html lost title: %s", html)
	}
}
