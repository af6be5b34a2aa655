package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/andersonbraz/linkbio/pkg/build"
	"github.com/andersonbraz/linkbio/pkg/events"
	"github.com/andersonbraz/linkbio/pkg/utils/fileutils"
)

var (
	ErrDownload = errors.New("download failed")
	ErrWrite    = errors.New("write failed")
)

// DefaultSourceURL is the remote base the stock assets and templates are
// fetched from during bootstrap.
const DefaultSourceURL = "https://raw.githubusercontent.com/andersonbraz/linkbio/main"

// Fixed resource lists, resolved against {base}/assets/ and
// {base}/templates/. These are data, not user configuration; the upstream
// list shipped "background.jpgfavicon.ico" as one entry, corrected here.
var (
	assetFiles = []string{
		"avatar.png",
		"background.jpg",
		"favicon.ico",
	}

	templateFiles = build.TemplateFiles()
)

// Provision bootstraps a project: it creates the assets and templates
// directories, writes the example config (overwriting any existing file),
// and downloads the stock assets and templates. The first failure aborts
// provisioning; files already written are left in place, and re-running is
// safe since every file is simply overwritten.
func Provision(ctx context.Context, layout build.Layout, opts ...Option) error {
	o := defaultOptions().apply(opts...)

	for _, dir := range []string{layout.AssetsDir(), layout.TemplatesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	if err := writeExampleConfig(layout.ConfigPath()); err != nil {
		return err
	}
	o.events.Handle(events.Event{
		Level:   events.Info,
		Phase:   "provision",
		Message: "wrote example config " + layout.ConfigPath(),
	})

	for _, name := range assetFiles {
		if err := fetch(ctx, o, "assets/"+name, filepath.Join(layout.AssetsDir(), name)); err != nil {
			return err
		}
	}

	for _, name := range templateFiles {
		if err := fetch(ctx, o, "templates/"+name, filepath.Join(layout.TemplatesDir(), name)); err != nil {
			return err
		}
	}

	return nil
}

// fetch downloads one remote resource and writes it verbatim as bytes, so
// binary image formats survive intact.
func fetch(ctx context.Context, o *options, remote, dst string) error {
	url := strings.TrimSuffix(o.source, "/") + "/" + remote

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDownload, url, err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDownload, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: %s", ErrDownload, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDownload, url, err)
	}

	err = fileutils.AtomicWrite(dst, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, dst, err)
	}

	o.events.Handle(events.Event{
		Level:   events.Info,
		Phase:   "provision",
		Message: fmt.Sprintf("fetched %s -> %s", url, dst),
	})

	return nil
}

func writeExampleConfig(path string) error {
	err := fileutils.AtomicWrite(path, func(w io.Writer) error {
		_, err := io.WriteString(w, exampleConfig)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}
