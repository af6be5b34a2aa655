package build

import (
	"errors"
	"fmt"
	"os"

	"github.com/andersonbraz/linkbio/pkg/events"
	"github.com/andersonbraz/linkbio/pkg/utils/fileutils"
)

// Publish copies the source assets tree into the output assets directory.
// A missing source directory is a warning, not a failure: asset copying is
// optional. Any previous copy is removed first so stale files from earlier
// builds never linger.
func Publish(layout Layout, ev events.Handler) error {
	if ev == nil {
		ev = events.Discard()
	}

	if _, err := os.Stat(layout.AssetsDir()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ev.Handle(events.Event{
				Level:   events.Warning,
				Phase:   "publish",
				Message: fmt.Sprintf("assets directory %s not found, skipping copy", layout.AssetsDir()),
			})
			return nil
		}
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	if err := os.MkdirAll(layout.OutputDir(), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	if err := os.RemoveAll(layout.OutputAssetsDir()); err != nil {
		return fmt.Errorf("%w: removing stale assets: %w", ErrCopy, err)
	}

	if err := fileutils.CopyTree(layout.AssetsDir(), layout.OutputAssetsDir()); err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	files, err := fileutils.WalkFiles(layout.OutputAssetsDir())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	ev.Handle(events.Event{
		Level:   events.Info,
		Phase:   "publish",
		Message: fmt.Sprintf("copied %d asset file(s) to %s", len(files), layout.OutputAssetsDir()),
	})

	return nil
}
