package cmd

import (
	"os"
	"path/filepath"

	"github.com/andersonbraz/linkbio/pkg/build"
	"github.com/andersonbraz/linkbio/pkg/events"
	"github.com/charmbracelet/log"
)

// newFileLogger opens the append-only diagnostic log under the project root
// and returns an explicit logger instance. The console stays limited to the
// short status lines each command prints; detailed diagnostics go here only.
func newFileLogger(layout build.Layout) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(layout.LogFile()), 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(layout.LogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "linkbio",
	})
	logger.SetLevel(log.DebugLevel)

	return logger, func() { _ = f.Close() }, nil
}

// logHandler forwards pipeline events to the file logger.
func logHandler(logger *log.Logger) events.Handler {
	return events.Func(func(e events.Event) {
		args := []any{"phase", e.Phase}
		if e.Err != nil {
			args = append(args, "err", e.Err)
		}

		switch e.Level {
		case events.Debug:
			logger.Debug(e.Message, args...)
		case events.Info:
			logger.Info(e.Message, args...)
		case events.Warning:
			logger.Warn(e.Message, args...)
		case events.Error:
			logger.Error(e.Message, args...)
		}
	})
}
