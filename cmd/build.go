package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/andersonbraz/linkbio/cmd/internal"
	"github.com/andersonbraz/linkbio/pkg/build"
	"github.com/andersonbraz/linkbio/pkg/events"
	"github.com/urfave/cli/v3"
)

// Build renders the page once. Unlike start, a failed build does not raise
// to the shell: the failure is summarized on the console, details go to the
// log file, and artifacts written before the failure stay on disk.
func Build(ctx context.Context, cmd *cli.Command) error {
	layout, err := build.NewLayout(cmd.String("path"))
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(layout)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	fmt.Println("Building LinkBio page...")

	builder := internal.NewBuilder(layout, internal.BuilderConfig{
		Minify: cmd.Bool("minify"),
		Events: logHandler(logger),
	})

	result := builder.Build(ctx)
	if result.Error != nil {
		logger.Error("build failed", "err", result.Error)
		fmt.Printf("Build failed: %v\n", result.Error)
		fmt.Printf("Check %s and your linkbio.yaml.\n", layout.LogFile())
		return nil
	}

	logger.Info("build complete",
		"duration", result.Duration,
		"max_level", result.Diagnostics.MaxLevel())

	fmt.Printf("Build complete in %s -> %s\n",
		result.Duration.Truncate(time.Millisecond),
		layout.OutputDir())
	if warnings := result.Diagnostics.AtLevel(events.Warning); len(warnings) > 0 {
		fmt.Printf("%d warning(s) during build; see %s\n", len(warnings), layout.LogFile())
	}
	fmt.Println("Use 'linkbio preview' to inspect the page.")

	return nil
}
