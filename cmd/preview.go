package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/andersonbraz/linkbio/cmd/internal"
	"github.com/andersonbraz/linkbio/pkg/build"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// Preview runs a full build and serves the output directory until
// interrupted. If the build fails the server never starts.
func Preview(ctx context.Context, cmd *cli.Command) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt)
	defer stopSignals()

	layout, err := build.NewLayout(cmd.String("path"))
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(layout)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	builder := internal.NewBuilder(layout, internal.BuilderConfig{
		Minify: cmd.Bool("minify"),
		Events: logHandler(logger),
	})

	fmt.Println("Building LinkBio page...")
	result := builder.Build(ctx)
	if result.Error != nil {
		logger.Error("preview aborted, build failed", "err", result.Error)
		return fmt.Errorf("preview aborted: %w", result.Error)
	}
	fmt.Printf("Build complete in %s\n", result.Duration.Truncate(time.Millisecond))

	server := internal.NewServer(internal.ServerConfig{
		Dir:  layout.OutputDir(),
		Port: cmd.Int("port"),
	})

	baseURL, err := server.Start()
	if err != nil {
		logger.Error("preview server failed to start", "err", err)
		return err
	}
	defer func() { _ = server.Shutdown() }()

	logger.Info("preview server started", "url", baseURL, "dir", layout.OutputDir())
	fmt.Printf("Preview server running at %s\n", baseURL)
	fmt.Println("Press Ctrl+C to stop...")

	g, gctx := errgroup.WithContext(ctx)

	if cmd.Bool("watch") {
		g.Go(func() error {
			return watchAndRebuild(gctx, layout, builder, logger)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	err = g.Wait()
	fmt.Println("\nPreview server stopped.")
	logger.Info("preview server stopped")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchAndRebuild reruns a full build whenever the config, templates or
// assets change. A failed rebuild is logged and serving continues with the
// last good output.
func watchAndRebuild(ctx context.Context, layout build.Layout, builder *internal.Builder, logger *log.Logger) error {
	watcher, err := internal.NewFileWatcher(internal.WatcherConfig{
		Paths: []string{
			layout.ConfigPath(),
			layout.TemplatesDir(),
			layout.AssetsDir(),
		},
		Debounce: 250 * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	changes, watchErrs, err := watcher.Start(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-changes:
			fmt.Printf("Change detected (%d path(s)), rebuilding...\n", len(ev.Paths))
			result := builder.Build(ctx)
			if result.Error != nil {
				fmt.Printf("Rebuild failed: %v\n", result.Error)
				continue
			}
			fmt.Printf("Rebuild complete in %s\n", result.Duration.Truncate(time.Millisecond))

		case werr := <-watchErrs:
			logger.Warn("watch error", "err", werr)
		}
	}
}
