package cmd

import (
	"context"
	"fmt"

	"github.com/andersonbraz/linkbio/pkg/build"
	"github.com/andersonbraz/linkbio/pkg/scaffold"
	"github.com/urfave/cli/v3"
)

// Start bootstraps a project: example config, stock assets and templates.
// Any fetch or write failure aborts provisioning and exits non-zero; files
// already written are left in place.
func Start(ctx context.Context, cmd *cli.Command) error {
	layout, err := build.NewLayout(cmd.String("path"))
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(layout)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	fmt.Printf("Bootstrapping LinkBio project in %s...\n", layout.Root)
	logger.Info("start requested", "root", layout.Root)

	err = scaffold.Provision(ctx, layout,
		scaffold.WithSource(cmd.String("source")),
		scaffold.WithEvents(logHandler(logger)),
	)
	if err != nil {
		logger.Error("start failed", "err", err)
		return fmt.Errorf("start failed: %w", err)
	}

	logger.Info("start complete")
	fmt.Printf("Start complete! Config written to %s\n", layout.ConfigPath())
	fmt.Println("Now edit 'linkbio.yaml' and run 'linkbio build'.")

	return nil
}
