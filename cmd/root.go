package cmd

import (
	"context"
	"fmt"

	"github.com/andersonbraz/linkbio/pkg/version"
	"github.com/urfave/cli/v3"
)

var Version = version.String()

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:  "linkbio",
		Usage: "A static link-in-bio page generator",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("linkbio version %s\n", Version)
					return nil
				},
			},
			{
				Name:  "start",
				Usage: "Bootstrap a new LinkBio project (config, assets, templates)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Value: ".", Usage: "project root directory"},
					&cli.StringFlag{Name: "source", Value: "", Usage: "remote base URL for stock assets and templates"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Start(ctx, cmd)
				},
			},
			{
				Name:  "build",
				Usage: "Render the page into the page directory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Value: ".", Usage: "project root directory"},
					&cli.BoolFlag{Name: "minify", Aliases: []string{"m"}, Value: false, Usage: "minify rendered output"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Build(ctx, cmd)
				},
			},
			{
				Name:  "preview",
				Usage: "Build, then serve the page directory locally until interrupted",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Value: ".", Usage: "project root directory"},
					&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "HTTP port"},
					&cli.BoolFlag{Name: "minify", Aliases: []string{"m"}, Value: false, Usage: "minify rendered output"},
					&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Value: false, Usage: "rebuild on source changes"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Preview(ctx, cmd)
				},
			},
		},
	}

	return app.Run(ctx, args)
}
