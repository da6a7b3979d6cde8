package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/benchviz/internal/clean"
	"github.com/dtnitsch/benchviz/internal/embed"
	"github.com/dtnitsch/benchviz/internal/history"
	"github.com/dtnitsch/benchviz/internal/render"
	"github.com/urfave/cli/v2"
)

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a benchviz.yaml config file",
			Value: "benchviz.yaml",
		},
		&cli.StringFlag{
			Name:  "results-dir",
			Usage: "directory containing the HTML benchmark reports",
		},
		&cli.StringFlag{
			Name:  "plots-dir",
			Usage: "directory to write standalone chart images to",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "run summary format: json or yaml",
			Value: "json",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "benchviz",
		Usage: "Render charts from book-search benchmark HTML reports",
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Save all charts as PNG files in the plots directory",
				Flags:  sharedFlags(),
				Action: render.RenderAction,
			},
			{
				Name:   "embed",
				Usage:  "Render charts next to the reports and splice them in as idempotent blocks",
				Flags:  sharedFlags(),
				Action: embed.EmbedAction,
			},
			{
				Name:   "clean",
				Usage:  "Strip all injected chart blocks from the reports",
				Flags:  sharedFlags(),
				Action: clean.CleanAction,
			},
			{
				Name:  "history",
				Usage: "List previous render runs",
				Flags: append(sharedFlags(), &cli.IntFlag{
					Name:  "limit",
					Usage: "maximum number of runs to list",
					Value: 20,
				}),
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
