// Package main times LATCH descriptor extraction on a synthetic image, single threaded and with a
// given extractor configuration.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"go.viam.com/latch/logging"
	"go.viam.com/latch/vision/keypoints/latch"
)

const (
	// Flags.
	flagWidth      = "width"
	flagHeight     = "height"
	flagKeypoints  = "keypoints"
	flagRuns       = "runs"
	flagSeed       = "seed"
	flagConfig     = "config"
	flagMaxWorkers = "max-workers"
	flagPlot       = "plot"
	flagDebug      = "debug"
)

func main() {
	app := &cli.App{
		Name:  "latchbench",
		Usage: "time LATCH descriptor extraction on a synthetic image",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: flagWidth, Value: 640, Usage: "image width in pixels"},
			&cli.IntFlag{Name: flagHeight, Value: 480, Usage: "image height in pixels"},
			&cli.IntFlag{Name: flagKeypoints, Aliases: []string{"n"}, Value: 5000, Usage: "number of random keypoints"},
			&cli.IntFlag{Name: flagRuns, Value: 10, Usage: "timed runs per mode"},
			&cli.Int64Flag{Name: flagSeed, Value: 1, Usage: "seed of the synthetic image and keypoints"},
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load the extractor configuration from `FILE`",
			},
			&cli.IntFlag{Name: flagMaxWorkers, Usage: "override max_workers of the configuration"},
			&cli.StringFlag{Name: flagPlot, Usage: "write the filtered keypoints over the image to `FILE` (png)"},
			&cli.BoolFlag{Name: flagDebug, Aliases: []string{"vvv"}, Usage: "enable debug logging"},
		},
		Action: func(c *cli.Context) error {
			logger := logging.NewLogger("latchbench")
			if c.Bool(flagDebug) {
				logger = logging.NewDebugLogger("latchbench")
			}

			cfg := latch.DefaultConfig()
			if path := c.String(flagConfig); path != "" {
				var err error
				if cfg, err = latch.LoadConfiguration(path); err != nil {
					return err
				}
			}
			if c.IsSet(flagMaxWorkers) {
				cfg.MaxWorkers = c.Int(flagMaxWorkers)
			}

			return runBenchmark(c.App.Writer, benchOptions{
				Width:        c.Int(flagWidth),
				Height:       c.Int(flagHeight),
				NumKeypoints: c.Int(flagKeypoints),
				Runs:         c.Int(flagRuns),
				Seed:         c.Int64(flagSeed),
				PlotPath:     c.String(flagPlot),
			}, cfg, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
