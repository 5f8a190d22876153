// SPDX-License-Identifier: MIT
// Command geosocial samples a working graph from raw location and connection
// files, then prints its communities, spanning forest and typical path length.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/geosocial/analysis"
	"github.com/katalvlaran/geosocial/config"
	"github.com/katalvlaran/geosocial/logging"
	"github.com/katalvlaran/geosocial/metrics"
	"github.com/katalvlaran/geosocial/report"
)

const helpMessage = `
geosocial analyses a geo-tagged social graph.

Usage: geosocial [options]

      -config       (string)  YAML or TOML configuration file
      -locations    (string)  locations file, one "lat,lon" row per user (.gz, .zst accepted)
      -connections  (string)  connections file, "owner,n1,n2,..." rows (.gz, .zst accepted)
      -seed         (int)     random seed; 0 selects the fixed default
      -synthetic    (int)     generate this many synthetic users instead of reading files
  -h, -help         (flag)    show this message
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geosocial", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, helpMessage) }
	var (
		cfgPath     = fs.String("config", "", "configuration file")
		locations   = fs.String("locations", "", "locations file")
		connections = fs.String("connections", "", "connections file")
		seed        = fs.Int64("seed", 0, "random seed")
		synthetic   = fs.Int("synthetic", 0, "synthetic user count")
	)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(stderr, "geosocial: %v\n", err)
			return 1
		}
	}
	// Flags override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "locations":
			cfg.Input.Locations = *locations
		case "connections":
			cfg.Input.Connections = *connections
		case "seed":
			cfg.Seed = *seed
		case "synthetic":
			cfg.Input.Synthetic = *synthetic
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "geosocial: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "geosocial: %v\n", err)
		return 1
	}
	defer log.Sync() //nolint:errcheck

	in, err := analysis.LoadInput(cfg, log)
	if err != nil {
		log.Error("loading input failed", zap.Error(err))
		return 1
	}

	rec := metrics.New()
	rep, err := analysis.Run(ctx, in, cfg, log, rec)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return 1
	}
	if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.Warn("writing metrics textfile failed", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
	}
	if err := report.Write(stdout, rep); err != nil {
		log.Error("writing report failed", zap.Error(err))
		return 1
	}

	return 0
}
