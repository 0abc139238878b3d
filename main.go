// Package main implements the main entry point of a CHIP-8 emulator
package main

import (
	"errors"
	"os"

	"github.com/retroenv/chippy/internal/cli"
	"github.com/retroenv/chippy/internal/config"
	"github.com/retroenv/chippy/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, emulation, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			pipeline.PrintBanner(logger, opts.Quiet, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	pipeline.PrintBanner(logger, opts.Quiet, version, commit, date)

	p := pipeline.New(logger, os.Stdout)
	if err := p.Execute(ctx, opts, emulation); err != nil {
		logger.Fatal("Emulation failed", log.Err(err))
	}
}
