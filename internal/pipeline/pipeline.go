// Package pipeline orchestrates loading a ROM and running it on a host.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/chippy/internal/chip8"
	"github.com/retroenv/chippy/internal/config"
	"github.com/retroenv/chippy/internal/detector"
	"github.com/retroenv/chippy/internal/host"
	"github.com/retroenv/chippy/internal/loader"
	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/chippy/internal/runner"
	"github.com/retroenv/chippy/internal/terminal"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	output   io.Writer
}

// New creates a new emulation pipeline. The final display of headless runs is
// written to the output.
func New(logger *log.Logger, output io.Writer) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(logger),
		output:   output,
	}
}

// Execute loads the ROM and runs it until the host stops.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, emulation options.Emulation) error {
	machine, err := p.Prepare(opts, &emulation)
	if err != nil {
		return err
	}

	if emulation.Headless {
		return p.runHeadless(ctx, machine, emulation)
	}

	title := "chippy - " + filepath.Base(opts.Input)
	if err := host.New(p.logger, machine, title, emulation).Run(); err != nil {
		return fmt.Errorf("running host: %w", err)
	}
	return nil
}

// Prepare detects the system and format of the input file, loads the program and
// returns a machine that is ready to run it.
func (p *Pipeline) Prepare(opts options.Program, emulation *options.Emulation) (*chip8.Machine, error) {
	result, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting system: %w", err)
	}
	emulation.System = result.System

	program, err := p.loader.Load(opts, result.Format)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.String("format", result.Format),
		log.Int("size", len(program)),
	)

	return chip8.New(p.logger, program, config.MachineOptions(*emulation)...), nil
}

// runHeadless ticks the machine without a window and renders the final display.
// An interrupt is a regular way to end an unlimited run.
func (p *Pipeline) runHeadless(ctx context.Context, machine *chip8.Machine, emulation options.Emulation) error {
	if file, ok := p.output.(*os.File); ok && !terminal.Fits(int(file.Fd())) {
		p.logger.Debug("Output is not a terminal of sufficient size",
			log.Int("columns", terminal.Columns),
			log.Int("lines", terminal.Lines))
	}

	r := runner.New(p.logger, emulation.Speed, emulation.Steps)
	ticks, err := r.Run(ctx, machine)
	switch {
	case errors.Is(err, context.Canceled):
		p.logger.Info("Emulation interrupted")
	case err != nil:
		return fmt.Errorf("running machine: %w", err)
	}

	display := machine.Display()
	p.logger.Info("Emulation stopped",
		log.Int("ticks", int(ticks)),
		log.Hex("pc", machine.PC()),
		log.Stringer("state", machine.State()),
		log.Int("lit_pixels", display.Lit()),
	)

	if err := terminal.Render(p.output, &display); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	return nil
}
