// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chippy/internal/options"
)

// ParseFlags parses command line flags and returns program and emulation options
func ParseFlags() (options.Program, options.Emulation, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Emulation{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Emulation{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Emulation{}, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	emulation := options.NewEmulation(opts)
	if err := validateOptionCombinations(opts, emulation); err != nil {
		return opts, options.Emulation{}, err
	}

	return opts, emulation, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chippy [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)
	switch opts.Format {
	case options.FormatAuto, options.FormatBinary, options.FormatHex:
	case "bin", "ch8":
		opts.Format = options.FormatBinary
	case "txt", "text":
		opts.Format = options.FormatHex
	default:
		return fmt.Errorf("unsupported ROM format: %s. Valid options: %s, %s",
			opts.Format, options.FormatBinary, options.FormatHex)
	}

	if opts.Speed <= 0 {
		return fmt.Errorf("invalid speed %d, must be positive", opts.Speed)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	}
	return nil
}

// validateOptionCombinations checks for options that can not be used together
func validateOptionCombinations(opts options.Program, emulation options.Emulation) error {
	if emulation.Steps > 0 && !emulation.Headless {
		return errors.New("the -steps option can only be used in -headless mode")
	}
	if emulation.Trace && opts.Quiet {
		return errors.New("the -trace option can not be combined with -q")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Format, "f", "", "ROM file format (binary/hex), auto-detected from the file extension if not given")
	flags.StringVar(&opts.System, "s", "", "system to emulate (chip8) - if not auto-detected from file extension")
	flags.IntVar(&opts.Speed, "speed", options.DefaultSpeed, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window and print the display to the console")
	flags.Uint64Var(&opts.Steps, "steps", 0, "number of ticks to run in headless mode, 0 runs until interrupted")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
