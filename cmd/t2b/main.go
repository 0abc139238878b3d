// Package main implements a converter of hex text CHIP-8 programs to binary ROM files
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/chippy/internal/config"
	"github.com/retroenv/chippy/internal/hexrom"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	output := flags.String("o", filepath.Join("roms", "rom.c8"), "name of the output ROM file")
	quiet := flags.Bool("q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) != 1 {
		fmt.Printf("usage: t2b [options] <hex text file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}

	logger := config.CreateLogger(false, *quiet)
	if err := convert(args[0], *output); err != nil {
		logger.Fatal("Converting failed", log.Err(err))
	}
	logger.Info("ROM written", log.String("file", *output))
}

func convert(input, output string) error {
	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening file '%s': %w", input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := hexrom.Decode(file)
	if err != nil {
		return fmt.Errorf("decoding file '%s': %w", input, err)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing file '%s': %w", output, err)
	}
	return nil
}
