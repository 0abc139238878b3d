// Package detector handles system and ROM format detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system and ROM format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// Result contains the detected system and ROM format.
type Result struct {
	System arch.System
	Format string
}

// New creates a new detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system and ROM format from options or file auto-detection.
// Explicitly specified options take precedence over the input filename extension.
// An error is returned for systems other than CHIP-8.
func (d *Detector) Detect(opts options.Program) (Result, error) {
	ext := strings.ToLower(filepath.Ext(opts.Input))

	system, _ := arch.SystemFromString(opts.System)
	if system == "" {
		system = systemFromExtension(ext)
		d.logger.Debug("Auto-detected system",
			log.Stringer("system", system),
			log.String("file", opts.Input))
	}
	if system != arch.CHIP8System {
		return Result{}, fmt.Errorf("unsupported system '%s' for file %s", system, opts.Input)
	}

	format := opts.Format
	if format == options.FormatAuto {
		format = formatFromExtension(ext)
		d.logger.Debug("Auto-detected ROM format",
			log.String("format", format),
			log.String("file", opts.Input))
	}

	return Result{
		System: system,
		Format: format,
	}, nil
}

// systemFromExtension determines the system type based on file extension.
func systemFromExtension(ext string) arch.System {
	if ext == ".nes" {
		return arch.NES
	}
	// .ch8, .c8, .rom, .hex and files without a known extension
	return arch.CHIP8System
}

// formatFromExtension determines the ROM format based on file extension.
func formatFromExtension(ext string) string {
	switch ext {
	case ".hex", ".txt":
		return options.FormatHex
	default:
		return options.FormatBinary
	}
}
