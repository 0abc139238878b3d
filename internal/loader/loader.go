// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chippy/internal/chip8"
	"github.com/retroenv/chippy/internal/hexrom"
	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the program of the input file in the given format.
// Binary ROMs are used as is, hex text ROMs are decoded first.
// Programs that exceed the CHIP-8 program space are returned unchanged, the machine
// drops the excess bytes when loading them.
func (l *Loader) Load(opts options.Program, format string) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	program, err := l.read(file, format)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", opts.Input, err)
	}

	if len(program) > chip8.MaxProgramSize {
		l.logger.Debug("Program exceeds program space and will be truncated",
			log.String("file", opts.Input),
			log.Int("size", len(program)),
			log.Int("max_size", chip8.MaxProgramSize))
	}
	return program, nil
}

func (l *Loader) read(reader io.Reader, format string) ([]byte, error) {
	switch format {
	case options.FormatHex:
		program, err := hexrom.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("decoding hex text: %w", err)
		}
		return program, nil

	case options.FormatBinary, options.FormatAuto:
		program, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("reading binary: %w", err)
		}
		return program, nil

	default:
		return nil, fmt.Errorf("unsupported ROM format '%s'", format)
	}
}
