// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrogolib/arch"
)

// ROM file formats.
const (
	FormatAuto   = ""
	FormatBinary = "binary"
	FormatHex    = "hex"
)

// Defaults of the emulation options.
const (
	DefaultSpeed = 500 // instructions per second
	DefaultScale = 10
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Format string `flag:"f" usage:"ROM format: binary, hex (default: auto-detect)"`
	System string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
}

// Flags contains behavior options.
type Flags struct {
	Speed    int    `flag:"speed" usage:"instructions per second" default:"500"`
	Scale    int    `flag:"scale" usage:"window scale factor" default:"10"`
	Headless bool   `flag:"headless" usage:"run without a window and print the final display"`
	Steps    uint64 `flag:"steps" usage:"number of ticks to run in headless mode (0: until interrupted)"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Emulation defines options to control the machine and its host.
type Emulation struct {
	System arch.System // system type, only chip8 is supported

	Speed    int // ticks per second
	Scale    int // window pixels per display pixel
	Headless bool
	Steps    uint64
	Trace    bool
}

// NewEmulation returns a new emulation options instance based on the program options.
func NewEmulation(opts Program) Emulation {
	return Emulation{
		Speed:    opts.Speed,
		Scale:    opts.Scale,
		Headless: opts.Headless,
		Steps:    opts.Steps,
		Trace:    opts.Trace,
	}
}
