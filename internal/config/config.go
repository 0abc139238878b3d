// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chippy/internal/chip8"
	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineOptions returns the machine options for the emulation settings.
func MachineOptions(emulation options.Emulation) []chip8.Option {
	return []chip8.Option{
		chip8.WithTrace(emulation.Trace),
	}
}

// TicksPerFrame returns how many ticks have to run per host frame to reach the configured
// speed, at least one.
func TicksPerFrame(speed, framesPerSecond int) int {
	if framesPerSecond <= 0 {
		return 1
	}
	ticks := (speed + framesPerSecond/2) / framesPerSecond
	return max(ticks, 1)
}
