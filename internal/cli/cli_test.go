package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags_EmulationOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Emulation
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Emulation{Speed: options.DefaultSpeed, Scale: options.DefaultScale},
		},
		{
			name: "speed and scale",
			args: []string{"prog", "-speed", "700", "-scale", "4", "pong.ch8"},
			want: options.Emulation{Speed: 700, Scale: 4},
		},
		{
			name: "headless with steps",
			args: []string{"prog", "-headless", "-steps", "1000", "pong.ch8"},
			want: options.Emulation{Speed: options.DefaultSpeed, Scale: options.DefaultScale, Headless: true, Steps: 1000},
		},
		{
			name: "trace",
			args: []string{"prog", "-trace", "-debug", "pong.ch8"},
			want: options.Emulation{Speed: options.DefaultSpeed, Scale: options.DefaultScale, Trace: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			opts, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, "pong.ch8", opts.Input)
			assert.Equal(t, tt.want.Speed, got.Speed)
			assert.Equal(t, tt.want.Scale, got.Scale)
			assert.Equal(t, tt.want.Headless, got.Headless)
			assert.Equal(t, tt.want.Steps, got.Steps)
			assert.Equal(t, tt.want.Trace, got.Trace)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{"no ROM file", []string{"prog"}, true},
		{"flag after ROM file", []string{"prog", "pong.ch8", "-q"}, true},
		{"unsupported format", []string{"prog", "-f", "elf", "pong.ch8"}, false},
		{"invalid speed", []string{"prog", "-speed", "0", "pong.ch8"}, false},
		{"steps without headless", []string{"prog", "-steps", "10", "pong.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, _, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}

func TestNormalizeOptions_Format(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"", options.FormatAuto},
		{"binary", options.FormatBinary},
		{"BIN", options.FormatBinary},
		{"ch8", options.FormatBinary},
		{"Hex", options.FormatHex},
		{"txt", options.FormatHex},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Format: tt.format},
				Flags:      options.Flags{Speed: 1, Scale: 1},
			}
			assert.NoError(t, normalizeOptions(&opts))
			assert.Equal(t, tt.expected, opts.Format)
		})
	}
}

func TestValidateOptionCombinations(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		emulation   options.Emulation
		expectError bool
	}{
		{
			name:        "no conflict",
			opts:        options.Program{},
			emulation:   options.Emulation{},
			expectError: false,
		},
		{
			name:        "headless with steps",
			opts:        options.Program{},
			emulation:   options.Emulation{Headless: true, Steps: 10},
			expectError: false,
		},
		{
			name:        "steps in window mode",
			opts:        options.Program{},
			emulation:   options.Emulation{Steps: 10},
			expectError: true,
		},
		{
			name: "trace and quiet conflict",
			opts: options.Program{
				Flags: options.Flags{Quiet: true},
			},
			emulation:   options.Emulation{Trace: true},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptionCombinations(tt.opts, tt.emulation)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
