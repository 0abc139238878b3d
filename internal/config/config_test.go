package config

import (
	"testing"

	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestMachineOptions(t *testing.T) {
	opts := MachineOptions(options.Emulation{Trace: true})
	assert.Equal(t, 1, len(opts))
}

func TestTicksPerFrame(t *testing.T) {
	tests := []struct {
		name     string
		speed    int
		fps      int
		expected int
	}{
		{"default speed", 500, 60, 8},
		{"exact", 600, 60, 10},
		{"slower than frame rate", 30, 60, 1},
		{"invalid frame rate", 500, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TicksPerFrame(tt.speed, tt.fps))
		})
	}
}
