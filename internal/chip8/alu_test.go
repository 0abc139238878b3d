package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestALU(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		vx, vy   byte
		expected byte
		flag     byte
	}{
		{"LD", 0x8120, 0x01, 0x02, 0x02, 0xEE},
		{"OR", 0x8121, 0xF0, 0x0F, 0xFF, 0xEE},
		{"AND", 0x8122, 0xF3, 0x3F, 0x33, 0xEE},
		{"XOR", 0x8123, 0xFF, 0x0F, 0xF0, 0xEE},
		{"ADD without carry", 0x8124, 0x10, 0x20, 0x30, 0},
		{"ADD with carry", 0x8124, 0xFF, 0x01, 0x00, 1},
		{"ADD with carry and remainder", 0x8124, 0xF0, 0x20, 0x10, 1},
		{"SUB without borrow", 0x8125, 0x05, 0x03, 0x02, 1},
		{"SUB equal values", 0x8125, 0x05, 0x05, 0x00, 1},
		{"SUB with borrow", 0x8125, 0x01, 0x02, 0xFF, 0},
		{"SHR low bit set", 0x8126, 0x03, 0x00, 0x01, 1},
		{"SHR low bit clear", 0x8126, 0x04, 0x00, 0x02, 0},
		{"SUBN without borrow", 0x8127, 0x03, 0x05, 0x02, 1},
		{"SUBN with borrow", 0x8127, 0x05, 0x03, 0xFE, 0},
		{"SHL high bit set", 0x812E, 0x81, 0x00, 0x02, 1},
		{"SHL high bit clear", 0x812E, 0x41, 0x00, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.opcode)
			m.v[1] = tt.vx
			m.v[2] = tt.vy
			m.v[FlagRegister] = 0xEE

			run(t, m, 1)
			assert.Equal(t, tt.expected, m.Register(1))
			assert.Equal(t, tt.vy, m.Register(2))
			assert.Equal(t, tt.flag, m.Register(FlagRegister))
			assert.Equal(t, uint16(0x202), m.PC())
		})
	}
}

func TestALU_FlagRegisterAsTarget(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		vf, vy   byte
		expected byte
	}{
		{"ADD flag overwrites result", 0x8F24, 0xFF, 0x01, 1},
		{"SUB flag overwrites result", 0x8F25, 0x01, 0x02, 0},
		{"SHR result overwrites flag", 0x8F06, 0x02, 0x00, 0x01},
		{"SHL result overwrites flag", 0x8F0E, 0x81, 0x00, 0x02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.opcode)
			m.v[FlagRegister] = tt.vf
			m.v[2] = tt.vy

			run(t, m, 1)
			assert.Equal(t, tt.expected, m.Register(FlagRegister))
		})
	}
}
