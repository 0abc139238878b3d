package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDraw_Collision(t *testing.T) {
	m := newTestMachine(t,
		0xA300, // ld I, $300
		0xD011, // drw V0, V1, $1
		0xD011, // drw V0, V1, $1
	)
	m.write(0x300, 0xFF)

	run(t, m, 2)
	for x := range spriteWidth {
		assert.True(t, m.Pixel(x, 0))
	}
	assert.False(t, m.Pixel(spriteWidth, 0))
	assert.Equal(t, byte(0), m.Register(FlagRegister))

	run(t, m, 1)
	screen := m.Display()
	assert.Equal(t, 0, screen.Lit())
	assert.Equal(t, byte(1), m.Register(FlagRegister))
}

func TestDraw_CollisionOnlyOnSetBits(t *testing.T) {
	m := newTestMachine(t,
		0xA300, // ld I, $300
		0xD011, // drw V0, V1, $1
		0xA301, // ld I, $301
		0xD011, // drw V0, V1, $1
	)
	m.write(0x300, 0xF0)
	m.write(0x301, 0x0F)

	run(t, m, 4)
	assert.Equal(t, byte(0), m.Register(FlagRegister))
	screen := m.Display()
	assert.Equal(t, 8, screen.Lit())

	// a zero bit over a lit pixel leaves it lit
	m.pc = ProgramStart
	m.write(0x301, 0x00)
	run(t, m, 4)
	assert.Equal(t, byte(0), m.Register(FlagRegister))
	for x := range 4 {
		assert.False(t, m.Pixel(x, 0))
	}
	for x := 4; x < 8; x++ {
		assert.True(t, m.Pixel(x, 0))
	}
}

func TestDraw_Wraparound(t *testing.T) {
	m := newTestMachine(t,
		0xA300, // ld I, $300
		0xD012, // drw V0, V1, $2
	)
	m.v[0] = 60
	m.v[1] = 31
	m.write(0x300, 0xFF)
	m.write(0x301, 0x81)

	run(t, m, 2)

	for x := 60; x < 64; x++ {
		assert.True(t, m.Pixel(x, 31))
	}
	for x := range 4 {
		assert.True(t, m.Pixel(x, 31))
	}
	assert.True(t, m.Pixel(60, 0))
	assert.True(t, m.Pixel(3, 0))
	assert.False(t, m.Pixel(61, 0))

	screen := m.Display()
	assert.Equal(t, 10, screen.Lit())
}

func TestDraw_AllCoordinates(t *testing.T) {
	m := newTestMachine(t, 0xD01F)

	for x := range 256 {
		for y := range 256 {
			m.pc = ProgramStart
			m.i = MaxAddress - 7
			m.v[0] = byte(x)
			m.v[1] = byte(y)
			run(t, m, 1)
		}
	}
	assert.Equal(t, uint16(ProgramStart+2), m.PC())
}

func TestDraw_FontGlyph(t *testing.T) {
	m := newTestMachine(t,
		0xF029, // ld F, V0
		0xD125, // drw V1, V2, $5
	)
	m.v[0] = 0x1

	run(t, m, 2)

	// glyph 1: 0x20, 0x60, 0x20, 0x20, 0x70
	assert.True(t, m.Pixel(2, 0))
	assert.True(t, m.Pixel(1, 1))
	assert.True(t, m.Pixel(2, 1))
	assert.True(t, m.Pixel(1, 4))
	assert.True(t, m.Pixel(3, 4))
	assert.False(t, m.Pixel(0, 0))
	screen := m.Display()
	assert.Equal(t, 8, screen.Lit())
}
