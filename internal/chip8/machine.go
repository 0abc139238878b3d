package chip8

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 machine layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Font glyphs for the hex digits 0-F, 5 bytes each
//	0x050-0x1FF: Unused interpreter area
//	0x200-0xFFF: Program space (3584 bytes)
const (
	MemorySize     = 0x1000
	MaxAddress     = MemorySize - 1
	ProgramStart   = 0x200
	MaxProgramSize = MemorySize - ProgramStart

	RegisterCount = 16
	FlagRegister  = 0xF
	StackSize     = 16
	KeyCount      = 16

	Width  = 64
	Height = 32
)

// State is the execution state of the machine.
type State uint8

const (
	// Running executes one instruction per step.
	Running State = iota
	// WaitingForKey suspends execution until a key is freshly pressed.
	WaitingForKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	default:
		return "unknown"
	}
}

// Screen is the monochrome display, indexed by row then column.
type Screen [Height][Width]bool

// Lit returns the number of lit pixels.
func (s *Screen) Lit() int {
	var n int
	for y := range s {
		for x := range s[y] {
			if s[y][x] {
				n++
			}
		}
	}
	return n
}

// Machine holds the complete state of a CHIP-8 system.
type Machine struct {
	logger *log.Logger
	random func() byte
	trace  bool

	memory [MemorySize]byte
	v      [RegisterCount]byte
	i      uint16
	pc     uint16

	stack [StackSize]uint16
	sp    uint8

	delay byte
	sound byte

	display Screen

	keys    [KeyCount]bool
	pressed [KeyCount]bool // keys that went down since the last step

	state        State
	waitRegister uint8
}

// Option configures optional machine behavior.
type Option func(*Machine)

// WithRandom sets the byte source used by the RND instruction.
func WithRandom(fn func() byte) Option {
	return func(m *Machine) {
		m.random = fn
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(enabled bool) Option {
	return func(m *Machine) {
		m.trace = enabled
	}
}

// New returns a machine with the font loaded, the program copied to ProgramStart and
// all registers, timers, the stack, the display and the input latches cleared.
// Program bytes beyond MaxProgramSize are dropped.
func New(logger *log.Logger, program []byte, options ...Option) *Machine {
	m := &Machine{
		logger: logger,
		random: randomByte,
		pc:     ProgramStart,
	}
	for _, option := range options {
		option(m)
	}

	copy(m.memory[:], font[:])
	copy(m.memory[ProgramStart:], program)
	return m
}

func randomByte() byte {
	return byte(rand.UintN(256))
}

// Register returns the value of register Vx, x is wrapped to 0-F.
func (m *Machine) Register(x int) byte {
	return m.v[x&0xF]
}

// Index returns the index register I.
func (m *Machine) Index() uint16 {
	return m.i
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// StackDepth returns the number of return addresses on the stack.
func (m *Machine) StackDepth() int {
	return int(m.sp)
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.delay
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() byte {
	return m.sound
}

// SoundActive returns whether the sound timer is running.
func (m *Machine) SoundActive() bool {
	return m.sound > 0
}

// State returns the execution state.
func (m *Machine) State() State {
	return m.state
}

// Memory returns the byte at the given address, wrapped to the 4KB address space.
func (m *Machine) Memory(address uint16) byte {
	return m.read(address)
}

// Display returns a copy of the display.
func (m *Machine) Display() Screen {
	return m.display
}

// Pixel returns whether the pixel at column x and row y is lit.
// Coordinates wrap around the screen edges.
func (m *Machine) Pixel(x, y int) bool {
	return m.display[wrap(y, Height)][wrap(x, Width)]
}

func (m *Machine) read(address uint16) byte {
	return m.memory[address&MaxAddress]
}

func (m *Machine) write(address uint16, value byte) {
	m.memory[address&MaxAddress] = value
}

// fetch returns the big endian instruction word at the program counter.
func (m *Machine) fetch() uint16 {
	return uint16(m.read(m.pc))<<8 | uint16(m.read(m.pc+1))
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
