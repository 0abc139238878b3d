package chip8

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

var (
	// ErrStackOverflow is returned when a call is made with all 16 stack slots in use.
	ErrStackOverflow = chip8.ErrStackOverflow
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = chip8.ErrStackUnderflow
)
