// Package chip8 implements a CHIP-8 virtual machine interpreter.
//
// # Machine Overview
//
// A Machine owns the complete CHIP-8 state and is the only component that mutates it:
//   - 4KB of memory (0x000-0xFFF), the built-in font at 0x000-0x04F
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as the flag register
//   - a 16-bit index register I and the program counter, starting at ProgramStart
//   - a call stack of 16 return addresses
//   - the delay and sound timers
//   - a 64x32 monochrome display
//   - 16 input latches for the logical keypad 0x0-0xF
//
// # Program Loading
//
// Programs are copied to ProgramStart. A program longer than MaxProgramSize (3584 bytes)
// is truncated to MaxProgramSize without an error, everything past the end of memory is
// dropped.
//
// # Stepping
//
// The host drives the machine by calling Tick once per simulated tick:
//
//	m := chip8.New(logger, rom)
//	for running {
//		m.SetKey(0x5, pressed)
//		if err := m.Tick(); err != nil {
//			return err
//		}
//		present(m.Display())
//	}
//
// Tick decrements the timers and executes one instruction. While the machine is waiting for
// a key (FX0A) nothing advances: every Tick only checks for a freshly pressed key, and the
// tick that observes one stores the key in the target register without executing an
// instruction or decrementing the timers.
//
// # Errors
//
// Unknown opcodes are logged and skipped. Calling with a full stack or returning with an
// empty one is reported as ErrStackOverflow or ErrStackUnderflow, the faulting instruction
// leaves the machine untouched.
//
// # Bounds
//
// Memory addresses are wrapped to 12 bits and key indexes taken from registers to 4 bits.
package chip8
