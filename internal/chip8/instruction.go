package chip8

// instructionSize is the size of CHIP-8 instructions in bytes.
const instructionSize = 2

// instruction holds the operand fields of an instruction word. All fields are decoded
// for every instruction, handlers pick the ones their encoding defines.
type instruction struct {
	opcode uint16
	x      uint8  // register index, bits 8-11
	y      uint8  // register index, bits 4-7
	nnn    uint16 // address, bits 0-11
	kk     byte   // immediate byte, bits 0-7
	n      byte   // nibble, bits 0-3
}

func decode(opcode uint16) instruction {
	return instruction{
		opcode: opcode,
		x:      uint8(extractRegisterX(opcode)),
		y:      uint8(extractRegisterY(opcode)),
		nnn:    opcode & 0x0FFF,
		kk:     byte(opcode & 0x00FF),
		n:      byte(opcode & 0x000F),
	}
}

// family returns the top nibble that selects the opcode family.
func family(opcode uint16) uint16 {
	return opcode >> 12
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
