package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble returns the assembly text of an instruction word, for example "ld V2, $34".
// Words that do not encode a known instruction are returned as a data word.
func Disassemble(opcode uint16) string {
	name := instructionName(opcode)
	if name == "" {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := formatParams(name, opcode); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// instructionName looks up the mnemonic of the opcode in the CHIP-8 opcode table.
func instructionName(opcode uint16) string {
	for _, op := range chip8.Opcodes[int(family(opcode))] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}

// formatParams formats the operands of an instruction.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8.ClsName, chip8.RetName:
		return ""
	case chip8.JpName:
		return formatJump(opcode)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.SeName, chip8.SneName:
		return formatCompare(opcode)
	case chip8.LdName:
		return formatLoad(opcode)
	case chip8.AddName:
		return formatAdd(opcode)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return formatRegisterPair(opcode)
	case chip8.ShrName, chip8.ShlName, chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", extractRegisterX(opcode))
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", extractRegisterX(opcode), opcode&0x00FF)
	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", extractRegisterX(opcode), extractRegisterY(opcode), opcode&0x000F)
	}
	return ""
}

// formatJump formats JP addr and JP V0, addr.
func formatJump(opcode uint16) string {
	switch family(opcode) {
	case 0x1:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case 0xB:
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return ""
}

// formatCompare formats SE and SNE with a byte or register operand.
func formatCompare(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch family(opcode) {
	case 0x3, 0x4:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5, 0x9:
		return fmt.Sprintf("V%X, V%X", x, extractRegisterY(opcode))
	}
	return ""
}

// formatLoad formats all LD variants including the FX timer, font and memory transfers.
func formatLoad(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch family(opcode) {
	case 0x6:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8:
		return formatRegisterPair(opcode)
	case 0xA:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF:
		return formatLoadMisc(x, byte(opcode))
	}
	return ""
}

func formatLoadMisc(x uint16, kk byte) string {
	switch kk {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAdd formats ADD Vx, byte, ADD Vx, Vy and ADD I, Vx.
func formatAdd(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch family(opcode) {
	case 0x7:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8:
		return formatRegisterPair(opcode)
	case 0xF:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

func formatRegisterPair(opcode uint16) string {
	return fmt.Sprintf("V%X, V%X", extractRegisterX(opcode), extractRegisterY(opcode))
}
