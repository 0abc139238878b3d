package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// control tells Step how to update the program counter after a handler ran.
type control uint8

const (
	next     control = iota // continue with the following instruction
	skip                    // skip the following instruction
	redirect                // the handler set the program counter itself
)

type handler func(m *Machine, ins instruction) (control, error)

// handlers maps the opcode family to its implementation.
var handlers = [16]handler{
	0x0: (*Machine).opSystem,
	0x1: (*Machine).opJump,
	0x2: (*Machine).opCall,
	0x3: (*Machine).opSkipEqualByte,
	0x4: (*Machine).opSkipNotEqualByte,
	0x5: (*Machine).opSkipEqualRegister,
	0x6: (*Machine).opLoadByte,
	0x7: (*Machine).opAddByte,
	0x8: (*Machine).opALU,
	0x9: (*Machine).opSkipNotEqualRegister,
	0xA: (*Machine).opLoadIndex,
	0xB: (*Machine).opJumpOffset,
	0xC: (*Machine).opRandom,
	0xD: (*Machine).opDraw,
	0xE: (*Machine).opKey,
	0xF: (*Machine).opMisc,
}

// Step executes the instruction at the program counter. While the machine waits for a
// key it only checks for a freshly pressed key instead.
// Fresh key presses are consumed by every step.
func (m *Machine) Step() error {
	defer m.consumePressed()

	if m.state == WaitingForKey {
		m.resolveWait()
		return nil
	}

	address := m.pc
	opcode := m.fetch()
	if m.trace {
		m.logger.Debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", opcode),
			log.String("instruction", Disassemble(opcode)))
	}

	ins := decode(opcode)
	ctrl, err := handlers[family(opcode)](m, ins)
	if err != nil {
		return fmt.Errorf("executing opcode %04X at address %03X: %w", opcode, address, err)
	}

	switch ctrl {
	case next:
		m.pc += instructionSize
	case skip:
		m.pc += 2 * instructionSize
	case redirect:
	}
	return nil
}

func (m *Machine) unknown(ins instruction) (control, error) {
	m.logger.Warn("Unknown opcode",
		log.Hex("opcode", ins.opcode),
		log.Hex("address", m.pc))
	return next, nil
}

func skipIf(condition bool) control {
	if condition {
		return skip
	}
	return next
}

// opSystem handles 00E0 (CLS) and 00EE (RET).
func (m *Machine) opSystem(ins instruction) (control, error) {
	switch ins.kk {
	case 0xE0:
		m.display = Screen{}
		return next, nil

	case 0xEE:
		if m.sp == 0 {
			return next, ErrStackUnderflow
		}
		m.sp--
		// the stack holds the address of the call instruction
		m.pc = m.stack[m.sp] + instructionSize
		return redirect, nil

	default:
		return m.unknown(ins)
	}
}

// opJump handles 1NNN (JP addr).
func (m *Machine) opJump(ins instruction) (control, error) {
	m.pc = ins.nnn
	return redirect, nil
}

// opCall handles 2NNN (CALL addr).
func (m *Machine) opCall(ins instruction) (control, error) {
	if int(m.sp) == StackSize {
		return next, ErrStackOverflow
	}
	m.stack[m.sp] = m.pc
	m.sp++
	m.pc = ins.nnn
	return redirect, nil
}

// opSkipEqualByte handles 3XKK (SE Vx, byte).
func (m *Machine) opSkipEqualByte(ins instruction) (control, error) {
	return skipIf(m.v[ins.x] == ins.kk), nil
}

// opSkipNotEqualByte handles 4XKK (SNE Vx, byte).
func (m *Machine) opSkipNotEqualByte(ins instruction) (control, error) {
	return skipIf(m.v[ins.x] != ins.kk), nil
}

// opSkipEqualRegister handles 5XY0 (SE Vx, Vy).
func (m *Machine) opSkipEqualRegister(ins instruction) (control, error) {
	return skipIf(m.v[ins.x] == m.v[ins.y]), nil
}

// opLoadByte handles 6XKK (LD Vx, byte).
func (m *Machine) opLoadByte(ins instruction) (control, error) {
	m.v[ins.x] = ins.kk
	return next, nil
}

// opAddByte handles 7XKK (ADD Vx, byte). The carry is discarded, VF is not touched.
func (m *Machine) opAddByte(ins instruction) (control, error) {
	m.v[ins.x] += ins.kk
	return next, nil
}

// opSkipNotEqualRegister handles 9XY0 (SNE Vx, Vy).
func (m *Machine) opSkipNotEqualRegister(ins instruction) (control, error) {
	return skipIf(m.v[ins.x] != m.v[ins.y]), nil
}

// opLoadIndex handles ANNN (LD I, addr).
func (m *Machine) opLoadIndex(ins instruction) (control, error) {
	m.i = ins.nnn
	return next, nil
}

// opJumpOffset handles BNNN (JP V0, addr).
func (m *Machine) opJumpOffset(ins instruction) (control, error) {
	m.pc = (ins.nnn + uint16(m.v[0])) & MaxAddress
	return redirect, nil
}

// opRandom handles CXKK (RND Vx, byte).
func (m *Machine) opRandom(ins instruction) (control, error) {
	m.v[ins.x] = m.random() & ins.kk
	return next, nil
}

// opKey handles EX9E (SKP Vx) and EXA1 (SKNP Vx).
func (m *Machine) opKey(ins instruction) (control, error) {
	down := m.keys[m.v[ins.x]&0xF]

	switch ins.kk {
	case 0x9E:
		return skipIf(down), nil
	case 0xA1:
		return skipIf(!down), nil
	default:
		return m.unknown(ins)
	}
}

// opMisc handles the FXKK family of timer, key wait, index and memory transfer instructions.
func (m *Machine) opMisc(ins instruction) (control, error) {
	vx := m.v[ins.x]

	switch ins.kk {
	case 0x07:
		m.v[ins.x] = m.delay

	case 0x0A:
		m.state = WaitingForKey
		m.waitRegister = ins.x

	case 0x15:
		m.delay = vx

	case 0x18:
		m.sound = vx

	case 0x1E:
		sum := uint32(m.i) + uint32(vx)
		m.i = uint16(sum)
		m.v[FlagRegister] = boolToByte(sum > 0xFFFF)

	case 0x29:
		m.i = uint16(vx) * glyphSize

	case 0x33:
		m.write(m.i, vx/100)
		m.write(m.i+1, vx/10%10)
		m.write(m.i+2, vx%10)

	case 0x55:
		for r := uint16(0); r <= uint16(ins.x); r++ {
			m.write(m.i+r, m.v[r])
		}

	case 0x65:
		for r := uint16(0); r <= uint16(ins.x); r++ {
			m.v[r] = m.read(m.i + r)
		}

	default:
		return m.unknown(ins)
	}
	return next, nil
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
