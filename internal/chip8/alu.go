package chip8

// opALU handles the 8XYN register to register family.
//
// VF receives the carry, borrow or shifted out bit of ADD, SUB, SUBN, SHR and SHL. It is
// written after the result, so with X = F the flag wins, except for the shifts which write
// the flag first.
func (m *Machine) opALU(ins instruction) (control, error) {
	vx, vy := m.v[ins.x], m.v[ins.y]

	switch ins.n {
	case 0x0:
		m.v[ins.x] = vy

	case 0x1:
		m.v[ins.x] = vx | vy

	case 0x2:
		m.v[ins.x] = vx & vy

	case 0x3:
		m.v[ins.x] = vx ^ vy

	case 0x4:
		m.v[ins.x] = vx + vy
		m.v[FlagRegister] = boolToByte(uint16(vx)+uint16(vy) > 0xFF)

	case 0x5:
		m.v[ins.x] = vx - vy
		m.v[FlagRegister] = boolToByte(vx >= vy) // NOT borrow

	case 0x6:
		m.v[FlagRegister] = vx & 0x01
		m.v[ins.x] = vx >> 1

	case 0x7:
		m.v[ins.x] = vy - vx
		m.v[FlagRegister] = boolToByte(vy >= vx) // NOT borrow

	case 0xE:
		m.v[FlagRegister] = vx >> 7
		m.v[ins.x] = vx << 1

	default:
		return m.unknown(ins)
	}
	return next, nil
}
