package chip8

// spriteWidth is the number of pixels of a sprite row.
const spriteWidth = 8

// opDraw handles DXYN (DRW Vx, Vy, nibble).
//
// N rows are read from memory at I and XORed onto the display at (Vx, Vy), most
// significant bit first. Coordinates wrap around the screen edges. VF is set when a set
// sprite bit hits a lit pixel, which turns that pixel off.
func (m *Machine) opDraw(ins instruction) (control, error) {
	originX, originY := int(m.v[ins.x]), int(m.v[ins.y])
	m.v[FlagRegister] = 0

	for row := range int(ins.n) {
		sprite := m.read(m.i + uint16(row))
		y := (originY + row) % Height

		for col := range spriteWidth {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			x := (originX + col) % Width
			if m.display[y][x] {
				m.v[FlagRegister] = 1
			}
			m.display[y][x] = !m.display[y][x]
		}
	}
	return next, nil
}
