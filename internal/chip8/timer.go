package chip8

import "github.com/retroenv/retrogolib/log"

// Tick advances the machine by one simulated tick.
//
// While running, both timers are decremented and one instruction is executed. While
// waiting for a key, the tick only checks for a freshly pressed key. The tick that resolves
// the wait neither decrements the timers nor executes an instruction.
func (m *Machine) Tick() error {
	if m.state == WaitingForKey {
		return m.Step()
	}

	m.DecrementTimers()
	return m.Step()
}

// DecrementTimers decrements the delay and sound timers by one if they are not zero.
func (m *Machine) DecrementTimers() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

// SetKey sets the input latch of a logical key 0x0-0xF. A key going down is also
// remembered as a fresh press until the next step.
func (m *Machine) SetKey(key int, down bool) {
	key &= 0xF
	if down && !m.keys[key] {
		m.pressed[key] = true
	}
	m.keys[key] = down
}

// Key returns whether a logical key is currently down.
func (m *Machine) Key(key int) bool {
	return m.keys[key&0xF]
}

// resolveWait stores the lowest freshly pressed key in the target register of the pending
// FX0A instruction and resumes execution.
func (m *Machine) resolveWait() {
	for key, pressed := range m.pressed {
		if !pressed {
			continue
		}

		m.v[m.waitRegister] = byte(key)
		m.state = Running
		if m.trace {
			m.logger.Debug("Key wait resolved",
				log.Int("key", key),
				log.Int("register", int(m.waitRegister)))
		}
		return
	}
}

func (m *Machine) consumePressed() {
	m.pressed = [KeyCount]bool{}
}
