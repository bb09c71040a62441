package chip8

// Timers holds the delay and sound countdown timers. Both decrement at the
// 60 Hz frame rate and stop at zero. A nonzero sound timer means the
// machine is beeping.
type Timers struct {
	delay uint8
	sound uint8
}

// Tick advances both timers one 60 Hz step.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

// Delay returns the delay timer value.
func (t *Timers) Delay() uint8 {
	return t.delay
}

// SetDelay sets the delay timer.
func (t *Timers) SetDelay(value uint8) {
	t.delay = value
}

// Sound returns the sound timer value.
func (t *Timers) Sound() uint8 {
	return t.sound
}

// SetSound sets the sound timer.
func (t *Timers) SetSound(value uint8) {
	t.sound = value
}

// Reset stops both timers.
func (t *Timers) Reset() {
	*t = Timers{}
}
