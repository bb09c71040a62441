package chip8

// Quirks selects between the behavior variants that differ across historic
// CHIP-8 interpreters. The set is fixed at construction time; changing the
// behavior of a running machine is not supported.
type Quirks struct {
	// VFReset clears VF after the OR, AND and XOR instructions.
	VFReset bool

	// MemoryIncrement advances I past the copied range after the bulk
	// register store and load instructions.
	MemoryIncrement bool

	// DisplayWait holds draw instructions until the next timer tick,
	// limiting the machine to one sprite per frame.
	DisplayWait bool

	// DisplayWaitFaker advances the timers inline instead of waiting for
	// the tick. Only meaningful while DisplayWait is set.
	DisplayWaitFaker bool

	// Clipping discards sprite pixels beyond the display edges instead of
	// wrapping them to the opposite side.
	Clipping bool

	// Shifting shifts Vx in place instead of shifting Vy into Vx.
	Shifting bool

	// Jumping uses Vx instead of V0 as the offset register of the
	// jump-with-offset instruction.
	Jumping bool
}

// DefaultQuirks returns the quirk set of the original COSMAC VIP
// interpreter, the configuration most classic ROMs expect.
func DefaultQuirks() Quirks {
	return Quirks{
		VFReset:         true,
		MemoryIncrement: true,
		DisplayWait:     true,
		Clipping:        true,
	}
}
