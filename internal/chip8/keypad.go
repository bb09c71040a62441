package chip8

// KeyCount is the number of keys on the CHIP-8 hex pad.
const KeyCount = 16

// Keypad tracks the state of the 16-key hex pad and latches the most recent
// key press for the wait-for-key instruction. An input layer feeds it
// through Press and Release; the machine only reads it.
type Keypad struct {
	held     [KeyCount]bool
	latched  uint8
	hasLatch bool
}

// Press marks a key as held and records it as the most recent press.
// Key values are wrapped to the 16-key pad.
func (k *Keypad) Press(key uint8) {
	key &= 0x0F
	k.held[key] = true
	k.latched = key
	k.hasLatch = true
}

// Release marks a key as no longer held. The press latch is unaffected.
func (k *Keypad) Release(key uint8) {
	k.held[key&0x0F] = false
}

// Pressed reports whether the key is currently held.
func (k *Keypad) Pressed(key uint8) bool {
	return k.held[key&0x0F]
}

// latch returns the most recent key press since the latch was last cleared.
func (k *Keypad) latch() (uint8, bool) {
	return k.latched, k.hasLatch
}

// clearLatch drops the recorded key press. The machine clears the latch at
// the end of every execution step.
func (k *Keypad) clearLatch() {
	k.hasLatch = false
}

// Reset releases all keys and clears the latch.
func (k *Keypad) Reset() {
	*k = Keypad{}
}
