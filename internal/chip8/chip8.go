package chip8

import (
	"fmt"
	"math/rand/v2"
)

// Register file constants.
const (
	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16

	flagRegister = 0xF
)

// RandomSource produces the random bytes consumed by the rnd instruction.
// Supplying a deterministic source makes execution reproducible.
type RandomSource func() byte

// Config configures a virtual machine instance. Use DefaultConfig as the
// starting point; a zero Config disables every quirk.
type Config struct {
	// Quirks selects the interpreter behavior variants.
	Quirks Quirks

	// DisplayWidth and DisplayHeight size the pixel buffer. Zero values
	// fall back to the 64x32 default.
	DisplayWidth  int
	DisplayHeight int

	// Random overrides the default random byte source.
	Random RandomSource
}

// DefaultConfig returns the configuration of a classic CHIP-8 machine:
// a 64x32 display, the default quirk set and a seeded random source.
func DefaultConfig() Config {
	return Config{
		Quirks:        DefaultQuirks(),
		DisplayWidth:  DefaultWidth,
		DisplayHeight: DefaultHeight,
	}
}

// VM is a complete CHIP-8 virtual machine. All machine state is owned by
// the instance, machines do not share any state. VM is not safe for
// concurrent use; input, execution and rendering have to run on one
// goroutine or be synchronized by the caller.
type VM struct {
	mem     *Memory
	stack   *Stack
	display *Display
	timers  *Timers
	keypad  *Keypad
	quirks  Quirks
	random  RandomSource

	v  [RegisterCount]uint8
	i  uint16
	pc uint16

	// vblank is set by TickTimers and consumed by the draw instruction
	// when the display wait quirk is active.
	vblank bool
}

// New creates a virtual machine. Zero dimensions and a nil random source
// fall back to the defaults.
func New(cfg Config) *VM {
	if cfg.DisplayWidth <= 0 {
		cfg.DisplayWidth = DefaultWidth
	}
	if cfg.DisplayHeight <= 0 {
		cfg.DisplayHeight = DefaultHeight
	}
	if cfg.Random == nil {
		cfg.Random = func() byte { return byte(rand.IntN(256)) }
	}

	return &VM{
		mem:     NewMemory(),
		stack:   &Stack{},
		display: NewDisplay(cfg.DisplayWidth, cfg.DisplayHeight),
		timers:  &Timers{},
		keypad:  &Keypad{},
		quirks:  cfg.Quirks,
		random:  cfg.Random,
		pc:      ProgramStart,
	}
}

// Reset restores the power-on state. Loaded program data is cleared.
func (vm *VM) Reset() {
	vm.mem.Reset()
	vm.stack.Reset()
	vm.display.Clear()
	vm.timers.Reset()
	vm.keypad.Reset()

	vm.v = [RegisterCount]uint8{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.vblank = false
}

// LoadROM resets the machine and copies the program to ProgramStart.
func (vm *VM) LoadROM(rom []byte) error {
	vm.Reset()

	if err := vm.mem.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	return nil
}

// ProgramCounter returns the address of the next instruction.
func (vm *VM) ProgramCounter() uint16 {
	return vm.pc
}

// Display returns the pixel buffer for renderers. It is mutated only by
// Step and LoadROM.
func (vm *VM) Display() *Display {
	return vm.display
}

// Keypad returns the key state for input layers.
func (vm *VM) Keypad() *Keypad {
	return vm.keypad
}

// DelayTimer returns the current delay timer value.
func (vm *VM) DelayTimer() uint8 {
	return vm.timers.Delay()
}

// SoundTimer returns the current sound timer value. A nonzero value means
// the machine is beeping.
func (vm *VM) SoundTimer() uint8 {
	return vm.timers.Sound()
}

// Snapshot is a copy of the observable machine state for debug views.
type Snapshot struct {
	V     [RegisterCount]uint8
	I     uint16
	PC    uint16
	Stack []uint16
	Delay uint8
	Sound uint8
}

// Snapshot returns a copy of the current register, stack and timer state.
func (vm *VM) Snapshot() Snapshot {
	return Snapshot{
		V:     vm.v,
		I:     vm.i,
		PC:    vm.pc,
		Stack: vm.stack.Addresses(),
		Delay: vm.timers.Delay(),
		Sound: vm.timers.Sound(),
	}
}
