package chip8

import "fmt"

// Status describes how an execution step ended.
type Status uint8

const (
	// Completed means the instruction executed and the program counter
	// advanced.
	Completed Status = iota

	// AwaitingKey means the wait-for-key instruction found no new key
	// press. The program counter stays on the instruction.
	AwaitingKey

	// AwaitingVblank means a draw instruction is held back until the next
	// timer tick. The program counter stays on the instruction.
	AwaitingVblank
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case AwaitingKey:
		return "awaiting key"
	case AwaitingVblank:
		return "awaiting vblank"
	default:
		return fmt.Sprintf("status %d", uint8(s))
	}
}

// StepResult reports the outcome of a single execution step.
type StepResult struct {
	// Status describes whether the instruction executed or is waiting
	// for an external event.
	Status Status

	// Opcode is the raw instruction word that was fetched.
	Opcode uint16

	// Unknown is set when the word does not decode to any instruction.
	// The word was skipped and execution continues.
	Unknown bool
}

// Step fetches, decodes and executes a single instruction.
//
// Waiting instructions report their status instead of blocking: the program
// counter stays on the instruction so the next step retries it. The key
// press latch is cleared on every step, waiting or not, so a press is only
// visible to the step that follows it.
//
// Stack errors abort the step; all other conditions, including unknown
// instruction words, leave the machine runnable.
func (vm *VM) Step() (StepResult, error) {
	word := vm.mem.ReadWord(vm.pc)
	oc := decode(word)

	if status, waiting := vm.blocked(oc); waiting {
		vm.keypad.clearLatch()
		return StepResult{Status: status, Opcode: word}, nil
	}

	vm.pc = (vm.pc + 2) & MaxAddress

	res := StepResult{Status: Completed, Opcode: word}
	err := vm.execute(oc, &res)
	vm.keypad.clearLatch()

	if err != nil {
		return res, fmt.Errorf("executing opcode $%04X: %w", word, err)
	}
	return res, nil
}

// blocked reports whether the instruction has to wait for an external event
// before it can execute.
func (vm *VM) blocked(oc opcode) (Status, bool) {
	switch oc.op {
	case opDraw:
		if vm.quirks.DisplayWait && !vm.quirks.DisplayWaitFaker && !vm.vblank {
			return AwaitingVblank, true
		}

	case opWaitKey:
		if _, ok := vm.keypad.latch(); !ok {
			return AwaitingKey, true
		}
	}

	return Completed, false
}

// TickTimers advances the delay and sound timers one 60 Hz step and
// releases a pending draw wait. The host calls it once per frame, after
// the frame's instruction burst.
func (vm *VM) TickTimers() {
	vm.timers.Tick()
	vm.vblank = true
}
