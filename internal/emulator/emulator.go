// Package emulator drives a CHIP-8 virtual machine at frame granularity.
package emulator

import (
	"fmt"
	"time"

	"github.com/retroenv/chip8goemu/internal/chip8"
	"github.com/retroenv/chip8goemu/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Emulator executes a machine in frame sized units: a burst of instructions
// followed by one timer tick, the cadence the interpreters of the era ran
// at. The caller decides when frames happen; the emulator never sleeps.
type Emulator struct {
	logger *log.Logger
	vm     *chip8.VM
	opts   options.Emulator

	// unknown opcode words that were already reported
	reported set.Set[uint16]
}

// New creates a new emulator driving the given machine.
func New(logger *log.Logger, vm *chip8.VM, opts options.Emulator) *Emulator {
	return &Emulator{
		logger:   logger,
		vm:       vm,
		opts:     opts,
		reported: set.New[uint16](),
	}
}

// NewVM creates a virtual machine configured from the program options.
func NewVM(opts options.Program) *chip8.VM {
	cfg := chip8.DefaultConfig()
	cfg.Quirks = chip8.Quirks{
		VFReset:          opts.VFReset,
		MemoryIncrement:  opts.MemoryIncrement,
		DisplayWait:      opts.DisplayWait,
		DisplayWaitFaker: opts.DisplayWaitFaker,
		Clipping:         opts.Clipping,
		Shifting:         opts.Shifting,
		Jumping:          opts.Jumping,
	}
	return chip8.New(cfg)
}

// Machine returns the driven virtual machine.
func (e *Emulator) Machine() *chip8.VM {
	return e.vm
}

// RunFrame executes one frame: an instruction burst followed by a timer
// tick. The burst ends early when an instruction starts waiting for the
// next frame; the blocked instruction is retried by the following frame.
func (e *Emulator) RunFrame() error {
	var err error
	if e.opts.InstructionsPerFrame > 0 {
		err = e.runInstructions(e.opts.InstructionsPerFrame)
	} else {
		err = e.runTimeBudget()
	}
	if err != nil {
		return err
	}

	e.vm.TickTimers()
	return nil
}

// runInstructions executes a fixed number of instructions per frame.
func (e *Emulator) runInstructions(count int) error {
	for range count {
		frameEnded, err := e.step()
		if err != nil || frameEnded {
			return err
		}
	}
	return nil
}

// runTimeBudget executes instructions until the frame's share of wall clock
// time is used up.
func (e *Emulator) runTimeBudget() error {
	budget := time.Second / time.Duration(e.opts.TargetFPS)
	start := time.Now()

	for time.Since(start) < budget {
		frameEnded, err := e.step()
		if err != nil || frameEnded {
			return err
		}
	}
	return nil
}

// step executes one instruction and reports whether the frame ended early.
func (e *Emulator) step() (bool, error) {
	pc := e.vm.ProgramCounter()

	res, err := e.vm.Step()
	if err != nil {
		return true, fmt.Errorf("stepping machine: %w", err)
	}

	if e.opts.Trace {
		e.logger.Debug("Executing instruction",
			log.Hex("address", pc),
			log.Hex("opcode", res.Opcode),
			log.String("assembly", chip8.Disassemble(res.Opcode)),
			log.Stringer("status", res.Status))
	}

	if res.Unknown && !e.reported.Contains(res.Opcode) {
		e.reported.Add(res.Opcode)
		e.logger.Warn("Skipping unknown opcode",
			log.Hex("opcode", res.Opcode),
			log.Hex("address", pc))
	}

	return res.Status != chip8.Completed, nil
}
