package emulator

import (
	"errors"
	"testing"

	"github.com/retroenv/chip8goemu/internal/chip8"
	"github.com/retroenv/chip8goemu/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testOptions() options.Program {
	return options.Program{
		QuirkFlags: options.QuirkFlags{
			VFReset:         true,
			MemoryIncrement: true,
			Clipping:        true,
		},
	}
}

func TestEmulator_RunFrame_InstructionBudget(t *testing.T) {
	logger := log.NewTestLogger(t)
	vm := NewVM(testOptions())

	// set the delay timer to 5, then loop forever
	assert.NoError(t, vm.LoadROM([]byte{0x61, 0x05, 0xF1, 0x15, 0x12, 0x04}))

	emu := New(logger, vm, options.Emulator{InstructionsPerFrame: 10, TargetFPS: 60})

	assert.NoError(t, emu.RunFrame())

	// exactly one timer tick per frame
	assert.Equal(t, uint8(4), vm.DelayTimer())

	assert.NoError(t, emu.RunFrame())
	assert.Equal(t, uint8(3), vm.DelayTimer())
}

func TestEmulator_RunFrame_StopsOnVblankWait(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := testOptions()
	opts.DisplayWait = true
	vm := NewVM(opts)

	// draw one row of the zero glyph at the top left corner
	assert.NoError(t, vm.LoadROM([]byte{0xD0, 0x01}))

	emu := New(logger, vm, options.Emulator{InstructionsPerFrame: 10, TargetFPS: 60})

	// first frame: the draw waits for the frame tick
	assert.NoError(t, emu.RunFrame())
	assert.Equal(t, uint16(chip8.ProgramStart), vm.Snapshot().PC)
	assert.False(t, vm.Display().Pixel(0, 0))

	// second frame: the tick released the draw
	assert.NoError(t, emu.RunFrame())
	assert.True(t, vm.Display().Pixel(0, 0))
}

func TestEmulator_RunFrame_TimeBudget(t *testing.T) {
	logger := log.NewTestLogger(t)
	vm := NewVM(testOptions())
	assert.NoError(t, vm.LoadROM([]byte{0x12, 0x00}))

	emu := New(logger, vm, options.Emulator{InstructionsPerFrame: 0, TargetFPS: 1000})

	assert.NoError(t, emu.RunFrame())
}

func TestEmulator_RunFrame_FatalError(t *testing.T) {
	logger := log.NewTestLogger(t)
	vm := NewVM(testOptions())

	// return without a call
	assert.NoError(t, vm.LoadROM([]byte{0x00, 0xEE}))

	emu := New(logger, vm, options.Emulator{InstructionsPerFrame: 10, TargetFPS: 60})

	err := emu.RunFrame()
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
}

func TestEmulator_RunFrame_ReportsUnknownOpcodeOnce(t *testing.T) {
	logger := log.NewTestLogger(t)
	vm := NewVM(testOptions())

	// the same unknown word twice, then a loop
	assert.NoError(t, vm.LoadROM([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x12, 0x04}))

	emu := New(logger, vm, options.Emulator{InstructionsPerFrame: 5, TargetFPS: 60})

	assert.NoError(t, emu.RunFrame())
	assert.True(t, emu.reported.Contains(0xFFFF))
}

func TestNewVM_QuirkPlumbing(t *testing.T) {
	logger := log.NewTestLogger(t)

	// VF reset disabled: VF keeps its value after a logical instruction
	opts := testOptions()
	opts.VFReset = false
	vm := NewVM(opts)

	// VF = 1 via 8xy4 carry, then V1 OR V2
	assert.NoError(t, vm.LoadROM([]byte{0x63, 0xFF, 0x64, 0x02, 0x83, 0x44, 0x81, 0x21}))

	emu := New(logger, vm, options.Emulator{InstructionsPerFrame: 4, TargetFPS: 60})
	assert.NoError(t, emu.RunFrame())

	assert.Equal(t, uint8(1), vm.Snapshot().V[0xF])
}
