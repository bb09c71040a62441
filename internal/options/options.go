// Package options contains the program options.
package options

// Default values for the runtime options.
const (
	// DefaultInstructionsPerFrame matches the speed of the classic
	// interpreters at the 60 Hz frame rate.
	DefaultInstructionsPerFrame = 100

	// DefaultTargetFPS is the frame rate assumed by the time budget based
	// pacing mode.
	DefaultTargetFPS = 60

	// DefaultScale is the window scale factor, turning the 64x32 display
	// into a 640x320 window.
	DefaultScale = 10
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Debug   bool // enable debug logging
	Quiet   bool // only log errors
	Trace   bool // log every executed instruction
	ShowFPS bool // overlay the current frame rate
}

// Timing contains execution pacing options.
type Timing struct {
	InstructionsPerFrame int // instructions per frame, 0 selects the time budget mode
	TargetFPS            int // frame rate assumed by the time budget mode
	Scale                int // window scale factor
}

// QuirkFlags contains the interpreter behavior toggles.
type QuirkFlags struct {
	VFReset          bool
	MemoryIncrement  bool
	DisplayWait      bool
	DisplayWaitFaker bool
	Clipping         bool
	Shifting         bool
	Jumping          bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Timing
	QuirkFlags
}

// Emulator defines options to control the emulator runtime.
type Emulator struct {
	InstructionsPerFrame int
	TargetFPS            int
	Trace                bool
}

// NewEmulator returns a new options instance with default options.
func NewEmulator() Emulator {
	return Emulator{
		InstructionsPerFrame: DefaultInstructionsPerFrame,
		TargetFPS:            DefaultTargetFPS,
	}
}

// Window defines options to control the display window.
type Window struct {
	Title   string
	Scale   int
	ShowFPS bool
}
