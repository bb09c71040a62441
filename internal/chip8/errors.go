package chip8

import "errors"

// Errors returned by the virtual machine. They are returned wrapped with
// context and can be matched using errors.Is.
var (
	// ErrROMTooLarge is returned when a program does not fit into the
	// memory area above ProgramStart.
	ErrROMTooLarge = errors.New("ROM does not fit into program memory")

	// ErrStackOverflow is returned when a call exceeds the StackDepth
	// nesting limit.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned when a return instruction executes
	// without a matching call.
	ErrStackUnderflow = errors.New("call stack underflow")
)
