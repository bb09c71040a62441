// Package chip8 implements a CHIP-8 virtual machine.
//
// CHIP-8 is an interpreted programming language from the 1970s designed for
// simple games on early microcomputers. This package executes CHIP-8 programs
// with cycle-exact control handed to the caller: the host drives the machine
// by calling Step for instructions and TickTimers at the 60 Hz frame rate.
//
// # Memory Layout
//
// CHIP-8 machines have 4KB of memory:
//
//	0x000-0x1FF: Interpreter area, holds the built-in hex font sprites
//	0x200-0xFFF: User program and data area
//
// Programs are loaded at ProgramStart (0x200). All addresses wrap to the
// 12-bit address space.
//
// # Execution Model
//
// Step fetches, decodes and executes one instruction and returns a
// StepResult. Instructions that wait for an external event do not busy-loop
// inside the machine; they report AwaitingKey or AwaitingVblank and leave
// the program counter in place so that the next Step retries them. Words
// that do not decode to a known instruction are skipped and reported
// through StepResult.
//
// # Quirks
//
// Historic CHIP-8 interpreters disagree on a handful of behaviors. The
// Quirks configuration selects between the variants; DefaultQuirks matches
// the behavior of the original COSMAC VIP interpreter that most classic
// ROMs were written for.
package chip8
