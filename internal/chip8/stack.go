package chip8

import "fmt"

// StackDepth is the number of nested calls the machine supports.
const StackDepth = 24

// Stack is the bounded call stack of the machine. Return addresses are
// stored as low/high byte pairs, matching the memory layout of the original
// interpreters. Exceeding the bounds is an error, never a silent wrap.
type Stack struct {
	data [StackDepth * 2]byte
	sp   int
}

// Push stores a return address on the stack.
func (s *Stack) Push(address uint16) error {
	if s.sp >= len(s.data) {
		return fmt.Errorf("pushing return address $%03X beyond %d nested calls: %w",
			address, StackDepth, ErrStackOverflow)
	}

	s.data[s.sp] = byte(address)
	s.data[s.sp+1] = byte(address >> 8)
	s.sp += 2
	return nil
}

// Pop removes and returns the most recently pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp < 2 {
		return 0, fmt.Errorf("returning with an empty call stack: %w", ErrStackUnderflow)
	}

	s.sp -= 2
	return uint16(s.data[s.sp+1])<<8 | uint16(s.data[s.sp]), nil
}

// Depth returns the number of return addresses on the stack.
func (s *Stack) Depth() int {
	return s.sp / 2
}

// Addresses returns a copy of the stacked return addresses, innermost
// call last.
func (s *Stack) Addresses() []uint16 {
	addresses := make([]uint16, 0, s.Depth())
	for i := 0; i < s.sp; i += 2 {
		addresses = append(addresses, uint16(s.data[i+1])<<8|uint16(s.data[i]))
	}
	return addresses
}

// Reset empties the stack.
func (s *Stack) Reset() {
	*s = Stack{}
}
