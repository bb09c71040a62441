package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area holding the built-in font sprites
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer and the call stack are maintained separately from the
// 4KB main memory address space.
const (
	// MemorySize is the total size of the CHIP-8 address space.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin
	// execution. Programs are loaded at address 0x200 in the machine's
	// memory space, but stored starting at offset 0x0 in ROM files.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	// Address arithmetic wraps to this 12-bit mask.
	MaxAddress = 0xFFF

	// MaxROMSize is the largest program that fits into memory.
	MaxROMSize = MemorySize - ProgramStart

	fontOffset    = 0x000
	fontGlyphSize = 5
)

// fontSprites holds the 5-byte sprites for the hex digits 0-F that every
// CHIP-8 machine carries in its interpreter area.
var fontSprites = [16 * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the 4KB address space of a CHIP-8 machine.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns initialized memory with the font sprites installed.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears the address space and restores the font sprites.
func (m *Memory) Reset() {
	m.data = [MemorySize]byte{}
	copy(m.data[fontOffset:], fontSprites[:])
}

// LoadROM copies a program into memory at ProgramStart.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("copying %d bytes into %d bytes of program space: %w",
			len(rom), MaxROMSize, ErrROMTooLarge)
	}

	copy(m.data[ProgramStart:], rom)
	return nil
}

// Read returns the byte at the given address, wrapped to the 4KB space.
func (m *Memory) Read(address uint16) byte {
	return m.data[address&MaxAddress]
}

// Write stores a byte at the given address, wrapped to the 4KB space.
func (m *Memory) Write(address uint16, value byte) {
	m.data[address&MaxAddress] = value
}

// ReadWord returns the big-endian instruction word at the given address.
func (m *Memory) ReadWord(address uint16) uint16 {
	return uint16(m.Read(address))<<8 | uint16(m.Read(address+1))
}
