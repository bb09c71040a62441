package chip8

// operation identifies a decoded instruction variant. Every instruction of
// the CHIP-8 set maps to exactly one operation; words that match no pattern
// decode to opUnknown.
type operation uint8

const (
	opUnknown operation = iota

	opClearScreen       // 00E0
	opReturn            // 00EE
	opJump              // 1nnn
	opCall              // 2nnn
	opSkipEqualByte     // 3xnn
	opSkipNotEqualByte  // 4xnn
	opSkipEqualReg      // 5xy0
	opLoadByte          // 6xnn
	opAddByte           // 7xnn
	opLoadReg           // 8xy0
	opOr                // 8xy1
	opAnd               // 8xy2
	opXor               // 8xy3
	opAddReg            // 8xy4
	opSubReg            // 8xy5
	opShiftRight        // 8xy6
	opSubnReg           // 8xy7
	opShiftLeft         // 8xyE
	opSkipNotEqualReg   // 9xy0
	opLoadIndex         // Annn
	opJumpOffset        // Bnnn
	opRandom            // Cxnn
	opDraw              // Dxyn
	opSkipKeyPressed    // Ex9E
	opSkipKeyNotPressed // ExA1
	opLoadDelay         // Fx07
	opWaitKey           // Fx0A
	opSetDelay          // Fx15
	opSetSound          // Fx18
	opAddIndex          // Fx1E
	opLoadFont          // Fx29
	opStoreBCD          // Fx33
	opStoreRegisters    // Fx55
	opLoadRegisters     // Fx65
)

// opcode is a decoded instruction word with its extracted operand fields.
// All field extraction happens once at decode time; execution dispatches on
// the operation tag alone.
type opcode struct {
	op   operation
	word uint16
	x    uint8  // second nibble, register selector
	y    uint8  // third nibble, register selector
	n    uint8  // low nibble
	nn   uint8  // low byte
	nnn  uint16 // low 12 bits, address
}

// decode classifies an instruction word and extracts its operand fields.
func decode(word uint16) opcode {
	oc := opcode{
		word: word,
		x:    uint8(word >> 8 & 0x0F),
		y:    uint8(word >> 4 & 0x0F),
		n:    uint8(word & 0x0F),
		nn:   uint8(word),
		nnn:  word & 0x0FFF,
	}

	switch word >> 12 {
	case 0x0:
		// machine code routines (0nnn) are not supported and decode
		// as unknown
		switch word {
		case 0x00E0:
			oc.op = opClearScreen
		case 0x00EE:
			oc.op = opReturn
		}

	case 0x1:
		oc.op = opJump
	case 0x2:
		oc.op = opCall
	case 0x3:
		oc.op = opSkipEqualByte
	case 0x4:
		oc.op = opSkipNotEqualByte

	case 0x5:
		if oc.n == 0x0 {
			oc.op = opSkipEqualReg
		}

	case 0x6:
		oc.op = opLoadByte
	case 0x7:
		oc.op = opAddByte

	case 0x8:
		switch oc.n {
		case 0x0:
			oc.op = opLoadReg
		case 0x1:
			oc.op = opOr
		case 0x2:
			oc.op = opAnd
		case 0x3:
			oc.op = opXor
		case 0x4:
			oc.op = opAddReg
		case 0x5:
			oc.op = opSubReg
		case 0x6:
			oc.op = opShiftRight
		case 0x7:
			oc.op = opSubnReg
		case 0xE:
			oc.op = opShiftLeft
		}

	case 0x9:
		if oc.n == 0x0 {
			oc.op = opSkipNotEqualReg
		}

	case 0xA:
		oc.op = opLoadIndex
	case 0xB:
		oc.op = opJumpOffset
	case 0xC:
		oc.op = opRandom
	case 0xD:
		oc.op = opDraw

	case 0xE:
		switch oc.nn {
		case 0x9E:
			oc.op = opSkipKeyPressed
		case 0xA1:
			oc.op = opSkipKeyNotPressed
		}

	case 0xF:
		switch oc.nn {
		case 0x07:
			oc.op = opLoadDelay
		case 0x0A:
			oc.op = opWaitKey
		case 0x15:
			oc.op = opSetDelay
		case 0x18:
			oc.op = opSetSound
		case 0x1E:
			oc.op = opAddIndex
		case 0x29:
			oc.op = opLoadFont
		case 0x33:
			oc.op = opStoreBCD
		case 0x55:
			oc.op = opStoreRegisters
		case 0x65:
			oc.op = opLoadRegisters
		}
	}

	return oc
}
