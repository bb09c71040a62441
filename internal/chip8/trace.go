package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble renders an instruction word as an assembly string. Words
// that do not decode to an instruction are rendered as a data directive.
func Disassemble(word uint16) string {
	oc := decode(word)
	if oc.op == opUnknown {
		return fmt.Sprintf(".byte $%02X, $%02X", byte(word>>8), byte(word))
	}

	name := mnemonic(oc.op)
	params := formatParams(oc)
	if params == "" {
		return name
	}
	return name + " " + params
}

// mnemonic returns the assembly name of an operation.
func mnemonic(op operation) string {
	switch op {
	case opClearScreen:
		return chip8.ClsInst.Name
	case opReturn:
		return chip8.RetInst.Name
	case opJump, opJumpOffset:
		return chip8.JpInst.Name
	case opCall:
		return chip8.CallInst.Name
	case opSkipEqualByte, opSkipEqualReg:
		return chip8.SeInst.Name
	case opSkipNotEqualByte, opSkipNotEqualReg:
		return chip8.SneInst.Name
	case opLoadByte, opLoadReg, opLoadIndex, opLoadDelay, opWaitKey,
		opSetDelay, opSetSound, opLoadFont, opStoreBCD,
		opStoreRegisters, opLoadRegisters:
		return chip8.LdInst.Name
	case opAddByte, opAddReg, opAddIndex:
		return chip8.AddInst.Name
	case opOr:
		return chip8.OrInst.Name
	case opAnd:
		return chip8.AndInst.Name
	case opXor:
		return chip8.XorInst.Name
	case opSubReg:
		return chip8.SubInst.Name
	case opSubnReg:
		return chip8.SubnInst.Name
	case opShiftRight:
		return chip8.ShrInst.Name
	case opShiftLeft:
		return chip8.ShlInst.Name
	case opRandom:
		return chip8.RndInst.Name
	case opDraw:
		return chip8.DrwInst.Name
	case opSkipKeyPressed:
		return chip8.SkpInst.Name
	case opSkipKeyNotPressed:
		return chip8.SknpInst.Name
	default:
		return ""
	}
}

// formatParams renders the operand list of a decoded instruction.
func formatParams(oc opcode) string {
	switch oc.op {
	case opJump, opCall:
		return fmt.Sprintf("$%03X", oc.nnn)
	case opJumpOffset:
		return fmt.Sprintf("V0, $%03X", oc.nnn)
	case opLoadIndex:
		return fmt.Sprintf("I, $%03X", oc.nnn)

	case opSkipEqualByte, opSkipNotEqualByte, opLoadByte, opAddByte, opRandom:
		return fmt.Sprintf("V%X, $%02X", oc.x, oc.nn)

	case opSkipEqualReg, opSkipNotEqualReg, opLoadReg, opOr, opAnd, opXor,
		opAddReg, opSubReg, opSubnReg:
		return fmt.Sprintf("V%X, V%X", oc.x, oc.y)

	case opShiftRight, opShiftLeft, opSkipKeyPressed, opSkipKeyNotPressed:
		return fmt.Sprintf("V%X", oc.x)

	case opDraw:
		return fmt.Sprintf("V%X, V%X, $%X", oc.x, oc.y, oc.n)

	case opLoadDelay:
		return fmt.Sprintf("V%X, DT", oc.x)
	case opWaitKey:
		return fmt.Sprintf("V%X, K", oc.x)
	case opSetDelay:
		return fmt.Sprintf("DT, V%X", oc.x)
	case opSetSound:
		return fmt.Sprintf("ST, V%X", oc.x)
	case opAddIndex:
		return fmt.Sprintf("I, V%X", oc.x)
	case opLoadFont:
		return fmt.Sprintf("F, V%X", oc.x)
	case opStoreBCD:
		return fmt.Sprintf("B, V%X", oc.x)
	case opStoreRegisters:
		return fmt.Sprintf("[I], V%X", oc.x)
	case opLoadRegisters:
		return fmt.Sprintf("V%X, [I]", oc.x)

	default:
		return ""
	}
}
