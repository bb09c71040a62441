package chip8

// execute dispatches a decoded instruction to its implementation. The
// program counter has already been advanced past the instruction.
func (vm *VM) execute(oc opcode, res *StepResult) error {
	switch oc.op {
	case opUnknown:
		res.Unknown = true

	case opClearScreen:
		vm.display.Clear()

	case opReturn:
		address, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		vm.pc = address

	case opJump:
		vm.pc = oc.nnn

	case opCall:
		if err := vm.stack.Push(vm.pc); err != nil {
			return err
		}
		vm.pc = oc.nnn

	case opSkipEqualByte:
		vm.skipIf(vm.v[oc.x] == oc.nn)

	case opSkipNotEqualByte:
		vm.skipIf(vm.v[oc.x] != oc.nn)

	case opSkipEqualReg:
		vm.skipIf(vm.v[oc.x] == vm.v[oc.y])

	case opSkipNotEqualReg:
		vm.skipIf(vm.v[oc.x] != vm.v[oc.y])

	case opLoadByte:
		vm.v[oc.x] = oc.nn

	case opAddByte:
		vm.v[oc.x] += oc.nn

	case opLoadReg:
		vm.v[oc.x] = vm.v[oc.y]

	case opOr:
		vm.v[oc.x] |= vm.v[oc.y]
		vm.resetFlagQuirk()

	case opAnd:
		vm.v[oc.x] &= vm.v[oc.y]
		vm.resetFlagQuirk()

	case opXor:
		vm.v[oc.x] ^= vm.v[oc.y]
		vm.resetFlagQuirk()

	case opAddReg:
		sum := uint16(vm.v[oc.x]) + uint16(vm.v[oc.y])
		vm.v[oc.x] = uint8(sum)
		vm.setFlag(sum > 0xFF)

	case opSubReg:
		minuend, subtrahend := vm.v[oc.x], vm.v[oc.y]
		vm.v[oc.x] = minuend - subtrahend
		vm.setFlag(minuend >= subtrahend)

	case opShiftRight:
		value := vm.shiftSource(oc)
		vm.v[oc.x] = value >> 1
		vm.setFlag(value&0x01 != 0)

	case opSubnReg:
		minuend, subtrahend := vm.v[oc.y], vm.v[oc.x]
		vm.v[oc.x] = minuend - subtrahend
		vm.setFlag(minuend >= subtrahend)

	case opShiftLeft:
		value := vm.shiftSource(oc)
		vm.v[oc.x] = value << 1
		vm.setFlag(value&0x80 != 0)

	case opLoadIndex:
		vm.i = oc.nnn

	case opJumpOffset:
		offset := vm.v[0x0]
		if vm.quirks.Jumping {
			offset = vm.v[oc.x]
		}
		vm.pc = (oc.nnn + uint16(offset)) & MaxAddress

	case opRandom:
		vm.v[oc.x] = vm.random() & oc.nn

	case opDraw:
		vm.draw(oc)

	case opSkipKeyPressed:
		vm.skipIf(vm.keypad.Pressed(vm.v[oc.x]))

	case opSkipKeyNotPressed:
		vm.skipIf(!vm.keypad.Pressed(vm.v[oc.x]))

	case opLoadDelay:
		vm.v[oc.x] = vm.timers.Delay()

	case opWaitKey:
		// blocked() guarantees a latched press at this point
		key, _ := vm.keypad.latch()
		vm.v[oc.x] = key

	case opSetDelay:
		vm.timers.SetDelay(vm.v[oc.x])

	case opSetSound:
		vm.timers.SetSound(vm.v[oc.x])

	case opAddIndex:
		vm.i = (vm.i + uint16(vm.v[oc.x])) & MaxAddress

	case opLoadFont:
		vm.i = (uint16(vm.v[oc.x]) * fontGlyphSize) & MaxAddress

	case opStoreBCD:
		value := vm.v[oc.x]
		vm.mem.Write(vm.i, value/100)
		vm.mem.Write(vm.i+1, value/10%10)
		vm.mem.Write(vm.i+2, value%10)

	case opStoreRegisters:
		for r := uint16(0); r <= uint16(oc.x); r++ {
			vm.mem.Write(vm.i+r, vm.v[r])
		}
		vm.advanceIndexQuirk(oc.x)

	case opLoadRegisters:
		for r := uint16(0); r <= uint16(oc.x); r++ {
			vm.v[r] = vm.mem.Read(vm.i + r)
		}
		vm.advanceIndexQuirk(oc.x)
	}

	return nil
}

// skipIf advances the program counter past the next instruction when the
// condition holds.
func (vm *VM) skipIf(condition bool) {
	if condition {
		vm.pc = (vm.pc + 2) & MaxAddress
	}
}

// setFlag writes VF after the instruction result so the flag wins when VF
// is also the target register.
func (vm *VM) setFlag(set bool) {
	if set {
		vm.v[flagRegister] = 1
	} else {
		vm.v[flagRegister] = 0
	}
}

// resetFlagQuirk clears VF after a logical instruction when the VF reset
// quirk is active.
func (vm *VM) resetFlagQuirk() {
	if vm.quirks.VFReset {
		vm.v[flagRegister] = 0
	}
}

// shiftSource returns the operand of a shift instruction: Vy classically,
// Vx under the shifting quirk.
func (vm *VM) shiftSource(oc opcode) uint8 {
	if vm.quirks.Shifting {
		return vm.v[oc.x]
	}
	return vm.v[oc.y]
}

// advanceIndexQuirk moves I past the copied register range when the memory
// increment quirk is active.
func (vm *VM) advanceIndexQuirk(x uint8) {
	if vm.quirks.MemoryIncrement {
		vm.i = (vm.i + uint16(x) + 1) & MaxAddress
	}
}

// draw XORs a sprite of n rows read from memory at I onto the display at
// (Vx, Vy) and sets VF when a set pixel was switched off.
func (vm *VM) draw(oc opcode) {
	if vm.quirks.DisplayWait {
		if vm.quirks.DisplayWaitFaker {
			// pretend the frame boundary already passed instead of waiting
			vm.timers.Tick()
		} else {
			vm.vblank = false
		}
	}

	vm.v[flagRegister] = 0

	var sprite [16]byte
	rows := int(oc.n)
	for row := range rows {
		sprite[row] = vm.mem.Read(vm.i + uint16(row))
	}

	if vm.display.DrawSprite(vm.v[oc.x], vm.v[oc.y], sprite[:rows], vm.quirks.Clipping) {
		vm.v[flagRegister] = 1
	}
}
