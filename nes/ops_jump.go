package nes

func opJMP(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.PC = addr
	return nil
}

// opJSR pushes the address of the last byte of the JSR instruction (not
// the next instruction's address) - RTS then pops and adds one.
func opJSR(cpu *Cpu, addr uint16, value byte) error {
	cpu.push16(cpu.Reg.PC - 1)
	cpu.Reg.PC = addr
	return nil
}

func opRTS(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.PC = cpu.pop16() + 1
	return nil
}

// opRTI restores flags from the stack immediately, unlike CLI/SEI/PLP
// which schedule the I bit through the delayed slot - an interrupt
// handler returning must re-enable (or re-mask) interrupts without a
// one-instruction lag (spec.md §4.7 edge case).
func opRTI(cpu *Cpu, addr uint16, value byte) error {
	cpu.Flags.Decode(cpu.pop())
	cpu.Reg.PC = cpu.pop16()
	return nil
}
