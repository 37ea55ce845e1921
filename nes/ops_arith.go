package nes

// opADC implements binary-mode addition with carry. Decimal mode is
// never consulted: the NES 2A03 has the BCD circuitry removed, so D is
// inert (spec.md §9 open-question resolution) and this is always binary
// addition regardless of Flags.D.
func opADC(cpu *Cpu, addr uint16, value byte) error {
	a := cpu.Reg.A
	carry := uint16(0)
	if cpu.Flags.C {
		carry = 1
	}
	sum := uint16(a) + uint16(value) + carry
	result := byte(sum)

	cpu.Flags.C = sum > 0xFF
	// Overflow: set when the two operands share a sign but the result's
	// sign differs from theirs.
	cpu.Flags.V = (^(a ^ value) & (a ^ result) & 0x80) != 0
	cpu.Flags.setNZ(result)
	cpu.Reg.A = result
	return nil
}

// opSBC is ADC with the operand's bits inverted, which is how the 6502
// implements subtraction-with-borrow on the same adder (borrow is the
// complement of carry-in).
func opSBC(cpu *Cpu, addr uint16, value byte) error {
	return opADC(cpu, addr, ^value)
}
