package nes

// opAND, opORA, opEOR combine the accumulator with an ArgValue operand
// and set N/Z from the *result* - unlike the teacher's cpu.go, which only
// ever sets N when it's true and never clears it, these always assign
// both flags from the outcome.
func opAND(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.A &= value
	cpu.Flags.setNZ(cpu.Reg.A)
	return nil
}

func opORA(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.A |= value
	cpu.Flags.setNZ(cpu.Reg.A)
	return nil
}

func opEOR(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.A ^= value
	cpu.Flags.setNZ(cpu.Reg.A)
	return nil
}

// opBIT sets Z from A&M but N and V directly from bits 7 and 6 of the
// memory operand, not from the masked result - a common point of
// confusion the spec calls out explicitly (spec.md §4.6).
func opBIT(cpu *Cpu, addr uint16, value byte) error {
	cpu.Flags.Z = isZero(cpu.Reg.A & value)
	cpu.Flags.N = bit(value, 7)
	cpu.Flags.V = bit(value, 6)
	return nil
}
