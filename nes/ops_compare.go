package nes

// compare is the shared CMP/CPX/CPY implementation: subtract without
// storing, set C when register >= operand, and N/Z from the subtraction
// result.
func compare(cpu *Cpu, reg, value byte) {
	result := reg - value
	cpu.Flags.C = reg >= value
	cpu.Flags.setNZ(result)
}

func opCMP(cpu *Cpu, addr uint16, value byte) error {
	compare(cpu, cpu.Reg.A, value)
	return nil
}

func opCPX(cpu *Cpu, addr uint16, value byte) error {
	compare(cpu, cpu.Reg.X, value)
	return nil
}

func opCPY(cpu *Cpu, addr uint16, value byte) error {
	compare(cpu, cpu.Reg.Y, value)
	return nil
}
