package nes

// opLDA, opLDX, opLDY load the target register from an ArgValue operand
// and set N/Z from the loaded value.
func opLDA(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.A = value
	cpu.Flags.setNZ(value)
	return nil
}

func opLDX(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.X = value
	cpu.Flags.setNZ(value)
	return nil
}

func opLDY(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.Y = value
	cpu.Flags.setNZ(value)
	return nil
}

// opSTA, opSTX, opSTY store to an ArgAddress operand. Stores never touch
// flags and never take a page-cross penalty.
func opSTA(cpu *Cpu, addr uint16, value byte) error {
	cpu.bus.Write(addr, cpu.Reg.A)
	return nil
}

func opSTX(cpu *Cpu, addr uint16, value byte) error {
	cpu.bus.Write(addr, cpu.Reg.X)
	return nil
}

func opSTY(cpu *Cpu, addr uint16, value byte) error {
	cpu.bus.Write(addr, cpu.Reg.Y)
	return nil
}
