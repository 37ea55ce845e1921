package nes

// opINC, opDEC are memory-only RMW instructions - unlike the shifts they
// never have an accumulator form, so impliedAddr is never set for them,
// but they still go through the same double-write discipline.
func opINC(cpu *Cpu, addr uint16, value byte) error {
	result := value + 1
	cpu.Flags.setNZ(result)
	cpu.bus.Write(addr, value)
	cpu.bus.Write(addr, result)
	return nil
}

func opDEC(cpu *Cpu, addr uint16, value byte) error {
	result := value - 1
	cpu.Flags.setNZ(result)
	cpu.bus.Write(addr, value)
	cpu.bus.Write(addr, result)
	return nil
}

func opINX(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.X++
	cpu.Flags.setNZ(cpu.Reg.X)
	return nil
}

func opINY(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.Y++
	cpu.Flags.setNZ(cpu.Reg.Y)
	return nil
}

func opDEX(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.X--
	cpu.Flags.setNZ(cpu.Reg.X)
	return nil
}

func opDEY(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.Y--
	cpu.Flags.setNZ(cpu.Reg.Y)
	return nil
}
