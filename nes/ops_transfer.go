package nes

// Register transfers are ArgNone: the handler reads/writes cpu.Reg
// directly. TXS is the one transfer that does not touch N/Z, since it
// loads the stack pointer rather than a value register (spec.md §4.6).
func opTAX(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.X = cpu.Reg.A
	cpu.Flags.setNZ(cpu.Reg.X)
	return nil
}

func opTAY(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.Y = cpu.Reg.A
	cpu.Flags.setNZ(cpu.Reg.Y)
	return nil
}

func opTXA(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.A = cpu.Reg.X
	cpu.Flags.setNZ(cpu.Reg.A)
	return nil
}

func opTYA(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.A = cpu.Reg.Y
	cpu.Flags.setNZ(cpu.Reg.A)
	return nil
}

func opTSX(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.X = cpu.Reg.SP
	cpu.Flags.setNZ(cpu.Reg.X)
	return nil
}

func opTXS(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.SP = cpu.Reg.X
	return nil
}
