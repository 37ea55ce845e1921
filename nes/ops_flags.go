package nes

func opCLC(cpu *Cpu, addr uint16, value byte) error { cpu.Flags.C = false; return nil }
func opSEC(cpu *Cpu, addr uint16, value byte) error { cpu.Flags.C = true; return nil }
func opCLV(cpu *Cpu, addr uint16, value byte) error { cpu.Flags.V = false; return nil }
func opCLD(cpu *Cpu, addr uint16, value byte) error { cpu.Flags.D = false; return nil }
func opSED(cpu *Cpu, addr uint16, value byte) error { cpu.Flags.D = true; return nil }

// opCLI, opSEI schedule the I flag through the delayed slot rather than
// writing it immediately: an IRQ that becomes unmasked mid-handler must
// not fire until after the *next* instruction, per spec.md §4.7.
func opCLI(cpu *Cpu, addr uint16, value byte) error {
	cpu.scheduleIFlag(false)
	return nil
}

func opSEI(cpu *Cpu, addr uint16, value byte) error {
	cpu.scheduleIFlag(true)
	return nil
}
