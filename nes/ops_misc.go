package nes

// opBRK is a software interrupt: it skips a padding byte without reading it
// (accounting for the 2-byte instruction length real hardware exposes),
// then pushes PC/flags and loads the shared IRQ/BRK vector with the B
// flag set, via the same interrupt() path NMI/IRQ use.
func opBRK(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.incPC() // padding byte
	cpu.interrupt(interruptBRK)
	return nil
}

func opNOP(cpu *Cpu, addr uint16, value byte) error {
	return nil
}
