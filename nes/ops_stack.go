package nes

func opPHA(cpu *Cpu, addr uint16, value byte) error {
	cpu.push(cpu.Reg.A)
	return nil
}

func opPLA(cpu *Cpu, addr uint16, value byte) error {
	cpu.Reg.A = cpu.pop()
	cpu.Flags.setNZ(cpu.Reg.A)
	return nil
}

// opPHP pushes the status byte with the B flag set, matching the real
// 6502's behavior of always pushing B=1 from software (only a hardware
// interrupt pushes B=0).
func opPHP(cpu *Cpu, addr uint16, value byte) error {
	cpu.push(cpu.Flags.Encode(true))
	return nil
}

// opPLP restores C/Z/D/V/N immediately but schedules I through the
// delayed slot, same as CLI/SEI - an IRQ unmasked by PLP must not fire
// until after the next instruction (spec.md §4.7).
func opPLP(cpu *Cpu, addr uint16, value byte) error {
	popped := cpu.pop()
	i := bit(popped, 2)
	var f Flags
	f.Decode(popped)
	f.I = cpu.Flags.I // preserve current I; scheduleIFlag below updates it
	cpu.Flags = f
	cpu.scheduleIFlag(i)
	return nil
}
