package nes

// rmwWriteback applies the RMW double-write discipline: real 6502 RMW
// instructions write the unmodified value back to the bus before writing
// the modified one, since the ALU operation happens on the second of two
// write cycles. For the accumulator form there is no bus write at all.
func rmwWriteback(cpu *Cpu, addr uint16, old, result byte) {
	if cpu.impliedAddr {
		cpu.Reg.A = result
		return
	}
	cpu.bus.Write(addr, old)
	cpu.bus.Write(addr, result)
}

func opASL(cpu *Cpu, addr uint16, value byte) error {
	cpu.Flags.C = bit(value, 7)
	result := value << 1
	cpu.Flags.setNZ(result)
	rmwWriteback(cpu, addr, value, result)
	return nil
}

func opLSR(cpu *Cpu, addr uint16, value byte) error {
	cpu.Flags.C = bit(value, 0)
	result := value >> 1
	cpu.Flags.setNZ(result)
	rmwWriteback(cpu, addr, value, result)
	return nil
}

func opROL(cpu *Cpu, addr uint16, value byte) error {
	oldCarry := byte(0)
	if cpu.Flags.C {
		oldCarry = 1
	}
	cpu.Flags.C = bit(value, 7)
	result := (value << 1) | oldCarry
	cpu.Flags.setNZ(result)
	rmwWriteback(cpu, addr, value, result)
	return nil
}

func opROR(cpu *Cpu, addr uint16, value byte) error {
	oldCarry := byte(0)
	if cpu.Flags.C {
		oldCarry = 0x80
	}
	cpu.Flags.C = bit(value, 0)
	result := (value >> 1) | oldCarry
	cpu.Flags.setNZ(result)
	rmwWriteback(cpu, addr, value, result)
	return nil
}
