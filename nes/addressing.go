package nes

// AddrMode identifies one of the twelve 6502 addressing modes. Unlike the
// teacher's per-mode methods bolted onto Cpu6502, resolution here is two
// parallel tables (resolveAddress, resolveValue) indexed by mode, per
// spec.md §9's suggested structure - which also makes the "calling the
// wrong resolver is a programming error" contract easy to test in
// isolation from the instruction table.
type AddrMode int

const (
	ModeImplicit AddrMode = iota
	ModeImmediate
	ModeAbsolute
	ModeZeroPage
	ModeRelative
	ModeIndirect
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
)

func (m AddrMode) String() string {
	switch m {
	case ModeImplicit:
		return "Implicit"
	case ModeImmediate:
		return "Immediate"
	case ModeAbsolute:
		return "Absolute"
	case ModeZeroPage:
		return "ZeroPage"
	case ModeRelative:
		return "Relative"
	case ModeIndirect:
		return "Indirect"
	case ModeZeroPageX:
		return "ZeroPageX"
	case ModeZeroPageY:
		return "ZeroPageY"
	case ModeAbsoluteX:
		return "AbsoluteX"
	case ModeAbsoluteY:
		return "AbsoluteY"
	case ModeIndirectX:
		return "IndirectX"
	case ModeIndirectY:
		return "IndirectY"
	default:
		return "Unknown"
	}
}

// InputSize is the number of operand bytes fetched after the opcode byte.
func (m AddrMode) InputSize() int {
	switch m {
	case ModeImplicit:
		return 0
	case ModeImmediate, ModeZeroPage, ModeRelative, ModeZeroPageX, ModeZeroPageY, ModeIndirectX, ModeIndirectY:
		return 1
	case ModeAbsolute, ModeIndirect, ModeAbsoluteX, ModeAbsoluteY:
		return 2
	default:
		return 0
	}
}

// resolveAddress computes the effective address for modes that have one.
// Calling it for Immediate or Implicit is a decode-table bug, not a
// runtime condition, and returns a distinct error rather than a bogus
// address.
func resolveAddress(mode AddrMode, input uint16, cpu *Cpu, penaltyEnabled bool) (uint16, error) {
	switch mode {
	case ModeAbsolute:
		return input, nil

	case ModeZeroPage:
		return input & 0x00FF, nil

	case ModeZeroPageX:
		return (input + uint16(cpu.Reg.X)) & 0x00FF, nil

	case ModeZeroPageY:
		return (input + uint16(cpu.Reg.Y)) & 0x00FF, nil

	case ModeAbsoluteX:
		addr := input + uint16(cpu.Reg.X)
		if penaltyEnabled && pagesDiffer(addr, input) {
			cpu.extraCycles++
		}
		return addr, nil

	case ModeAbsoluteY:
		addr := input + uint16(cpu.Reg.Y)
		if penaltyEnabled && pagesDiffer(addr, input) {
			cpu.extraCycles++
		}
		return addr, nil

	case ModeIndirect:
		// Page-wrap bug: the high byte is fetched from the same page as
		// the low byte, never the next page, if the pointer's low byte
		// is 0xFF.
		lo := cpu.bus.Read(input)
		hiAddr := (input & 0xFF00) | ((input + 1) & 0x00FF)
		hi := cpu.bus.Read(hiAddr)
		return word(lo, hi), nil

	case ModeIndirectX:
		ptr := (input + uint16(cpu.Reg.X)) & 0x00FF
		lo := cpu.bus.Read(ptr)
		hi := cpu.bus.Read((ptr + 1) & 0x00FF)
		return word(lo, hi), nil

	case ModeIndirectY:
		zp := input & 0x00FF
		lo := cpu.bus.Read(zp)
		hi := cpu.bus.Read((zp + 1) & 0x00FF)
		base := word(lo, hi)
		addr := base + uint16(cpu.Reg.Y)
		if penaltyEnabled && pagesDiffer(addr, base) {
			cpu.extraCycles++
		}
		return addr, nil

	case ModeRelative:
		base := cpu.Reg.PC
		target := base + signExtend(byte(input))
		if penaltyEnabled && pagesDiffer(target, base) {
			cpu.extraCycles++
		}
		return target, nil

	default:
		return 0, errUnsupportedResolver(mode)
	}
}

// resolveValue computes the operand byte for modes that have one,
// reading through the bus where necessary. Relative, Indirect, and
// Implicit have no meaningful value and return a distinct error.
func resolveValue(mode AddrMode, input uint16, cpu *Cpu, penaltyEnabled bool) (byte, error) {
	switch mode {
	case ModeImmediate:
		return byte(input), nil
	case ModeRelative, ModeIndirect, ModeImplicit:
		return 0, errUnsupportedResolver(mode)
	default:
		addr, err := resolveAddress(mode, input, cpu, penaltyEnabled)
		if err != nil {
			return 0, err
		}
		return cpu.bus.Read(addr), nil
	}
}
