package nes

import (
	"bytes"
	"fmt"
)

// Disassemble renders [startAddr, endAddr] as one line per instruction,
// keyed by the address the instruction starts at. Unimplemented opcodes
// are rendered as "???" rather than aborting the whole listing - useful
// for inspecting data embedded in code ranges.
//
// Much help from https://github.com/OneLoneCoder/olcNES, same source the
// teacher credits.
func (cpu *Cpu) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	disassembly := make(map[uint16]string)

	var addr uint32 = uint32(startAddr)
	for addr <= uint32(endAddr) {
		lineAddr := uint16(addr)
		var line bytes.Buffer
		fmt.Fprintf(&line, "$%04X: ", lineAddr)

		opcode := cpu.bus.Read(uint16(addr))
		addr++

		inst := cpu.table[opcode]
		name := inst.Name
		if name == "" {
			name = "???"
		}
		fmt.Fprintf(&line, "%s ", name)

		switch inst.Mode {
		case ModeImplicit:
			line.WriteString("{IMP}")

		case ModeImmediate:
			v := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "#$%02X {IMM}", v)

		case ModeRelative:
			v := cpu.bus.Read(uint16(addr))
			addr++
			target := uint16(addr) + uint16(signExtend(v))
			fmt.Fprintf(&line, "$%02X [$%04X] {REL}", v, target)

		case ModeZeroPage:
			v := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "$%02X {ZP0}", v)

		case ModeZeroPageX:
			v := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "$%02X,X {ZPX}", v)

		case ModeZeroPageY:
			v := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "$%02X,Y {ZPY}", v)

		case ModeAbsolute:
			lo := cpu.bus.Read(uint16(addr))
			addr++
			hi := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "$%04X {ABS}", word(lo, hi))

		case ModeAbsoluteX:
			lo := cpu.bus.Read(uint16(addr))
			addr++
			hi := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "$%04X,X {ABX}", word(lo, hi))

		case ModeAbsoluteY:
			lo := cpu.bus.Read(uint16(addr))
			addr++
			hi := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "$%04X,Y {ABY}", word(lo, hi))

		case ModeIndirect:
			lo := cpu.bus.Read(uint16(addr))
			addr++
			hi := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "($%04X) {IND}", word(lo, hi))

		case ModeIndirectX:
			v := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "($%02X,X) {IZX}", v)

		case ModeIndirectY:
			v := cpu.bus.Read(uint16(addr))
			addr++
			fmt.Fprintf(&line, "($%02X),Y {IZY}", v)
		}

		disassembly[lineAddr] = line.String()
	}

	return disassembly
}
