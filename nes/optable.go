package nes

// buildOpTable constructs the dense 256-entry instruction table from
// spec.md §4.5. Slots with no entry (Exec == nil) are unofficial/illegal
// opcodes, explicitly out of scope per spec.md §9 - Step reports them via
// errUnimplementedOpcode rather than silently treating them as NOP.
func buildOpTable() [256]instruction {
	var t [256]instruction

	def := func(op byte, name string, mode AddrMode, kind ArgKind, cycles int, penalty bool, exec opFunc) {
		t[op] = instruction{Name: name, Mode: mode, Kind: kind, Cycles: cycles, Penalty: penalty, Exec: exec}
	}

	// ADC
	def(0x69, "ADC", ModeImmediate, ArgValue, 2, false, opADC)
	def(0x65, "ADC", ModeZeroPage, ArgValue, 3, false, opADC)
	def(0x75, "ADC", ModeZeroPageX, ArgValue, 4, false, opADC)
	def(0x6D, "ADC", ModeAbsolute, ArgValue, 4, false, opADC)
	def(0x7D, "ADC", ModeAbsoluteX, ArgValue, 4, true, opADC)
	def(0x79, "ADC", ModeAbsoluteY, ArgValue, 4, true, opADC)
	def(0x61, "ADC", ModeIndirectX, ArgValue, 6, false, opADC)
	def(0x71, "ADC", ModeIndirectY, ArgValue, 5, true, opADC)

	// AND
	def(0x29, "AND", ModeImmediate, ArgValue, 2, false, opAND)
	def(0x25, "AND", ModeZeroPage, ArgValue, 3, false, opAND)
	def(0x35, "AND", ModeZeroPageX, ArgValue, 4, false, opAND)
	def(0x2D, "AND", ModeAbsolute, ArgValue, 4, false, opAND)
	def(0x3D, "AND", ModeAbsoluteX, ArgValue, 4, true, opAND)
	def(0x39, "AND", ModeAbsoluteY, ArgValue, 4, true, opAND)
	def(0x21, "AND", ModeIndirectX, ArgValue, 6, false, opAND)
	def(0x31, "AND", ModeIndirectY, ArgValue, 5, true, opAND)

	// ASL
	def(0x0A, "ASL", ModeImplicit, ArgRMW, 2, false, opASL)
	def(0x06, "ASL", ModeZeroPage, ArgRMW, 5, false, opASL)
	def(0x16, "ASL", ModeZeroPageX, ArgRMW, 6, false, opASL)
	def(0x0E, "ASL", ModeAbsolute, ArgRMW, 6, false, opASL)
	def(0x1E, "ASL", ModeAbsoluteX, ArgRMW, 7, false, opASL)

	// Branches
	def(0x90, "BCC", ModeRelative, ArgBranch, 2, false, opBCC)
	def(0xB0, "BCS", ModeRelative, ArgBranch, 2, false, opBCS)
	def(0xF0, "BEQ", ModeRelative, ArgBranch, 2, false, opBEQ)
	def(0x30, "BMI", ModeRelative, ArgBranch, 2, false, opBMI)
	def(0xD0, "BNE", ModeRelative, ArgBranch, 2, false, opBNE)
	def(0x10, "BPL", ModeRelative, ArgBranch, 2, false, opBPL)
	def(0x50, "BVC", ModeRelative, ArgBranch, 2, false, opBVC)
	def(0x70, "BVS", ModeRelative, ArgBranch, 2, false, opBVS)

	// BIT
	def(0x24, "BIT", ModeZeroPage, ArgValue, 3, false, opBIT)
	def(0x2C, "BIT", ModeAbsolute, ArgValue, 4, false, opBIT)

	// BRK
	def(0x00, "BRK", ModeImplicit, ArgNone, 7, false, opBRK)

	// Flag clear/set
	def(0x18, "CLC", ModeImplicit, ArgNone, 2, false, opCLC)
	def(0xD8, "CLD", ModeImplicit, ArgNone, 2, false, opCLD)
	def(0x58, "CLI", ModeImplicit, ArgNone, 2, false, opCLI)
	def(0xB8, "CLV", ModeImplicit, ArgNone, 2, false, opCLV)
	def(0x38, "SEC", ModeImplicit, ArgNone, 2, false, opSEC)
	def(0xF8, "SED", ModeImplicit, ArgNone, 2, false, opSED)
	def(0x78, "SEI", ModeImplicit, ArgNone, 2, false, opSEI)

	// CMP
	def(0xC9, "CMP", ModeImmediate, ArgValue, 2, false, opCMP)
	def(0xC5, "CMP", ModeZeroPage, ArgValue, 3, false, opCMP)
	def(0xD5, "CMP", ModeZeroPageX, ArgValue, 4, false, opCMP)
	def(0xCD, "CMP", ModeAbsolute, ArgValue, 4, false, opCMP)
	def(0xDD, "CMP", ModeAbsoluteX, ArgValue, 4, true, opCMP)
	def(0xD9, "CMP", ModeAbsoluteY, ArgValue, 4, true, opCMP)
	def(0xC1, "CMP", ModeIndirectX, ArgValue, 6, false, opCMP)
	def(0xD1, "CMP", ModeIndirectY, ArgValue, 5, true, opCMP)

	// CPX / CPY
	def(0xE0, "CPX", ModeImmediate, ArgValue, 2, false, opCPX)
	def(0xE4, "CPX", ModeZeroPage, ArgValue, 3, false, opCPX)
	def(0xEC, "CPX", ModeAbsolute, ArgValue, 4, false, opCPX)
	def(0xC0, "CPY", ModeImmediate, ArgValue, 2, false, opCPY)
	def(0xC4, "CPY", ModeZeroPage, ArgValue, 3, false, opCPY)
	def(0xCC, "CPY", ModeAbsolute, ArgValue, 4, false, opCPY)

	// DEC / DEX / DEY
	def(0xC6, "DEC", ModeZeroPage, ArgRMW, 5, false, opDEC)
	def(0xD6, "DEC", ModeZeroPageX, ArgRMW, 6, false, opDEC)
	def(0xCE, "DEC", ModeAbsolute, ArgRMW, 6, false, opDEC)
	def(0xDE, "DEC", ModeAbsoluteX, ArgRMW, 7, false, opDEC)
	def(0xCA, "DEX", ModeImplicit, ArgNone, 2, false, opDEX)
	def(0x88, "DEY", ModeImplicit, ArgNone, 2, false, opDEY)

	// EOR
	def(0x49, "EOR", ModeImmediate, ArgValue, 2, false, opEOR)
	def(0x45, "EOR", ModeZeroPage, ArgValue, 3, false, opEOR)
	def(0x55, "EOR", ModeZeroPageX, ArgValue, 4, false, opEOR)
	def(0x4D, "EOR", ModeAbsolute, ArgValue, 4, false, opEOR)
	def(0x5D, "EOR", ModeAbsoluteX, ArgValue, 4, true, opEOR)
	def(0x59, "EOR", ModeAbsoluteY, ArgValue, 4, true, opEOR)
	def(0x41, "EOR", ModeIndirectX, ArgValue, 6, false, opEOR)
	def(0x51, "EOR", ModeIndirectY, ArgValue, 5, true, opEOR)

	// INC / INX / INY
	def(0xE6, "INC", ModeZeroPage, ArgRMW, 5, false, opINC)
	def(0xF6, "INC", ModeZeroPageX, ArgRMW, 6, false, opINC)
	def(0xEE, "INC", ModeAbsolute, ArgRMW, 6, false, opINC)
	def(0xFE, "INC", ModeAbsoluteX, ArgRMW, 7, false, opINC)
	def(0xE8, "INX", ModeImplicit, ArgNone, 2, false, opINX)
	def(0xC8, "INY", ModeImplicit, ArgNone, 2, false, opINY)

	// JMP / JSR
	def(0x4C, "JMP", ModeAbsolute, ArgAddress, 3, false, opJMP)
	def(0x6C, "JMP", ModeIndirect, ArgAddress, 5, false, opJMP)
	def(0x20, "JSR", ModeAbsolute, ArgAddress, 6, false, opJSR)

	// LDA
	def(0xA9, "LDA", ModeImmediate, ArgValue, 2, false, opLDA)
	def(0xA5, "LDA", ModeZeroPage, ArgValue, 3, false, opLDA)
	def(0xB5, "LDA", ModeZeroPageX, ArgValue, 4, false, opLDA)
	def(0xAD, "LDA", ModeAbsolute, ArgValue, 4, false, opLDA)
	def(0xBD, "LDA", ModeAbsoluteX, ArgValue, 4, true, opLDA)
	def(0xB9, "LDA", ModeAbsoluteY, ArgValue, 4, true, opLDA)
	def(0xA1, "LDA", ModeIndirectX, ArgValue, 6, false, opLDA)
	def(0xB1, "LDA", ModeIndirectY, ArgValue, 5, true, opLDA)

	// LDX
	def(0xA2, "LDX", ModeImmediate, ArgValue, 2, false, opLDX)
	def(0xA6, "LDX", ModeZeroPage, ArgValue, 3, false, opLDX)
	def(0xB6, "LDX", ModeZeroPageY, ArgValue, 4, false, opLDX)
	def(0xAE, "LDX", ModeAbsolute, ArgValue, 4, false, opLDX)
	def(0xBE, "LDX", ModeAbsoluteY, ArgValue, 4, true, opLDX)

	// LDY
	def(0xA0, "LDY", ModeImmediate, ArgValue, 2, false, opLDY)
	def(0xA4, "LDY", ModeZeroPage, ArgValue, 3, false, opLDY)
	def(0xB4, "LDY", ModeZeroPageX, ArgValue, 4, false, opLDY)
	def(0xAC, "LDY", ModeAbsolute, ArgValue, 4, false, opLDY)
	def(0xBC, "LDY", ModeAbsoluteX, ArgValue, 4, true, opLDY)

	// LSR
	def(0x4A, "LSR", ModeImplicit, ArgRMW, 2, false, opLSR)
	def(0x46, "LSR", ModeZeroPage, ArgRMW, 5, false, opLSR)
	def(0x56, "LSR", ModeZeroPageX, ArgRMW, 6, false, opLSR)
	def(0x4E, "LSR", ModeAbsolute, ArgRMW, 6, false, opLSR)
	def(0x5E, "LSR", ModeAbsoluteX, ArgRMW, 7, false, opLSR)

	// NOP
	def(0xEA, "NOP", ModeImplicit, ArgNone, 2, false, opNOP)

	// ORA
	def(0x09, "ORA", ModeImmediate, ArgValue, 2, false, opORA)
	def(0x05, "ORA", ModeZeroPage, ArgValue, 3, false, opORA)
	def(0x15, "ORA", ModeZeroPageX, ArgValue, 4, false, opORA)
	def(0x0D, "ORA", ModeAbsolute, ArgValue, 4, false, opORA)
	def(0x1D, "ORA", ModeAbsoluteX, ArgValue, 4, true, opORA)
	def(0x19, "ORA", ModeAbsoluteY, ArgValue, 4, true, opORA)
	def(0x01, "ORA", ModeIndirectX, ArgValue, 6, false, opORA)
	def(0x11, "ORA", ModeIndirectY, ArgValue, 5, true, opORA)

	// Stack
	def(0x48, "PHA", ModeImplicit, ArgNone, 3, false, opPHA)
	def(0x08, "PHP", ModeImplicit, ArgNone, 3, false, opPHP)
	def(0x68, "PLA", ModeImplicit, ArgNone, 4, false, opPLA)
	def(0x28, "PLP", ModeImplicit, ArgNone, 4, false, opPLP)

	// ROL / ROR
	def(0x2A, "ROL", ModeImplicit, ArgRMW, 2, false, opROL)
	def(0x26, "ROL", ModeZeroPage, ArgRMW, 5, false, opROL)
	def(0x36, "ROL", ModeZeroPageX, ArgRMW, 6, false, opROL)
	def(0x2E, "ROL", ModeAbsolute, ArgRMW, 6, false, opROL)
	def(0x3E, "ROL", ModeAbsoluteX, ArgRMW, 7, false, opROL)
	def(0x6A, "ROR", ModeImplicit, ArgRMW, 2, false, opROR)
	def(0x66, "ROR", ModeZeroPage, ArgRMW, 5, false, opROR)
	def(0x76, "ROR", ModeZeroPageX, ArgRMW, 6, false, opROR)
	def(0x6E, "ROR", ModeAbsolute, ArgRMW, 6, false, opROR)
	def(0x7E, "ROR", ModeAbsoluteX, ArgRMW, 7, false, opROR)

	// RTI / RTS
	def(0x40, "RTI", ModeImplicit, ArgNone, 6, false, opRTI)
	def(0x60, "RTS", ModeImplicit, ArgNone, 6, false, opRTS)

	// SBC
	def(0xE9, "SBC", ModeImmediate, ArgValue, 2, false, opSBC)
	def(0xE5, "SBC", ModeZeroPage, ArgValue, 3, false, opSBC)
	def(0xF5, "SBC", ModeZeroPageX, ArgValue, 4, false, opSBC)
	def(0xED, "SBC", ModeAbsolute, ArgValue, 4, false, opSBC)
	def(0xFD, "SBC", ModeAbsoluteX, ArgValue, 4, true, opSBC)
	def(0xF9, "SBC", ModeAbsoluteY, ArgValue, 4, true, opSBC)
	def(0xE1, "SBC", ModeIndirectX, ArgValue, 6, false, opSBC)
	def(0xF1, "SBC", ModeIndirectY, ArgValue, 5, true, opSBC)

	// STA / STX / STY - stores are ArgAddress: no penalty, fixed cycles
	// even on indexed modes that would otherwise take a conditional bonus.
	def(0x85, "STA", ModeZeroPage, ArgAddress, 3, false, opSTA)
	def(0x95, "STA", ModeZeroPageX, ArgAddress, 4, false, opSTA)
	def(0x8D, "STA", ModeAbsolute, ArgAddress, 4, false, opSTA)
	def(0x9D, "STA", ModeAbsoluteX, ArgAddress, 5, false, opSTA)
	def(0x99, "STA", ModeAbsoluteY, ArgAddress, 5, false, opSTA)
	def(0x81, "STA", ModeIndirectX, ArgAddress, 6, false, opSTA)
	def(0x91, "STA", ModeIndirectY, ArgAddress, 6, false, opSTA)

	def(0x86, "STX", ModeZeroPage, ArgAddress, 3, false, opSTX)
	def(0x96, "STX", ModeZeroPageY, ArgAddress, 4, false, opSTX)
	def(0x8E, "STX", ModeAbsolute, ArgAddress, 4, false, opSTX)

	def(0x84, "STY", ModeZeroPage, ArgAddress, 3, false, opSTY)
	def(0x94, "STY", ModeZeroPageX, ArgAddress, 4, false, opSTY)
	def(0x8C, "STY", ModeAbsolute, ArgAddress, 4, false, opSTY)

	// Register transfers
	def(0xAA, "TAX", ModeImplicit, ArgNone, 2, false, opTAX)
	def(0xA8, "TAY", ModeImplicit, ArgNone, 2, false, opTAY)
	def(0xBA, "TSX", ModeImplicit, ArgNone, 2, false, opTSX)
	def(0x8A, "TXA", ModeImplicit, ArgNone, 2, false, opTXA)
	def(0x9A, "TXS", ModeImplicit, ArgNone, 2, false, opTXS)
	def(0x98, "TYA", ModeImplicit, ArgNone, 2, false, opTYA)

	return t
}
