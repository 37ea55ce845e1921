package nes

// Registers holds the five architectural registers of the Ricoh 2A03. A,
// X, Y, and SP wrap modulo 256 on increment/decrement; PC wraps modulo
// 65536. The wrapping is implicit in Go's byte/uint16 arithmetic, so these
// methods exist mainly to give the interpreter readable call sites.
type Registers struct {
	A  byte
	X  byte
	Y  byte
	SP byte
	PC uint16
}

func (r *Registers) incSP() { r.SP++ }
func (r *Registers) decSP() { r.SP-- }

func (r *Registers) incPC() { r.PC++ }
func (r *Registers) advancePC(n uint16) { r.PC += n }
