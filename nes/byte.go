package nes

// Byte-level helpers shared by the addressing modes and the interpreter.
// Kept free of CPU state so they can be tested in isolation.

// signExtend widens a two's-complement 8-bit value to a 16-bit one,
// propagating bit 7 into the high byte. Used by relative addressing.
func signExtend(b byte) uint16 {
	if b&0x80 != 0 {
		return 0xFF00 | uint16(b)
	}
	return uint16(b)
}

// loByte/hiByte split a 16-bit value into its component bytes.
func loByte(v uint16) byte { return byte(v) }
func hiByte(v uint16) byte { return byte(v >> 8) }

// word assembles a little-endian 16-bit value from its low and high bytes.
func word(lo, hi byte) uint16 { return uint16(lo) | uint16(hi)<<8 }

// pagesDiffer reports whether a and b fall in different 256-byte pages,
// the condition that drives page-cross cycle penalties.
func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// bit reports whether bit n (0-7) of b is set.
func bit(b byte, n uint) bool {
	return b&(1<<n) != 0
}

// negative/zero compute the N/Z flag values for a result byte, as used by
// nearly every load, transfer, and arithmetic operation.
func negative(v byte) bool { return v&0x80 != 0 }
func isZero(v byte) bool   { return v == 0 }
