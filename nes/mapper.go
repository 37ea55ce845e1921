package nes

// Mapper is the cartridge-side collaborator the bus delegates $4020-$FFFF
// to. CpuRead's second return value is false when the mapper has nothing
// mapped at addr, which the bus turns into open bus rather than a zero.
// Bank switching, CHR windows, and PRG-RAM layout are entirely the
// mapper's business; the bus and CPU never look inside one.
type Mapper interface {
	CpuRead(addr uint16) (byte, bool)
	CpuWrite(addr uint16, v byte)
}
