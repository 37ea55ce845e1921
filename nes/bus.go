package nes

import (
	"io"
	"log"
)

const (
	wramSize   = 2 * 1024
	wramMirror = wramSize - 1 // 0x07FF

	ppuRegMirror = 0x0007

	ctrlPort0Read  uint16 = 0x4016
	ctrlPort1Read  uint16 = 0x4017
	ctrlStrobeAddr uint16 = 0x4016
)

// PpuRegisters is the collaborator the bus forwards $2000-$3FFF to. It is
// absent by default (nil), in which case those reads/writes fall through
// to open bus - the PPU itself is out of scope for this module.
type PpuRegisters interface {
	CpuRead(addr uint16) (byte, bool)
	CpuWrite(addr uint16, v byte)
}

// ApuRegisters is the collaborator the bus forwards $4000-$4015 and $4017
// writes to. Absent by default for the same reason as PpuRegisters.
type ApuRegisters interface {
	CpuWrite(addr uint16, v byte)
}

// Bus multiplexes the CPU's view of the address space: 2KiB of mirrored
// WRAM, PPU/APU register windows (delegated to optional collaborators),
// the two controller ports, and the cartridge mapper. It also tracks the
// open-bus latch: any read that resolves to "nothing mapped" returns the
// last value a successful read produced.
type Bus struct {
	wram [wramSize]byte

	Ppu  PpuRegisters
	Apu  ApuRegisters
	Cart *Cartridge

	ctrl0, ctrl1 *Controller

	openBus byte

	Logger *log.Logger
}

// NewBus wires up a bus with a fresh controller pair and no cartridge
// attached. Logging defaults to io.Discard; pass a writer to NewBusLogging
// to observe open-bus reads in the cartridge window ($4020-$FFFF), the
// only events the bus logs.
func NewBus() *Bus {
	return NewBusLogging(io.Discard)
}

func NewBusLogging(w io.Writer) *Bus {
	ctrl0, ctrl1 := newControllerPair()
	return &Bus{
		ctrl0:  ctrl0,
		ctrl1:  ctrl1,
		Logger: log.New(w, "", 0),
	}
}

// InsertCartridge attaches a cartridge's mapper to the bus.
func (b *Bus) InsertCartridge(c *Cartridge) { b.Cart = c }

// Controller0/Controller1 expose the controller ports so a caller (test or
// frontend) can drive button state via SetButtons.
func (b *Bus) Controller0() *Controller { return b.ctrl0 }
func (b *Bus) Controller1() *Controller { return b.ctrl1 }

// Read implements the decode map from spec.md §4.1.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		v := b.wram[addr&wramMirror]
		b.openBus = v
		return v

	case addr >= 0x2000 && addr <= 0x3FFF:
		if b.Ppu != nil {
			if v, ok := b.Ppu.CpuRead(addr & ppuRegMirror); ok {
				b.openBus = v
				return v
			}
		}
		return b.openBus

	case addr == ctrlPort0Read:
		v := (b.ctrl0.OnRead() & 0x1F) | (b.openBus & 0xE0)
		b.openBus = v
		return v

	case addr == ctrlPort1Read:
		v := (b.ctrl1.OnRead() & 0x1F) | (b.openBus & 0xE0)
		b.openBus = v
		return v

	case addr >= 0x4000 && addr <= 0x4015:
		return b.openBus // APU registers are write-only or out of scope

	case addr >= 0x4020:
		if b.Cart != nil {
			if v, ok := b.Cart.Mapper.CpuRead(addr); ok {
				b.openBus = v
				return v
			}
		}
		b.Logger.Printf("open bus read at %#04x", addr)
		return b.openBus

	default:
		return b.openBus
	}
}

// Read16 performs two distinct bus reads, low byte first. Both affect the
// open-bus latch, so the value visible afterward is whatever the high
// byte read produced.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return word(lo, hi)
}

// Write implements the write half of the decode map. Writes never touch
// the open-bus latch.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr <= 0x1FFF:
		b.wram[addr&wramMirror] = v

	case addr >= 0x2000 && addr <= 0x3FFF:
		if b.Ppu != nil {
			b.Ppu.CpuWrite(addr&ppuRegMirror, v)
		}

	case addr == ctrlStrobeAddr:
		b.ctrl0.OnWrite(v)
		b.ctrl1.OnWrite(v) // port 1 mirrors port 0's strobe state

	case addr >= 0x4000 && addr <= 0x4017:
		if b.Apu != nil {
			b.Apu.CpuWrite(addr, v)
		}

	case addr >= 0x4020:
		if b.Cart != nil {
			b.Cart.Mapper.CpuWrite(addr, v)
		}
	}
}

// Write16 writes low byte then high byte, as two distinct bus transactions.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write(addr, loByte(v))
	b.Write(addr+1, hiByte(v))
}
