package nes

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// iNES file header. Reference: https://wiki.nesdev.com/w/index.php/INES
type iNESHeader struct {
	Magic        [4]byte
	PrgRomChunks byte // 16KB units
	ChrRomChunks byte // 8KB units
	Flags6       byte
	Flags7       byte
	PrgRamSize   byte
	Flags9       byte
	Flags10      byte
	_            [5]byte // padding
}

var iNESMagic = [4]byte{'N', 'E', 'S', 0x1A}

// Cartridge owns PRG/CHR memory and the mapper that decodes addresses into
// it. CHR memory is kept (and exposed) even though the PPU is out of
// scope, since a cartridge that drops it silently would misreport its
// size to any future PPU collaborator.
type Cartridge struct {
	Mapper Mapper
	ChrROM []byte
}

// LoadCartridge parses an iNES image. Cartridge-format parsing beyond what
// the bus needs is explicitly out of scope for the CPU core (spec.md §1);
// this is the minimum needed to hand the bus a working Mapper.
func LoadCartridge(data []byte) (*Cartridge, error) {
	if len(data) < 16 {
		return nil, fmt.Errorf("nes: cartridge image too short (%d bytes)", len(data))
	}

	var header iNESHeader
	if err := binary.Read(bytes.NewReader(data[:16]), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("nes: reading iNES header: %w", err)
	}
	if header.Magic != iNESMagic {
		return nil, fmt.Errorf("nes: bad iNES magic %v", header.Magic)
	}

	offset := 16
	if header.Flags6&(1<<2) != 0 {
		offset += 512 // 512-byte trainer, not consumed by the CPU bus
	}

	prgSize := 16 * 1024 * int(header.PrgRomChunks)
	if offset+prgSize > len(data) {
		return nil, fmt.Errorf("nes: truncated PRG ROM: want %d bytes, have %d", prgSize, len(data)-offset)
	}
	prgROM := data[offset : offset+prgSize]
	offset += prgSize

	chrSize := 8 * 1024 * int(header.ChrRomChunks)
	var chrROM []byte
	if offset+chrSize <= len(data) {
		chrROM = data[offset : offset+chrSize]
	}

	mapperID := (header.Flags7 & 0xF0) | (header.Flags6 >> 4)
	var mapper Mapper
	switch mapperID {
	case 0:
		mapper = NewMapper000(prgROM)
	default:
		return nil, fmt.Errorf("nes: unsupported mapper %d", mapperID)
	}

	return &Cartridge{Mapper: mapper, ChrROM: chrROM}, nil
}
