package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildINES(prgChunks, chrChunks byte, flags6 byte) []byte {
	header := make([]byte, 16)
	copy(header[:4], iNESMagic[:])
	header[4] = prgChunks
	header[5] = chrChunks
	header[6] = flags6

	data := append([]byte{}, header...)
	data = append(data, make([]byte, int(prgChunks)*16*1024)...)
	data = append(data, make([]byte, int(chrChunks)*8*1024)...)
	return data
}

func TestLoadCartridgeMapper0(t *testing.T) {
	data := buildINES(1, 1, 0x00)
	cart, err := LoadCartridge(data)
	require.NoError(t, err)
	assert.IsType(t, &Mapper000{}, cart.Mapper)
	assert.Len(t, cart.ChrROM, 8*1024)
}

func TestLoadCartridgeRejectsBadMagic(t *testing.T) {
	data := buildINES(1, 1, 0)
	data[0] = 'X'
	_, err := LoadCartridge(data)
	assert.Error(t, err)
}

func TestLoadCartridgeRejectsUnsupportedMapper(t *testing.T) {
	data := buildINES(1, 1, 0x10) // mapper number 1 in the high nibble of flags6
	_, err := LoadCartridge(data)
	assert.Error(t, err)
}

func TestLoadCartridgeSkipsTrainer(t *testing.T) {
	data := buildINES(1, 0, 0x04) // bit 2: trainer present
	trainer := make([]byte, 512)
	head := data[:16]
	rest := data[16:]
	full := append(append(append([]byte{}, head...), trainer...), rest...)
	full[0+16+512] = 0xEE // first PRG byte after the trainer

	cart, err := LoadCartridge(full)
	require.NoError(t, err)
	v, ok := cart.Mapper.CpuRead(0x8000)
	assert.True(t, ok)
	assert.Equal(t, byte(0xEE), v)
}

func TestLoadCartridgeTooShort(t *testing.T) {
	_, err := LoadCartridge([]byte{1, 2, 3})
	assert.Error(t, err)
}
