package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper000SixteenKbMirrors(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xAA
	prg[0x3FFF] = 0xBB
	m := NewMapper000(prg)

	v, ok := m.CpuRead(0x8000)
	assert.True(t, ok)
	assert.Equal(t, byte(0xAA), v)

	v, ok = m.CpuRead(0xC000) // mirrored copy of $8000
	assert.True(t, ok)
	assert.Equal(t, byte(0xAA), v)

	v, ok = m.CpuRead(0xFFFF)
	assert.True(t, ok)
	assert.Equal(t, byte(0xBB), v)
}

func TestMapper000ThirtyTwoKbNoMirror(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0] = 0x11
	prg[0x4000] = 0x22
	m := NewMapper000(prg)

	v, _ := m.CpuRead(0x8000)
	assert.Equal(t, byte(0x11), v)
	v, _ = m.CpuRead(0xC000)
	assert.Equal(t, byte(0x22), v)
}

func TestMapper000PrgRam(t *testing.T) {
	m := NewMapper000(make([]byte, 0x4000))
	m.CpuWrite(0x6000, 0x42)
	v, ok := m.CpuRead(0x6000)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)
}

func TestMapper000UnmappedBelowPrgRam(t *testing.T) {
	m := NewMapper000(make([]byte, 0x4000))
	_, ok := m.CpuRead(0x4020)
	assert.False(t, ok)
}
