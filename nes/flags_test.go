package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsEncode(t *testing.T) {
	f := Flags{N: true, V: false, D: false, I: true, Z: false, C: true}
	// N.. 1 | V 0 | 1 (always) | B | D 0 | I 1 | Z 0 | C 1
	assert.Equal(t, byte(0b1010_0101), f.Encode(false))
	assert.Equal(t, byte(0b1011_0101), f.Encode(true))
}

func TestFlagsDecodeIgnoresBAndUnused(t *testing.T) {
	var f Flags
	f.Decode(0b0011_0000) // only bit5(always-1) and B set, nothing architectural
	assert.False(t, f.N)
	assert.False(t, f.V)
	assert.False(t, f.D)
	assert.False(t, f.I)
	assert.False(t, f.Z)
	assert.False(t, f.C)
}

func TestFlagsRoundTrip(t *testing.T) {
	want := Flags{N: true, V: true, D: true, I: false, Z: true, C: false}
	var got Flags
	got.Decode(want.Encode(true))
	assert.Equal(t, want, got)
}

func TestSetNZ(t *testing.T) {
	var f Flags
	f.setNZ(0x00)
	assert.True(t, f.Z)
	assert.False(t, f.N)

	f.setNZ(0x80)
	assert.False(t, f.Z)
	assert.True(t, f.N)

	f.setNZ(0x01)
	assert.False(t, f.Z)
	assert.False(t, f.N)
}
