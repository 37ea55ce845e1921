package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerShiftsOutLsbFirst(t *testing.T) {
	p0, _ := newControllerPair()
	p0.SetButtons(ButtonA | ButtonRight) // bits 0 and 7
	p0.OnWrite(0x01)
	p0.OnWrite(0x00)

	var bits []byte
	for i := 0; i < 8; i++ {
		bits = append(bits, p0.OnRead()&0x01)
	}
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 1}, bits)
}

func TestControllerReadsPastEighthBitReturnOne(t *testing.T) {
	p0, _ := newControllerPair()
	p0.SetButtons(0)
	p0.OnWrite(0x01)
	p0.OnWrite(0x00)

	for i := 0; i < 8; i++ {
		p0.OnRead()
	}
	assert.Equal(t, byte(1), p0.OnRead()&0x01)
}

func TestControllerStrobeHighKeepsReloading(t *testing.T) {
	p0, _ := newControllerPair()
	p0.SetButtons(ButtonA)
	p0.OnWrite(0x01) // strobe held high

	assert.Equal(t, byte(1), p0.OnRead()&0x01)
	assert.Equal(t, byte(1), p0.OnRead()&0x01) // keeps reloading, never shifts
}

func TestControllerPortsShareStrobe(t *testing.T) {
	p0, p1 := newControllerPair()
	p1.SetButtons(ButtonA)
	p0.OnWrite(0x01) // strobing port 0 also holds port 1's strobe high

	assert.Equal(t, byte(1), p1.OnRead()&0x01) // reloads from p1's own buttons while strobe is shared-high

	p0.OnWrite(0x00) // strobing port 0 low also releases port 1
	p1.SetButtons(0)
	assert.Equal(t, byte(0), p1.OnRead()&0x01) // no longer reloading, but shift was last loaded with ButtonA
}
