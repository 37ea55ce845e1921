package nes

// Button bit positions within the controller's 8-bit state byte, matching
// the order the real shift register reports them in.
const (
	ButtonA byte = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// portsState is shared by both controller ports so a strobe write to port
// 0 (the only port wired to $4016) resets both shift registers, per
// spec.md §9's guidance to avoid cyclic ownership: one shared value, owned
// by the bus, each controller holds a pointer into it.
type portsState struct {
	strobe bool
}

// Controller implements the bus's controller interface (on_read/on_write).
// Acquiring real input (keyboard, gamepad) is out of scope here - callers
// drive it via SetButtons, e.g. from a test or a future frontend.
type Controller struct {
	ports   *portsState
	buttons byte // current physical button state
	shift   byte // snapshot latched on strobe, shifted out one bit per read
}

func newControllerPair() (p0, p1 *Controller) {
	shared := &portsState{}
	return &Controller{ports: shared}, &Controller{ports: shared}
}

// SetButtons overwrites the controller's held-button state.
func (c *Controller) SetButtons(state byte) { c.buttons = state }

// OnWrite handles a strobe write. While strobe is held high the shift
// register continuously reloads from the live button state; on the
// high-to-low transition it latches so OnRead can shift bits out.
func (c *Controller) OnWrite(v byte) {
	c.ports.strobe = v&0x01 != 0
	if c.ports.strobe {
		c.shift = c.buttons
	}
}

// OnRead returns the next button bit in its low bit; the real controller
// also keeps reloading from live state while strobe is high.
func (c *Controller) OnRead() byte {
	if c.ports.strobe {
		c.shift = c.buttons
	}
	bit := c.shift & 0x01
	c.shift >>= 1
	c.shift |= 0x80 // shifted-out reads return 1 past the 8th bit
	return bit
}
