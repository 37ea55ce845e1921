package nes

// PpuTicker and ApuTicker are optional collaborators a frontend can wire
// in to keep a real PPU/APU implementation in lockstep with CPU cycles,
// per spec.md §4.9 and §5: the PPU runs at 3x CPU rate, the APU at 0.5x.
// Neither is implemented by this module (out of scope per spec.md §1);
// Console works with either left nil.
type PpuTicker interface{ Tick() }
type ApuTicker interface{ Tick() }

// Console wires a Cpu to its collaborators and drives Step in the order
// spec.md §4.9 prescribes: PPU ticks three times per CPU cycle, APU
// every other CPU cycle, both *after* the CPU instruction that produced
// the cycles they're ticking for.
type Console struct {
	Cpu *Cpu
	Bus *Bus

	Ppu PpuTicker
	Apu ApuTicker

	apuParity bool
}

func NewConsole(bus *Bus, cpu *Cpu) *Console {
	return &Console{Cpu: cpu, Bus: bus}
}

// StepInstruction runs exactly one CPU instruction (or interrupt
// service) and ticks the collaborators the matching number of times.
func (c *Console) StepInstruction() error {
	before := c.Cpu.Cycles
	if err := c.Cpu.Step(); err != nil {
		return err
	}
	elapsed := c.Cpu.Cycles - before

	for i := uint64(0); i < elapsed; i++ {
		if c.Ppu != nil {
			c.Ppu.Tick()
			c.Ppu.Tick()
			c.Ppu.Tick()
		}
		if c.Apu != nil {
			c.apuParity = !c.apuParity
			if c.apuParity {
				c.Apu.Tick()
			}
		}
	}
	return nil
}

// RunCycles drives the console until at least budget CPU cycles have
// elapsed, returning the total number of cycles that elapsed (an
// instruction is never partially executed, so this can exceed budget).
func (c *Console) RunCycles(budget uint64) (uint64, error) {
	start := c.Cpu.Cycles
	for c.Cpu.Cycles-start < budget {
		if err := c.StepInstruction(); err != nil {
			return c.Cpu.Cycles - start, err
		}
	}
	return c.Cpu.Cycles - start, nil
}
