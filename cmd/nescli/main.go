package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/jrsands/nescore/nes"
	cli "gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "nescli",
		Usage:   "run and inspect NROM cartridges on the CPU interpreter",
		Version: "v0.0.1",
		Commands: []*cli.Command{
			runCommand(),
			debugCommand(),
			disasmCommand(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "execute a cartridge for a fixed cycle budget",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Aliases: []string{"r"}, Usage: "path to an iNES ROM"},
			&cli.Uint64Flag{Name: "cycles", Aliases: []string{"c"}, Usage: "cycle budget", Value: 1_000_000},
		},
		Action: func(c *cli.Context) error {
			romPath := c.String("rom")
			if romPath == "" {
				return cli.Exit("missing --rom", 86)
			}

			console, err := loadConsole(romPath, os.Stderr)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			ran, err := console.RunCycles(c.Uint64("cycles"))
			fmt.Printf("ran %d cycles, PC=$%04X A=$%02X X=$%02X Y=$%02X\n",
				ran, console.Cpu.Reg.PC, console.Cpu.Reg.A, console.Cpu.Reg.X, console.Cpu.Reg.Y)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

func debugCommand() *cli.Command {
	return &cli.Command{
		Name:  "debug",
		Usage: "step a cartridge interactively in a terminal UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Aliases: []string{"r"}, Usage: "path to an iNES ROM"},
		},
		Action: func(c *cli.Context) error {
			romPath := c.String("rom")
			if romPath == "" {
				return cli.Exit("missing --rom", 86)
			}

			console, err := loadConsole(romPath, os.Stderr)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			runDebugger(console)
			return nil
		},
	}
}

func disasmCommand() *cli.Command {
	return &cli.Command{
		Name:  "disasm",
		Usage: "disassemble a cartridge's PRG ROM window",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Aliases: []string{"r"}, Usage: "path to an iNES ROM"},
		},
		Action: func(c *cli.Context) error {
			romPath := c.String("rom")
			if romPath == "" {
				return cli.Exit("missing --rom", 86)
			}

			console, err := loadConsole(romPath, os.Stderr)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			lines := console.Cpu.Disassemble(0x8000, 0xFFFF)
			for addr := uint32(0x8000); addr <= 0xFFFF; addr++ {
				if line, ok := lines[uint16(addr)]; ok {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
}

func loadConsole(romPath string, logTo *os.File) (*nes.Console, error) {
	data, err := os.ReadFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	cart, err := nes.LoadCartridge(data)
	if err != nil {
		return nil, err
	}

	bus := nes.NewBusLogging(logTo)
	bus.InsertCartridge(cart)

	cpu := nes.NewCpuLogging(bus, logTo)
	cpu.Reset()

	return nes.NewConsole(bus, cpu), nil
}
