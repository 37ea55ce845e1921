package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/jrsands/nescore/nes"
)

// debuggerModel is a bubbletea TUI for single-stepping a Console,
// adapted from the teacher pack's interactive debugger: same
// page-table-plus-status layout, but driving Console.StepInstruction
// instead of a bare Cpu.tick, and dumping the resolved instruction
// instead of a raw opcode table entry.
type debuggerModel struct {
	console *nes.Console
	prevPC  uint16
	err     error
}

func runDebugger(console *nes.Console) {
	p := tea.NewProgram(debuggerModel{console: console})
	final, err := p.Run()
	if err != nil {
		fmt.Println("debugger error:", err)
		return
	}
	if m, ok := final.(debuggerModel); ok && m.err != nil {
		fmt.Println("interpreter error:", m.err)
	}
}

func (m debuggerModel) Init() tea.Cmd { return nil }

func (m debuggerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.console.Cpu.Reg.PC
			if err := m.console.StepInstruction(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m debuggerModel) renderPage(start uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := m.console.Bus.Read(addr)
		if addr == m.console.Cpu.Reg.PC {
			fmt.Fprintf(&b, "[%02x] ", v)
		} else {
			fmt.Fprintf(&b, " %02x  ", v)
		}
	}
	return b.String()
}

func (m debuggerModel) pageTable() string {
	header := "page | "
	for col := 0; col < 16; col++ {
		header += fmt.Sprintf("  %01x  ", col)
	}

	base := m.console.Cpu.Reg.PC &^ 0x0F
	lines := []string{header}
	for row := -2; row <= 2; row++ {
		lines = append(lines, m.renderPage(uint16(int(base)+row*16)))
	}
	return strings.Join(lines, "\n")
}

func (m debuggerModel) status() string {
	f := m.console.Cpu.Flags
	var flags string
	for _, set := range []bool{f.N, f.V, true, false, f.D, f.I, f.Z, f.C} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
%s
cycles: %d
`,
		m.console.Cpu.Reg.PC, m.prevPC,
		m.console.Cpu.Reg.A,
		m.console.Cpu.Reg.X,
		m.console.Cpu.Reg.Y,
		m.console.Cpu.Reg.SP,
		flags,
		m.console.Cpu.Cycles,
	)
}

func (m debuggerModel) View() string {
	opcode := m.console.Bus.Read(m.console.Cpu.Reg.PC)
	disasm := m.console.Cpu.Disassemble(m.console.Cpu.Reg.PC, m.console.Cpu.Reg.PC+2)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		fmt.Sprintf("next opcode: $%02X", opcode),
		spew.Sdump(disasm[m.console.Cpu.Reg.PC]),
		"(space/j to step, q to quit)",
	)
}
