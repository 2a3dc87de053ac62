// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command mc6809view is an interactive register/memory/disassembly viewer
// that steps a CPU one instruction per keypress. Grounded on
// go/mgnes/cmd/pure6502/main.go's termui paragraph layout, generalized
// from the 6502's 8-bit address space and register set to the MC6809's.
package main

import (
	"fmt"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/go6809/mc6809/internal/cpu6809"
	"github.com/go6809/mc6809/internal/disasm"
)

var (
	cpu           *cpu6809.CPU
	mem           *cpu6809.PlainMemory
	listing       *disasm.Listing
	paragraphCPU  *widgets.Paragraph
	paragraphCode *widgets.Paragraph
	paragraphRam0 *widgets.Paragraph
	paragraphRam1 *widgets.Paragraph
	paragraphTips *widgets.Paragraph
)

func renderCPU(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	flags := []struct {
		mask uint8
		ch   rune
	}{
		{cpu6809.FlagE, 'E'}, {cpu6809.FlagF, 'F'}, {cpu6809.FlagH, 'H'}, {cpu6809.FlagI, 'I'},
		{cpu6809.FlagN, 'N'}, {cpu6809.FlagZ, 'Z'}, {cpu6809.FlagV, 'V'}, {cpu6809.FlagC, 'C'},
	}

	sb.WriteString("CC: ")
	for _, f := range flags {
		sb.WriteRune('[')
		sb.WriteRune(f.ch)
		sb.WriteRune(']')
		if cpu.CC&f.mask != 0 {
			sb.WriteString("(fg:green) ")
		} else {
			sb.WriteString("(fg:red) ")
		}
	}
	sb.WriteRune('\n')
	fmt.Fprintf(sb, "PC: $%04X DP: $%02X\n", cpu.PC, cpu.DP)
	fmt.Fprintf(sb, "A: $%02X  B: $%02X  D: $%04X\n", cpu.A, cpu.B, cpu.Get16(cpu6809.RegD))
	fmt.Fprintf(sb, "X: $%04X Y: $%04X\n", cpu.X, cpu.Y)
	fmt.Fprintf(sb, "U: $%04X S: $%04X\n", cpu.U, cpu.S)
	fmt.Fprintf(sb, "cycles: %d", cpu.Cycles)

	p.Text = sb.String()
}

func renderRAM(p *widgets.Paragraph, addr uint16, rows, cols int) {
	sb := &strings.Builder{}
	cur := addr
	for r := 0; r < rows; r++ {
		fmt.Fprintf(sb, "$%04X:", cur)
		for cl := 0; cl < cols; cl++ {
			fmt.Fprintf(sb, " %02X", mem.ReadByte(cur))
			cur++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderCode(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	for _, line := range listing.Lines {
		if line.Addr < cpu.PC-8 || line.Addr > cpu.PC+64 {
			continue
		}
		text := fmt.Sprintf("$%04X %-8s %s", line.Addr, line.Mnemonic, line.Operand)
		if line.Addr == cpu.PC {
			fmt.Fprintf(sb, "[%s](fg:cyan)\n", text)
		} else {
			sb.WriteString(text)
			sb.WriteRune('\n')
		}
	}
	p.Text = sb.String()
}

func renderTips(p *widgets.Paragraph) {
	p.Text = "SPACE = Step    R = Reset    I = IRQ    F = FIRQ    Q = Quit"
}

func draw() {
	renderRAM(paragraphRam0, 0x0000, 12, 16)
	renderRAM(paragraphRam1, 0x8000, 12, 16)
	renderCPU(paragraphCPU)
	renderCode(paragraphCode)
	renderTips(paragraphTips)
	ui.Render(paragraphRam0, paragraphRam1, paragraphCPU, paragraphCode, paragraphTips)
}

func loadCPU(path string) error {
	mem = cpu6809.NewPlainMemory()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		mem.Load(0x8000, data)
		mem.WriteWord(cpu6809.VectorReset, 0x8000)

		l, err := disasm.Disassemble(data, 0x8000)
		if err == nil {
			listing = l
		}
	}
	if listing == nil {
		listing = &disasm.Listing{}
	}

	cpu = cpu6809.NewCPU(mem, cpu6809.DefaultConfig{})
	return nil
}

func initLayout() {
	paragraphRam0 = widgets.NewParagraph()
	paragraphRam0.Title = "RAM $0000"
	paragraphRam0.SetRect(0, 0, 56, 14)

	paragraphRam1 = widgets.NewParagraph()
	paragraphRam1.Title = "RAM $8000"
	paragraphRam1.SetRect(0, 14, 56, 28)

	paragraphCPU = widgets.NewParagraph()
	paragraphCPU.Title = "CPU"
	paragraphCPU.SetRect(56, 0, 56+34, 9)

	paragraphCode = widgets.NewParagraph()
	paragraphCode.Title = "Disassembly"
	paragraphCode.SetRect(56, 9, 56+34, 9+25)

	paragraphTips = widgets.NewParagraph()
	paragraphTips.Title = "Tips"
	paragraphTips.SetRect(0, 28, 56+34, 31)
}

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := ui.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize termui: %v\n", err)
		os.Exit(1)
	}
	defer ui.Close()

	initLayout()
	if err := loadCPU(path); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load image: %v\n", err)
		os.Exit(1)
	}

	draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "Q", "<C-c>":
			return
		case "<Space>":
			cpu.Step()
		case "r", "R":
			cpu.Reset()
		case "i", "I":
			cpu.RequestIRQ()
		case "f", "F":
			cpu.RequestFIRQ()
		}
		draw()
	}
}
