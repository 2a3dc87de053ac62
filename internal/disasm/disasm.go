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

// Package disasm walks a byte image with the CPU's own opcode table and
// renders a two-pass listing: addresses that branch/call instructions
// target, inside or outside the listed range, get a LABELnnn name instead
// of a bare hex address. Grounded on go/mgnes/mg6502.go's Disassemble(start, end)
// and go/mgnes/pkg/disassembly.go's Disassembly{Index, Lines}+Stringify
// for the "build an index of lines, then format" shape, with the label
// pass itself grounded on
// original_source/MC6809/components/mc6809_disassembler.py's branch-target
// collection.
package disasm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go6809/mc6809/internal/cpu6809"
)

// Line is one decoded instruction.
type Line struct {
	Addr       uint16
	Bytes      []uint8
	Mnemonic   string
	Operand    string
	Target     uint16
	HasTarget  bool
	LabelOwned bool // Addr itself is a label target
}

// Listing is the full two-pass disassembly result.
type Listing struct {
	Lines  []Line
	Labels map[uint16]string
}

// fatal mirrors spec.md §4.7: an unknown opcode or a truncated final
// instruction (not enough bytes left in the image for its operand) aborts
// the whole disassembly rather than producing a partial, corrupt listing.
type fatalError struct {
	addr uint16
	msg  string
}

func (e *fatalError) Error() string {
	return fmt.Sprintf("$%04x: %s", e.addr, e.msg)
}

// Disassemble decodes data as if loaded at base, returning the full
// two-pass Listing or a fatal error on the first unknown or truncated
// instruction.
func Disassemble(data []uint8, base uint16) (*Listing, error) {
	lines, err := decodeAll(data, base)
	if err != nil {
		return nil, err
	}

	labels := assignLabels(lines)

	return &Listing{Lines: lines, Labels: labels}, nil
}

func decodeAll(data []uint8, base uint16) ([]Line, error) {
	mem := &sliceMemory{data: data, base: base}
	var lines []Line
	pc := base
	end := base + uint16(len(data))
	for pc < end {
		line, next, err := decodeOne(mem, pc)
		if err != nil {
			return nil, err
		}
		if next > end {
			return nil, &fatalError{addr: pc, msg: "truncated instruction at end of image"}
		}
		lines = append(lines, line)
		pc = next
	}
	return lines, nil
}

func decodeOne(mem cpu6809.Memory, pc uint16) (Line, uint16, error) {
	start := pc
	opcode := mem.ReadByte(pc)
	pc++
	key := uint16(opcode)
	raw := []uint8{opcode}

	if opcode == 0x10 || opcode == 0x11 {
		op2 := mem.ReadByte(pc)
		pc++
		raw = append(raw, op2)
		if opcode == 0x10 {
			key = 0x1000 | uint16(op2)
		} else {
			key = 0x1100 | uint16(op2)
		}
	}

	instr, ok := cpu6809.LookupInstruction(key)
	if !ok {
		return Line{}, 0, &fatalError{addr: start, msg: fmt.Sprintf("unknown opcode $%04x", key)}
	}

	operand := ""
	var target uint16
	hasTarget := false

	switch instr.Mode {
	case cpu6809.AmInherent:
	case cpu6809.AmImmediate:
		v := mem.ReadByte(pc)
		raw = append(raw, v)
		pc++
		operand = fmt.Sprintf("#$%02x", v)
	case cpu6809.AmImmediateWord:
		v := mem.ReadWord(pc)
		raw = append(raw, uint8(v>>8), uint8(v))
		pc += 2
		operand = fmt.Sprintf("#$%04x", v)
	case cpu6809.AmDirect:
		v := mem.ReadByte(pc)
		raw = append(raw, v)
		pc++
		operand = fmt.Sprintf("<$%02x", v)
	case cpu6809.AmExtended:
		v := mem.ReadWord(pc)
		raw = append(raw, uint8(v>>8), uint8(v))
		pc += 2
		operand = fmt.Sprintf("$%04x", v)
		target, hasTarget = v, true
	case cpu6809.AmIndexed:
		text, length, t, ht := decodeIndexed(mem, pc)
		for i := 0; i < length; i++ {
			raw = append(raw, mem.ReadByte(pc+uint16(i)))
		}
		pc += uint16(length)
		operand = text
		target, hasTarget = t, ht
	case cpu6809.AmRelative:
		off := int8(mem.ReadByte(pc))
		raw = append(raw, uint8(off))
		pc++
		target = uint16(int32(pc) + int32(off))
		hasTarget = true
	case cpu6809.AmRelativeWord:
		v := mem.ReadWord(pc)
		raw = append(raw, uint8(v>>8), uint8(v))
		off := int16(v)
		pc += 2
		target = uint16(int32(pc) + int32(off))
		hasTarget = true
	}

	return Line{Addr: start, Bytes: raw, Mnemonic: instr.Mnemonic, Operand: operand, Target: target, HasTarget: hasTarget}, pc, nil
}

func decodeIndexed(mem cpu6809.Memory, pc uint16) (string, int, uint16, bool) {
	postbyte := mem.ReadByte(pc)
	length := 1
	regNames := [4]string{"X", "Y", "U", "S"}
	regName := regNames[(postbyte>>5)&0x3]

	if postbyte&0x80 == 0 {
		offset := int8(postbyte & 0x1f)
		if postbyte&0x10 != 0 {
			offset = offset - 0x20
		}
		return fmt.Sprintf("%d,%s", offset, regName), length, 0, false
	}

	indirect := postbyte&0x10 != 0
	mode := postbyte & 0x0f
	wrap := func(s string) string {
		if indirect {
			return "[" + s + "]"
		}
		return s
	}

	switch mode {
	case 0x0:
		return wrap(fmt.Sprintf(",%s+", regName)), length, 0, false
	case 0x1:
		return wrap(fmt.Sprintf(",%s++", regName)), length, 0, false
	case 0x2:
		return wrap(fmt.Sprintf(",-%s", regName)), length, 0, false
	case 0x3:
		return wrap(fmt.Sprintf(",--%s", regName)), length, 0, false
	case 0x4:
		return wrap(fmt.Sprintf(",%s", regName)), length, 0, false
	case 0x5:
		return wrap(fmt.Sprintf("B,%s", regName)), length, 0, false
	case 0x6:
		return wrap(fmt.Sprintf("A,%s", regName)), length, 0, false
	case 0x8:
		off := int8(mem.ReadByte(pc + 1))
		length++
		return wrap(fmt.Sprintf("%d,%s", off, regName)), length, 0, false
	case 0x9:
		off := int16(mem.ReadWord(pc + 1))
		length += 2
		return wrap(fmt.Sprintf("%d,%s", off, regName)), length, 0, false
	case 0xa:
		return wrap(",ILLEGAL"), length, 0, false
	case 0xb:
		return wrap(fmt.Sprintf("D,%s", regName)), length, 0, false
	case 0xc:
		off := int8(mem.ReadByte(pc + 1))
		length++
		target := uint16(int32(pc) + int32(length) + int32(off))
		return wrap(fmt.Sprintf("%d,PCR", off)), length, target, true
	case 0xd:
		off := int16(mem.ReadWord(pc + 1))
		length += 2
		target := uint16(int32(pc) + int32(length) + int32(off))
		return wrap(fmt.Sprintf("%d,PCR", off)), length, target, true
	case 0xe:
		return wrap(",ILLEGAL"), length, 0, false
	case 0xf:
		addr := mem.ReadWord(pc + 1)
		length += 2
		return fmt.Sprintf("[$%04x]", addr), length, addr, true
	}
	return wrap(",?"), length, 0, false
}

// assignLabels collects every branch/call target and names them LABEL000,
// LABEL001, ... in ascending address order, the naming scheme spec.md §4.7
// specifies. A target outside the disassembled range still gets a label: the
// listing references code or data the image never reaches, not just
// addresses it happens to also decode.
func assignLabels(lines []Line) map[uint16]string {
	isBranchOrCall := func(m string) bool {
		switch m {
		case "JMP", "JSR", "BSR", "LBSR":
			return true
		}
		return strings.HasPrefix(m, "LB") || (strings.HasPrefix(m, "B") && !strings.HasPrefix(m, "BIT"))
	}
	seen := map[uint16]bool{}
	var addrs []uint16
	for _, l := range lines {
		if l.HasTarget && isBranchOrCall(l.Mnemonic) && !seen[l.Target] {
			seen[l.Target] = true
			addrs = append(addrs, l.Target)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	labels := make(map[uint16]string, len(addrs))
	for i, a := range addrs {
		labels[a] = fmt.Sprintf("LABEL%03d", i)
	}
	return labels
}

// String renders the full listing, substituting label names for raw
// addresses wherever assignLabels found one. A label whose target has no
// corresponding decoded line — an address the image branches or calls into
// but never itself reaches — gets a "; LABELnnn = $addr" definition ahead of
// the column header, the way a target outside the disassembled range is
// still named instead of silently falling back to a bare hex operand.
func (l *Listing) String() string {
	var b strings.Builder

	owned := make(map[uint16]bool, len(l.Lines))
	for _, line := range l.Lines {
		owned[line.Addr] = true
	}
	var undefined []uint16
	for addr := range l.Labels {
		if !owned[addr] {
			undefined = append(undefined, addr)
		}
	}
	sort.Slice(undefined, func(i, j int) bool { return l.Labels[undefined[i]] < l.Labels[undefined[j]] })
	for _, addr := range undefined {
		fmt.Fprintf(&b, "; %s = $%04x\n", l.Labels[addr], addr)
	}

	b.WriteString("ADDR   BYTES        LABEL       MNEMONIC  OPERAND\n")
	for _, line := range l.Lines {
		label := l.Labels[line.Addr]
		operand := line.Operand
		if line.HasTarget {
			if name, ok := l.Labels[line.Target]; ok {
				operand = name
			}
		}
		bytesStr := ""
		for _, bb := range line.Bytes {
			bytesStr += fmt.Sprintf("%02x ", bb)
		}
		fmt.Fprintf(&b, "$%04x  %-12s%-12s%-10s%s\n", line.Addr, bytesStr, label, line.Mnemonic, operand)
	}
	return b.String()
}

// sliceMemory adapts a flat byte slice at a base address to the
// cpu6809.Memory interface, so the disassembler can reuse cpu6809's own
// opcode table without requiring a full addressable 64K image.
type sliceMemory struct {
	data []uint8
	base uint16
}

func (m *sliceMemory) off(addr uint16) int { return int(addr - m.base) }

func (m *sliceMemory) ReadByte(addr uint16) uint8 {
	i := m.off(addr)
	if i < 0 || i >= len(m.data) {
		return 0
	}
	return m.data[i]
}

func (m *sliceMemory) WriteByte(addr uint16, v uint8) {
	i := m.off(addr)
	if i >= 0 && i < len(m.data) {
		m.data[i] = v
	}
}

func (m *sliceMemory) ReadWord(addr uint16) uint16 {
	return uint16(m.ReadByte(addr))<<8 | uint16(m.ReadByte(addr+1))
}

func (m *sliceMemory) WriteWord(addr uint16, v uint16) {
	m.WriteByte(addr, uint8(v>>8))
	m.WriteByte(addr+1, uint8(v))
}
