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

package cpu6809

// The opcode table. Grounded on go/mgnes/optable.go's
// newInstructionSet() []*Instruction literal-table constructor; rebuilt
// here as a map keyed by a page-qualified 16-bit opcode (plain opcodes
// 0x00-0xff, $10-prefixed page-1 opcodes at 0x1000+byte, $11-prefixed
// page-2 opcodes at 0x1100+byte) since the MC6809's opcode space is
// sparser and non-contiguous, unlike the 6502's dense single-byte table.
// Opcode/cycle assignments follow
// original_source/MC6809/components/MC6809data/MC6809_op_data.py's op table.

var opcodeTable = newOpcodeTable()

// LookupInstruction exposes the opcode table to other packages (the
// disassembler in particular), so it never has to keep a second copy of
// the opcode map in sync with this one.
func LookupInstruction(key uint16) (*Instruction, bool) {
	instr, ok := opcodeTable[key]
	return instr, ok
}

func add(t map[uint16]*Instruction, key uint16, mnemonic string, mode AddrMode, cycles uint8, fn InstrFunc) {
	t[key] = &Instruction{Mnemonic: mnemonic, Mode: mode, Cycles: cycles, Fn: fn}
}

// accOpSet wires one accumulator-register op across its four standard
// modes (immediate, direct, indexed, extended), the layout every 6809
// accumulator instruction family shares.
func accOpSet(t map[uint16]*Instruction, base uint16, name string, cyc [4]uint8, mkFn func() InstrFunc) {
	add(t, base+0x00, name, AmImmediate, cyc[0], mkFn())
	add(t, base+0x10, name, AmDirect, cyc[1], mkFn())
	add(t, base+0x20, name, AmIndexed, cyc[2], mkFn())
	add(t, base+0x30, name, AmExtended, cyc[3], mkFn())
}

// accOpSetWord is accOpSet for the 16-bit-operand accumulator families
// (SUBD/ADDD/CMPX/CMPY/...), whose immediate operand is a word.
func accOpSetWord(t map[uint16]*Instruction, base uint16, name string, cyc [4]uint8, mkFn func() InstrFunc) {
	add(t, base+0x00, name, AmImmediateWord, cyc[0], mkFn())
	add(t, base+0x10, name, AmDirect, cyc[1], mkFn())
	add(t, base+0x20, name, AmIndexed, cyc[2], mkFn())
	add(t, base+0x30, name, AmExtended, cyc[3], mkFn())
}

// rmwOpSet wires one read-modify-write family across direct/indexed/extended
// memory forms plus its A/B inherent forms, e.g. NEG/NEGA/NEGB.
func rmwOpSet(t map[uint16]*Instruction, directOp uint16, inherentBase uint16, name string, memFn InstrFunc, regFnMaker func(Register) InstrFunc) {
	add(t, directOp, name, AmDirect, 6, memFn)
	add(t, directOp+0x60, name, AmIndexed, 6, memFn)
	add(t, directOp+0x70, name, AmExtended, 7, memFn)
	add(t, inherentBase, name+"A", AmInherent, 2, regFnMaker(RegA))
	add(t, inherentBase+0x10, name+"B", AmInherent, 2, regFnMaker(RegB))
}

func newOpcodeTable() map[uint16]*Instruction {
	t := make(map[uint16]*Instruction, 256)

	// ---- Single-operand read-modify-write families ----
	add(t, 0x00, "NEG", AmDirect, 6, opNEGDirectQuirk)
	add(t, 0x60, "NEG", AmIndexed, 6, opNEG)
	add(t, 0x70, "NEG", AmExtended, 7, opNEG)
	add(t, 0x40, "NEGA", AmInherent, 2, opNEGReg(RegA))
	add(t, 0x50, "NEGB", AmInherent, 2, opNEGReg(RegB))

	rmwOpSet(t, 0x03, 0x43, "COM", opCOM, opCOMReg)
	rmwOpSet(t, 0x04, 0x44, "LSR", shiftOp(lsr), func(r Register) InstrFunc { return shiftOpReg(r, lsr) })
	rmwOpSet(t, 0x06, 0x46, "ROR", shiftOp(ror), func(r Register) InstrFunc { return shiftOpReg(r, ror) })
	rmwOpSet(t, 0x07, 0x47, "ASR", shiftOp(asr), func(r Register) InstrFunc { return shiftOpReg(r, asr) })
	rmwOpSet(t, 0x08, 0x48, "ASL", shiftOp(asl), func(r Register) InstrFunc { return shiftOpReg(r, asl) })
	rmwOpSet(t, 0x09, 0x49, "ROL", shiftOp(rol), func(r Register) InstrFunc { return shiftOpReg(r, rol) })
	rmwOpSet(t, 0x0a, 0x4a, "DEC", opDEC, opDECReg)
	rmwOpSet(t, 0x0c, 0x4c, "INC", opINC, opINCReg)
	rmwOpSet(t, 0x0d, 0x4d, "TST", opTST, opTSTReg)
	rmwOpSet(t, 0x0f, 0x4f, "CLR", opCLR, opCLRReg)

	add(t, 0x0e, "JMP", AmDirect, 3, opJMP)
	add(t, 0x6e, "JMP", AmIndexed, 3, opJMP)
	add(t, 0x7e, "JMP", AmExtended, 4, opJMP)

	// ---- Inherent misc ----
	add(t, 0x12, "NOP", AmInherent, 2, opNOP)
	add(t, 0x13, "SYNC", AmInherent, 2, opNotImplemented("SYNC"))
	add(t, 0x16, "LBRA", AmRelativeWord, 5, opBranch(bAlways))
	add(t, 0x17, "LBSR", AmRelativeWord, 9, opBSR)
	add(t, 0x19, "DAA", AmInherent, 2, opDAA)
	add(t, 0x1a, "ORCC", AmImmediate, 3, opORCC)
	add(t, 0x1c, "ANDCC", AmImmediate, 3, opANDCC)
	add(t, 0x1d, "SEX", AmInherent, 2, opSEX)
	add(t, 0x1e, "EXG", AmImmediate, 8, opEXG)
	add(t, 0x1f, "TFR", AmImmediate, 6, opTFR)

	// ---- Short branches ----
	shortBranches := []struct {
		op   uint8
		name string
		cond func(*CPU) bool
	}{
		{0x20, "BRA", bAlways}, {0x21, "BRN", bNever},
		{0x22, "BHI", bHI}, {0x23, "BLS", bLS},
		{0x24, "BCC", bCC}, {0x25, "BCS", bCS},
		{0x26, "BNE", bNE}, {0x27, "BEQ", bEQ},
		{0x28, "BVC", bVC}, {0x29, "BVS", bVS},
		{0x2a, "BPL", bPL}, {0x2b, "BMI", bMI},
		{0x2c, "BGE", bGE}, {0x2d, "BLT", bLT},
		{0x2e, "BGT", bGT}, {0x2f, "BLE", bLE},
	}
	for _, b := range shortBranches {
		add(t, uint16(b.op), b.name, AmRelative, 3, opBranch(b.cond))
	}

	// ---- Long branches (page 1) ----
	longBranches := []struct {
		op   uint8
		name string
		cond func(*CPU) bool
	}{
		{0x21, "LBRN", bNever},
		{0x22, "LBHI", bHI}, {0x23, "LBLS", bLS},
		{0x24, "LBCC", bCC}, {0x25, "LBCS", bCS},
		{0x26, "LBNE", bNE}, {0x27, "LBEQ", bEQ},
		{0x28, "LBVC", bVC}, {0x29, "LBVS", bVS},
		{0x2a, "LBPL", bPL}, {0x2b, "LBMI", bMI},
		{0x2c, "LBGE", bGE}, {0x2d, "LBLT", bLT},
		{0x2e, "LBGT", bGT}, {0x2f, "LBLE", bLE},
	}
	for _, b := range longBranches {
		add(t, 0x1000|uint16(b.op), b.name, AmRelativeWord, 5, opBranch(b.cond))
	}

	// ---- LEA / stack ----
	add(t, 0x30, "LEAX", AmIndexed, 4, opLEA(RegX, true))
	add(t, 0x31, "LEAY", AmIndexed, 4, opLEA(RegY, true))
	add(t, 0x32, "LEAS", AmIndexed, 4, opLEA(RegS, false))
	add(t, 0x33, "LEAU", AmIndexed, 4, opLEA(RegU, false))
	add(t, 0x34, "PSHS", AmImmediate, 5, opPSHS)
	add(t, 0x35, "PULS", AmImmediate, 5, opPULS)
	add(t, 0x36, "PSHU", AmImmediate, 5, opPSHU)
	add(t, 0x37, "PULU", AmImmediate, 5, opPULU)
	add(t, 0x39, "RTS", AmInherent, 5, opRTS)
	add(t, 0x3a, "ABX", AmInherent, 3, opABX)
	add(t, 0x3b, "RTI", AmInherent, 6, opRTI)
	add(t, 0x3c, "CWAI", AmImmediate, 20, opNotImplemented("CWAI"))
	add(t, 0x3d, "MUL", AmInherent, 11, opMUL)
	add(t, 0x3e, "RESET", AmInherent, 2, opNotImplemented("RESET"))
	add(t, 0x3f, "SWI", AmInherent, 19, opNotImplemented("SWI"))
	add(t, 0x1000|0x3f, "SWI2", AmInherent, 20, opNotImplemented("SWI2"))
	add(t, 0x1100|0x3f, "SWI3", AmInherent, 20, opNotImplemented("SWI3"))
	add(t, 0x8d, "BSR", AmRelative, 7, opBSR)

	// ---- Accumulator A families: $8_/$9_/$A_/$B_ ----
	accOpSet(t, 0x80, "SUBA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opSUB8(RegA) })
	accOpSet(t, 0x81, "CMPA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opCMP8(RegA) })
	accOpSet(t, 0x82, "SBCA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opSBC8(RegA) })
	accOpSetWord(t, 0x83, "SUBD", [4]uint8{4, 6, 6, 7}, func() InstrFunc { return opSUB16 })
	accOpSet(t, 0x84, "ANDA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opAND8(RegA) })
	accOpSet(t, 0x85, "BITA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opBIT8(RegA) })
	accOpSet(t, 0x86, "LDA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opLD8(RegA) })
	accOpSet(t, 0x88, "EORA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opEOR8(RegA) })
	accOpSet(t, 0x89, "ADCA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opADC8(RegA) })
	accOpSet(t, 0x8a, "ORA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opOR8(RegA) })
	accOpSet(t, 0x8b, "ADDA", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opADD8(RegA) })
	accOpSetWord(t, 0x8c, "CMPX", [4]uint8{4, 6, 6, 7}, func() InstrFunc { return opCMP16(RegX) })
	accOpSetWord(t, 0x8e, "LDX", [4]uint8{3, 5, 5, 6}, func() InstrFunc { return opLD16(RegX) })
	add(t, 0x97, "STA", AmDirect, 4, opST8(RegA))
	add(t, 0xa7, "STA", AmIndexed, 4, opST8(RegA))
	add(t, 0xb7, "STA", AmExtended, 5, opST8(RegA))
	add(t, 0x9f, "STX", AmDirect, 5, opST16(RegX))
	add(t, 0xaf, "STX", AmIndexed, 5, opST16(RegX))
	add(t, 0xbf, "STX", AmExtended, 6, opST16(RegX))
	add(t, 0x9d, "JSR", AmDirect, 7, opJSR)
	add(t, 0xad, "JSR", AmIndexed, 7, opJSR)
	add(t, 0xbd, "JSR", AmExtended, 8, opJSR)

	// ---- Accumulator B families: $C_/$D_/$E_/$F_ ----
	accOpSet(t, 0xc0, "SUBB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opSUB8(RegB) })
	accOpSet(t, 0xc1, "CMPB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opCMP8(RegB) })
	accOpSet(t, 0xc2, "SBCB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opSBC8(RegB) })
	accOpSetWord(t, 0xc3, "ADDD", [4]uint8{4, 6, 6, 7}, func() InstrFunc { return opADD16 })
	accOpSet(t, 0xc4, "ANDB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opAND8(RegB) })
	accOpSet(t, 0xc5, "BITB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opBIT8(RegB) })
	accOpSet(t, 0xc6, "LDB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opLD8(RegB) })
	accOpSet(t, 0xc8, "EORB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opEOR8(RegB) })
	accOpSet(t, 0xc9, "ADCB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opADC8(RegB) })
	accOpSet(t, 0xca, "ORB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opOR8(RegB) })
	accOpSet(t, 0xcb, "ADDB", [4]uint8{2, 4, 4, 5}, func() InstrFunc { return opADD8(RegB) })
	accOpSetWord(t, 0xcc, "LDD", [4]uint8{3, 5, 5, 6}, func() InstrFunc { return opLD16(RegD) })
	accOpSetWord(t, 0xce, "LDU", [4]uint8{3, 5, 5, 6}, func() InstrFunc { return opLD16(RegU) })
	add(t, 0xd7, "STB", AmDirect, 4, opST8(RegB))
	add(t, 0xe7, "STB", AmIndexed, 4, opST8(RegB))
	add(t, 0xf7, "STB", AmExtended, 5, opST8(RegB))
	add(t, 0xdd, "STD", AmDirect, 5, opST16(RegD))
	add(t, 0xed, "STD", AmIndexed, 5, opST16(RegD))
	add(t, 0xfd, "STD", AmExtended, 6, opST16(RegD))
	add(t, 0xdf, "STU", AmDirect, 5, opST16(RegU))
	add(t, 0xef, "STU", AmIndexed, 5, opST16(RegU))
	add(t, 0xff, "STU", AmExtended, 6, opST16(RegU))

	// ---- Page 1: CMPD/CMPY/LDY/STY/LDS/STS ----
	accOpSetWord(t, 0x1000|0x83, "CMPD", [4]uint8{5, 7, 7, 8}, func() InstrFunc { return opCMP16(RegD) })
	accOpSetWord(t, 0x1000|0x8c, "CMPY", [4]uint8{5, 7, 7, 8}, func() InstrFunc { return opCMP16(RegY) })
	accOpSetWord(t, 0x1000|0x8e, "LDY", [4]uint8{4, 6, 6, 7}, func() InstrFunc { return opLD16(RegY) })
	add(t, 0x1000|0x9f, "STY", AmDirect, 6, opST16(RegY))
	add(t, 0x1000|0xaf, "STY", AmIndexed, 6, opST16(RegY))
	add(t, 0x1000|0xbf, "STY", AmExtended, 7, opST16(RegY))
	accOpSetWord(t, 0x1000|0xce, "LDS", [4]uint8{4, 6, 6, 7}, func() InstrFunc { return opLD16(RegS) })
	add(t, 0x1000|0xdf, "STS", AmDirect, 6, opST16(RegS))
	add(t, 0x1000|0xef, "STS", AmIndexed, 6, opST16(RegS))
	add(t, 0x1000|0xff, "STS", AmExtended, 7, opST16(RegS))

	// ---- Page 2: CMPU/CMPS ----
	accOpSetWord(t, 0x1100|0x83, "CMPU", [4]uint8{5, 7, 7, 8}, func() InstrFunc { return opCMP16(RegU) })
	accOpSetWord(t, 0x1100|0x8c, "CMPS", [4]uint8{5, 7, 7, 8}, func() InstrFunc { return opCMP16(RegS) })

	return t
}
