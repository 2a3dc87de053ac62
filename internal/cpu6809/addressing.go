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

// AddrMode identifies how an instruction's operand is located. Grounded on
// go/mgnes/instruction.go's per-mode function family (amIMM, amZP0, amIZX,
// ...), generalized to the MC6809's smaller, orthogonal mode set.
type AddrMode uint8

const (
	AmInherent AddrMode = iota
	AmImmediate
	AmImmediateWord
	AmDirect
	AmExtended
	AmIndexed
	AmRelative
	AmRelativeWord
)

// Operand is the result of resolving an instruction's addressing mode: an
// effective address for memory-referencing modes, or an immediate value
// for the two immediate modes. Relative modes populate EA with the already
// computed branch/call target.
type Operand struct {
	EA          uint16
	HasEA       bool
	Imm         uint16
	ExtraCycles int
}

func (c *CPU) fetchByte() uint8 {
	v := c.Memory.ReadByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	v := c.Memory.ReadWord(c.PC)
	c.PC += 2
	return v
}

// resolveOperand advances PC past the operand bytes for mode and returns
// the resulting Operand. Grounded on
// original_source/MC6809/components/mc6809_addressing.py's
// get_ea_*/get_m_* family, restructured so a single function returns an
// effective address and callers decide how wide a read they need.
func (c *CPU) resolveOperand(mode AddrMode) (Operand, error) {
	switch mode {
	case AmInherent:
		return Operand{}, nil
	case AmImmediate:
		return Operand{Imm: uint16(c.fetchByte())}, nil
	case AmImmediateWord:
		return Operand{Imm: c.fetchWord()}, nil
	case AmDirect:
		lo := c.fetchByte()
		ea := uint16(c.DP)<<8 | uint16(lo)
		return Operand{EA: ea, HasEA: true}, nil
	case AmExtended:
		ea := c.fetchWord()
		return Operand{EA: ea, HasEA: true}, nil
	case AmIndexed:
		return c.resolveIndexed()
	case AmRelative:
		off := int8(c.fetchByte())
		ea := uint16(int32(c.PC) + int32(off))
		return Operand{EA: ea, HasEA: true}, nil
	case AmRelativeWord:
		off := int16(c.fetchWord())
		ea := uint16(int32(c.PC) + int32(off))
		return Operand{EA: ea, HasEA: true}, nil
	default:
		return Operand{}, &IllegalPostByteError{Address: c.PC, Postbyte: uint8(mode)}
	}
}

// resolveIndexed implements the indexed-addressing postbyte: a 2-bit
// register select, then either a signed 5-bit offset (bit 7 clear) or one
// of the sixteen addr_mode sub-modes keyed by the low nibble (bit 7 set),
// finished by a single unconditional indirection check on bit 4. Grounded
// on mc6809_addressing.py's get_ea_indexed, which applies that bit-4 check
// once after all branches rather than per sub-mode.
func (c *CPU) resolveIndexed() (Operand, error) {
	postbyte := c.fetchByte()
	rr := (postbyte >> 5) & 0x3
	reg := indexRegisterFromPostbyte(rr)
	regVal := c.Get16(reg)

	extra := 0
	var ea uint16

	if postbyte&0x80 == 0 {
		// 5-bit signed offset, no extra cycle.
		offset := signed5(postbyte & 0x1f)
		ea = uint16(int32(regVal) + int32(offset))
		return Operand{EA: ea, HasEA: true}, nil
	}

	mode := postbyte & 0x0f
	extra++
	offset := 0
	haveOffset := false

	switch mode {
	case 0x0: // ,R+
		ea = regVal
		c.Set16(reg, regVal+1)
	case 0x1: // ,R++
		ea = regVal
		c.Set16(reg, regVal+2)
		extra++
	case 0x2: // ,-R
		regVal--
		c.Set16(reg, regVal)
		ea = regVal
	case 0x3: // ,--R
		regVal -= 2
		c.Set16(reg, regVal)
		ea = regVal
		extra++
	case 0x4: // ,R
		ea = regVal
	case 0x5: // B,R
		offset = int(signed8(c.B))
		haveOffset = true
	case 0x6: // A,R
		offset = int(signed8(c.A))
		haveOffset = true
	case 0x8: // n,R 8-bit offset
		offset = int(signed8(c.fetchByte()))
		haveOffset = true
	case 0x9: // n,R 16-bit offset
		offset = int(signed16(c.fetchWord()))
		haveOffset = true
		extra++
	case 0xa: // illegal
		ea = 0
	case 0xb: // D,R
		offset = int(signed16(c.Get16(RegD)))
		haveOffset = true
		extra++
	case 0xc: // n,PCR 8-bit
		v := signed8(c.fetchByte())
		ea = uint16(int32(c.PC) + int32(v))
	case 0xd: // n,PCR 16-bit
		v := signed16(c.fetchWord())
		ea = uint16(int32(c.PC) + int32(v))
		extra++
	case 0xe: // illegal
		ea = 0xffff
	case 0xf: // [n] extended indirect
		ea = c.fetchWord()
	default:
		return Operand{}, &IllegalPostByteError{Address: c.PC, Postbyte: postbyte}
	}

	if haveOffset {
		ea = uint16(int32(regVal) + int32(offset))
	}

	if postbyte&0x10 != 0 {
		ea = c.Memory.ReadWord(ea)
	}

	return Operand{EA: ea, HasEA: true, ExtraCycles: extra}, nil
}

func signed5(v uint8) int8 {
	v &= 0x1f
	if v&0x10 != 0 {
		return int8(v) - 0x20
	}
	return int8(v)
}

func signed8(v uint8) int8 { return int8(v) }

func signed16(v uint16) int16 { return int16(v) }

func (c *CPU) readOperand8(o Operand) uint8 {
	if !o.HasEA {
		return uint8(o.Imm)
	}
	return c.Memory.ReadByte(o.EA)
}

func (c *CPU) readOperand16(o Operand) uint16 {
	if !o.HasEA {
		return o.Imm
	}
	return c.Memory.ReadWord(o.EA)
}

func (c *CPU) writeOperand8(o Operand, v uint8) {
	c.Memory.WriteByte(o.EA, v)
}

func (c *CPU) writeOperand16(o Operand, v uint16) {
	c.Memory.WriteWord(o.EA, v)
}
