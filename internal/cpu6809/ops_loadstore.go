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

// Loads, stores, effective-address loads, and the register-to-register
// transfer/exchange pair. Grounded on go/mgnes/instruction.go's opLDA
// family for the load/store shape; TFR/EXG's postbyte nibble-to-register
// decoding is grounded on original_source/MC6809/components/MC6809data/MC6809_op_data.py's
// register code table (REGISTER_STR2INT and friends).

func opLD8(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		v := c.readOperand8(o)
		c.Set16(reg, uint16(v))
		c.updateNZ8(v)
		c.clearFlag(FlagV)
		return nil
	}
}

func opST8(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		v := uint8(c.Get16(reg))
		c.writeOperand8(o, v)
		c.updateNZ8(v)
		c.clearFlag(FlagV)
		return nil
	}
}

func opLD16(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		v := c.readOperand16(o)
		c.Set16(reg, v)
		c.updateNZ16(v)
		c.clearFlag(FlagV)
		return nil
	}
}

func opST16(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		v := c.Get16(reg)
		c.writeOperand16(o, v)
		c.updateNZ16(v)
		c.clearFlag(FlagV)
		return nil
	}
}

// opLEA loads the resolved effective address into reg. updatesZ selects
// whether this variant (LEAX/LEAY) touches Z, or leaves flags alone
// entirely (LEAS/LEAU).
func opLEA(reg Register, updatesZ bool) InstrFunc {
	return func(c *CPU, o Operand) error {
		c.Set16(reg, o.EA)
		if updatesZ {
			c.updateZ16(o.EA)
		}
		return nil
	}
}

// transferRegisterTable maps a TFR/EXG postbyte nibble to the register it
// names. Grounded on MC6809_op_data.py's register code constants
// (0=D,1=X,2=Y,3=U,4=S,5=PC,8=A,9=B,10=CC,11=DP). Nibbles with no assigned
// register (6,7,12-15) resolve to RegUndefined rather than failing: TFR/EXG
// never reject a postbyte, they just read/write the undefined sentinel.
var transferRegisterTable = map[uint8]Register{
	0x0: RegD,
	0x1: RegX,
	0x2: RegY,
	0x3: RegU,
	0x4: RegS,
	0x5: RegPC,
	0x8: RegA,
	0x9: RegB,
	0xa: RegCC,
	0xb: RegDP,
}

func registerFromNibble(n uint8) Register {
	if r, ok := transferRegisterTable[n&0xf]; ok {
		return r
	}
	return RegUndefined
}

// transferValue carries a TFR/EXG source reading together with the width it
// was read at, so the destination write can apply the 6809's mismatched-width
// conversion rather than Get16/Set16's plain zero-extend/truncate.
type transferValue struct {
	v    uint16
	wide bool
}

// readTransferValue grounded on
// original_source/MC6809/components/cpu_utils/MC6809_registers.py's
// ValueStorage8Bit/ValueStorage16Bit split: an 8-bit register's raw value is
// read standalone, not zero-extended, so the write side can apply
// convert_differend_width's 0xff00 mask instead of losing the distinction.
func readTransferValue(c *CPU, r Register) transferValue {
	if r == RegUndefined {
		return transferValue{v: 0xffff, wide: true}
	}
	if r.is16Bit() {
		return transferValue{v: c.Get16(r), wide: true}
	}
	return transferValue{v: c.Get16(r) & 0xff, wide: false}
}

// writeTransferValue applies convert_differend_width (MC6809_registers.py:115):
// an 8-bit value moving into a 16-bit register is expanded as 0xff00|value,
// not zero-extended; a 16-bit value moving into an 8-bit register is masked
// to its low byte.
func writeTransferValue(c *CPU, r Register, tv transferValue) {
	if r == RegUndefined {
		logf("write to undefined register ignored")
		return
	}
	if r.is16Bit() {
		if tv.wide {
			c.Set16(r, tv.v)
		} else {
			c.Set16(r, 0xff00|tv.v)
		}
		return
	}
	c.Set16(r, tv.v&0xff)
}

func opTFR(c *CPU, o Operand) error {
	postbyte := c.readOperand8(o)
	src := registerFromNibble(postbyte >> 4)
	dst := registerFromNibble(postbyte & 0xf)
	writeTransferValue(c, dst, readTransferValue(c, src))
	return nil
}

func opEXG(c *CPU, o Operand) error {
	postbyte := c.readOperand8(o)
	r1 := registerFromNibble(postbyte >> 4)
	r2 := registerFromNibble(postbyte & 0xf)
	v1, v2 := readTransferValue(c, r1), readTransferValue(c, r2)
	writeTransferValue(c, r1, v2)
	writeTransferValue(c, r2, v1)
	return nil
}
