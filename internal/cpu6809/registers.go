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

// Register identifies one of the machine's registers for TFR/EXG and for
// the indexed-addressing postbyte register select field. Grounded on
// original_source/MC6809/components/MC6809data/MC6809_op_data.py's
// REG_X/REG_Y/REG_U/REG_S/... constants and
// components/cpu_utils/MC6809_registers.py's UndefinedRegister sentinel.
type Register int

const (
	RegD Register = iota
	RegX
	RegY
	RegU
	RegS
	RegPC
	RegA
	RegB
	RegCC
	RegDP
	RegUndefined
)

func (r Register) String() string {
	switch r {
	case RegD:
		return "D"
	case RegX:
		return "X"
	case RegY:
		return "Y"
	case RegU:
		return "U"
	case RegS:
		return "S"
	case RegPC:
		return "PC"
	case RegA:
		return "A"
	case RegB:
		return "B"
	case RegCC:
		return "CC"
	case RegDP:
		return "DP"
	default:
		return "?"
	}
}

// is16Bit reports whether r is one of D/X/Y/U/S/PC, the six word-wide
// registers TFR/EXG may pair together (a mismatched 8-bit source expands as
// 0xff00|value, see writeTransferValue).
func (r Register) is16Bit() bool {
	switch r {
	case RegD, RegX, RegY, RegU, RegS, RegPC:
		return true
	default:
		return false
	}
}

// indexRegisterFromPostbyte maps the 2-bit RR field of an indexed-addressing
// postbyte to the register it selects. Grounded on
// mc6809_addressing.py's INDEX_POSTBYTE2STR table.
func indexRegisterFromPostbyte(rr byte) Register {
	switch rr & 0x3 {
	case 0:
		return RegX
	case 1:
		return RegY
	case 2:
		return RegU
	default:
		return RegS
	}
}

// Get16 reads a 16-bit register's value, zero-extending 8-bit registers
// and returning 0xffff for the undefined sentinel (reads as all-ones per
// the Python UndefinedRegister).
func (c *CPU) Get16(r Register) uint16 {
	switch r {
	case RegD:
		return uint16(c.A)<<8 | uint16(c.B)
	case RegX:
		return c.X
	case RegY:
		return c.Y
	case RegU:
		return c.U
	case RegS:
		return c.S
	case RegPC:
		return c.PC
	case RegA:
		return uint16(c.A)
	case RegB:
		return uint16(c.B)
	case RegCC:
		return uint16(c.CC)
	case RegDP:
		return uint16(c.DP)
	default:
		return 0xffff
	}
}

// Set16 writes a 16-bit value to r, truncating to 8 bits for byte
// registers and silently dropping writes to the undefined sentinel.
func (c *CPU) Set16(r Register, v uint16) {
	switch r {
	case RegD:
		c.A = uint8(v >> 8)
		c.B = uint8(v)
	case RegX:
		c.X = v
	case RegY:
		c.Y = v
	case RegU:
		c.U = v
	case RegS:
		c.S = v
	case RegPC:
		c.PC = v
	case RegA:
		c.A = uint8(v)
	case RegB:
		c.B = uint8(v)
	case RegCC:
		c.CC = uint8(v)
	case RegDP:
		c.DP = uint8(v)
	case RegUndefined:
		logf("write to undefined register ignored")
	}
}
