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

// Bitwise logic. Grounded on go/mgnes/instruction.go's opAND for the
// "read, combine, updateFlags, maybe store" shape, generalized to the
// 8-bit-accumulator pairs the 6809 offers (A/B) plus the two CC-register
// variants (ANDCC/ORCC) the 6502 teacher has no analogue for.

func opAND8(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		result := uint8(c.Get16(reg)) & c.readOperand8(o)
		c.updateNZ8(result)
		c.clearFlag(FlagV)
		c.Set16(reg, uint16(result))
		return nil
	}
}

func opOR8(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		result := uint8(c.Get16(reg)) | c.readOperand8(o)
		c.updateNZ8(result)
		c.clearFlag(FlagV)
		c.Set16(reg, uint16(result))
		return nil
	}
}

func opEOR8(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		result := uint8(c.Get16(reg)) ^ c.readOperand8(o)
		c.updateNZ8(result)
		c.clearFlag(FlagV)
		c.Set16(reg, uint16(result))
		return nil
	}
}

// opBIT8 is AND that discards the result, used to probe bits without
// disturbing the accumulator.
func opBIT8(reg Register) InstrFunc {
	return func(c *CPU, o Operand) error {
		result := uint8(c.Get16(reg)) & c.readOperand8(o)
		c.updateNZ8(result)
		c.clearFlag(FlagV)
		return nil
	}
}

// opANDCC ANDs the immediate operand into CC directly, e.g. to clear I/F
// selectively.
func opANDCC(c *CPU, o Operand) error {
	c.CC &= c.readOperand8(o)
	return nil
}

func opORCC(c *CPU, o Operand) error {
	c.CC |= c.readOperand8(o)
	return nil
}
