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

// Stack primitives operate on whichever of S/U the caller names, since
// PSHS/PULS, JSR/BSR/RTS and the interrupt frames use S while PSHU/PULU
// use U. Grounded on
// go/mgnes/mg6502.go's push/pop/pushPC/popPC for the
// decrement-then-write / read-then-increment method shape, generalized
// from the teacher's single hardware stack to the 6809's two independent
// pointers (original_source/MC6809/components/mc6809_stack.py).

func (c *CPU) pushByteOn(sp *uint16, v uint8) {
	*sp--
	c.Memory.WriteByte(*sp, v)
}

func (c *CPU) pullByteFrom(sp *uint16) uint8 {
	v := c.Memory.ReadByte(*sp)
	*sp++
	return v
}

func (c *CPU) pushWordOn(sp *uint16, v uint16) {
	c.pushByteOn(sp, uint8(v))
	c.pushByteOn(sp, uint8(v>>8))
}

func (c *CPU) pullWordFrom(sp *uint16) uint16 {
	hi := c.pullByteFrom(sp)
	lo := c.pullByteFrom(sp)
	return uint16(hi)<<8 | uint16(lo)
}

// pushRegisters implements PSHS/PSHU: push the registers named by
// postbyte's set bits onto *sp, in PC,U-or-S,Y,X,DP,B,A,CC order, grounded
// on mc6809_stack.py's push_system_stack bit-to-register mapping.
// otherRegIsU selects whether bit 0x40 pushes U (for PSHS) or S (for
// PSHU).
func (c *CPU) pushRegisters(sp *uint16, postbyte uint8, otherRegIsU bool) {
	if postbyte&0x80 != 0 {
		c.pushWordOn(sp, c.PC)
	}
	if postbyte&0x40 != 0 {
		if otherRegIsU {
			c.pushWordOn(sp, c.U)
		} else {
			c.pushWordOn(sp, c.S)
		}
	}
	if postbyte&0x20 != 0 {
		c.pushWordOn(sp, c.Y)
	}
	if postbyte&0x10 != 0 {
		c.pushWordOn(sp, c.X)
	}
	if postbyte&0x08 != 0 {
		c.pushByteOn(sp, c.DP)
	}
	if postbyte&0x04 != 0 {
		c.pushByteOn(sp, c.B)
	}
	if postbyte&0x02 != 0 {
		c.pushByteOn(sp, c.A)
	}
	if postbyte&0x01 != 0 {
		c.pushByteOn(sp, c.CC)
	}
}

// pullRegisters implements PULS/PULU: restore in exactly the reverse
// order PSH pushed.
func (c *CPU) pullRegisters(sp *uint16, postbyte uint8, otherRegIsU bool) {
	if postbyte&0x01 != 0 {
		c.CC = c.pullByteFrom(sp)
	}
	if postbyte&0x02 != 0 {
		c.A = c.pullByteFrom(sp)
	}
	if postbyte&0x04 != 0 {
		c.B = c.pullByteFrom(sp)
	}
	if postbyte&0x08 != 0 {
		c.DP = c.pullByteFrom(sp)
	}
	if postbyte&0x10 != 0 {
		c.X = c.pullWordFrom(sp)
	}
	if postbyte&0x20 != 0 {
		c.Y = c.pullWordFrom(sp)
	}
	if postbyte&0x40 != 0 {
		if otherRegIsU {
			c.U = c.pullWordFrom(sp)
		} else {
			c.S = c.pullWordFrom(sp)
		}
	}
	if postbyte&0x80 != 0 {
		c.PC = c.pullWordFrom(sp)
	}
}

func opPSHS(c *CPU, o Operand) error {
	postbyte := c.readOperand8(o)
	c.pushRegisters(&c.S, postbyte, true)
	return nil
}

func opPULS(c *CPU, o Operand) error {
	postbyte := c.readOperand8(o)
	c.pullRegisters(&c.S, postbyte, true)
	return nil
}

func opPSHU(c *CPU, o Operand) error {
	postbyte := c.readOperand8(o)
	c.pushRegisters(&c.U, postbyte, false)
	return nil
}

func opPULU(c *CPU, o Operand) error {
	postbyte := c.readOperand8(o)
	c.pullRegisters(&c.U, postbyte, false)
	return nil
}
