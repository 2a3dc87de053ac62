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

// Condition-code bit positions, MSB to LSB: E F H I N Z V C. Grounded on
// original_source/MC6809/components/mc6809_cc_register.py's bit layout.
const (
	FlagE uint8 = 1 << 7 // Entire flag, set on full interrupt stacking
	FlagF uint8 = 1 << 6 // FIRQ mask
	FlagH uint8 = 1 << 5 // Half-carry (nibble carry out of bit 3)
	FlagI uint8 = 1 << 4 // IRQ mask
	FlagN uint8 = 1 << 3 // Negative
	FlagZ uint8 = 1 << 2 // Zero
	FlagV uint8 = 1 << 1 // Overflow
	FlagC uint8 = 1 << 0 // Carry
)

func (c *CPU) flag(mask uint8) bool { return c.CC&mask != 0 }

func (c *CPU) clearFlag(mask uint8) { c.CC &^= mask }
func (c *CPU) setFlag(mask uint8)   { c.CC |= mask }

func (c *CPU) setFlagIf(mask uint8, cond bool) {
	if cond {
		c.CC |= mask
	} else {
		c.CC &^= mask
	}
}

// CCString renders the condition-code register as the teacher's trace
// format expects: one letter per set flag, a dot for each clear one, in
// E F H I N Z V C order.
func (c *CPU) CCString() string {
	letters := "EFHINZVC"
	masks := []uint8{FlagE, FlagF, FlagH, FlagI, FlagN, FlagZ, FlagV, FlagC}
	out := make([]byte, 8)
	for i, m := range masks {
		if c.CC&m != 0 {
			out[i] = letters[i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// updateNZ8 sets N/Z from an 8-bit result. Clears both first: NZ is always
// fully recomputed by every op that touches it.
func (c *CPU) updateNZ8(r uint8) {
	c.clearFlag(FlagN | FlagZ)
	c.setFlagIf(FlagN, r&0x80 != 0)
	c.setFlagIf(FlagZ, r == 0)
}

func (c *CPU) updateNZ16(r uint16) {
	c.clearFlag(FlagN | FlagZ)
	c.setFlagIf(FlagN, r&0x8000 != 0)
	c.setFlagIf(FlagZ, r == 0)
}

// updateZ16 only touches Z, leaving N untouched. Some 6809 ops (e.g. LEAX/LEAY)
// update Z but not N.
func (c *CPU) updateZ16(r uint16) {
	c.setFlagIf(FlagZ, r == 0)
}

