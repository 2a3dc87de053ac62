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

// Branches and subroutine control flow. Grounded on
// go/mgnes/instruction.go's opBCC/opBCS/opBEQ family for the
// "predicate on CC, then jump" shape, generalized to the 6809's full set
// of signed and unsigned relational branches (original_source/MC6809/components/mc6809_ops_branches.py).

func opBranch(cond func(c *CPU) bool) InstrFunc {
	return func(c *CPU, o Operand) error {
		if cond(c) {
			c.PC = o.EA
		}
		return nil
	}
}

func bAlways(c *CPU) bool { return true }
func bNever(c *CPU) bool  { return false }
func bHI(c *CPU) bool     { return !c.flag(FlagC) && !c.flag(FlagZ) }
func bLS(c *CPU) bool     { return c.flag(FlagC) || c.flag(FlagZ) }
func bCC(c *CPU) bool     { return !c.flag(FlagC) }
func bCS(c *CPU) bool     { return c.flag(FlagC) }
func bNE(c *CPU) bool     { return !c.flag(FlagZ) }
func bEQ(c *CPU) bool     { return c.flag(FlagZ) }
func bVC(c *CPU) bool     { return !c.flag(FlagV) }
func bVS(c *CPU) bool     { return c.flag(FlagV) }
func bPL(c *CPU) bool     { return !c.flag(FlagN) }
func bMI(c *CPU) bool     { return c.flag(FlagN) }
func bGE(c *CPU) bool     { return c.flag(FlagN) == c.flag(FlagV) }
func bLT(c *CPU) bool     { return c.flag(FlagN) != c.flag(FlagV) }
func bGT(c *CPU) bool     { return !c.flag(FlagZ) && c.flag(FlagN) == c.flag(FlagV) }
func bLE(c *CPU) bool     { return c.flag(FlagZ) || c.flag(FlagN) != c.flag(FlagV) }

func opJMP(c *CPU, o Operand) error {
	c.PC = o.EA
	return nil
}

func opJSR(c *CPU, o Operand) error {
	c.pushWordOn(&c.S, c.PC)
	c.PC = o.EA
	return nil
}

func opBSR(c *CPU, o Operand) error {
	c.pushWordOn(&c.S, c.PC)
	c.PC = o.EA
	return nil
}

func opRTS(c *CPU, o Operand) error {
	c.PC = c.pullWordFrom(&c.S)
	return nil
}

func opNOP(c *CPU, o Operand) error { return nil }
