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

import "fmt"

// TraceLine renders one pre-execution snapshot as
// "$aaaa| bb        MNEMONIC   A=xx B=xx X=xxxx Y=xxxx U=xxxx S=xxxx DP=xx | CC info | mem info".
// Only the opcode byte (both bytes for a $10/$11-prefixed opcode) is
// shown; operand bytes and operand text are not rendered. Grounded on
// go/mgnes/mg6502.go's Clock() trace-string builder, which assembles a
// similar address/bytes/mnemonic/register line with fmt.Sprintf calls.
func (c *CPU) TraceLine() string {
	pc := c.PC
	opcode := c.Memory.ReadByte(pc)
	width := 1
	mnemonic := "???"
	if opcode == 0x10 || opcode == 0x11 {
		width = 2
	}
	key := uint16(opcode)
	if width == 2 {
		opcode2 := c.Memory.ReadByte(pc + 1)
		if opcode == 0x10 {
			key = 0x1000 | uint16(opcode2)
		} else {
			key = 0x1100 | uint16(opcode2)
		}
	}
	if instr, ok := opcodeTable[key]; ok {
		mnemonic = instr.Mnemonic
	}

	bytesStr := ""
	for i := 0; i < width; i++ {
		bytesStr += fmt.Sprintf("%02x ", c.Memory.ReadByte(pc+uint16(i)))
	}

	memInfo := ""
	if c.Cfg != nil {
		memInfo = c.Cfg.MemInfo(pc)
	}

	return fmt.Sprintf(
		"%s| %-10s%-10s A=%02x B=%02x X=%04x Y=%04x U=%04x S=%04x DP=%02x | %s | %s",
		formatAddr(pc), bytesStr, mnemonic,
		c.A, c.B, c.X, c.Y, c.U, c.S, c.DP,
		c.CCString(), memInfo,
	)
}
