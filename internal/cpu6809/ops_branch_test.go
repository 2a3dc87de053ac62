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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpBranch_TakenAndNotTaken(t *testing.T) {
	c := newTestCPU()
	c.PC = 0x1000

	err := opBranch(bAlways)(c, Operand{EA: 0x2000, HasEA: true})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x2000), c.PC)

	c.PC = 0x1000
	err = opBranch(bNever)(c, Operand{EA: 0x2000, HasEA: true})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1000), c.PC, "a not-taken branch must not touch PC")
}

func TestRelativeAddressing_SignedOffsetBothDirections(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})

	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x02) // +2
	o, err := c.resolveOperand(AmRelative)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8003), o.EA, "target = PC-after-operand (0x8001) + 2")

	c.PC = 0x8000
	mem.WriteByte(0x8000, 0xfe) // -2
	o, err = c.resolveOperand(AmRelative)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x7fff), o.EA)
}

func TestBSR_JSR_PushReturnAddress(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.S = 0x1000
	c.PC = 0x8010

	err := opBSR(c, Operand{EA: 0x9000, HasEA: true})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, uint16(0x1000-2), c.S)
	assert.Equal(t, uint16(0x8010), mem.ReadWord(0x1000-2))
}
