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

func TestIndexed_5BitOffset(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.X = 0x4000
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x05) // RR=00 (X), bit7 clear, offset=5

	o, err := c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x4005), o.EA)
	assert.Equal(t, uint16(0x4000), c.X, "5-bit offset mode never mutates the register")
}

func TestIndexed_PostIncrementAndPostIncrement2(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.X = 0x4000
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x00) // ,X+ (RR=00 selects X)

	o, err := c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x4000), o.EA)
	assert.Equal(t, uint16(0x4001), c.X)

	c.X = 0x4000
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x01) // ,X++
	o, err = c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x4000), o.EA)
	assert.Equal(t, uint16(0x4002), c.X)
}

func TestIndexed_PreDecrementAndPreDecrement2(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.Y = 0x4000
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x20|0x02) // ,-Y  (RR=01 -> Y, bit 5 set)

	o, err := c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x3fff), o.EA)
	assert.Equal(t, uint16(0x3fff), c.Y)

	c.Y = 0x4000
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x20|0x03) // ,--Y
	o, err = c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x3ffe), o.EA)
	assert.Equal(t, uint16(0x3ffe), c.Y)
}

func TestIndexed_AccumulatorOffsets(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.U = 0x5000
	c.B = 0xfe // -2
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x40|0x05) // B,U (RR=10 -> U, bit 6 set)

	o, err := c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x4ffe), o.EA)
}

func TestIndexed_ExtendedIndirect(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x9f) // [n] extended indirect, postbyte 1001_1111
	mem.WriteWord(0x8001, 0x6000)
	mem.WriteWord(0x6000, 0x7777)

	o, err := c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x7777), o.EA, "extended indirect dereferences through the pointer word")
}

func TestIndexed_IndirectBitAppliesAfterOffsetComputation(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.X = 0x4000
	c.PC = 0x8000
	// 8-bit offset mode (0x08) with the indirect bit (0x10) set: [n,X]
	mem.WriteByte(0x8000, 0x80|0x10|0x08)
	mem.WriteByte(0x8001, 0x10) // offset +16 -> pointer at 0x4010
	mem.WriteWord(0x4010, 0x9abc)

	o, err := c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x9abc), o.EA)
}

func TestIndexed_UnassignedSubModeIsIllegal(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x07) // nibble 0x7 has no sub-mode defined

	_, err := c.resolveIndexed()
	assert.Error(t, err)
	var ipb *IllegalPostByteError
	assert.ErrorAs(t, err, &ipb)
}

func TestResolveOperand_UnknownModeIsIllegal(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.PC = 0x8000

	_, err := c.resolveOperand(AddrMode(0xff))
	assert.Error(t, err)
}

func TestIndexed_PCRelative8And16(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x0c) // n,PCR 8-bit
	mem.WriteByte(0x8001, 0x10)      // +16

	o, err := c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8002+0x10), o.EA)

	c.PC = 0x8000
	mem.WriteByte(0x8000, 0x80|0x0d) // n,PCR 16-bit
	mem.WriteWord(0x8001, 0x0100)    // +256
	o, err = c.resolveIndexed()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8003+0x0100), o.EA)
}
