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

func TestIRQ_FullFrameDeliveryAndRTI(t *testing.T) {
	mem := NewPlainMemory()
	mem.WriteWord(VectorIRQ, 0x9000)
	c := NewCPU(mem, DefaultConfig{})

	c.S = 0x2000
	c.PC = 0x1000
	c.A, c.B, c.DP = 0x11, 0x22, 0x33
	c.X, c.Y, c.U = 0x4444, 0x5555, 0x6666
	c.CC = FlagZ
	c.clearFlag(FlagI)

	c.RequestIRQ()
	c.deliverIRQ()

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.flag(FlagI), "IRQ delivery must mask further IRQs")
	assert.True(t, c.flag(FlagE), "a full frame sets E")

	// restore via RTI and confirm every register comes back
	err := opRTI(c, Operand{})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1000), c.PC)
	assert.Equal(t, uint8(0x11), c.A)
	assert.Equal(t, uint8(0x22), c.B)
	assert.Equal(t, uint8(0x33), c.DP)
	assert.Equal(t, uint16(0x4444), c.X)
	assert.Equal(t, uint16(0x5555), c.Y)
	assert.Equal(t, uint16(0x6666), c.U)
	assert.Equal(t, uint16(0x2000), c.S)
}

func TestFIRQ_ShortFrameOnlyPCAndCC(t *testing.T) {
	mem := NewPlainMemory()
	mem.WriteWord(VectorFIRQ, 0xa000)
	c := NewCPU(mem, DefaultConfig{})

	c.S = 0x2000
	c.PC = 0x1000
	c.X, c.Y, c.U = 0x4444, 0x5555, 0x6666
	c.CC = FlagZ

	c.deliverFIRQ()

	assert.Equal(t, uint16(0xa000), c.PC)
	assert.True(t, c.flag(FlagI))
	assert.True(t, c.flag(FlagF))
	assert.False(t, c.flag(FlagE), "a short frame clears E")
	assert.Equal(t, uint16(0x2000-3), c.S, "short frame pushes only PC (2 bytes) and CC (1 byte)")

	xBefore := c.X
	err := opRTI(c, Operand{})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1000), c.PC)
	assert.Equal(t, xBefore, c.X, "RTI on a short frame must not touch X/Y/U/A/B/DP")
}

func TestNotImplementedOpcodes_ReturnTypedError(t *testing.T) {
	c := newTestCPU()
	err := opNotImplemented("SWI")(c, Operand{})
	assert.Error(t, err)
	var nie *NotImplementedError
	assert.ErrorAs(t, err, &nie)
	assert.Equal(t, "SWI", nie.Mnemonic)
}
