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

func newTestCPU() *CPU {
	return NewCPU(NewPlainMemory(), DefaultConfig{})
}

func TestGetSet16RoundTrip(t *testing.T) {
	c := newTestCPU()
	regs := []Register{RegD, RegX, RegY, RegU, RegS, RegPC, RegA, RegB, RegCC, RegDP}
	for _, r := range regs {
		c.Set16(r, 0x1234)
		if r.is16Bit() {
			assert.Equal(t, uint16(0x1234), c.Get16(r), "register %s", r)
		} else {
			assert.Equal(t, uint16(0x34), c.Get16(r), "register %s truncates to 8 bits", r)
		}
	}
}

func TestRegD_ConcatenatesAandB(t *testing.T) {
	c := newTestCPU()
	c.A = 0xab
	c.B = 0xcd
	assert.Equal(t, uint16(0xabcd), c.Get16(RegD))

	c.Set16(RegD, 0x1122)
	assert.Equal(t, uint8(0x11), c.A)
	assert.Equal(t, uint8(0x22), c.B)
}

func TestUndefinedRegister_ReadsAllOnesWritesDropped(t *testing.T) {
	c := newTestCPU()
	assert.Equal(t, uint16(0xffff), c.Get16(RegUndefined))

	c.X = 0x4242
	c.Set16(RegUndefined, 0x9999)
	assert.Equal(t, uint16(0x4242), c.X, "write to undefined register must not corrupt other state")
}

func TestRegisterString(t *testing.T) {
	assert.Equal(t, "X", RegX.String())
	assert.Equal(t, "?", RegUndefined.String())
}
