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

func TestCCString_AllLetters(t *testing.T) {
	c := newTestCPU()
	c.CC = 0xff
	assert.Equal(t, "EFHINZVC", c.CCString())

	c.CC = 0x00
	assert.Equal(t, "........", c.CCString())

	c.CC = FlagZ | FlagC
	assert.Equal(t, ".....Z.C", c.CCString())
}

func TestCCString_SingleFlags(t *testing.T) {
	c := newTestCPU()
	c.CC = FlagN
	assert.Equal(t, "....N...", c.CCString())

	c.CC = FlagC
	assert.Equal(t, ".......C", c.CCString())
}

func TestFlagSetClearRoundTrip(t *testing.T) {
	c := newTestCPU()
	for _, mask := range []uint8{FlagE, FlagF, FlagH, FlagI, FlagN, FlagZ, FlagV, FlagC} {
		c.CC = 0
		c.setFlag(mask)
		assert.True(t, c.flag(mask))
		c.clearFlag(mask)
		assert.False(t, c.flag(mask))
	}
}

func TestUpdateNZ8(t *testing.T) {
	c := newTestCPU()
	c.CC = FlagN | FlagZ
	c.updateNZ8(0x01)
	assert.False(t, c.flag(FlagN))
	assert.False(t, c.flag(FlagZ))

	c.updateNZ8(0x00)
	assert.False(t, c.flag(FlagN))
	assert.True(t, c.flag(FlagZ))

	c.updateNZ8(0x80)
	assert.True(t, c.flag(FlagN))
	assert.False(t, c.flag(FlagZ))
}

// for every one of the 256 possible CC byte values the complementary
// predicate pairs (BHI/BLS, BCC/BCS, BNE/BEQ, BVC/BVS, BPL/BMI, BGE/BLT)
// must disagree, BGT must imply BGE, and BLE must imply BLT or Z.
func TestBranchPredicates_CoverAllCCValues(t *testing.T) {
	c := newTestCPU()
	pairs := []struct{ a, b func(*CPU) bool }{
		{bHI, bLS}, {bCC, bCS}, {bNE, bEQ}, {bVC, bVS}, {bPL, bMI},
	}
	for cc := 0; cc < 256; cc++ {
		c.CC = uint8(cc)
		for _, p := range pairs {
			assert.NotEqual(t, p.a(c), p.b(c))
		}
		assert.NotEqual(t, bGE(c), bLT(c))
		if bGT(c) {
			assert.True(t, bGE(c))
		}
		if bLE(c) {
			assert.True(t, bLT(c) || c.flag(FlagZ))
		}
	}
}
