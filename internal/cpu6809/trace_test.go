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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceLine_IncludesMnemonicAndRegisters(t *testing.T) {
	mem := NewPlainMemory()
	areas := NewAddressAreas(NamedRegion{Start: 0x8000, End: 0x8fff, Name: "ROM"})
	c := NewCPU(mem, DefaultConfig{Areas: areas})
	mem.WriteWord(VectorReset, 0x8000)
	c.Reset()
	mem.Load(0x8000, []uint8{0x86, 0x2a}) // LDA #$2a
	c.A = 0x00

	line := c.TraceLine()
	assert.True(t, strings.Contains(line, "LDA"))
	assert.True(t, strings.Contains(line, "$8000"))
	assert.True(t, strings.Contains(line, "ROM"))
}

func TestTraceLine_UnknownOpcodeRendersPlaceholder(t *testing.T) {
	mem := NewPlainMemory()
	c := NewCPU(mem, DefaultConfig{})
	mem.WriteWord(VectorReset, 0x8000)
	c.Reset()
	mem.WriteByte(0x8000, 0x01)

	line := c.TraceLine()
	assert.True(t, strings.Contains(line, "???"))
}
