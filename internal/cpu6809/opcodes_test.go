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

// rmwOpSet's direct/indexed/extended offsets ($0_/$6_/$7_) are easy to
// confuse with the accumulator families' four-mode layout ($00/$10/$20/$30);
// pin the real opcode values down so a future refactor can't silently
// reintroduce that mix-up.
func TestRMWFamilyOpcodeLayout(t *testing.T) {
	cases := []struct {
		key  uint16
		name string
		mode AddrMode
	}{
		{0x03, "COM", AmDirect},
		{0x63, "COM", AmIndexed},
		{0x73, "COM", AmExtended},
		{0x43, "COMA", AmInherent},
		{0x53, "COMB", AmInherent},
		{0x0a, "DEC", AmDirect},
		{0x6a, "DEC", AmIndexed},
		{0x7a, "DEC", AmExtended},
		{0x0f, "CLR", AmDirect},
		{0x6f, "CLR", AmIndexed},
		{0x7f, "CLR", AmExtended},
	}
	for _, c := range cases {
		instr, ok := LookupInstruction(c.key)
		assert.True(t, ok, "opcode $%04x", c.key)
		assert.Equal(t, c.name, instr.Mnemonic, "opcode $%04x", c.key)
		assert.Equal(t, c.mode, instr.Mode, "opcode $%04x", c.key)
	}
}

func TestAccumulatorFamilyOpcodeLayout(t *testing.T) {
	cases := []struct {
		key  uint16
		name string
		mode AddrMode
	}{
		{0x86, "LDA", AmImmediate},
		{0x96, "LDA", AmDirect},
		{0xa6, "LDA", AmIndexed},
		{0xb6, "LDA", AmExtended},
		{0x8e, "LDX", AmImmediateWord},
		{0x9e, "LDX", AmDirect},
		{0xae, "LDX", AmIndexed},
		{0xbe, "LDX", AmExtended},
	}
	for _, c := range cases {
		instr, ok := LookupInstruction(c.key)
		assert.True(t, ok, "opcode $%04x", c.key)
		assert.Equal(t, c.name, instr.Mnemonic)
		assert.Equal(t, c.mode, instr.Mode)
	}
}

func TestPagePrefixedOpcodeLayout(t *testing.T) {
	cases := []struct {
		key  uint16
		name string
	}{
		{0x1000 | 0x83, "CMPD"},
		{0x1000 | 0x8e, "LDY"},
		{0x1000 | 0xce, "LDS"},
		{0x1100 | 0x83, "CMPU"},
		{0x1100 | 0x8c, "CMPS"},
	}
	for _, c := range cases {
		instr, ok := LookupInstruction(c.key)
		assert.True(t, ok, "opcode $%04x", c.key)
		assert.Equal(t, c.name, instr.Mnemonic)
	}
}

func TestUnassignedOpcode_NotFound(t *testing.T) {
	_, ok := LookupInstruction(0x01)
	assert.False(t, ok)
}
