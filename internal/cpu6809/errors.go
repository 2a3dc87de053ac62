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

// UnknownOpcodeError is returned when the dispatcher reads a byte (or
// page-prefixed pair) that has no entry in the opcode table. Grounded on
// original_source/MC6809/components/mc6809_base.py's KeyError-on-opcode-dict
// fatal, reworked as a typed Go error instead of a process exit.
type UnknownOpcodeError struct {
	Address uint16
	Opcode  uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("$%04x: unknown opcode $%04x", e.Address, e.Opcode)
}

// IllegalPostByteError is returned by the indexed-addressing resolver when
// the postbyte's low nibble names no sub-mode (0x7), and by resolveOperand
// for an unknown addressing mode. Sub-modes 0xA and 0xE do not produce it;
// they resolve to fixed effective addresses. Grounded on
// mc6809_addressing.py's RuntimeError("Register ... doesn't exists").
type IllegalPostByteError struct {
	Address  uint16
	Postbyte uint8
}

func (e *IllegalPostByteError) Error() string {
	return fmt.Sprintf("$%04x: illegal postbyte $%02x", e.Address, e.Postbyte)
}

// RunawayPCError fires when NEG's zero-operand quirk (opcode 0x00, ea 0,
// operand 0) repeats consecutively past the guard threshold, the
// "uninitialized memory executed as code" condition spec.md calls out.
type RunawayPCError struct {
	Address uint16
	Hits    int
}

func (e *RunawayPCError) Error() string {
	return fmt.Sprintf("$%04x: runaway PC, %d consecutive NEG-of-zero quirk hits", e.Address, e.Hits)
}

// NotImplementedError marks the intentionally-stubbed opcode families
// (SWI/SWI2/SWI3/SYNC/CWAI/RESET) per spec.md's Non-goals.
type NotImplementedError struct {
	Address  uint16
	Mnemonic string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("$%04x: %s not implemented", e.Address, e.Mnemonic)
}
