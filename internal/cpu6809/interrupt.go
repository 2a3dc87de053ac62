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

// Interrupt delivery. Grounded on
// original_source/MC6809/components/mc6809_interrupt.py's irq/push_irq_registers/
// push_firq_registers/instruction_RTI, restructured as methods on CPU
// instead of a mixin.

// RequestIRQ latches a pending ordinary interrupt; it is delivered at the
// start of the next Step if the I mask is clear.
func (c *CPU) RequestIRQ() { c.irqPending = true }

// RequestFIRQ latches a pending fast interrupt; FIRQ ignores the I mask
// and is always delivered at the start of the next Step.
func (c *CPU) RequestFIRQ() { c.firqPending = true }

// deliverIRQ pushes the full machine state (PC,U,Y,X,DP,B,A,CC) and
// vectors through $FFF8, setting the I mask so nested IRQs wait.
func (c *CPU) deliverIRQ() {
	c.pushIRQFrame()
	c.setFlag(FlagI)
	c.PC = c.Memory.ReadWord(VectorIRQ)
}

// deliverFIRQ pushes the short frame (PC,CC) and vectors through $FFF6,
// setting both interrupt masks.
func (c *CPU) deliverFIRQ() {
	c.pushFIRQFrame()
	c.setFlag(FlagI | FlagF)
	c.PC = c.Memory.ReadWord(VectorFIRQ)
}

// pushIRQFrame pushes PC, U, Y, X, DP, B, A, CC onto the system stack and
// sets E, marking a full frame for RTI to restore.
func (c *CPU) pushIRQFrame() {
	c.setFlag(FlagE)
	c.pushWordOn(&c.S, c.PC)
	c.pushWordOn(&c.S, c.U)
	c.pushWordOn(&c.S, c.Y)
	c.pushWordOn(&c.S, c.X)
	c.pushByteOn(&c.S, c.DP)
	c.pushByteOn(&c.S, c.B)
	c.pushByteOn(&c.S, c.A)
	c.pushByteOn(&c.S, c.CC)
}

// pushFIRQFrame pushes PC and CC only, clearing E to mark a short frame.
func (c *CPU) pushFIRQFrame() {
	c.clearFlag(FlagE)
	c.pushWordOn(&c.S, c.PC)
	c.pushByteOn(&c.S, c.CC)
}

// opRTI restores CC, then — if the recovered E bit is set — the rest of
// the full interrupt frame, before finally restoring PC. Grounded on
// instruction_RTI's cc-then-conditional-rest-then-PC order.
func opRTI(c *CPU, o Operand) error {
	c.CC = c.pullByteFrom(&c.S)
	if c.flag(FlagE) {
		c.A = c.pullByteFrom(&c.S)
		c.B = c.pullByteFrom(&c.S)
		c.DP = c.pullByteFrom(&c.S)
		c.X = c.pullWordFrom(&c.S)
		c.Y = c.pullWordFrom(&c.S)
		c.U = c.pullWordFrom(&c.S)
	}
	c.PC = c.pullWordFrom(&c.S)
	return nil
}

// opNotImplemented backs SWI/SWI2/SWI3/SYNC/CWAI/RESET, all Non-goals per
// spec.md: real 6809 software treats these as distinct vectoring or
// handshake instructions, but this core surfaces them as a typed fatal
// error instead of silently no-opping.
func opNotImplemented(mnemonic string) InstrFunc {
	return func(c *CPU, o Operand) error {
		return &NotImplementedError{Address: c.PC, Mnemonic: mnemonic}
	}
}
