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

// Vector table addresses, fixed by the MC6809 hardware. Grounded on
// spec.md §3's vector table and mirrored in original_source's
// mc6809_base.py RESET_VECTOR/IRQ_VECTOR/... constants.
const (
	VectorSWI3    uint16 = 0xfff2
	VectorSWI2    uint16 = 0xfff4
	VectorFIRQ    uint16 = 0xfff6
	VectorIRQ     uint16 = 0xfff8
	VectorSWI     uint16 = 0xfffa
	VectorNMI     uint16 = 0xfffc
	VectorReset   uint16 = 0xfffe
	runawayLimit         = 10
)

// InstrFunc is the semantic body of one instruction: given the resolved
// operand, it reads/writes registers and memory and updates CC. Grounded
// on go/mgnes/instruction.go's op*(cpu *MG6502) uint8 family, generalized
// to take the pre-resolved Operand instead of relying on addressing-mode
// side effects stashed on the CPU struct.
type InstrFunc func(c *CPU, o Operand) error

// Instruction is one opcode-table entry.
type Instruction struct {
	Mnemonic string
	Mode     AddrMode
	Cycles   uint8
	Fn       InstrFunc
}

// CPU is the MC6809 register file plus its execution state. Grounded on
// go/mgnes/mg6502.go's MG6502 struct (plain exported register fields plus
// a Memory collaborator and a running cycle counter).
type CPU struct {
	A, B   uint8
	X, Y   uint16
	U, S   uint16
	PC     uint16
	DP     uint8
	CC     uint8

	Memory Memory
	Cfg    Config

	Cycles uint64

	running     bool
	irqEnabled  bool
	firqPending bool
	irqPending  bool
	runawayHits int

	syncCallbacks []syncCallback
}

type syncCallback struct {
	period uint64
	next   uint64
	fn     func(c *CPU)
}

// NewCPU builds a CPU over mem, configured by cfg, and resets it. Grounded
// on go/mgnes/mg6502.go's NewMG6502 constructor.
func NewCPU(mem Memory, cfg Config) *CPU {
	c := &CPU{Memory: mem, Cfg: cfg}
	c.Reset()
	return c
}

// Reset vectors the CPU through $FFFE, zeroes the direct page register and
// sets E plus both interrupt masks (F and I). Grounded on mc6809_base.py's
// reset(), including the SBC09Cfg branch, which then clears F and I
// again. Logs a
// critical warning if the reset vector reads back as $0000, the
// "uninitialized ROM" condition spec.md §7 calls out.
func (c *CPU) Reset() {
	c.CC = FlagE | FlagF | FlagI
	c.DP = 0
	c.running = true
	c.runawayHits = 0

	ea := c.Memory.ReadWord(VectorReset)
	if ea == 0 {
		logf("reset vector at $%04x is $0000, ROM probably not loaded", VectorReset)
	}
	c.PC = ea

	if c.Cfg != nil && c.Cfg.ResetMode() == ResetModeSBC09 {
		c.DP = 0
		c.CC &^= FlagF | FlagI
	}
}

// Quit stops the CPU's run loop. Grounded on mc6809_base.py's quit(),
// which sets running=False and logs a critical message.
func (c *CPU) Quit() {
	c.running = false
	logf("CPU quit at $%04x", c.PC)
}

// Running reports whether the CPU has not been stopped by Quit or a fatal
// error.
func (c *CPU) Running() bool { return c.running }

// Step executes exactly one instruction, handling any pending interrupt
// delivery first, and returns the number of cycles it consumed. Grounded
// on go/mgnes/mg6502.go's Clock() for the fetch/resolve/execute/charge
// control flow, and mc6809_base.go's get_and_call_next_op for the
// page-prefix handling.
func (c *CPU) Step() (int, error) {
	if c.firqPending {
		c.firqPending = false
		c.deliverFIRQ()
	} else if c.irqPending && !c.flag(FlagI) {
		c.irqPending = false
		c.deliverIRQ()
	}

	startPC := c.PC
	opcode := c.fetchByte()

	key := uint16(opcode)
	cycles := 0
	if opcode == 0x10 || opcode == 0x11 {
		cycles++ // prefix-byte fetch cycle, see SPEC_FULL.md Open Question 2
		opcode2 := c.fetchByte()
		if opcode == 0x10 {
			key = 0x1000 | uint16(opcode2)
		} else {
			key = 0x1100 | uint16(opcode2)
		}
	}

	instr, ok := opcodeTable[key]
	if !ok {
		c.running = false
		return 0, &UnknownOpcodeError{Address: startPC, Opcode: key}
	}

	operand, err := c.resolveOperand(instr.Mode)
	if err != nil {
		c.running = false
		return 0, err
	}

	if err := instr.Fn(c, operand); err != nil {
		c.running = false
		return 0, err
	}

	cycles += int(instr.Cycles) + operand.ExtraCycles
	c.Cycles += uint64(cycles)
	c.fireSyncCallbacks()

	return cycles, nil
}

// RunUntil steps the CPU until PC reaches end or maxSteps instructions
// have executed, whichever comes first, returning the number of steps
// actually taken. Grounded on mc6809_base.py's test_run(start, end,
// max_ops), a benchmark/test harness helper the distilled spec.md omits
// but which this module's own tests rely on.
func (c *CPU) RunUntil(end uint16, maxSteps int) (int, error) {
	steps := 0
	for steps < maxSteps && c.running && c.PC != end {
		if _, err := c.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// AddSyncCallback registers fn to run every period cycles, checked after
// each instruction completes. Grounded on mc6809_base.py's
// add_sync_callback/call_sync_callbacks.
func (c *CPU) AddSyncCallback(period uint64, fn func(c *CPU)) {
	c.syncCallbacks = append(c.syncCallbacks, syncCallback{period: period, next: c.Cycles + period, fn: fn})
}

func (c *CPU) fireSyncCallbacks() {
	for i := range c.syncCallbacks {
		cb := &c.syncCallbacks[i]
		if c.Cycles >= cb.next {
			cb.fn(c)
			cb.next = c.Cycles + cb.period
		}
	}
}

// Snapshot captures the register file for later comparison or restore,
// e.g. the §8 "save state, execute, restore, re-execute gives the same
// result" determinism property.
type Snapshot struct {
	A, B   uint8
	X, Y   uint16
	U, S   uint16
	PC     uint16
	DP     uint8
	CC     uint8
	Cycles uint64
}

func (c *CPU) Snapshot() Snapshot {
	return Snapshot{A: c.A, B: c.B, X: c.X, Y: c.Y, U: c.U, S: c.S, PC: c.PC, DP: c.DP, CC: c.CC, Cycles: c.Cycles}
}

func (c *CPU) Restore(s Snapshot) {
	c.A, c.B = s.A, s.B
	c.X, c.Y = s.X, s.Y
	c.U, c.S = s.U, s.S
	c.PC = s.PC
	c.DP = s.DP
	c.CC = s.CC
	c.Cycles = s.Cycles
}
