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

package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go6809/mc6809/internal/cpu6809"
)

func TestAdaptBurstCount_ZeroDurationDoubles(t *testing.T) {
	assert.Equal(t, 200, adaptBurstCount(100, 0, 10*time.Millisecond))
}

func TestAdaptBurstCount_AveragesTowardTarget(t *testing.T) {
	// elapsed == targetPeriod: scaled == current, average == current.
	got := adaptBurstCount(100, 5*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, 100, got)

	// elapsed is half the target: scaled doubles, average rises toward it.
	got = adaptBurstCount(100, 5*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, 150, got)
}

func TestAdaptBurstCount_ClampsToBounds(t *testing.T) {
	assert.Equal(t, minBurstCount, adaptBurstCount(1, time.Second, time.Nanosecond))
	assert.Equal(t, maxBurstCount, adaptBurstCount(maxBurstCount, 0, time.Second))
}

func TestBurstRun_StopsAtCountOrWhenCPUHalts(t *testing.T) {
	mem := cpu6809.NewPlainMemory()
	c := cpu6809.NewCPU(mem, cpu6809.DefaultConfig{})
	mem.WriteWord(cpu6809.VectorReset, 0x8000)
	c.Reset()
	// five NOPs ($12) then an unassigned opcode that halts the CPU.
	mem.Load(0x8000, []uint8{0x12, 0x12, 0x12, 0x12, 0x12, 0x01})

	r := NewRunner(c)
	steps, err := r.BurstRun(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, steps)
	assert.True(t, c.Running())

	steps, err = r.BurstRun(100)
	assert.Error(t, err, "running past the unassigned opcode must report the fault")
	assert.Equal(t, 2, steps, "two more NOPs execute before the bad opcode is hit")
	assert.False(t, c.Running())
}

func TestRun_StopsWhenCPUHalts(t *testing.T) {
	mem := cpu6809.NewPlainMemory()
	c := cpu6809.NewCPU(mem, cpu6809.DefaultConfig{})
	mem.WriteWord(cpu6809.VectorReset, 0x8000)
	c.Reset()
	mem.WriteByte(0x8000, 0x01) // unassigned opcode halts immediately

	r := NewRunner(c)
	err := r.Run(time.Millisecond)
	assert.Error(t, err)
	assert.False(t, c.Running())
}
