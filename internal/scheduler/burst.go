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

// Package scheduler paces CPU execution into outer/inner bursts, either
// free-running as fast as possible or throttled to approximate real
// hardware speed. Grounded on
// original_source/MC6809/components/mc6809_base.py's burst_run/run and
// mc6809_speedlimited.py's delayed_burst_run, restructured as a small Go
// struct with plain methods rather than a mixin class, following the
// design note in spec.md §9.
package scheduler

import (
	"time"

	"github.com/go6809/mc6809/internal/cpu6809"
)

const (
	minBurstCount = 10
	maxBurstCount = 10000
	maxSleep      = 10 * time.Millisecond
)

// Runner drives a *cpu6809.CPU through bursts of instructions, adapting
// the burst size to hit a target wall-clock period per burst.
type Runner struct {
	CPU *cpu6809.CPU

	burstCount int
}

// NewRunner wraps cpu with an initial burst count of 100, inside the
// allowed [minBurstCount, maxBurstCount] range.
func NewRunner(cpu *cpu6809.CPU) *Runner {
	return &Runner{CPU: cpu, burstCount: 100}
}

// BurstRun executes exactly count instructions (or fewer, if the CPU stops
// or errors first), returning the number of instructions actually run.
// This is the inner loop shared by both free-run and throttled-run.
func (r *Runner) BurstRun(count int) (int, error) {
	steps := 0
	for steps < count && r.CPU.Running() {
		if _, err := r.CPU.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// Run free-runs the CPU, executing instructions as fast as possible and
// adapting the burst count so each outer iteration takes roughly
// targetPeriod wall-clock time — large enough that per-burst overhead
// (timer reads, callback checks) stays a small fraction of total time, but
// small enough that CPU.Quit takes effect promptly. Grounded on
// mc6809_base.py's run().
func (r *Runner) Run(targetPeriod time.Duration) error {
	for r.CPU.Running() {
		start := time.Now()
		if _, err := r.BurstRun(r.burstCount); err != nil {
			return err
		}
		elapsed := time.Since(start)
		r.burstCount = adaptBurstCount(r.burstCount, elapsed, targetPeriod)
	}
	return nil
}

// DelayedBurstRun throttles execution to approximate a target instruction
// rate by sleeping between bursts, capped at maxSleep per iteration so a
// CPU.Quit call is never held up for long. Grounded on
// mc6809_speedlimited.py's delayed_burst_run.
func (r *Runner) DelayedBurstRun(targetPeriod time.Duration) error {
	for r.CPU.Running() {
		start := time.Now()
		if _, err := r.BurstRun(r.burstCount); err != nil {
			return err
		}
		elapsed := time.Since(start)
		r.burstCount = adaptBurstCount(r.burstCount, elapsed, targetPeriod)

		if elapsed < targetPeriod {
			sleep := targetPeriod - elapsed
			if sleep > maxSleep {
				sleep = maxSleep
			}
			time.Sleep(sleep)
		}
	}
	return nil
}

// adaptBurstCount implements the burst-count adaptation formula spec.md
// §4.6 spells out literally, the decision recorded in SPEC_FULL.md's Open
// Question 1: on a zero-duration burst (trigger), double the count;
// otherwise average the current count with a proportional estimate of how
// many instructions would have filled exactly targetPeriod, then clamp to
// [minBurstCount, maxBurstCount].
func adaptBurstCount(current int, elapsed, targetPeriod time.Duration) int {
	if elapsed <= 0 {
		return clampBurstCount(current * 2)
	}
	scaled := int64(current) * int64(targetPeriod) / int64(elapsed)
	next := (int64(current) + scaled) / 2
	return clampBurstCount(int(next))
}

func clampBurstCount(n int) int {
	if n < minBurstCount {
		return minBurstCount
	}
	if n > maxBurstCount {
		return maxBurstCount
	}
	return n
}
