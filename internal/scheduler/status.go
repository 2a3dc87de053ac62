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
	"time"

	"github.com/go6809/mc6809/internal/cpu6809"
)

// StatusSnapshot is one periodic status-reporter sample.
type StatusSnapshot struct {
	Cycles uint64
	PC     uint16
}

// StatusReporter periodically pushes a StatusSnapshot to a bounded channel
// without ever blocking the CPU goroutine: a full channel means the
// consumer is behind, and the sample is silently dropped rather than
// backing up the run loop. Grounded on spec.md §5's optional background
// status reporter and mc6809_base.py's general pattern of non-blocking
// auxiliary bookkeeping around the main instruction loop.
type StatusReporter struct {
	CPU      *cpu6809.CPU
	Interval time.Duration

	out  chan StatusSnapshot
	stop chan struct{}
}

// NewStatusReporter builds a reporter with a bounded channel of the given
// capacity; a capacity of 0 still works; a slow consumer just misses
// nearly every sample.
func NewStatusReporter(cpu *cpu6809.CPU, interval time.Duration, capacity int) *StatusReporter {
	return &StatusReporter{
		CPU:      cpu,
		Interval: interval,
		out:      make(chan StatusSnapshot, capacity),
		stop:     make(chan struct{}),
	}
}

// Snapshots returns the channel samples are published on.
func (s *StatusReporter) Snapshots() <-chan StatusSnapshot { return s.out }

// Start runs the reporter loop in its own goroutine until Stop is called.
func (s *StatusReporter) Start() {
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				snap := StatusSnapshot{Cycles: s.CPU.Cycles, PC: s.CPU.PC}
				select {
				case s.out <- snap:
				default:
					// consumer is behind; drop rather than block
				}
			}
		}
	}()
}

// Stop ends the reporter goroutine.
func (s *StatusReporter) Stop() {
	close(s.stop)
}
