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

// ResetMode selects which reset-vector behaviour a Config implements.
// Grounded on original_source/MC6809/core/configs.py's class-name dispatch
// (cfg.__class__.__name__ == "SBC09Cfg"), re-expressed as an interface
// method rather than a string compare.
type ResetMode int

const (
	// ResetModeDefault vectors through $FFFE on reset, the standard
	// MC6809 reset vector.
	ResetModeDefault ResetMode = iota
	// ResetModeSBC09 additionally clears both interrupt masks (F and I)
	// on reset, matching the sbc09 monitor ROM's startup expectations.
	ResetModeSBC09
)

// Config collects the small set of CPU-external knobs spec.md §6 calls
// out: reset behaviour and the trace-line memory-info formatter.
type Config interface {
	ResetMode() ResetMode
	// MemInfo renders a short human label for addr, used as the last
	// column of a trace line. Grounded on
	// original_source/MC6809/core/memory_info.py's
	// BaseMemoryInfo.get_shortest.
	MemInfo(addr uint16) string
}

// DefaultConfig is the standard MC6809 reset/trace behaviour.
type DefaultConfig struct {
	Areas AddressAreas
}

func (DefaultConfig) ResetMode() ResetMode { return ResetModeDefault }

func (c DefaultConfig) MemInfo(addr uint16) string {
	if name := c.Areas.Lookup(addr); name != "" {
		return name
	}
	return dummyMemInfo
}

// SBC09Config matches the sbc09 monitor ROM's reset expectations.
type SBC09Config struct {
	Areas AddressAreas
}

func (SBC09Config) ResetMode() ResetMode { return ResetModeSBC09 }

func (c SBC09Config) MemInfo(addr uint16) string {
	if name := c.Areas.Lookup(addr); name != "" {
		return name
	}
	return dummyMemInfo
}

const dummyMemInfo = ">>mem info not active<<"

func formatAddr(addr uint16) string {
	return fmt.Sprintf("$%04x", addr)
}
