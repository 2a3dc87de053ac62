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

// Memory is the CPU's sole collaborator for reading and writing the
// address space; an embedding host supplies its own implementation to
// wire up ROM/RAM/IO decoding. Grounded on go/mgnes/memory.go's Memory
// interface, generalized from little-endian NES word access to the 6809's
// big-endian word layout.
type Memory interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, v uint8)
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, v uint16)
}

// PlainMemory is a flat 64K array-backed Memory, useful for tests and for
// standalone tools that load a raw binary image. Grounded on
// go/mgnes/memory.go's PlainMemory, but zero-filled on reset rather than
// 0xFF-filled: the 6809 reference emulator this module is modeled on treats
// fresh RAM as zeroed, and the NEG-of-zero runaway-PC quirk (spec.md §4.4)
// is specifically about code accidentally landing on a zero byte.
type PlainMemory struct {
	data [65536]uint8
}

// NewPlainMemory returns a zero-filled 64K memory.
func NewPlainMemory() *PlainMemory {
	return &PlainMemory{}
}

func (m *PlainMemory) ReadByte(addr uint16) uint8 {
	return m.data[addr]
}

func (m *PlainMemory) WriteByte(addr uint16, v uint8) {
	m.data[addr] = v
}

func (m *PlainMemory) ReadWord(addr uint16) uint16 {
	hi := uint16(m.data[addr])
	lo := uint16(m.data[addr+1])
	return hi<<8 | lo
}

func (m *PlainMemory) WriteWord(addr uint16, v uint16) {
	m.data[addr] = uint8(v >> 8)
	m.data[addr+1] = uint8(v)
}

// Load copies data into memory starting at addr, the bulk-restore
// operation spec.md §6 calls for when seeding a ROM image or test fixture.
func (m *PlainMemory) Load(addr uint16, data []uint8) {
	copy(m.data[int(addr):], data)
}

// NamedRegion labels an address range for trace/viewer output. Grounded on
// original_source/MC6809/core/memory_info.py's AddressAreas dict-of-ranges,
// a feature the distilled spec.md leaves unspecified but the original
// implementation uses throughout its trace output.
type NamedRegion struct {
	Start, End uint16 // inclusive
	Name       string
}

// AddressAreas is a flat list of NamedRegion, looked up linearly since the
// expected size (a handful of ROM/RAM/IO windows) never justifies anything
// fancier.
type AddressAreas []NamedRegion

// NewAddressAreas builds an AddressAreas from a flat list of regions.
func NewAddressAreas(regions ...NamedRegion) AddressAreas {
	return AddressAreas(regions)
}

// Lookup returns the name of the region containing addr, or "" if none
// matches.
func (a AddressAreas) Lookup(addr uint16) string {
	for _, r := range a {
		if addr >= r.Start && addr <= r.End {
			return r.Name
		}
	}
	return ""
}
