// This file is part of ZGopher.
//
// ZGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZGopher.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zgopher/zgopher/curated"
)

// AddressError is the pattern used for illegal memory accesses. It is the
// panic value of any access outside of the memory area.
const AddressError = "memory: address out of range (%#06x)"

// Accessor is implemented by Memory and Section.
type Accessor interface {
	Size() int

	Uint8(address int) uint8
	Int8(address int) int8
	Uint16(address int) uint16
	Int16(address int) int16
	Uint32(address int) uint32
	Uint48(address int) uint64

	SetUint8(address int, v uint8)
	SetInt8(address int, v int8)
	SetUint16(address int, v uint16)
	SetInt16(address int, v int16)
	SetUint32(address int, v uint32)
	SetUint48(address int, v uint64)

	// copies of memory areas. the returned slice does not alias memory
	ReadBytes(address int, n int) []uint8
	WriteBytes(address int, b []uint8)
	CopyArea(src int, dst int, n int)
}

// Memory is the byte store for a story image.
type Memory struct {
	data []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The data is used directly and is not copied.
func NewMemory(data []uint8) *Memory {
	return &Memory{data: data}
}

// Snapshot creates a copy of Memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := &Memory{data: make([]uint8, len(mem.data))}
	copy(n.data, mem.data)
	return n
}

// Plumb the contents of another Memory into this one. The two memories must
// be the same size.
func (mem *Memory) Plumb(from *Memory) {
	copy(mem.data, from.data)
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	for i := 0; i < len(mem.data) && i < 0x40; i++ {
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x ", i))
		}
		s.WriteString(fmt.Sprintf(" %02x", mem.data[i]))
	}
	return s.String()
}

// Size returns the number of bytes in memory.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// check panics if the width bytes starting at address are not all in range.
func (mem *Memory) check(address int, width int) {
	if address < 0 || address+width > len(mem.data) {
		panic(curated.Errorf(AddressError, address))
	}
}

// Uint8 reads an unsigned byte.
func (mem *Memory) Uint8(address int) uint8 {
	mem.check(address, 1)
	return mem.data[address]
}

// Int8 reads a signed byte.
func (mem *Memory) Int8(address int) int8 {
	return int8(mem.Uint8(address))
}

// Uint16 reads an unsigned 16bit word.
func (mem *Memory) Uint16(address int) uint16 {
	mem.check(address, 2)
	return binary.BigEndian.Uint16(mem.data[address:])
}

// Int16 reads a signed 16bit word.
func (mem *Memory) Int16(address int) int16 {
	return int16(mem.Uint16(address))
}

// Uint32 reads an unsigned 32bit value.
func (mem *Memory) Uint32(address int) uint32 {
	mem.check(address, 4)
	return binary.BigEndian.Uint32(mem.data[address:])
}

// Uint48 reads an unsigned 48bit value. The value is returned in the least
// significant six bytes of a uint64.
func (mem *Memory) Uint48(address int) uint64 {
	mem.check(address, 6)
	return uint64(binary.BigEndian.Uint16(mem.data[address:]))<<32 |
		uint64(binary.BigEndian.Uint32(mem.data[address+2:]))
}

// SetUint8 writes an unsigned byte.
func (mem *Memory) SetUint8(address int, v uint8) {
	mem.check(address, 1)
	mem.data[address] = v
}

// SetInt8 writes a signed byte.
func (mem *Memory) SetInt8(address int, v int8) {
	mem.SetUint8(address, uint8(v))
}

// SetUint16 writes an unsigned 16bit word.
func (mem *Memory) SetUint16(address int, v uint16) {
	mem.check(address, 2)
	binary.BigEndian.PutUint16(mem.data[address:], v)
}

// SetInt16 writes a signed 16bit word.
func (mem *Memory) SetInt16(address int, v int16) {
	mem.SetUint16(address, uint16(v))
}

// SetUint32 writes an unsigned 32bit value.
func (mem *Memory) SetUint32(address int, v uint32) {
	mem.check(address, 4)
	binary.BigEndian.PutUint32(mem.data[address:], v)
}

// SetUint48 writes the least significant six bytes of v.
func (mem *Memory) SetUint48(address int, v uint64) {
	mem.check(address, 6)
	binary.BigEndian.PutUint16(mem.data[address:], uint16(v>>32))
	binary.BigEndian.PutUint32(mem.data[address+2:], uint32(v))
}

// ReadBytes returns a copy of n bytes starting at address.
func (mem *Memory) ReadBytes(address int, n int) []uint8 {
	if n < 0 {
		panic(curated.Errorf(AddressError, address))
	}
	mem.check(address, n)
	b := make([]uint8, n)
	copy(b, mem.data[address:address+n])
	return b
}

// WriteBytes copies b into memory starting at address.
func (mem *Memory) WriteBytes(address int, b []uint8) {
	mem.check(address, len(b))
	copy(mem.data[address:], b)
}

// CopyArea copies n bytes from src to dst. The areas may overlap.
func (mem *Memory) CopyArea(src int, dst int, n int) {
	if n <= 0 {
		return
	}
	mem.check(src, n)
	mem.check(dst, n)
	copy(mem.data[dst:dst+n], mem.data[src:src+n])
}
