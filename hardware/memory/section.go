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
	"github.com/zgopher/zgopher/curated"
)

// SectionError is returned by NewSection() if the section does not start
// inside the parent memory.
const SectionError = "memory: section (%#06x, %d) outside of memory"

// Section is a window onto Memory. Addresses are relative to the start of
// the section.
type Section struct {
	mem    *Memory
	offset int
	length int
}

// NewSection is the preferred method of initialisation for the Section type.
// The length of the section is clipped so that it does not extend beyond the
// end of the parent memory.
func NewSection(mem *Memory, offset int, length int) (*Section, error) {
	if offset < 0 || offset > mem.Size() || length < 0 {
		return nil, curated.Errorf(SectionError, offset, length)
	}
	if offset+length > mem.Size() {
		length = mem.Size() - offset
	}
	return &Section{
		mem:    mem,
		offset: offset,
		length: length,
	}, nil
}

// Offset returns the address of the start of the section in the parent
// memory.
func (sec *Section) Offset() int {
	return sec.offset
}

// Size returns the number of bytes in the section.
func (sec *Section) Size() int {
	return sec.length
}

// rebase panics if the access is outside the section and otherwise returns
// the address in the parent memory.
func (sec *Section) rebase(address int, width int) int {
	if address < 0 || address+width > sec.length {
		panic(curated.Errorf(AddressError, address))
	}
	return sec.offset + address
}

// Uint8 implements the Accessor interface.
func (sec *Section) Uint8(address int) uint8 {
	return sec.mem.Uint8(sec.rebase(address, 1))
}

// Int8 implements the Accessor interface.
func (sec *Section) Int8(address int) int8 {
	return sec.mem.Int8(sec.rebase(address, 1))
}

// Uint16 implements the Accessor interface.
func (sec *Section) Uint16(address int) uint16 {
	return sec.mem.Uint16(sec.rebase(address, 2))
}

// Int16 implements the Accessor interface.
func (sec *Section) Int16(address int) int16 {
	return sec.mem.Int16(sec.rebase(address, 2))
}

// Uint32 implements the Accessor interface.
func (sec *Section) Uint32(address int) uint32 {
	return sec.mem.Uint32(sec.rebase(address, 4))
}

// Uint48 implements the Accessor interface.
func (sec *Section) Uint48(address int) uint64 {
	return sec.mem.Uint48(sec.rebase(address, 6))
}

// SetUint8 implements the Accessor interface.
func (sec *Section) SetUint8(address int, v uint8) {
	sec.mem.SetUint8(sec.rebase(address, 1), v)
}

// SetInt8 implements the Accessor interface.
func (sec *Section) SetInt8(address int, v int8) {
	sec.mem.SetInt8(sec.rebase(address, 1), v)
}

// SetUint16 implements the Accessor interface.
func (sec *Section) SetUint16(address int, v uint16) {
	sec.mem.SetUint16(sec.rebase(address, 2), v)
}

// SetInt16 implements the Accessor interface.
func (sec *Section) SetInt16(address int, v int16) {
	sec.mem.SetInt16(sec.rebase(address, 2), v)
}

// SetUint32 implements the Accessor interface.
func (sec *Section) SetUint32(address int, v uint32) {
	sec.mem.SetUint32(sec.rebase(address, 4), v)
}

// SetUint48 implements the Accessor interface.
func (sec *Section) SetUint48(address int, v uint64) {
	sec.mem.SetUint48(sec.rebase(address, 6), v)
}

// ReadBytes implements the Accessor interface.
func (sec *Section) ReadBytes(address int, n int) []uint8 {
	if n < 0 {
		panic(curated.Errorf(AddressError, address))
	}
	return sec.mem.ReadBytes(sec.rebase(address, n), n)
}

// WriteBytes implements the Accessor interface.
func (sec *Section) WriteBytes(address int, b []uint8) {
	sec.mem.WriteBytes(sec.rebase(address, len(b)), b)
}

// CopyArea implements the Accessor interface.
func (sec *Section) CopyArea(src int, dst int, n int) {
	if n <= 0 {
		return
	}
	sec.mem.CopyArea(sec.rebase(src, n), sec.rebase(dst, n), n)
}
