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

package memory_test

import (
	"testing"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/test"
)

// expectAddressError runs f and checks that it panics with an AddressError.
func expectAddressError(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, memory.AddressError))
	}()
	f()
}

func TestTypedAccess(t *testing.T) {
	mem := memory.NewMemory(make([]uint8, 16))

	mem.SetUint8(0, 0xfe)
	test.ExpectEquality(t, mem.Uint8(0), 0xfe)
	test.ExpectEquality(t, mem.Int8(0), -2)

	mem.SetUint16(2, 0x1234)
	test.ExpectEquality(t, mem.Uint8(2), 0x12)
	test.ExpectEquality(t, mem.Uint8(3), 0x34)
	test.ExpectEquality(t, mem.Uint16(2), 0x1234)

	mem.SetInt16(4, -1)
	test.ExpectEquality(t, mem.Uint16(4), 0xffff)
	test.ExpectEquality(t, mem.Int16(4), -1)

	mem.SetUint32(6, 0xdeadbeef)
	test.ExpectEquality(t, mem.Uint32(6), 0xdeadbeef)
	test.ExpectEquality(t, mem.Uint16(6), 0xdead)

	mem.SetUint48(8, 0x0102030405060708)
	test.ExpectEquality(t, mem.Uint48(8), 0x030405060708)
	test.ExpectEquality(t, mem.Uint8(8), 0x03)
	test.ExpectEquality(t, mem.Uint8(13), 0x08)
}

func TestOutOfRange(t *testing.T) {
	mem := memory.NewMemory(make([]uint8, 4))

	expectAddressError(t, func() { mem.Uint8(4) })
	expectAddressError(t, func() { mem.Uint8(-1) })
	expectAddressError(t, func() { mem.Uint16(3) })
	expectAddressError(t, func() { mem.SetUint32(1, 0) })
	expectAddressError(t, func() { mem.Uint48(0) })
	expectAddressError(t, func() { mem.ReadBytes(2, 3) })

	// no wraparound has happened
	mem.SetUint16(2, 0xabcd)
	test.ExpectEquality(t, mem.Uint16(2), 0xabcd)
}

func TestCopyArea(t *testing.T) {
	mem := memory.NewMemory([]uint8{1, 2, 3, 4, 5, 6})
	mem.CopyArea(0, 2, 4)
	test.ExpectEquality(t, string(mem.ReadBytes(0, 6)), string([]uint8{1, 2, 1, 2, 3, 4}))

	b := mem.ReadBytes(0, 2)
	b[0] = 99
	test.ExpectEquality(t, mem.Uint8(0), 1)
}

func TestSection(t *testing.T) {
	mem := memory.NewMemory(make([]uint8, 32))
	sec, err := memory.NewSection(mem, 8, 8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sec.Size(), 8)
	test.ExpectEquality(t, sec.Offset(), 8)

	// writes through the section are seen in the parent
	sec.SetUint16(0, 0x4142)
	test.ExpectEquality(t, mem.Uint16(8), 0x4142)

	// and writes to the parent are seen in the section
	mem.SetUint8(15, 0x99)
	test.ExpectEquality(t, sec.Uint8(7), 0x99)

	// the section is clipped even though the parent has more memory
	expectAddressError(t, func() { sec.Uint8(8) })
	expectAddressError(t, func() { sec.Uint16(7) })
	expectAddressError(t, func() { sec.Uint8(-1) })
}

func TestSectionClipping(t *testing.T) {
	mem := memory.NewMemory(make([]uint8, 10))
	sec, err := memory.NewSection(mem, 6, 100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sec.Size(), 4)

	_, err = memory.NewSection(mem, 11, 1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.SectionError))
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory(make([]uint8, 4))
	mem.SetUint8(0, 1)
	snap := mem.Snapshot()
	mem.SetUint8(0, 2)
	test.ExpectEquality(t, snap.Uint8(0), 1)
	mem.Plumb(snap)
	test.ExpectEquality(t, mem.Uint8(0), 1)
}
