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

package rewind_test

import (
	"testing"

	"github.com/zgopher/zgopher/hardware/cpu"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/rewind"
	"github.com/zgopher/zgopher/test"
)

func newState(pc int) *rewind.State {
	mem := memory.NewMemory(make([]uint8, 0x100))
	mem.SetUint8(0x00, 5)
	mc := cpu.NewCPU(mem, header.NewHeader(mem))
	mc.PC = pc
	return &rewind.State{CPU: mc, Mem: mem}
}

func TestOverflow(t *testing.T) {
	r := rewind.NewRewind(rewind.DefaultMaxEntries)
	for pc := 1; pc <= 6; pc++ {
		r.Append(newState(pc))
	}
	test.ExpectEquality(t, r.Len(), 5)
	test.ExpectEquality(t, r.String(), "undo [5/5] 00002 00003 00004 00005 00006")

	// the most recent entry is popped first and the oldest entry is gone
	for pc := 6; pc >= 2; pc-- {
		s, ok := r.Pop()
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, s.CPU.PC, pc)
	}
	_, ok := r.Pop()
	test.ExpectFailure(t, ok)
}

func TestSnapshotOnAppend(t *testing.T) {
	r := rewind.NewRewind(2)
	s := newState(10)
	s.Mem.SetUint8(0x80, 1)
	r.Append(s)

	// changing the machine does not change the stored state
	s.Mem.SetUint8(0x80, 2)
	s.CPU.PC = 20

	p, ok := r.Pop()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, p.CPU.PC, 10)
	test.ExpectEquality(t, p.Mem.Uint8(0x80), uint8(1))
}

func TestSetMaxEntries(t *testing.T) {
	r := rewind.NewRewind(4)
	for pc := 1; pc <= 4; pc++ {
		r.Append(newState(pc))
	}
	r.SetMaxEntries(2)
	test.ExpectEquality(t, r.Len(), 2)
	test.ExpectEquality(t, r.MaxEntries(), 2)
	test.ExpectEquality(t, r.States()[0].CPU.PC, 3)

	r.SetMaxEntries(0)
	test.ExpectEquality(t, r.MaxEntries(), 1)
	test.ExpectEquality(t, r.States()[0].CPU.PC, 4)

	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
}
