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

package cpu_test

import (
	"testing"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/cpu"
	"github.com/zgopher/zgopher/hardware/cpu/execution"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/test"
)

const (
	globalsAddress = 0x100
	programAddress = 0x400
	routineAddress = 0x600
)

func newCPU(version uint8, program ...uint8) (*memory.Memory, *cpu.CPU) {
	data := make([]uint8, 0x800)
	data[0x00] = version
	data[0x06] = programAddress >> 8
	data[0x0c] = globalsAddress >> 8
	copy(data[programAddress:], program)
	mem := memory.NewMemory(data)
	return mem, cpu.NewCPU(mem, header.NewHeader(mem))
}

// catches the panic raised by an illegal stack or variable access
func expectPanic(t *testing.T, pattern string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !curated.Is(err, pattern) {
			t.Errorf("expected panic with %q, got %v", pattern, r)
		}
	}()
	f()
}

func TestDecodeVariableForm(t *testing.T) {
	// je #05 #03 #05 ?(5)
	_, mc := newCPU(3, 0xc1, 0x57, 0x05, 0x03, 0x05, 0xc5)
	test.DemandSuccess(t, mc.Decode())

	r := mc.LastResult
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.Defn.Mnemonic, "je")
	test.ExpectEquality(t, r.NumOperands(), 3)
	test.ExpectEquality(t, r.Operands[2].Raw, uint16(5))
	test.ExpectEquality(t, r.Branch.OnTrue, true)
	test.ExpectEquality(t, r.Branch.Offset, 5)
	test.ExpectEquality(t, r.ByteCount, 6)
	test.ExpectEquality(t, mc.PC, programAddress+6)
}

func TestDecodeLongForm(t *testing.T) {
	// add G00 #02 -> sp
	_, mc := newCPU(3, 0x54, 0x10, 0x02, 0x00)
	test.DemandSuccess(t, mc.Decode())

	r := mc.LastResult
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.Defn.Mnemonic, "add")
	test.ExpectEquality(t, r.Operands[0].Type, execution.Variable)
	test.ExpectEquality(t, r.Operands[1].Type, execution.Small)
	test.ExpectEquality(t, r.StoreVariable, uint8(0))
	test.ExpectEquality(t, r.ByteCount, 4)
	test.ExpectEquality(t, r.String(), "00400: add G00 #02 -> sp")
}

func TestDecodeBranchOffsets(t *testing.T) {
	// je #01 #02 ?~(-2) with a two byte branch
	_, mc := newCPU(3, 0x01, 0x01, 0x02, 0x3f, 0xfe)
	test.DemandSuccess(t, mc.Decode())
	test.ExpectEquality(t, mc.LastResult.Branch.OnTrue, false)
	test.ExpectEquality(t, mc.LastResult.Branch.Offset, -2)

	// jz #00 ?rtrue
	_, mc = newCPU(3, 0x90, 0x00, 0xc1)
	test.DemandSuccess(t, mc.Decode())
	test.ExpectEquality(t, mc.LastResult.Branch.IsReturn(), true)
}

func TestDecodeShortForm(t *testing.T) {
	// jump #fffe
	_, mc := newCPU(3, 0x8c, 0xff, 0xfe)
	test.DemandSuccess(t, mc.Decode())
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic, "jump")
	test.ExpectEquality(t, mc.LastResult.Operands[0].Type, execution.Large)
	test.ExpectEquality(t, mc.LastResult.Operands[0].Raw, uint16(0xfffe))

	// print with a one word string
	_, mc = newCPU(3, 0xb2, 0x94, 0xa5)
	test.DemandSuccess(t, mc.Decode())
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.LastResult.TextAddress, programAddress+1)
	test.ExpectEquality(t, mc.LastResult.TextLength, 2)
	test.ExpectEquality(t, mc.PC, programAddress+3)
}

func TestDecodeExtended(t *testing.T) {
	// save_undo -> sp
	_, mc := newCPU(5, 0xbe, 0x09, 0xff, 0x00)
	test.DemandSuccess(t, mc.Decode())
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic, "save_undo")
	test.ExpectEquality(t, mc.LastResult.NumOperands(), 0)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 4)

	// call_vs2 with five operands
	_, mc = newCPU(5, 0xec, 0x55, 0x7f, 0x01, 0x02, 0x03, 0x04, 0x05, 0x00)
	test.DemandSuccess(t, mc.Decode())
	test.ExpectEquality(t, mc.LastResult.NumOperands(), 5)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestDecodeInvalidOpcode(t *testing.T) {
	// 0OP:05 is not valid from version 5
	_, mc := newCPU(5, 0xb5)
	err := mc.Decode()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.InvalidOpcode), true)
}

func TestResolveOperands(t *testing.T) {
	mem, mc := newCPU(3, 0x54, 0x10, 0x00, 0x00)
	mem.SetUint16(globalsAddress, 0x1234)
	test.DemandSuccess(t, mc.Decode())
	mc.ResolveOperands()
	test.ExpectEquality(t, mc.LastResult.Values[0], uint16(0x1234))
	test.ExpectEquality(t, mc.LastResult.Values[1], uint16(0))
}

func TestVariables(t *testing.T) {
	mem, mc := newCPU(3)

	// variable zero is the stack
	mc.SetVariable(0, 10)
	mc.SetVariable(0, 20)
	test.ExpectEquality(t, mc.StackDepth(), 2)
	test.ExpectEquality(t, mc.PeekVariable(0), uint16(20))
	mc.ReplaceVariable(0, 30)
	test.ExpectEquality(t, mc.StackDepth(), 2)
	test.ExpectEquality(t, mc.Variable(0), uint16(30))
	test.ExpectEquality(t, mc.Variable(0), uint16(10))
	expectPanic(t, cpu.StackUnderflow, func() { mc.Variable(0) })

	// globals are in memory
	mc.SetVariable(0x11, 0xbeef)
	test.ExpectEquality(t, mem.Uint16(globalsAddress+2), uint16(0xbeef))

	// there are no locals in the main routine
	expectPanic(t, cpu.InvalidLocal, func() { mc.SetVariable(1, 0) })
}

func TestCallReturn(t *testing.T) {
	mem, mc := newCPU(3)
	mem.SetUint8(routineAddress, 2)
	mem.SetUint16(routineAddress+1, 0x1111)
	mem.SetUint16(routineAddress+3, 0x2222)

	mc.Push(99)
	test.DemandSuccess(t, mc.Call(routineAddress, []uint16{7}, 0x10, false))
	test.ExpectEquality(t, mc.PC, routineAddress+5)
	test.ExpectEquality(t, mc.ArgCount(), 1)
	test.ExpectEquality(t, mc.Variable(1), uint16(7))
	test.ExpectEquality(t, mc.Variable(2), uint16(0x2222))

	// the caller's part of the stack is not visible
	test.ExpectEquality(t, mc.StackDepth(), 0)
	mc.Push(1)
	mc.Push(2)

	test.DemandSuccess(t, mc.Return(42))
	test.ExpectEquality(t, mc.PC, programAddress)
	test.ExpectEquality(t, mem.Uint16(globalsAddress), uint16(42))
	test.ExpectEquality(t, mc.StackDepth(), 1)
	test.ExpectEquality(t, mc.Peek(), uint16(99))

	// cannot return from the main routine
	err := mc.Return(0)
	test.ExpectEquality(t, curated.Is(err, cpu.ReturnFromMain), true)
}

func TestCallLocalsV5(t *testing.T) {
	mem, mc := newCPU(5)
	mem.SetUint8(routineAddress, 3)
	test.DemandSuccess(t, mc.Call(routineAddress, []uint16{1, 2, 3, 4}, 0, true))
	test.ExpectEquality(t, mc.PC, routineAddress+1)
	test.ExpectEquality(t, mc.ArgCount(), 4)
	test.ExpectEquality(t, mc.Variable(3), uint16(3))

	// too many locals
	mem.SetUint8(routineAddress, 16)
	err := mc.Call(routineAddress, nil, 0, true)
	test.ExpectEquality(t, curated.Is(err, cpu.TooManyLocals), true)
}

func TestCatchUnwind(t *testing.T) {
	mem, mc := newCPU(5)
	mem.SetUint8(routineAddress, 0)

	test.DemandSuccess(t, mc.Call(routineAddress, nil, 0x10, false))
	frame := mc.Catch()
	test.ExpectEquality(t, frame, 1)
	mc.Push(5)

	test.DemandSuccess(t, mc.Call(routineAddress, nil, 0, false))
	mc.Push(6)
	test.DemandSuccess(t, mc.Call(routineAddress, nil, 0, false))
	test.ExpectEquality(t, mc.NumFrames(), 4)

	test.ExpectEquality(t, mc.Unwind(10), false)
	test.ExpectEquality(t, mc.NumFrames(), 4)

	test.ExpectEquality(t, mc.Unwind(frame), true)
	test.ExpectEquality(t, mc.NumFrames(), 2)
	test.ExpectEquality(t, mc.StackDepth(), 1)

	test.DemandSuccess(t, mc.Return(77))
	test.ExpectEquality(t, mc.NumFrames(), 1)
	test.ExpectEquality(t, mem.Uint16(globalsAddress), uint16(77))
}

func TestInterrupt(t *testing.T) {
	mem, mc := newCPU(5)
	mem.SetUint8(routineAddress, 0)
	mc.Push(3)
	test.DemandSuccess(t, mc.CallInterrupt(routineAddress))
	test.DemandSuccess(t, mc.Return(1))
	test.ExpectEquality(t, mc.InterruptValue(), uint16(1))

	// the value is not stored anywhere
	test.ExpectEquality(t, mc.StackDepth(), 1)
}

func TestBranch(t *testing.T) {
	_, mc := newCPU(3)
	mc.PC = 0x500

	test.ExpectSuccess(t, mc.Branch(execution.Branch{OnTrue: true, Offset: 10}, false))
	test.ExpectEquality(t, mc.PC, 0x500)

	test.ExpectSuccess(t, mc.Branch(execution.Branch{OnTrue: true, Offset: 10}, true))
	test.ExpectEquality(t, mc.PC, 0x508)

	test.ExpectSuccess(t, mc.Branch(execution.Branch{OnTrue: false, Offset: -6}, false))
	test.ExpectEquality(t, mc.PC, 0x500)

	mc.Jump(2)
	test.ExpectEquality(t, mc.PC, 0x500)
}

func TestUnpack(t *testing.T) {
	_, mc := newCPU(3)
	test.ExpectEquality(t, mc.UnpackRoutine(0x100), 0x200)

	_, mc = newCPU(5)
	test.ExpectEquality(t, mc.UnpackString(0x100), 0x400)

	_, mc = newCPU(8)
	test.ExpectEquality(t, mc.UnpackRoutine(0x100), 0x800)

	mem := memory.NewMemory(make([]uint8, 0x100))
	mem.SetUint8(0x00, 6)
	mem.SetUint16(0x28, 0x10)
	mem.SetUint16(0x2a, 0x20)
	mc = cpu.NewCPU(mem, header.NewHeader(mem))
	test.ExpectEquality(t, mc.UnpackRoutine(0x100), 0x400+0x80)
	test.ExpectEquality(t, mc.UnpackString(0x100), 0x400+0x100)
}

func TestSnapshot(t *testing.T) {
	mem, mc := newCPU(5)
	mem.SetUint8(routineAddress, 1)
	test.DemandSuccess(t, mc.Call(routineAddress, []uint16{5}, 0, true))
	mc.Push(1)

	snap := mc.Snapshot()
	mc.SetVariable(1, 100)
	mc.Push(2)

	test.ExpectEquality(t, snap.Variable(1), uint16(5))
	test.ExpectEquality(t, snap.StackDepth(), 1)
	test.ExpectEquality(t, mc.StackDepth(), 2)

	mc.Restore(snap.PC, snap.Frames(), snap.Stack())
	test.ExpectEquality(t, mc.Variable(1), uint16(5))
	test.ExpectEquality(t, mc.StackDepth(), 1)
}

func TestResume(t *testing.T) {
	// save ?(+5) in version 3
	_, mc := newCPU(3, 0xb5, 0xc5)
	test.DemandSuccess(t, mc.Decode())
	test.ExpectEquality(t, mc.LastResult.ResultAddress, programAddress+1)

	mc.PC = mc.LastResult.ResultAddress
	test.ExpectSuccess(t, mc.ResumeBranch(true))
	test.ExpectEquality(t, mc.PC, programAddress+2+3)

	// save -> G01 in version 4
	mem, mc := newCPU(4, 0xb5, 0x11)
	test.DemandSuccess(t, mc.Decode())
	mc.PC = mc.LastResult.ResultAddress
	mc.ResumeStore(2)
	test.ExpectEquality(t, mem.Uint16(globalsAddress+2), uint16(2))
	test.ExpectEquality(t, mc.PC, programAddress+2)
}
