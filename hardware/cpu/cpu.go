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

package cpu

import (
	"fmt"

	"github.com/zgopher/zgopher/hardware/cpu/execution"
	"github.com/zgopher/zgopher/hardware/cpu/instructions"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/hardware/memory"
)

// List of error patterns returned or raised by the CPU.
const (
	InvalidOpcode  = "cpu: invalid opcode (%s:%02x) at %05x"
	StackUnderflow = "cpu: stack underflow in routine at %05x"
	InvalidLocal   = "cpu: local variable %d not available in routine at %05x"
	TooManyLocals  = "cpu: routine at %05x declares %d locals"
	ReturnFromMain = "cpu: return from main routine"
)

// the maximum number of local variables a routine may declare
const maxLocals = 15

// CPU implements the processing state of the Z-machine.
type CPU struct {
	mem   memory.Accessor
	table *instructions.Table

	version       int
	globals       int
	routineOffset int
	stringOffset  int

	// PC is the address of the next instruction to be decoded
	PC int

	stack  []uint16
	frames []Frame

	// the most recently decoded instruction
	LastResult execution.Result

	// the value returned by the most recent interrupt routine
	interruptValue uint16
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// header is consulted for the version, the location of the global variables
// and the routine and string offsets. The CPU should be Reset() before use.
func NewCPU(mem memory.Accessor, hdr *header.Header) *CPU {
	mc := &CPU{
		mem:     mem,
		version: hdr.Version(),
		globals: hdr.Globals(),
	}
	mc.table = instructions.NewTable(mc.version)
	if mc.version == 6 || mc.version == 7 {
		mc.routineOffset = hdr.RoutineOffset()
		mc.stringOffset = hdr.StringOffset()
	}
	mc.Reset(hdr.ProgramStart())
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.stack = make([]uint16, len(mc.stack))
	copy(n.stack, mc.stack)
	n.frames = copyFrames(mc.frames)
	return &n
}

// Plumb new memory into the CPU.
func (mc *CPU) Plumb(mem memory.Accessor) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%05x frames=%d stack=%d", mc.PC, len(mc.frames), len(mc.stack))
}

// Reset the CPU. The stack is emptied and a single frame for the main routine
// is created. The program counter is set to the specified address.
func (mc *CPU) Reset(pc int) {
	mc.PC = pc
	mc.stack = mc.stack[:0]
	mc.frames = []Frame{{Address: pc, Discard: true}}
	mc.LastResult.Reset()
	mc.interruptValue = 0
}

// Version returns the story version the CPU was created for.
func (mc *CPU) Version() int {
	return mc.version
}

// Table returns the instruction table in use by the CPU.
func (mc *CPU) Table() *instructions.Table {
	return mc.table
}

// UnpackRoutine converts a packed routine address to a byte address.
func (mc *CPU) UnpackRoutine(packed uint16) int {
	return mc.unpack(packed, mc.routineOffset)
}

// UnpackString converts a packed string address to a byte address.
func (mc *CPU) UnpackString(packed uint16) int {
	return mc.unpack(packed, mc.stringOffset)
}

func (mc *CPU) unpack(packed uint16, offset int) int {
	p := int(packed)
	switch mc.version {
	case 1, 2, 3:
		return p * 2
	case 4, 5:
		return p * 4
	case 6, 7:
		return p*4 + offset*8
	}
	return p * 8
}
