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

	"github.com/zgopher/zgopher/curated"
)

// Frame is the routine context of an active routine call.
type Frame struct {
	// the address of the routine header
	Address int

	// where execution continues when the routine returns
	ReturnPC int

	// the variable the return value is stored in. ignored if Discard is true
	StoreVariable uint8
	Discard       bool

	Locals []uint16

	// the index into the evaluation stack at which this frame's part of the
	// stack begins
	StackBase int

	// the number of arguments supplied by the caller
	ArgCount int

	// the routine was called as an interrupt. the return value is retained by
	// the CPU and not stored in a variable
	Interrupt bool
}

func (f Frame) String() string {
	return fmt.Sprintf("%05x (ret=%05x args=%d locals=%d)", f.Address, f.ReturnPC, f.ArgCount, len(f.Locals))
}

func copyFrames(frames []Frame) []Frame {
	n := make([]Frame, len(frames))
	for i, f := range frames {
		n[i] = f
		n[i].Locals = make([]uint16, len(f.Locals))
		copy(n[i].Locals, f.Locals)
	}
	return n
}

func (mc *CPU) currentFrame() *Frame {
	return &mc.frames[len(mc.frames)-1]
}

// Call the routine at the (unpacked) address. The arguments are copied into
// the routine's local variables. The return value of the routine will be
// stored in storeVariable unless discard is true.
//
// Returns an error if the routine header is invalid. The CPU state is
// unchanged in that case.
func (mc *CPU) Call(routine int, args []uint16, storeVariable uint8, discard bool) error {
	return mc.call(routine, args, Frame{
		StoreVariable: storeVariable,
		Discard:       discard,
	})
}

// CallInterrupt calls the routine at the (unpacked) address as an interrupt.
// When the routine returns the return value is retained and is available
// with InterruptValue().
func (mc *CPU) CallInterrupt(routine int) error {
	return mc.call(routine, nil, Frame{
		Discard:   true,
		Interrupt: true,
	})
}

// InterruptValue returns the value returned by the most recently completed
// interrupt routine.
func (mc *CPU) InterruptValue() uint16 {
	return mc.interruptValue
}

func (mc *CPU) call(routine int, args []uint16, f Frame) error {
	n := int(mc.mem.Uint8(routine))
	if n > maxLocals {
		return curated.Errorf(TooManyLocals, routine, n)
	}

	f.Address = routine
	f.ReturnPC = mc.PC
	f.StackBase = len(mc.stack)
	f.ArgCount = len(args)
	f.Locals = make([]uint16, n)

	pc := routine + 1

	// initial values of locals are only stored in the routine header before
	// version 5
	if mc.version <= 4 {
		for i := range f.Locals {
			f.Locals[i] = mc.mem.Uint16(pc)
			pc += 2
		}
	}

	for i := 0; i < len(args) && i < n; i++ {
		f.Locals[i] = args[i]
	}

	mc.frames = append(mc.frames, f)
	mc.PC = pc

	return nil
}

// Return from the current routine with the value. The value is stored in
// the frame's store variable unless it is to be discarded.
func (mc *CPU) Return(value uint16) error {
	if len(mc.frames) <= 1 {
		return curated.Errorf(ReturnFromMain)
	}

	f := mc.frames[len(mc.frames)-1]
	mc.frames = mc.frames[:len(mc.frames)-1]
	mc.stack = mc.stack[:f.StackBase]
	mc.PC = f.ReturnPC

	if f.Interrupt {
		mc.interruptValue = value
	} else if !f.Discard {
		mc.SetVariable(f.StoreVariable, value)
	}

	return nil
}

// Catch returns the index of the current frame. The value is suitable for
// passing to Unwind().
func (mc *CPU) Catch() int {
	return len(mc.frames) - 1
}

// Unwind discards every frame above the frame index. The routine of the
// indexed frame then becomes the current routine. Returns false if the frame
// index does not exist, in which case the CPU state is unchanged.
func (mc *CPU) Unwind(frame int) bool {
	if frame < 0 || frame > len(mc.frames)-1 {
		return false
	}
	if frame == len(mc.frames)-1 {
		return true
	}
	mc.stack = mc.stack[:mc.frames[frame+1].StackBase]
	mc.frames = mc.frames[:frame+1]
	return true
}

// ArgCount returns the number of arguments supplied to the current routine.
func (mc *CPU) ArgCount() int {
	return mc.currentFrame().ArgCount
}

// NumFrames returns the number of active frames, including the frame of the
// main routine.
func (mc *CPU) NumFrames() int {
	return len(mc.frames)
}

// Frames returns a copy of the call frames. The first frame is the frame of
// the main routine.
func (mc *CPU) Frames() []Frame {
	return copyFrames(mc.frames)
}

// Stack returns a copy of the entire evaluation stack.
func (mc *CPU) Stack() []uint16 {
	s := make([]uint16, len(mc.stack))
	copy(s, mc.stack)
	return s
}

// Restore the processing state of the CPU. Used when restoring saved games.
// The frames and stack are copied.
func (mc *CPU) Restore(pc int, frames []Frame, stack []uint16) {
	mc.PC = pc
	mc.frames = copyFrames(frames)
	if len(mc.frames) == 0 {
		mc.frames = []Frame{{Discard: true}}
	}
	mc.stack = make([]uint16, len(stack))
	copy(mc.stack, stack)
	mc.LastResult.Reset()
}
