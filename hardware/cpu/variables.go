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
	"github.com/zgopher/zgopher/curated"
)

// Push value onto the evaluation stack.
func (mc *CPU) Push(value uint16) {
	mc.stack = append(mc.stack, value)
}

// Pop a value from the evaluation stack. Popping from an empty stack is a
// fatal error and will cause a panic with a curated error.
func (mc *CPU) Pop() uint16 {
	f := mc.currentFrame()
	if len(mc.stack) <= f.StackBase {
		panic(curated.Errorf(StackUnderflow, f.Address))
	}
	v := mc.stack[len(mc.stack)-1]
	mc.stack = mc.stack[:len(mc.stack)-1]
	return v
}

// Peek returns the value at the top of the evaluation stack without
// removing it.
func (mc *CPU) Peek() uint16 {
	f := mc.currentFrame()
	if len(mc.stack) <= f.StackBase {
		panic(curated.Errorf(StackUnderflow, f.Address))
	}
	return mc.stack[len(mc.stack)-1]
}

// StackDepth returns the number of values on the current frame's part of the
// evaluation stack.
func (mc *CPU) StackDepth() int {
	return len(mc.stack) - mc.currentFrame().StackBase
}

func (mc *CPU) local(v uint8) *uint16 {
	f := mc.currentFrame()
	i := int(v) - 1
	if i >= len(f.Locals) {
		panic(curated.Errorf(InvalidLocal, i, f.Address))
	}
	return &f.Locals[i]
}

func (mc *CPU) globalAddress(v uint8) int {
	return mc.globals + 2*(int(v)-0x10)
}

// Variable returns the value of the variable. Variable zero pops the value
// from the top of the stack. Variables 1 to 15 are the locals of the current
// routine and variables 16 to 255 are the global variables.
func (mc *CPU) Variable(v uint8) uint16 {
	switch {
	case v == 0:
		return mc.Pop()
	case v < 0x10:
		return *mc.local(v)
	}
	return mc.mem.Uint16(mc.globalAddress(v))
}

// SetVariable sets the value of the variable. Setting variable zero pushes
// the value onto the stack.
func (mc *CPU) SetVariable(v uint8, value uint16) {
	switch {
	case v == 0:
		mc.Push(value)
	case v < 0x10:
		*mc.local(v) = value
	default:
		mc.mem.SetUint16(mc.globalAddress(v), value)
	}
}

// PeekVariable is the same as Variable() except that variable zero reads the
// top of the stack without popping it. Instructions that refer to variables
// indirectly (inc, dec, load, etc.) use this function.
func (mc *CPU) PeekVariable(v uint8) uint16 {
	if v == 0 {
		return mc.Peek()
	}
	return mc.Variable(v)
}

// ReplaceVariable is the same as SetVariable() except that variable zero
// replaces the top of the stack rather than pushing a new value.
func (mc *CPU) ReplaceVariable(v uint8, value uint16) {
	if v == 0 {
		mc.Pop()
	}
	mc.SetVariable(v, value)
}
