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

// Package cpu implements the processing state of the Z-machine: the program
// counter, the evaluation stack, the routine call frames and access to
// variables. It also decodes instructions from memory.
//
// The CPU does not execute instructions itself. Decode() reads the
// instruction at the program counter into the LastResult field and advances
// the program counter past it. ResolveOperands() then reads the value of
// every operand, popping the stack where the operand refers to variable zero.
// The effect of the instruction is the responsibility of the caller, which
// uses the Call(), Return(), Branch() and variable functions to update the
// CPU state.
//
// Call frames are kept in a single slice. The first frame is the frame of
// the main routine and cannot be returned from. The evaluation stack is
// shared between frames, each frame recording where its part of the stack
// begins.
package cpu
