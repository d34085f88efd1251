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

package quetzal

import (
	"encoding/binary"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/cpu"
)

// bits in the flags byte of a stack frame
const (
	flagsLocals  = 0x0f
	flagsDiscard = 0x10
)

// the size of the fixed part of a frame
const frameHeaderLen = 8

// the section of the evaluation stack belonging to frame i
func frameStack(frames []cpu.Frame, stack []uint16, i int) []uint16 {
	end := len(stack)
	if i+1 < len(frames) {
		end = frames[i+1].StackBase
	}
	return stack[frames[i].StackBase:end]
}

// in version 6 the main routine is a real routine and the frame created by
// the CPU for it is not saved. for all other versions the first frame is the
// dummy frame of the main routine
func firstSavedFrame(version int) int {
	if version == 6 {
		return 1
	}
	return 0
}

func (gs *PortableGameState) stacksChunk(version int) []uint8 {
	var b []uint8

	for i := firstSavedFrame(version); i < len(gs.Frames); i++ {
		f := gs.Frames[i]
		stk := frameStack(gs.Frames, gs.Stack, i)

		var flags uint8
		var result uint8
		var args uint8

		if i > 0 {
			flags = uint8(len(f.Locals)) & flagsLocals
			if f.Discard {
				flags |= flagsDiscard
			} else {
				result = f.StoreVariable
			}
			n := f.ArgCount
			if n > 7 {
				n = 7
			}
			args = uint8(1<<n) - 1
		}

		b = append(b,
			uint8(f.ReturnPC>>16), uint8(f.ReturnPC>>8), uint8(f.ReturnPC),
			flags, result, args,
			uint8(len(stk)>>8), uint8(len(stk)),
		)
		for _, l := range f.Locals {
			b = binary.BigEndian.AppendUint16(b, l)
		}
		for _, v := range stk {
			b = binary.BigEndian.AppendUint16(b, v)
		}
	}

	return b
}

func (gs *PortableGameState) readStacks(data []uint8, version int) error {
	gs.Frames = gs.Frames[:0]
	gs.Stack = gs.Stack[:0]

	if version == 6 {
		gs.Frames = append(gs.Frames, cpu.Frame{Discard: true})
	}

	for p := 0; p < len(data); {
		if p+frameHeaderLen > len(data) {
			return curated.Errorf(MalformedChunk, idStacks)
		}

		f := cpu.Frame{
			ReturnPC:  int(data[p])<<16 | int(data[p+1])<<8 | int(data[p+2]),
			StackBase: len(gs.Stack),
		}
		flags := data[p+3]
		f.Discard = flags&flagsDiscard == flagsDiscard
		if !f.Discard {
			f.StoreVariable = data[p+4]
		}
		for a := data[p+5]; a&0x01 == 0x01; a >>= 1 {
			f.ArgCount++
		}
		numStack := int(binary.BigEndian.Uint16(data[p+6:]))
		numLocals := int(flags & flagsLocals)
		p += frameHeaderLen

		if p+(numLocals+numStack)*2 > len(data) {
			return curated.Errorf(MalformedChunk, idStacks)
		}

		f.Locals = make([]uint16, numLocals)
		for i := range f.Locals {
			f.Locals[i] = binary.BigEndian.Uint16(data[p:])
			p += 2
		}
		for i := 0; i < numStack; i++ {
			gs.Stack = append(gs.Stack, binary.BigEndian.Uint16(data[p:]))
			p += 2
		}

		// the frame of the main routine never stores a result
		if len(gs.Frames) == 0 {
			f.Discard = true
		}

		gs.Frames = append(gs.Frames, f)
	}

	if len(gs.Frames) == 0 {
		return curated.Errorf(MalformedChunk, idStacks)
	}

	return nil
}
