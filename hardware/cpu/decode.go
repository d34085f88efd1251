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
	"github.com/zgopher/zgopher/hardware/cpu/execution"
	"github.com/zgopher/zgopher/hardware/cpu/instructions"
	"github.com/zgopher/zgopher/zscii"
)

// the opcode byte that introduces an extended instruction
const extendedOpcode = 0xbe

func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Uint8(mc.PC)
	mc.PC++
	return v
}

func (mc *CPU) fetch16() uint16 {
	v := mc.mem.Uint16(mc.PC)
	mc.PC += 2
	return v
}

// operand type for the long form. a set bit indicates a variable, otherwise
// a small constant
func longType(bit uint8) execution.OperandType {
	if bit != 0 {
		return execution.Variable
	}
	return execution.Small
}

// Decode the instruction at the program counter. The result of the decode is
// placed in LastResult and the program counter is advanced to the next
// instruction.
//
// Returns an error if the opcode is not valid for the story version. The
// program counter is undefined in that case.
func (mc *CPU) Decode() error {
	mc.LastResult.Reset()
	r := &mc.LastResult
	r.Address = mc.PC

	var count instructions.OperandCount
	var opcode uint8
	var types []execution.OperandType

	b := mc.fetch8()

	switch {
	case b == extendedOpcode && mc.version >= 5:
		r.Form = instructions.Extended
		count = instructions.Ext
		opcode = mc.fetch8()

	case b&0xc0 == 0xc0:
		r.Form = instructions.Variable
		if b&0x20 == 0 {
			count = instructions.TwoOp
		} else {
			count = instructions.Var
		}
		opcode = b & 0x1f

	case b&0xc0 == 0x80:
		r.Form = instructions.Short
		opcode = b & 0x0f
		t := execution.OperandType((b >> 4) & 0x03)
		if t == execution.Omitted {
			count = instructions.ZeroOp
		} else {
			count = instructions.OneOp
			types = append(types, t)
		}

	default:
		r.Form = instructions.Long
		count = instructions.TwoOp
		opcode = b & 0x1f
		types = append(types, longType(b&0x40), longType(b&0x20))
	}

	r.Defn = mc.table.Lookup(count, opcode)
	if r.Defn == nil {
		return curated.Errorf(InvalidOpcode, count, opcode, r.Address)
	}

	if r.Form == instructions.Variable || r.Form == instructions.Extended {
		// the type bytes are always present even if the first of a double
		// type byte indicates that there are no more operands
		typeBytes := []uint8{mc.fetch8()}
		if r.Defn.DoubleTypes {
			typeBytes = append(typeBytes, mc.fetch8())
		}

	done:
		for _, tb := range typeBytes {
			for s := 6; s >= 0; s -= 2 {
				t := execution.OperandType((tb >> s) & 0x03)
				if t == execution.Omitted {
					break done
				}
				types = append(types, t)
			}
		}
	}

	r.Operands = make([]execution.Operand, 0, len(types))
	for _, t := range types {
		op := execution.Operand{Type: t}
		if t == execution.Large {
			op.Raw = mc.fetch16()
		} else {
			op.Raw = uint16(mc.fetch8())
		}
		r.Operands = append(r.Operands, op)
	}

	r.ResultAddress = mc.PC

	if r.Defn.Store {
		r.StoreVariable = mc.fetch8()
	}

	if r.Defn.Branch {
		r.Branch = mc.fetchBranch()
	}

	if r.Defn.Text {
		r.TextAddress = mc.PC
		r.TextLength = zscii.EncodedLength(mc.mem, mc.PC)
		mc.PC += r.TextLength
	}

	r.ByteCount = mc.PC - r.Address
	r.Final = true

	return nil
}

func (mc *CPU) fetchBranch() execution.Branch {
	var br execution.Branch
	b := mc.fetch8()
	br.OnTrue = b&0x80 == 0x80
	if b&0x40 == 0x40 {
		br.Offset = int(b & 0x3f)
	} else {
		// signed 14 bit offset
		v := int(b&0x3f)<<8 | int(mc.fetch8())
		if v&0x2000 == 0x2000 {
			v -= 0x4000
		}
		br.Offset = v
	}
	return br
}

// ResumeStore reads a store variable at the program counter and stores the
// value in it. Used to complete an instruction whose state was restored
// from a saved game.
func (mc *CPU) ResumeStore(value uint16) {
	mc.SetVariable(mc.fetch8(), value)
}

// ResumeBranch reads branch data at the program counter and applies it with
// the condition. Used to complete an instruction whose state was restored
// from a saved game.
func (mc *CPU) ResumeBranch(condition bool) error {
	return mc.Branch(mc.fetchBranch(), condition)
}

// ResolveOperands reads the value of every operand in LastResult. Variable
// operands are read in order, so a variable zero operand pops the stack.
func (mc *CPU) ResolveOperands() {
	r := &mc.LastResult
	r.Values = make([]uint16, len(r.Operands))
	for i, op := range r.Operands {
		if op.Type == execution.Variable {
			r.Values[i] = mc.Variable(uint8(op.Raw))
		} else {
			r.Values[i] = op.Raw
		}
	}
}

// Branch applies the branch information if the condition matches the
// branch polarity. A branch offset of zero or one returns from the current
// routine with that value.
func (mc *CPU) Branch(br execution.Branch, condition bool) error {
	if condition != br.OnTrue {
		return nil
	}
	if br.IsReturn() {
		return mc.Return(uint16(br.Offset))
	}
	mc.PC += br.Offset - 2
	return nil
}

// Jump moves the program counter by the signed offset in the same way as a
// branch.
func (mc *CPU) Jump(offset int16) {
	mc.PC += int(offset) - 2
}
