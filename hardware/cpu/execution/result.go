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

package execution

import (
	"fmt"
	"strings"

	"github.com/zgopher/zgopher/hardware/cpu/instructions"
)

// OperandType describes how the operand value is encoded.
type OperandType int

// List of operand types. The values match the two bit fields of an operand
// type byte.
const (
	Large OperandType = iota
	Small
	Variable
	Omitted
)

func (t OperandType) String() string {
	switch t {
	case Large:
		return "large"
	case Small:
		return "small"
	case Variable:
		return "variable"
	case Omitted:
		return "omitted"
	}
	return "unknown operand type"
}

// Operand as decoded from the instruction stream. The Raw field is the
// constant value or the variable number, depending on the type.
type Operand struct {
	Type OperandType
	Raw  uint16
}

func (op Operand) String() string {
	switch op.Type {
	case Large:
		return fmt.Sprintf("#%04x", op.Raw)
	case Small:
		return fmt.Sprintf("#%02x", op.Raw)
	case Variable:
		return VariableName(uint8(op.Raw))
	}
	return ""
}

// VariableName returns the conventional name of a variable number.
func VariableName(v uint8) string {
	switch {
	case v == 0:
		return "sp"
	case v < 0x10:
		return fmt.Sprintf("L%02x", v-1)
	}
	return fmt.Sprintf("G%02x", v-0x10)
}

// Branch information for an instruction. An offset of zero or one indicates
// a return from the current routine with that value rather than a jump.
type Branch struct {
	OnTrue bool
	Offset int
}

// IsReturn returns true if the branch is a return from the current routine.
func (br Branch) IsReturn() bool {
	return br.Offset == 0 || br.Offset == 1
}

func (br Branch) String() string {
	s := "?"
	if !br.OnTrue {
		s = "?~"
	}
	switch br.Offset {
	case 0:
		return s + "rfalse"
	case 1:
		return s + "rtrue"
	}
	return fmt.Sprintf("%s%+d", s, br.Offset)
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address int

	// a reference to the instruction definition. will be nil if the
	// instruction could not be decoded
	Defn *instructions.Definition

	// the form the instruction was encoded with
	Form instructions.Form

	// the decoded operands and the values of the operands once they have been
	// resolved. Values is only valid once the operands have been resolved by
	// the CPU
	Operands []Operand
	Values   []uint16

	// the address of the store variable or branch data. equal to the
	// address of any inline text if the instruction has neither
	ResultAddress int

	// valid only if Defn.Store is true
	StoreVariable uint8

	// valid only if Defn.Branch is true
	Branch Branch

	// the address and length of any inline text. valid only if Defn.Text is
	// true
	TextAddress int
	TextLength  int

	// the number of bytes read during instruction decode
	ByteCount int

	// whether this data has been finalised - some fields in this struct will
	// be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance. The operand slices are
// not reused so copies of a Result remain valid after a Reset().
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.Form = instructions.Long
	r.Operands = nil
	r.Values = nil
	r.ResultAddress = 0
	r.StoreVariable = 0
	r.Branch = Branch{}
	r.TextAddress = 0
	r.TextLength = 0
	r.ByteCount = 0
	r.Final = false
}

// NumOperands returns the number of decoded operands.
func (r Result) NumOperands() int {
	return len(r.Operands)
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%05x: undecoded instruction", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%05x: %s", r.Address, r.Defn.Mnemonic))
	for _, op := range r.Operands {
		s.WriteString(" ")
		s.WriteString(op.String())
	}
	if r.Defn.Store {
		s.WriteString(" -> ")
		s.WriteString(VariableName(r.StoreVariable))
	}
	if r.Defn.Branch {
		s.WriteString(" ")
		s.WriteString(r.Branch.String())
	}
	if r.Defn.Text {
		s.WriteString(fmt.Sprintf(" \"%05x+%d\"", r.TextAddress, r.TextLength))
	}
	return s.String()
}
