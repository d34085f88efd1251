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

package instructions

import (
	"fmt"
	"strings"
)

// OperandCount is the broad classification of an opcode.
type OperandCount int

// List of operand counts.
const (
	ZeroOp OperandCount = iota
	OneOp
	TwoOp
	Var
	Ext
)

// NumOperandCounts is the number of OperandCount values.
const NumOperandCounts = 5

func (c OperandCount) String() string {
	switch c {
	case ZeroOp:
		return "0OP"
	case OneOp:
		return "1OP"
	case TwoOp:
		return "2OP"
	case Var:
		return "VAR"
	case Ext:
		return "EXT"
	}
	return "unknown operand count"
}

// MaxOperands returns the maximum number of operands an instruction of the
// operand count can have. For VAR instructions this does not account for
// the double variable instructions (call_vs2 and call_vn2).
func (c OperandCount) MaxOperands() int {
	switch c {
	case ZeroOp:
		return 0
	case OneOp:
		return 1
	}

	// 2OP instructions encoded in the variable form can take more than two
	// operands. je being the notable example
	return 4
}

// Form is the encoding form of an instruction in memory.
type Form int

// List of instruction forms.
const (
	Long Form = iota
	Short
	Variable
	Extended
)

func (f Form) String() string {
	switch f {
	case Long:
		return "long"
	case Short:
		return "short"
	case Variable:
		return "variable"
	case Extended:
		return "extended"
	}
	return "unknown form"
}

// Definition defines each instruction in the instruction set; one per
// instruction and version variant.
type Definition struct {
	Count    OperandCount
	OpCode   uint8
	Mnemonic string

	// the instruction is followed by a store variable byte
	Store bool

	// the instruction is followed by branch data
	Branch bool

	// the instruction is followed by an encoded string. the length of the
	// instruction depends on the length of the string
	Text bool

	// the range of versions in which the definition is valid. a MaxVersion
	// of zero means the definition is valid for all versions from MinVersion
	MinVersion int
	MaxVersion int

	// the operands of the instruction are followed by a second operand type
	// byte. only call_vs2 and call_vn2 have this property
	DoubleTypes bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s:%02x %s", defn.Count, defn.OpCode, defn.Mnemonic))
	if defn.Store {
		s.WriteString(" [store]")
	}
	if defn.Branch {
		s.WriteString(" [branch]")
	}
	if defn.Text {
		s.WriteString(" [text]")
	}
	return s.String()
}

// ValidFor returns true if the definition is valid for the story version.
func (defn Definition) ValidFor(version int) bool {
	if version < defn.MinVersion {
		return false
	}
	return defn.MaxVersion == 0 || version <= defn.MaxVersion
}

// MaxOperands returns the maximum number of operands for the instruction.
func (defn Definition) MaxOperands() int {
	if defn.DoubleTypes {
		return 8
	}
	return defn.Count.MaxOperands()
}

// IsCall returns true if the instruction calls a routine.
func (defn Definition) IsCall() bool {
	return strings.HasPrefix(defn.Mnemonic, "call")
}
