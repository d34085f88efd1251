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

package instructions_test

import (
	"testing"

	"github.com/zgopher/zgopher/hardware/cpu/instructions"
	"github.com/zgopher/zgopher/test"
)

func TestVersionVariants(t *testing.T) {
	v3 := instructions.NewTable(3)
	v4 := instructions.NewTable(4)
	v5 := instructions.NewTable(5)
	v6 := instructions.NewTable(6)

	// 1OP:15
	test.ExpectEquality(t, v4.Lookup(instructions.OneOp, 0x0f).Mnemonic, "not")
	test.ExpectEquality(t, v5.Lookup(instructions.OneOp, 0x0f).Mnemonic, "call_1n")

	// save is a branch instruction before v4 and a store instruction at v4
	// and is not present as a 0OP from v5
	test.ExpectEquality(t, v3.Lookup(instructions.ZeroOp, 0x05).Branch, true)
	test.ExpectEquality(t, v4.Lookup(instructions.ZeroOp, 0x05).Store, true)
	test.ExpectEquality(t, v5.Lookup(instructions.ZeroOp, 0x05) == nil, true)

	// pop and catch
	test.ExpectEquality(t, v4.Lookup(instructions.ZeroOp, 0x09).Mnemonic, "pop")
	test.ExpectEquality(t, v5.Lookup(instructions.ZeroOp, 0x09).Mnemonic, "catch")

	// pull stores only at v6
	test.ExpectEquality(t, v5.Lookup(instructions.Var, 0x09).Store, false)
	test.ExpectEquality(t, v6.Lookup(instructions.Var, 0x09).Store, true)

	// sread and aread
	test.ExpectEquality(t, v4.Lookup(instructions.Var, 0x04).Mnemonic, "sread")
	test.ExpectEquality(t, v5.Lookup(instructions.Var, 0x04).Store, true)

	// extended instructions
	test.ExpectEquality(t, v3.Lookup(instructions.Ext, 0x09) == nil, true)
	test.ExpectEquality(t, v5.Lookup(instructions.Ext, 0x09).Mnemonic, "save_undo")
	test.ExpectEquality(t, v5.Lookup(instructions.Ext, 0x05) == nil, true)
	test.ExpectEquality(t, v6.Lookup(instructions.Ext, 0x05).Mnemonic, "draw_picture")
}

func TestLookupOutOfRange(t *testing.T) {
	tab := instructions.NewTable(5)
	test.ExpectEquality(t, tab.Lookup(instructions.TwoOp, 0x00) == nil, true)
	test.ExpectEquality(t, tab.Lookup(instructions.Ext, 0xff) == nil, true)
	test.ExpectEquality(t, tab.Lookup(instructions.OperandCount(99), 0x01) == nil, true)
}

func TestUniqueDefinitions(t *testing.T) {
	// for every version there should be at most one definition for each
	// operand count and opcode pair
	for v := 1; v <= 8; v++ {
		seen := make(map[[2]int]string)
		for _, defn := range instructions.Definitions() {
			if !defn.ValidFor(v) {
				continue
			}
			k := [2]int{int(defn.Count), int(defn.OpCode)}
			if m, ok := seen[k]; ok {
				t.Errorf("v%d: %s and %s share %s:%02x", v, m, defn.Mnemonic, defn.Count, defn.OpCode)
			}
			seen[k] = defn.Mnemonic
		}
	}
}

func TestDoubleTypes(t *testing.T) {
	tab := instructions.NewTable(5)
	test.ExpectEquality(t, tab.Lookup(instructions.Var, 0x0c).MaxOperands(), 8)
	test.ExpectEquality(t, tab.Lookup(instructions.Var, 0x1a).MaxOperands(), 8)
	test.ExpectEquality(t, tab.Lookup(instructions.Var, 0x19).MaxOperands(), 4)
	test.ExpectEquality(t, tab.Lookup(instructions.Var, 0x19).IsCall(), true)
}
