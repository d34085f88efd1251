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

import "fmt"

// the number of opcodes in each operand count. EXT instructions have 256
// possible opcodes but none are defined above 0x1d.
const maxOpcodes = 32

// Table is the set of instructions that are valid for a single story
// version.
type Table struct {
	version int
	defns   [NumOperandCounts][maxOpcodes]*Definition
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable(version int) *Table {
	tab := &Table{version: version}
	for i := range definitions {
		defn := &definitions[i]
		if defn.ValidFor(version) {
			tab.defns[defn.Count][defn.OpCode] = defn
		}
	}
	return tab
}

func (tab *Table) String() string {
	return fmt.Sprintf("instruction table for v%d (%d instructions)", tab.version, tab.Len())
}

// Version returns the story version the table was created for.
func (tab *Table) Version() int {
	return tab.version
}

// Len returns the number of valid instructions in the table.
func (tab *Table) Len() int {
	n := 0
	for c := range tab.defns {
		for _, defn := range tab.defns[c] {
			if defn != nil {
				n++
			}
		}
	}
	return n
}

// Lookup returns the definition for the operand count and opcode. Returns nil
// if the opcode is not valid for the table's version.
func (tab *Table) Lookup(count OperandCount, opcode uint8) *Definition {
	if int(count) < 0 || int(count) >= NumOperandCounts || int(opcode) >= maxOpcodes {
		return nil
	}
	return tab.defns[count][opcode]
}
