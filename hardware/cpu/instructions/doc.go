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

// Package instructions defines the instruction set of the Z-machine. Every
// opcode is described by a Definition and the definitions that are valid for
// a story version are collected into a Table with NewTable().
//
// Opcodes are identified by their operand count (0OP, 1OP, 2OP, VAR and EXT)
// and by the opcode number within that count. Some opcode numbers change
// meaning between versions. For example, 1OP:15 is "not" before version 5 and
// "call_1n" afterwards. The Table resolves these variants once, when it is
// created, so that lookups during execution need not consider the version.
package instructions
