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

package streams

import (
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/zscii"
)

// a table in memory receiving the output of stream 3. the first word of the
// table is the number of characters written and is set when the stream is
// deselected
type memoryTable struct {
	address int
	width   int
	count   int
}

func (t *memoryTable) write(mem memory.Accessor, c zscii.Char) {
	mem.SetUint8(t.address+2+t.count, uint8(c))
	t.count++
}

func (t *memoryTable) complete(mem memory.Accessor) {
	mem.SetUint16(t.address, uint16(t.count))
}
