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

package objects

import "github.com/zgopher/zgopher/hardware/memory"

// Layout describes the binary layout of an object table.
type Layout struct {
	Name string

	// number of entries in the property defaults table
	Properties int

	// number of attributes per object
	Attributes int

	// size in bytes of an object entry
	EntrySize int

	// offsets into an object entry
	parent   int
	sibling  int
	child    int
	propsPtr int

	// width in bytes of the parent, sibling and child fields
	linkWidth int

	// decodes the size byte(s) of the property entry at the address
	propertyNum       func(mem memory.Accessor, address int) int
	propertySizeBytes func(mem memory.Accessor, address int) int
	propertyLength    func(mem memory.Accessor, dataAddress int) int
}

// Classic is the layout of the object table for version 1 to 3 stories.
var Classic = Layout{
	Name:       "classic",
	Properties: 31,
	Attributes: 32,
	EntrySize:  9,
	parent:     4,
	sibling:    5,
	child:      6,
	propsPtr:   7,
	linkWidth:  1,

	propertyNum: func(mem memory.Accessor, address int) int {
		// the property length is read from the same size byte
		sizeByte := int(mem.Uint8(address))
		return sizeByte - 32*(classicPropertyLength(mem, address+1)-1)
	},
	propertySizeBytes: func(_ memory.Accessor, _ int) int {
		return 1
	},
	propertyLength: classicPropertyLength,
}

func classicPropertyLength(mem memory.Accessor, dataAddress int) int {
	if dataAddress == 0 {
		return 0
	}
	return int(mem.Uint8(dataAddress-1))/32 + 1
}

// Modern is the layout of the object table for version 4 stories and later.
var Modern = Layout{
	Name:       "modern",
	Properties: 63,
	Attributes: 48,
	EntrySize:  14,
	parent:     6,
	sibling:    8,
	child:      10,
	propsPtr:   12,
	linkWidth:  2,

	propertyNum: func(mem memory.Accessor, address int) int {
		return int(mem.Uint8(address) & 0x3f)
	},
	propertySizeBytes: func(mem memory.Accessor, address int) int {
		if mem.Uint8(address)&0x80 == 0x80 {
			return 2
		}
		return 1
	},
	propertyLength: func(mem memory.Accessor, dataAddress int) int {
		if dataAddress == 0 {
			return 0
		}

		// the byte before the data is either the only size byte or the
		// second of two size bytes
		sizeByte := mem.Uint8(dataAddress - 1)
		if sizeByte&0x80 == 0x80 {
			l := int(sizeByte & 0x3f)
			if l == 0 {
				return 64
			}
			return l
		}
		if sizeByte&0x40 == 0x40 {
			return 2
		}
		return 1
	},
}

// LayoutForVersion returns the object table layout for the story version.
func LayoutForVersion(version int) Layout {
	if version <= 3 {
		return Classic
	}
	return Modern
}
