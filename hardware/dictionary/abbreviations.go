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

package dictionary

import "github.com/zgopher/zgopher/hardware/memory"

// Abbreviations is the table of abbreviation strings. It implements the
// zscii.Abbreviations interface.
type Abbreviations struct {
	mem     memory.Accessor
	address int
}

// NewAbbreviations is the preferred method of initialisation for the
// Abbreviations type.
func NewAbbreviations(mem memory.Accessor, address int) *Abbreviations {
	return &Abbreviations{
		mem:     mem,
		address: address,
	}
}

// WordAddress returns the byte address of the abbreviation entry. Entries in
// the table are word addresses.
func (abr *Abbreviations) WordAddress(entry int) int {
	return int(abr.mem.Uint16(abr.address+entry*2)) * 2
}
