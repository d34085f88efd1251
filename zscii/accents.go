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

package zscii

import (
	"unicode"

	"github.com/zgopher/zgopher/hardware/memory"
)

// AccentTable maps the extra characters of ZSCII (codes 155 onwards) to
// unicode.
type AccentTable interface {
	// the number of entries in the table
	Len() int

	// the unicode character at the table index. index is zero based (ie.
	// ZSCII code minus 155)
	Accent(index int) rune

	// the index of the lower case variant of the character at index. if
	// there is no lower case variant in the table then index is returned
	LowerIndex(index int) int
}

// the unicode translation table used when the story file does not supply
// one of its own
var defaultAccents = []rune{
	'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß', '»', '«', 'ë', 'ï', 'ÿ', 'Ë', 'Ï',
	'á', 'é', 'í', 'ó', 'ú', 'ý', 'Á', 'É', 'Í', 'Ó', 'Ú', 'Ý',
	'à', 'è', 'ì', 'ò', 'ù', 'À', 'È', 'Ì', 'Ò', 'Ù',
	'â', 'ê', 'î', 'ô', 'û', 'Â', 'Ê', 'Î', 'Ô', 'Û',
	'å', 'Å', 'ø', 'Ø', 'ã', 'ñ', 'õ', 'Ã', 'Ñ', 'Õ',
	'æ', 'Æ', 'ç', 'Ç', 'þ', 'ð', 'Þ', 'Ð', '£', 'œ', 'Œ', '¡', '¿',
}

type defaultAccentTable struct{}

// DefaultAccentTable is the standard unicode translation table.
var DefaultAccentTable AccentTable = defaultAccentTable{}

func (defaultAccentTable) Len() int {
	return len(defaultAccents)
}

func (defaultAccentTable) Accent(index int) rune {
	if index < 0 || index >= len(defaultAccents) {
		return '?'
	}
	return defaultAccents[index]
}

func (tab defaultAccentTable) LowerIndex(index int) int {
	return lowerIndex(tab, index)
}

// CustomAccentTable is the unicode translation table supplied by the story
// file (through the header extension table). The first byte of the table is
// the number of entries. Each entry is a 16bit unicode value.
type CustomAccentTable struct {
	mem     memory.Accessor
	address int
}

// NewCustomAccentTable is the preferred method of initialisation for the
// CustomAccentTable type. An address of zero results in an empty table.
func NewCustomAccentTable(mem memory.Accessor, address int) *CustomAccentTable {
	return &CustomAccentTable{
		mem:     mem,
		address: address,
	}
}

// Len implements the AccentTable interface.
func (tab *CustomAccentTable) Len() int {
	if tab.address == 0 {
		return 0
	}
	return int(tab.mem.Uint8(tab.address))
}

// Accent implements the AccentTable interface.
func (tab *CustomAccentTable) Accent(index int) rune {
	if tab.address == 0 {
		return '?'
	}
	return rune(tab.mem.Uint16(tab.address + 1 + index*2))
}

// LowerIndex implements the AccentTable interface.
func (tab *CustomAccentTable) LowerIndex(index int) int {
	return lowerIndex(tab, index)
}

func lowerIndex(tab AccentTable, index int) int {
	lower := unicode.ToLower(tab.Accent(index))
	for i := 0; i < tab.Len(); i++ {
		if tab.Accent(i) == lower {
			return i
		}
	}
	return index
}
