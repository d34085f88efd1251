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
	"github.com/zgopher/zgopher/hardware/memory"
)

// Abbreviations gives the byte address of an abbreviation string.
type Abbreviations interface {
	WordAddress(entry int) int
}

// Decoder turns packed z-character strings in memory into ZSCII.
type Decoder struct {
	table         *AlphabetTable
	abbreviations Abbreviations
}

// NewDecoder is the preferred method of initialisation for the Decoder
// type. The abbreviations argument can be nil, in which case abbreviations
// in a string are skipped.
func NewDecoder(table *AlphabetTable, abbreviations Abbreviations) *Decoder {
	return &Decoder{
		table:         table,
		abbreviations: abbreviations,
	}
}

// Table returns the alphabet table used by the decoder.
func (dec *Decoder) Table() *AlphabetTable {
	return dec.table
}

// Decode the string at address. If length is greater than zero then no
// more than length bytes are read, otherwise the string ends with the word
// with the top bit set.
func (dec *Decoder) Decode(mem memory.Accessor, address int, length int) String {
	return dec.decode(mem, address, length, true)
}

func (dec *Decoder) decode(mem memory.Accessor, address int, length int, abbreviations bool) String {
	zchars := ExtractZChars(mem, address, length)
	tr := NewTranslator(dec.table)

	s := make(String, 0, len(zchars))

	for i := 0; i < len(zchars); i++ {
		z := zchars[i]

		if tr.IsAbbreviation(z) {
			// a truncated abbreviation is dropped
			if i+1 >= len(zchars) {
				break
			}
			i++

			// abbreviations can not themselves contain abbreviations
			if abbreviations && dec.abbreviations != nil {
				entry := 32*(int(z)-1) + int(zchars[i])
				s = append(s, dec.decode(mem, dec.abbreviations.WordAddress(entry), 0, false)...)
			}

			tr.ResetToLastAlphabet()
			continue
		}

		if tr.WillEscapeA2(z) {
			// a truncated escape sequence can happen at the end of a
			// dictionary entry
			if i+2 >= len(zchars) {
				break
			}
			s = append(s, Char(zchars[i+1])<<5|Char(zchars[i+2]))
			i += 2
			tr.ResetToLastAlphabet()
			continue
		}

		if c := tr.Translate(z); c != Null {
			s = append(s, c)
		}
	}

	return s
}

// ExtractZChars unpacks the z-characters of the string at address. If length
// is greater than zero then no more than length bytes are considered.
// Extraction also ends at the end of memory.
func ExtractZChars(mem memory.Accessor, address int, length int) []ZChar {
	zchars := make([]ZChar, 0, 16)

	for a := address; a+1 < mem.Size(); a += 2 {
		if length > 0 && a-address >= length {
			break
		}

		w := mem.Uint16(a)
		zchars = append(zchars,
			ZChar((w>>10)&0x1f),
			ZChar((w>>5)&0x1f),
			ZChar(w&0x1f),
		)

		if w&0x8000 == 0x8000 {
			break
		}
	}

	return zchars
}

// EncodedLength returns the number of bytes used by the packed string at
// address, including the terminating word.
func EncodedLength(mem memory.Accessor, address int) int {
	a := address
	for a+1 < mem.Size() {
		w := mem.Uint16(a)
		a += 2
		if w&0x8000 == 0x8000 {
			break
		}
	}
	return a - address
}
