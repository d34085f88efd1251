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

// ZChar is a 5-bit character code, as packed into text strings.
type ZChar uint8

// Alphabet identifies one of the three alphabets of an AlphabetTable.
type Alphabet int

// List of valid Alphabet values.
const (
	A0 Alphabet = iota
	A1
	A2
)

func (a Alphabet) String() string {
	switch a {
	case A0:
		return "A0"
	case A1:
		return "A1"
	case A2:
		return "A2"
	}
	return "unknown alphabet"
}

// List of z-characters with special meaning.
const (
	Shift2   ZChar = 0x02
	Shift3   ZChar = 0x03
	Shift4   ZChar = 0x04
	Shift5   ZChar = 0x05
	A2Escape ZChar = 0x06

	alphabetStart = 6
	alphabetEnd   = 31
	alphabetSize  = 26
)

const (
	rowA0   = "abcdefghijklmnopqrstuvwxyz"
	rowA1   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rowA2   = " \n0123456789.,!?_#'\"/\\-:()"
	rowA2V1 = " 0123456789.,!?_#'\"/\\<-:()"
)

// the three families of alphabet behaviour
type shiftModel int

const (
	// version 1: zchar 1 is a newline and there are no abbreviations.
	// shifts 2/3 are temporary and 4/5 are locking
	modelV1 shiftModel = iota

	// version 2: as version 1 except that zchar 1 is an abbreviation
	modelV2

	// version 3 onwards: zchars 1 to 3 are abbreviations. 4/5 are
	// temporary shifts and there are no locking shifts
	modelV3
)

// AlphabetTable maps z-characters to ZSCII and back again. The variant is
// resolved when the table is created and never changes.
type AlphabetTable struct {
	rows  [3][alphabetSize]Char
	model shiftModel
}

func fillRow(row *[alphabetSize]Char, chars string) {
	for i, r := range []rune(chars) {
		row[i] = Char(r)
	}
}

// NewAlphabetTable returns the standard alphabet table for the story
// version.
func NewAlphabetTable(version int) *AlphabetTable {
	tab := &AlphabetTable{}
	fillRow(&tab.rows[A0], rowA0)
	fillRow(&tab.rows[A1], rowA1)

	switch version {
	case 1:
		tab.model = modelV1
		fillRow(&tab.rows[A2], rowA2V1)
	case 2:
		tab.model = modelV2
		fillRow(&tab.rows[A2], rowA2)
	default:
		tab.model = modelV3
		fillRow(&tab.rows[A2], rowA2)
	}

	return tab
}

// NewCustomAlphabetTable creates an alphabet table from the 78 bytes found at
// the address in memory. Custom tables only exist in version 5 stories and
// later and so the version 3 shift model is always used.
//
// Z-character 7 of alphabet A2 is always newline regardless of the table
// contents.
func NewCustomAlphabetTable(mem memory.Accessor, address int) *AlphabetTable {
	tab := &AlphabetTable{model: modelV3}
	for a := A0; a <= A2; a++ {
		for i := 0; i < alphabetSize; i++ {
			tab.rows[a][i] = Char(mem.Uint8(address + int(a)*alphabetSize + i))
		}
	}
	tab.rows[A2][1] = Char('\n')
	return tab
}

// Char returns the ZSCII character for the z-character in the specified
// alphabet. Z-character zero is always a space.
func (tab *AlphabetTable) Char(alphabet Alphabet, z ZChar) Char {
	if z == 0 {
		return Char(' ')
	}
	if z == 1 && tab.model == modelV1 {
		return Char('\n')
	}
	if z < alphabetStart || z > alphabetEnd {
		return Char('?')
	}
	return tab.rows[alphabet][z-alphabetStart]
}

// Code returns the z-character that represents the ZSCII character in the
// specified alphabet. The second return value is false if the character is
// not in that alphabet. The A2 escape code is never returned.
func (tab *AlphabetTable) Code(alphabet Alphabet, c Char) (ZChar, bool) {
	for i, r := range tab.rows[alphabet] {
		if alphabet == A2 && i == 0 {
			continue
		}
		if r == c {
			return ZChar(i + alphabetStart), true
		}
	}
	return 0, false
}

// Newline returns the alphabet and z-character used to encode a newline.
func (tab *AlphabetTable) Newline() (Alphabet, ZChar) {
	if tab.model == modelV1 {
		return A0, 1
	}
	return A2, 7
}

// IsAbbreviation returns true if the z-character introduces an
// abbreviation.
func (tab *AlphabetTable) IsAbbreviation(z ZChar) bool {
	switch tab.model {
	case modelV1:
		return false
	case modelV2:
		return z == 1
	}
	return z >= 1 && z <= 3
}

// IsShift1 returns true if the z-character shifts "up" an alphabet.
func (tab *AlphabetTable) IsShift1(z ZChar) bool {
	if tab.model == modelV3 {
		return z == Shift4
	}
	return z == Shift2 || z == Shift4
}

// IsShift2 returns true if the z-character shifts "down" an alphabet.
func (tab *AlphabetTable) IsShift2(z ZChar) bool {
	if tab.model == modelV3 {
		return z == Shift5
	}
	return z == Shift3 || z == Shift5
}

// IsShiftLock returns true if the z-character is a locking shift.
func (tab *AlphabetTable) IsShiftLock(z ZChar) bool {
	if tab.model == modelV3 {
		return false
	}
	return z == Shift4 || z == Shift5
}

// IsShift returns true if the z-character is any kind of shift.
func (tab *AlphabetTable) IsShift(z ZChar) bool {
	return tab.IsShift1(z) || tab.IsShift2(z)
}
