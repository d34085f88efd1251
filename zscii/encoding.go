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
	"strings"
	"unicode"
)

// Char is a single ZSCII character. Character codes above 255 are used to
// carry unicode characters that have no ZSCII equivalent.
type Char uint16

// String is a sequence of ZSCII characters.
type String []Char

// List of special ZSCII codes.
const (
	Null      Char = 0
	Delete    Char = 8
	Newline10 Char = 10
	Newline   Char = 13
	Escape    Char = 27

	CursorUp    Char = 129
	CursorDown  Char = 130
	CursorLeft  Char = 131
	CursorRight Char = 132

	// function keys and keypad keys are all in the range 133 to 154
	FunctionKeyF1 Char = 133
	Keypad0       Char = 145

	MenuClick        Char = 252
	MouseDoubleClick Char = 253
	MouseSingleClick Char = 254

	AsciiStart  Char = 32
	AsciiEnd    Char = 126
	AccentStart Char = 155
	AccentEnd   Char = 251

	UnicodeStart Char = 256
)

// IsAscii returns true if the character is in the printable ASCII range.
func IsAscii(c Char) bool {
	return c >= AsciiStart && c <= AsciiEnd
}

// IsAccent returns true if the character is in the range reserved for the
// extra characters defined by the accent table.
func IsAccent(c Char) bool {
	return c >= AccentStart && c <= AccentEnd
}

// IsCursorKey returns true if the character is one of the four cursor keys.
func IsCursorKey(c Char) bool {
	return c >= CursorUp && c <= CursorRight
}

// IsFunctionKey returns true if the character is a function key. Mouse clicks
// and cursor keys are treated as function keys in this context.
func IsFunctionKey(c Char) bool {
	return (c >= CursorUp && c <= 154) || (c >= MenuClick && c <= MouseSingleClick)
}

func isUnicode(c Char) bool {
	return c >= UnicodeStart
}

// Encoding translates between ZSCII and unicode using the specified accent
// table.
type Encoding struct {
	accents AccentTable
}

// NewEncoding is the preferred method of initialisation for the Encoding
// type. If accents is nil then the default table is used.
func NewEncoding(accents AccentTable) *Encoding {
	if accents == nil {
		accents = DefaultAccentTable
	}
	return &Encoding{accents: accents}
}

// IsZsciiChar returns true if the character is a valid ZSCII output
// character.
func (enc *Encoding) IsZsciiChar(c Char) bool {
	switch c {
	case Null, Delete, Newline, Escape:
		return true
	}
	return IsAscii(c) || IsAccent(c) || isUnicode(c)
}

// IsConvertible returns true if the unicode character has a ZSCII
// representation.
func (enc *Encoding) IsConvertible(r rune) bool {
	c := Char(r)
	if r > 0xffff {
		return false
	}
	return IsAscii(c) || enc.accentIndex(r) >= 0 || r == '\n' || r == 0 || isUnicode(c)
}

// ToUnicode converts a single ZSCII character to unicode. Characters that
// cannot be represented are returned as a question mark.
func (enc *Encoding) ToUnicode(c Char) rune {
	if IsAscii(c) {
		return rune(c)
	}
	if IsAccent(c) {
		idx := int(c - AccentStart)
		if idx < enc.accents.Len() {
			return enc.accents.Accent(idx)
		}
	}
	switch c {
	case Null:
		return 0
	case Newline, Newline10:
		return '\n'
	}
	if isUnicode(c) {
		return rune(c)
	}
	return '?'
}

// ToZscii converts a unicode character to ZSCII. Characters that have no
// ZSCII representation are returned as Null.
func (enc *Encoding) ToZscii(r rune) Char {
	if r >= rune(AsciiStart) && r <= rune(AsciiEnd) {
		return Char(r)
	}
	if idx := enc.accentIndex(r); idx >= 0 {
		return Char(idx) + AccentStart
	}
	if r == '\n' {
		return Newline
	}
	return Null
}

// ToLower returns the lower case version of the ZSCII character. Accented
// characters are lowered by finding the equivalent entry in the accent
// table.
func (enc *Encoding) ToLower(c Char) Char {
	if IsAscii(c) {
		return Char(unicode.ToLower(rune(c)))
	}
	if IsAccent(c) {
		idx := int(c - AccentStart)
		if idx < enc.accents.Len() {
			return Char(enc.accents.LowerIndex(idx)) + AccentStart
		}
	}
	return c
}

// Decode converts a ZSCII string to a unicode string.
func (enc *Encoding) Decode(s String) string {
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(enc.ToUnicode(c))
	}
	return b.String()
}

// Encode converts a unicode string to ZSCII. Unconvertible characters are
// replaced with Null.
func (enc *Encoding) Encode(s string) String {
	z := make(String, 0, len(s))
	for _, r := range s {
		z = append(z, enc.ToZscii(r))
	}
	return z
}

func (enc *Encoding) accentIndex(r rune) int {
	for i := 0; i < enc.accents.Len(); i++ {
		if enc.accents.Accent(i) == r {
			return i
		}
	}
	return -1
}
