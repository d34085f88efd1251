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

// Translator is the state machine that turns a stream of z-characters into
// ZSCII characters. Its state is the current alphabet, an optional locked
// alphabet and the shift-lock flag.
type Translator struct {
	table *AlphabetTable

	current Alphabet

	// the alphabet to return to after a temporary shift. only meaningful
	// when hasLock is true
	lock    Alphabet
	hasLock bool

	shiftLock bool
}

// NewTranslator is the preferred method of initialisation for the Translator
// type.
func NewTranslator(table *AlphabetTable) *Translator {
	tr := &Translator{table: table}
	tr.Reset()
	return tr
}

// Reset the translator to alphabet A0 with no locked alphabet.
func (tr *Translator) Reset() {
	tr.current = A0
	tr.hasLock = false
	tr.shiftLock = false
}

// ResetToLastAlphabet returns the translator to the locked alphabet or to A0
// if there is no locked alphabet.
func (tr *Translator) ResetToLastAlphabet() {
	if tr.hasLock {
		tr.current = tr.lock
		tr.shiftLock = true
	} else {
		tr.current = A0
	}
}

// Alphabet returns the current alphabet.
func (tr *Translator) Alphabet() Alphabet {
	return tr.current
}

// Translate a single z-character. Shift characters change the state of the
// translator and return Null.
func (tr *Translator) Translate(z ZChar) Char {
	if tr.shift(z) {
		return Null
	}

	var c Char
	if z <= alphabetEnd {
		c = tr.table.Char(tr.current, z)
	} else {
		c = Char('?')
	}

	if !tr.shiftLock {
		tr.ResetToLastAlphabet()
	}

	return c
}

// WillEscapeA2 returns true if the z-character begins a 10bit ZSCII escape
// sequence in the current state.
func (tr *Translator) WillEscapeA2(z ZChar) bool {
	return tr.current == A2 && z == A2Escape
}

// IsAbbreviation returns true if the z-character introduces an abbreviation.
func (tr *Translator) IsAbbreviation(z ZChar) bool {
	return tr.table.IsAbbreviation(z)
}

// Element returns the alphabet and z-character for a ZSCII character. The
// boolean is false if the character is in none of the alphabets.
func (tr *Translator) Element(c Char) (Alphabet, ZChar, bool) {
	if c == Newline || c == Newline10 {
		a, z := tr.table.Newline()
		return a, z, true
	}
	for a := A0; a <= A2; a++ {
		if z, ok := tr.table.Code(a, c); ok {
			return a, z, true
		}
	}
	return A0, 0, false
}

func (tr *Translator) shift(z ZChar) bool {
	if !tr.table.IsShift(z) {
		return false
	}

	if tr.table.IsShift1(z) {
		tr.current = (tr.current + 1) % 3
	} else {
		tr.current = (tr.current + 2) % 3
	}

	tr.shiftLock = tr.table.IsShiftLock(z)
	if tr.shiftLock {
		tr.lock = tr.current
		tr.hasLock = true
	}

	return true
}
