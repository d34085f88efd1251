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

// EncodedSize is the number of bytes produced by the Encoder.
const EncodedSize = 6

// MaxEncodedChars is the maximum number of characters considered when
// encoding.
const MaxEncodedChars = 9

// the pad word used for entirely unused words
const padWord = 0x14a5

// Encoder turns ZSCII into the packed z-character form used by dictionary
// entries. The encoded form is always six bytes long.
//
// Shifts are always encoded as temporary shifts so the encoder should not be
// used with the alphabet tables of version 1 and 2 stories.
type Encoder struct {
	translator *Translator
}

// NewEncoder is the preferred method of initialisation for the Encoder type.
func NewEncoder(table *AlphabetTable) *Encoder {
	return &Encoder{
		translator: NewTranslator(table),
	}
}

type encoderState struct {
	out    [EncodedSize]uint8
	target int
	word   uint16
	pos    int
}

func (st *encoderState) slotsLeft() int {
	return (2-st.target/2)*3 + (3 - st.pos)
}

func (st *encoderState) put(z ZChar) {
	if st.target >= EncodedSize {
		return
	}

	st.word |= uint16(z&0x1f) << ((2 - st.pos) * 5)
	st.pos++

	if st.pos > 2 {
		st.flush()
	}
}

func (st *encoderState) flush() {
	st.out[st.target] = uint8(st.word >> 8)
	st.out[st.target+1] = uint8(st.word)
	st.target += 2
	st.word = 0
	st.pos = 0
}

// Encode no more than MaxEncodedChars characters of the string.
//
// An incomplete final word is padded with z-character 5 and any unused words
// are filled with the pattern 0x14a5. The terminator bit is always set on
// the last of the three words.
func (enc *Encoder) Encode(s String) [EncodedSize]uint8 {
	if len(s) > MaxEncodedChars {
		s = s[:MaxEncodedChars]
	}

	var st encoderState

	for _, c := range s {
		if c == Char(' ') {
			st.put(0)
			continue
		}

		alphabet, z, ok := enc.translator.Element(c)
		if !ok {
			// the four z-character escape sequence is never split across
			// the end of the encoded string. if there is not enough room
			// the remaining slots are padded instead
			left := st.slotsLeft()
			if left >= 4 {
				st.put(Shift5)
				st.put(A2Escape)
				st.put(ZChar((c >> 5) & 0x1f))
				st.put(ZChar(c & 0x1f))
			} else {
				for i := 0; i < left; i++ {
					st.put(Shift5)
				}
			}
			continue
		}

		switch alphabet {
		case A1:
			st.put(Shift4)
		case A2:
			st.put(Shift5)
		}
		st.put(z)
	}

	// pad incomplete word
	if st.pos > 0 && st.target < EncodedSize {
		for st.pos != 0 {
			st.put(Shift5)
		}
	}

	for ; st.target < EncodedSize; st.target += 2 {
		st.out[st.target] = padWord >> 8
		st.out[st.target+1] = padWord & 0xff
	}

	st.out[EncodedSize-2] |= 0x80

	return st.out
}
