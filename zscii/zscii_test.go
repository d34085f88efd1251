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

package zscii_test

import (
	"testing"

	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/test"
	"github.com/zgopher/zgopher/zscii"
)

// pack z-characters into a memory image, three to a word. the last word has
// the terminator bit set
func pack(zchars ...zscii.ZChar) *memory.Memory {
	for len(zchars)%3 != 0 {
		zchars = append(zchars, 5)
	}

	mem := memory.NewMemory(make([]uint8, len(zchars)/3*2))
	for i := 0; i < len(zchars); i += 3 {
		w := uint16(zchars[i])<<10 | uint16(zchars[i+1])<<5 | uint16(zchars[i+2])
		if i+3 >= len(zchars) {
			w |= 0x8000
		}
		mem.SetUint16(i/3*2, w)
	}
	return mem
}

func TestEncoding(t *testing.T) {
	enc := zscii.NewEncoding(nil)

	test.ExpectEquality(t, enc.ToUnicode('a'), 'a')
	test.ExpectEquality(t, enc.ToUnicode(155), 'ä')
	test.ExpectEquality(t, enc.ToUnicode(zscii.Newline), '\n')
	test.ExpectEquality(t, enc.ToUnicode(zscii.Newline10), '\n')
	test.ExpectEquality(t, enc.ToUnicode(zscii.Null), 0)
	test.ExpectEquality(t, enc.ToUnicode(300), 300)
	test.ExpectEquality(t, enc.ToUnicode(5), '?')
	test.ExpectEquality(t, enc.ToUnicode(250), '?')

	test.ExpectEquality(t, enc.ToZscii('a'), 'a')
	test.ExpectEquality(t, enc.ToZscii('ä'), 155)
	test.ExpectEquality(t, enc.ToZscii('¿'), 223)
	test.ExpectEquality(t, enc.ToZscii('\n'), zscii.Newline)
	test.ExpectEquality(t, enc.ToZscii('€'), zscii.Null)

	test.ExpectEquality(t, enc.ToLower('A'), 'a')
	test.ExpectEquality(t, enc.ToLower('!'), '!')
	test.ExpectEquality(t, enc.ToLower(158), 155)
	test.ExpectEquality(t, enc.ToLower(zscii.CursorUp), zscii.CursorUp)

	test.ExpectEquality(t, enc.Decode(enc.Encode("Grüße\n")), "Grüße\n")

	test.ExpectSuccess(t, zscii.IsCursorKey(zscii.CursorLeft))
	test.ExpectSuccess(t, zscii.IsFunctionKey(zscii.MouseSingleClick))
	test.ExpectFailure(t, zscii.IsFunctionKey('a'))
}

func TestCustomAccentTable(t *testing.T) {
	mem := memory.NewMemory(make([]uint8, 16))
	mem.SetUint8(4, 2)
	mem.SetUint16(5, 'Ø')
	mem.SetUint16(7, 'ø')

	tab := zscii.NewCustomAccentTable(mem, 4)
	test.ExpectEquality(t, tab.Len(), 2)
	test.ExpectEquality(t, tab.Accent(0), 'Ø')
	test.ExpectEquality(t, tab.LowerIndex(0), 1)
	test.ExpectEquality(t, tab.LowerIndex(1), 1)

	enc := zscii.NewEncoding(tab)
	test.ExpectEquality(t, enc.ToUnicode(156), 'ø')
	test.ExpectEquality(t, enc.ToUnicode(157), '?')
	test.ExpectEquality(t, enc.ToLower(155), 156)

	empty := zscii.NewCustomAccentTable(mem, 0)
	test.ExpectEquality(t, empty.Len(), 0)
	test.ExpectEquality(t, empty.Accent(0), '?')
}

func TestAlphabetTables(t *testing.T) {
	v1 := zscii.NewAlphabetTable(1)
	v2 := zscii.NewAlphabetTable(2)
	v3 := zscii.NewAlphabetTable(3)

	test.ExpectEquality(t, v3.Char(zscii.A0, 6), 'a')
	test.ExpectEquality(t, v3.Char(zscii.A1, 31), 'Z')
	test.ExpectEquality(t, v3.Char(zscii.A2, 7), '\n')
	test.ExpectEquality(t, v3.Char(zscii.A2, 8), '0')
	test.ExpectEquality(t, v3.Char(zscii.A1, 0), ' ')
	test.ExpectEquality(t, v1.Char(zscii.A2, 7), '0')
	test.ExpectEquality(t, v1.Char(zscii.A1, 1), '\n')
	test.ExpectEquality(t, v1.Char(zscii.A2, 27), '<')

	test.ExpectFailure(t, v1.IsAbbreviation(1))
	test.ExpectSuccess(t, v2.IsAbbreviation(1))
	test.ExpectFailure(t, v2.IsAbbreviation(2))
	test.ExpectSuccess(t, v3.IsAbbreviation(3))

	test.ExpectSuccess(t, v2.IsShift1(zscii.Shift2))
	test.ExpectSuccess(t, v2.IsShiftLock(zscii.Shift5))
	test.ExpectFailure(t, v2.IsShiftLock(zscii.Shift3))
	test.ExpectFailure(t, v3.IsShift(zscii.Shift2))
	test.ExpectFailure(t, v3.IsShiftLock(zscii.Shift4))

	z, ok := v3.Code(zscii.A2, '.')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, z, 18)
	_, ok = v3.Code(zscii.A0, 'A')
	test.ExpectFailure(t, ok)
	_, ok = v3.Code(zscii.A2, ' ')
	test.ExpectFailure(t, ok)
}

func TestCustomAlphabetTable(t *testing.T) {
	data := make([]uint8, 78)
	for i := range data {
		data[i] = uint8('!' + i)
	}
	tab := zscii.NewCustomAlphabetTable(memory.NewMemory(data), 0)
	test.ExpectEquality(t, tab.Char(zscii.A0, 6), '!')
	test.ExpectEquality(t, tab.Char(zscii.A1, 6), zscii.Char('!'+26))
	test.ExpectEquality(t, tab.Char(zscii.A2, 7), '\n')
	test.ExpectEquality(t, tab.Char(zscii.A2, 8), zscii.Char('!'+54))
}

func TestTranslator(t *testing.T) {
	tr := zscii.NewTranslator(zscii.NewAlphabetTable(3))
	test.ExpectEquality(t, tr.Translate(zscii.Shift4), zscii.Null)
	test.ExpectEquality(t, tr.Alphabet(), zscii.A1)
	test.ExpectEquality(t, tr.Translate(6), 'A')
	test.ExpectEquality(t, tr.Alphabet(), zscii.A0)
	test.ExpectEquality(t, tr.Translate(zscii.Shift5), zscii.Null)
	test.ExpectEquality(t, tr.Alphabet(), zscii.A2)
	test.ExpectSuccess(t, tr.WillEscapeA2(zscii.A2Escape))
	test.ExpectEquality(t, tr.Translate(9), '1')
	test.ExpectEquality(t, tr.Translate(6), 'a')

	// shift lock in version 2
	tr = zscii.NewTranslator(zscii.NewAlphabetTable(2))
	tr.Translate(zscii.Shift4)
	test.ExpectEquality(t, tr.Translate(6), 'A')
	test.ExpectEquality(t, tr.Translate(7), 'B')
	test.ExpectEquality(t, tr.Alphabet(), zscii.A1)

	// temporary shift from the locked alphabet returns to the locked alphabet
	tr.Translate(zscii.Shift2)
	test.ExpectEquality(t, tr.Alphabet(), zscii.A2)
	test.ExpectEquality(t, tr.Translate(8), '0')
	test.ExpectEquality(t, tr.Alphabet(), zscii.A1)

	tr.Reset()
	test.ExpectEquality(t, tr.Alphabet(), zscii.A0)

	a, z, ok := tr.Element('\n')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, zscii.A2)
	test.ExpectEquality(t, z, 7)
	_, _, ok = tr.Element('@')
	test.ExpectFailure(t, ok)
}

type abbreviations []int

func (a abbreviations) WordAddress(entry int) int {
	return a[entry]
}

func TestDecode(t *testing.T) {
	dec := zscii.NewDecoder(zscii.NewAlphabetTable(3), nil)

	// hello
	mem := pack(13, 10, 17, 17, 20)
	test.ExpectEquality(t, zscii.NewEncoding(nil).Decode(dec.Decode(mem, 0, 0)), "hello")
	test.ExpectEquality(t, zscii.EncodedLength(mem, 0), 4)

	// length bound stops decoding after the first word
	test.ExpectEquality(t, len(dec.Decode(mem, 0, 2)), 3)

	// escape sequence for '@'
	mem = pack(5, 6, 2, 0)
	s := dec.Decode(mem, 0, 0)
	test.DemandEquality(t, len(s), 1)
	test.ExpectEquality(t, s[0], '@')

	// truncated escape sequence
	mem = pack(5, 6, 2, 0)
	s = dec.Decode(mem, 0, 2)
	test.ExpectEquality(t, len(s), 0)
}

func TestDecodeAbbreviation(t *testing.T) {
	// "the" packed at address 0; "a" followed by abbreviation 1/2 at address 2
	mem := memory.NewMemory(make([]uint8, 4))
	mem.SetUint16(0, 0x8000|25<<10|13<<5|10)
	mem.SetUint16(2, 0x8000|6<<10|2<<5|1)

	// entry 33 (32 * (2-1) + 1) is at word address zero
	abbrevs := make(abbreviations, 64)
	abbrevs[33] = 0

	dec := zscii.NewDecoder(zscii.NewAlphabetTable(3), abbrevs)
	enc := zscii.NewEncoding(nil)
	test.ExpectEquality(t, enc.Decode(dec.Decode(mem, 2, 0)), "athe")

	// truncated abbreviation is dropped
	mem.SetUint16(2, 0x8000|6<<10|5<<5|2)
	test.ExpectEquality(t, enc.Decode(dec.Decode(mem, 2, 0)), "a")
}

func TestEncodePadding(t *testing.T) {
	encoder := zscii.NewEncoder(zscii.NewAlphabetTable(5))
	b := encoder.Encode(zscii.String{'a', 'b'})
	test.ExpectEquality(t, b, [6]uint8{0x18, 0xe5, 0x14, 0xa5, 0x94, 0xa5})

	b = encoder.Encode(zscii.String{})
	test.ExpectEquality(t, b, [6]uint8{0x14, 0xa5, 0x14, 0xa5, 0x94, 0xa5})

	// nine characters fill all three words exactly
	b = encoder.Encode(zscii.NewEncoding(nil).Encode("abcdefghijk"))
	test.ExpectEquality(t, b[4]&0x80, 0x80)
	test.ExpectEquality(t, b[0]&0x80, 0x00)
	test.ExpectEquality(t, b[2]&0x80, 0x00)
}

func TestEncodeEscapeNotSplit(t *testing.T) {
	encoder := zscii.NewEncoder(zscii.NewAlphabetTable(5))

	// seven letters leaves two slots, too few for the escape sequence
	b := encoder.Encode(zscii.NewEncoding(nil).Encode("abcdefg@"))
	mem := memory.NewMemory(b[:])
	dec := zscii.NewDecoder(zscii.NewAlphabetTable(5), nil)
	test.ExpectEquality(t, zscii.NewEncoding(nil).Decode(dec.Decode(mem, 0, zscii.EncodedSize)), "abcdefg")
}

func TestEncodeRoundTrip(t *testing.T) {
	enc := zscii.NewEncoding(nil)
	encoder := zscii.NewEncoder(zscii.NewAlphabetTable(5))
	dec := zscii.NewDecoder(zscii.NewAlphabetTable(5), nil)

	for _, s := range []string{"hello", "zork!", "Zork", "x@y", "123", "a-b", "abcdefghi"} {
		b := encoder.Encode(enc.Encode(s))
		mem := memory.NewMemory(b[:])
		test.ExpectEquality(t, enc.Decode(dec.Decode(mem, 0, zscii.EncodedSize)), s, s)
	}
}

func TestTokenize(t *testing.T) {
	enc := zscii.NewEncoding(nil)
	tokens := zscii.Tokenize(enc.Encode("  open door,then ."), enc.Encode(",."))

	expected := []struct {
		text   string
		offset int
	}{
		{"open", 2},
		{"door", 7},
		{",", 11},
		{"then", 12},
		{".", 17},
	}

	test.DemandEquality(t, len(tokens), len(expected))
	for i, e := range expected {
		test.ExpectEquality(t, enc.Decode(tokens[i].Text), e.text)
		test.ExpectEquality(t, tokens[i].Offset, e.offset)
	}
}
