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

package header

// Flag identifies one of the single bit header attributes.
type Flag int

// List of valid Flag values.
const (
	Transcripting Flag = iota
	ForceFixedFont
	UseMouse
	TimedInput
	FixedFont
	Bold
	Italic
	ScreenSplit
	StatusLine
	VariableDefaultFont
	Colours
	ScoreGame
)

func (f Flag) String() string {
	switch f {
	case Transcripting:
		return "transcripting"
	case ForceFixedFont:
		return "force fixed font"
	case UseMouse:
		return "use mouse"
	case TimedInput:
		return "timed input"
	case FixedFont:
		return "fixed font"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case ScreenSplit:
		return "screen split"
	case StatusLine:
		return "status line"
	case VariableDefaultFont:
		return "variable default font"
	case Colours:
		return "colours"
	case ScoreGame:
		return "score game"
	}
	return "unknown flag"
}

// the location of a flag in the header
type flagBit struct {
	address int
	mask    uint8
}

// flag locations. ScoreGame is a special case because it is true when the
// bit is clear.
var flagBits = map[Flag]flagBit{
	Transcripting:       {address: flags2, mask: 0x01},
	ForceFixedFont:      {address: flags2, mask: 0x02},
	UseMouse:            {address: flags2, mask: 0x20},
	TimedInput:          {address: flags1, mask: 0x80},
	FixedFont:           {address: flags1, mask: 0x10},
	Bold:                {address: flags1, mask: 0x04},
	Italic:              {address: flags1, mask: 0x08},
	ScreenSplit:         {address: flags1, mask: 0x20},
	StatusLine:          {address: flags1, mask: 0x10},
	VariableDefaultFont: {address: flags1, mask: 0x40},
	Colours:             {address: flags1, mask: 0x01},
	ScoreGame:           {address: flags1, mask: 0x02},
}

// IsEnabled returns the state of the flag.
func (hdr *Header) IsEnabled(f Flag) bool {
	b, ok := flagBits[f]
	if !ok {
		return false
	}
	set := hdr.mem.Uint8(b.address)&b.mask == b.mask
	if f == ScoreGame {
		return !set
	}
	return set
}

// SetEnabled changes the state of the flag.
func (hdr *Header) SetEnabled(f Flag, enabled bool) {
	b, ok := flagBits[f]
	if !ok {
		return
	}
	if f == ScoreGame {
		enabled = !enabled
	}
	v := hdr.mem.Uint8(b.address)
	if enabled {
		v |= b.mask
	} else {
		v &^= b.mask
	}
	hdr.mem.SetUint8(b.address, v)
}
