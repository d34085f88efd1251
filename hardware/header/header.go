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

import (
	"fmt"
	"strings"

	"github.com/zgopher/zgopher/hardware/memory"
)

// Size of the header in bytes.
const Size = 64

// field addresses
const (
	version            = 0x00
	flags1             = 0x01
	release            = 0x02
	highMemory         = 0x04
	programStart       = 0x06
	dictionary         = 0x08
	objectTable        = 0x0a
	globals            = 0x0c
	staticMemory       = 0x0e
	flags2             = 0x10
	serial             = 0x12
	abbreviations      = 0x18
	fileLength         = 0x1a
	checksum           = 0x1c
	interpreterNumber  = 0x1e
	interpreterVersion = 0x1f
	screenHeight       = 0x20
	screenWidth        = 0x21
	screenWidthUnits   = 0x22
	screenHeightUnits  = 0x24
	fontWidthV5        = 0x26
	fontHeightV5       = 0x27
	routineOffset      = 0x28
	stringOffset       = 0x2a
	defaultBackground  = 0x2c
	defaultForeground  = 0x2d
	terminators        = 0x2e
	stream3Width       = 0x30
	standardMajor      = 0x32
	standardMinor      = 0x33
	alphabetTable      = 0x34
	extensionTable     = 0x36
)

// Header is a typed view over the first 64 bytes of story memory.
type Header struct {
	mem memory.Accessor
}

// NewHeader is the preferred method of initialisation for the Header type.
func NewHeader(mem memory.Accessor) *Header {
	return &Header{mem: mem}
}

func (hdr *Header) String() string {
	return fmt.Sprintf("v%d release %d serial %s", hdr.Version(), hdr.Release(), hdr.Serial())
}

// Version of the story file.
func (hdr *Header) Version() int {
	return int(hdr.mem.Uint8(version))
}

// Release number of the story file.
func (hdr *Header) Release() int {
	return int(hdr.mem.Uint16(release))
}

// HighMemory returns the base address of high memory.
func (hdr *Header) HighMemory() int {
	return int(hdr.mem.Uint16(highMemory))
}

// ProgramStart returns the initial value of the program counter. For
// version 6 stories this is the packed address of the main routine.
func (hdr *Header) ProgramStart() int {
	return int(hdr.mem.Uint16(programStart))
}

// Dictionary returns the address of the dictionary.
func (hdr *Header) Dictionary() int {
	return int(hdr.mem.Uint16(dictionary))
}

// ObjectTable returns the address of the object table.
func (hdr *Header) ObjectTable() int {
	return int(hdr.mem.Uint16(objectTable))
}

// Globals returns the address of the global variables table.
func (hdr *Header) Globals() int {
	return int(hdr.mem.Uint16(globals))
}

// StaticMemory returns the base address of static memory. Everything below
// this address is dynamic memory.
func (hdr *Header) StaticMemory() int {
	return int(hdr.mem.Uint16(staticMemory))
}

// Serial number of the story file. Normally the compilation date in the
// form YYMMDD.
func (hdr *Header) Serial() string {
	var s strings.Builder
	for i := 0; i < 6; i++ {
		s.WriteByte(hdr.mem.Uint8(serial + i))
	}
	return s.String()
}

// Abbreviations returns the address of the abbreviations table.
func (hdr *Header) Abbreviations() int {
	return int(hdr.mem.Uint16(abbreviations))
}

// FileLength returns the length of the story file in bytes. The stored value
// is scaled according to the version of the story.
func (hdr *Header) FileLength() int {
	l := int(hdr.mem.Uint16(fileLength))
	switch v := hdr.Version(); {
	case v <= 3:
		return l * 2
	case v <= 5:
		return l * 4
	}
	return l * 8
}

// Checksum stored in the header.
func (hdr *Header) Checksum() int {
	return int(hdr.mem.Uint16(checksum))
}

// InterpreterNumber returns the interpreter type number.
func (hdr *Header) InterpreterNumber() int {
	return int(hdr.mem.Uint8(interpreterNumber))
}

// SetInterpreterNumber sets the interpreter type number.
func (hdr *Header) SetInterpreterNumber(n int) {
	hdr.mem.SetUint8(interpreterNumber, uint8(n))
}

// InterpreterVersion returns the raw interpreter version byte.
func (hdr *Header) InterpreterVersion() int {
	return int(hdr.mem.Uint8(interpreterVersion))
}

// SetInterpreterVersion sets the interpreter version. For version 4 and 5
// stories the version is stored as an ASCII digit.
func (hdr *Header) SetInterpreterVersion(v int) {
	switch hdr.Version() {
	case 4, 5:
		hdr.mem.SetUint8(interpreterVersion, fmt.Sprintf("%d", v)[0])
	default:
		hdr.mem.SetUint8(interpreterVersion, uint8(v))
	}
}

// ScreenHeight returns the screen height in lines.
func (hdr *Header) ScreenHeight() int {
	return int(hdr.mem.Uint8(screenHeight))
}

// SetScreenHeight sets the screen height in lines.
func (hdr *Header) SetScreenHeight(lines int) {
	hdr.mem.SetUint8(screenHeight, uint8(lines))
}

// ScreenWidth returns the screen width in characters.
func (hdr *Header) ScreenWidth() int {
	return int(hdr.mem.Uint8(screenWidth))
}

// SetScreenWidth sets the screen width in characters.
func (hdr *Header) SetScreenWidth(chars int) {
	hdr.mem.SetUint8(screenWidth, uint8(chars))
}

// ScreenWidthUnits returns the screen width in units.
func (hdr *Header) ScreenWidthUnits() int {
	return int(hdr.mem.Uint16(screenWidthUnits))
}

// SetScreenWidthUnits sets the screen width in units.
func (hdr *Header) SetScreenWidthUnits(units int) {
	hdr.mem.SetUint16(screenWidthUnits, uint16(units))
}

// ScreenHeightUnits returns the screen height in units.
func (hdr *Header) ScreenHeightUnits() int {
	return int(hdr.mem.Uint16(screenHeightUnits))
}

// SetScreenHeightUnits sets the screen height in units.
func (hdr *Header) SetScreenHeightUnits(units int) {
	hdr.mem.SetUint16(screenHeightUnits, uint16(units))
}

// the font width and height bytes are swapped in version 6
func (hdr *Header) fontAddresses() (int, int) {
	if hdr.Version() == 6 {
		return fontHeightV5, fontWidthV5
	}
	return fontWidthV5, fontHeightV5
}

// FontWidth returns the width of a character in units.
func (hdr *Header) FontWidth() int {
	w, _ := hdr.fontAddresses()
	return int(hdr.mem.Uint8(w))
}

// SetFontWidth sets the width of a character in units.
func (hdr *Header) SetFontWidth(units int) {
	w, _ := hdr.fontAddresses()
	hdr.mem.SetUint8(w, uint8(units))
}

// FontHeight returns the height of a character in units.
func (hdr *Header) FontHeight() int {
	_, h := hdr.fontAddresses()
	return int(hdr.mem.Uint8(h))
}

// SetFontHeight sets the height of a character in units.
func (hdr *Header) SetFontHeight(units int) {
	_, h := hdr.fontAddresses()
	hdr.mem.SetUint8(h, uint8(units))
}

// RoutineOffset is used when unpacking routine addresses in version 6 and
// 7 stories.
func (hdr *Header) RoutineOffset() int {
	return int(hdr.mem.Uint16(routineOffset))
}

// StringOffset is used when unpacking string addresses in version 6 and 7
// stories.
func (hdr *Header) StringOffset() int {
	return int(hdr.mem.Uint16(stringOffset))
}

// DefaultBackground returns the default background colour.
func (hdr *Header) DefaultBackground() int {
	return int(hdr.mem.Uint8(defaultBackground))
}

// SetDefaultBackground sets the default background colour.
func (hdr *Header) SetDefaultBackground(colour int) {
	hdr.mem.SetUint8(defaultBackground, uint8(colour))
}

// DefaultForeground returns the default foreground colour.
func (hdr *Header) DefaultForeground() int {
	return int(hdr.mem.Uint8(defaultForeground))
}

// SetDefaultForeground sets the default foreground colour.
func (hdr *Header) SetDefaultForeground(colour int) {
	hdr.mem.SetUint8(defaultForeground, uint8(colour))
}

// Terminators returns the address of the terminating characters table.
func (hdr *Header) Terminators() int {
	return int(hdr.mem.Uint16(terminators))
}

// Stream3Width returns the width of the text last written to output stream
// 3.
func (hdr *Header) Stream3Width() int {
	return int(hdr.mem.Uint16(stream3Width))
}

// SetStream3Width sets the width of the text written to output stream 3.
func (hdr *Header) SetStream3Width(units int) {
	hdr.mem.SetUint16(stream3Width, uint16(units))
}

// StandardRevision returns the revision of the standard supported by the
// interpreter.
func (hdr *Header) StandardRevision() (int, int) {
	return int(hdr.mem.Uint8(standardMajor)), int(hdr.mem.Uint8(standardMinor))
}

// SetStandardRevision sets the revision of the standard supported by the
// interpreter.
func (hdr *Header) SetStandardRevision(major int, minor int) {
	hdr.mem.SetUint8(standardMajor, uint8(major))
	hdr.mem.SetUint8(standardMinor, uint8(minor))
}

// AlphabetTable returns the address of the custom alphabet table. Zero if
// the standard alphabet table should be used.
func (hdr *Header) AlphabetTable() int {
	return int(hdr.mem.Uint16(alphabetTable))
}

// ExtensionTable returns the address of the header extension table.
func (hdr *Header) ExtensionTable() int {
	return int(hdr.mem.Uint16(extensionTable))
}

// the number of words in the extension table
func (hdr *Header) extensionWords() int {
	ext := hdr.ExtensionTable()
	if ext == 0 {
		return 0
	}
	return int(hdr.mem.Uint16(ext))
}

// SetMouseCoordinates stores the mouse position in the extension table, if
// the table has room for it.
func (hdr *Header) SetMouseCoordinates(x int, y int) {
	ext := hdr.ExtensionTable()
	n := hdr.extensionWords()
	if n >= 1 {
		hdr.mem.SetUint16(ext+2, uint16(x))
	}
	if n >= 2 {
		hdr.mem.SetUint16(ext+4, uint16(y))
	}
}

// MouseCoordinates returns the mouse position as stored in the extension
// table.
func (hdr *Header) MouseCoordinates() (int, int) {
	var x, y int
	ext := hdr.ExtensionTable()
	n := hdr.extensionWords()
	if n >= 1 {
		x = int(hdr.mem.Uint16(ext + 2))
	}
	if n >= 2 {
		y = int(hdr.mem.Uint16(ext + 4))
	}
	return x, y
}

// AccentTable returns the address of the unicode translation table. Zero if
// there is no such table.
func (hdr *Header) AccentTable() int {
	if hdr.extensionWords() >= 3 {
		return int(hdr.mem.Uint16(hdr.ExtensionTable() + 6))
	}
	return 0
}

// Dump writes the raw header bytes in a readable form.
func (hdr *Header) Dump() string {
	var s strings.Builder
	for i := 0; i < Size && i < hdr.mem.Size(); i++ {
		s.WriteString(fmt.Sprintf("%02x: %02x\n", i, hdr.mem.Uint8(i)))
	}
	return s.String()
}
