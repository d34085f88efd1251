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

// Package zscii implements the text handling of the Z-Machine. Text is
// stored in story files as a sequence of 5-bit z-characters, packed three to
// a 16bit word. The z-characters select characters from one of three
// alphabets, with some z-characters being reserved for shifting between
// alphabets, for abbreviations and for escaping into a full 10bit ZSCII
// code.
//
// The ZSCII character set itself is a superset of ASCII, with codes reserved
// for input keys and a range of "extra" characters which are mapped to
// unicode by an AccentTable.
//
// The Encoding type translates between ZSCII and unicode. Decoding and
// encoding of z-character strings is performed by the Decoder and Encoder
// types respectively. Both require an AlphabetTable, selected by the version
// of the story file with the NewAlphabetTable() function or read from memory
// with NewCustomAlphabetTable().
package zscii
