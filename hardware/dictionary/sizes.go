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

package dictionary

// Sizes describes the version dependent dimensions of dictionary entries.
type Sizes struct {
	// number of bytes of encoded text in each entry
	EntryBytes int

	// maximum number of characters a dictionary word can have. tokens
	// longer than this are truncated before lookup
	MaxChars int
}

// SizesForVersion returns the dictionary Sizes for the story version.
func SizesForVersion(version int) Sizes {
	if version <= 3 {
		return Sizes{EntryBytes: 4, MaxChars: 6}
	}
	return Sizes{EntryBytes: 6, MaxChars: 9}
}
