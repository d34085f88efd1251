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

// Package dictionary implements the dictionary tables of the Z-Machine and
// the abbreviations table.
//
// A dictionary starts with a list of separator characters, followed by the
// length of each entry, the number of entries and then the entries
// themselves. The first four (versions 1 to 3) or six (version 4 onwards)
// bytes of each entry are the encoded text of the word.
//
// The story's own dictionary is represented by the Default type, which
// decodes every entry once and looks up words with a map. Dictionaries
// supplied at runtime to the tokenise instruction are represented by the
// User type.
package dictionary
