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

// Package header is a typed view of the story file header. The header
// occupies the first 64 bytes of memory and describes the layout of the rest
// of the story file. Some fields are written by the interpreter to describe
// its capabilities to the story.
//
// The Header type does not hold any data of its own. All reads and writes
// go directly to the underlying memory.
package header
