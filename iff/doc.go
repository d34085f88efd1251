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

// Package iff reads and writes the chunk container format used by both Blorb
// resource files and Quetzal save files.
//
// A chunk is a four character identifier, a big-endian 32bit length and the
// payload. The payload of a chunk is padded to an even number of bytes. The
// pad byte is not included in the length.
//
// A FORM is a chunk whose payload begins with a four character sub-type
// identifier which is followed by a sequence of chunks. ReadForm() parses a
// FORM without copying the payloads of the contained chunks.
//
// WritableForm is used to build a new FORM, one chunk at a time, and to
// serialise it.
package iff
