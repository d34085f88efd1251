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

package iff

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zgopher/zgopher/curated"
)

const formID = "FORM"

// Form is a FORM chunk and the chunks it contains.
type Form struct {
	SubID  string
	chunks []*Chunk
}

func (f *Form) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s):", formID, f.SubID))
	for _, c := range f.chunks {
		s.WriteString(fmt.Sprintf(" %s[%d]", c.ID, c.Size()))
	}
	return s.String()
}

// ReadForm parses the data as a FORM. Chunks in the form refer to the data
// and do not copy it.
func ReadForm(data []uint8) (*Form, error) {
	if len(data) < headerLength+idLength {
		return nil, curated.Errorf(NotIFF, "too short")
	}

	if string(data[:idLength]) != formID {
		return nil, curated.Errorf(NotIFF, "missing FORM")
	}

	size := int(binary.BigEndian.Uint32(data[idLength:]))
	end := headerLength + size
	if end > len(data) {
		// some files in the wild have a FORM length longer than the file
		// itself. the chunk walk will still catch truncated chunks
		end = len(data)
	}

	f := &Form{
		SubID: string(data[headerLength : headerLength+idLength]),
	}

	offset := headerLength + idLength
	for offset+headerLength <= end {
		c, err := readChunk(data, offset)
		if err != nil {
			return nil, curated.Errorf("iff: %v", err)
		}
		f.chunks = append(f.chunks, c)
		offset += c.paddedSize()
	}

	return f, nil
}

// Chunks returns all chunks in the order they appear in the form.
func (f *Form) Chunks() []*Chunk {
	return f.chunks
}

// Chunk returns the first chunk with the specified identifier. Returns nil if
// there is no such chunk.
func (f *Form) Chunk(id string) *Chunk {
	for _, c := range f.chunks {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ChunksWithID returns all the chunks with the specified identifier.
func (f *Form) ChunksWithID(id string) []*Chunk {
	var r []*Chunk
	for _, c := range f.chunks {
		if c.ID == id {
			r = append(r, c)
		}
	}
	return r
}

// ChunkAtAddress returns the chunk whose header is at the specified offset of
// the original data. Returns nil if there is no such chunk.
func (f *Form) ChunkAtAddress(address int) *Chunk {
	for _, c := range f.chunks {
		if c.Address == address {
			return c
		}
	}
	return nil
}
