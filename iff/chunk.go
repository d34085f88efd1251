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

	"github.com/zgopher/zgopher/curated"
)

// Sentinal error patterns.
const (
	NotIFF         = "iff: not a valid IFF format (%s)"
	ChunkTruncated = "iff: chunk %s at %#x is truncated"
)

// length of chunk identifier and the length field.
const (
	idLength     = 4
	headerLength = 8
)

// Chunk is a single chunk in an IFF file.
type Chunk struct {
	// four character identifier
	ID string

	// the payload of the chunk, not including any pad byte. when read with
	// ReadForm() the payload is a slice of the original data
	Data []uint8

	// the offset of the chunk header in the data it was read from
	Address int
}

func (c *Chunk) String() string {
	return c.ID
}

// Size is the length of the payload as stored in the chunk header.
func (c *Chunk) Size() int {
	return len(c.Data)
}

// paddedSize returns the number of bytes the chunk occupies, including the
// header and any pad byte.
func (c *Chunk) paddedSize() int {
	return headerLength + padded(len(c.Data))
}

func padded(n int) int {
	return n + n%2
}

// readChunk returns the chunk at the specified offset.
func readChunk(data []uint8, offset int) (*Chunk, error) {
	if offset+headerLength > len(data) {
		return nil, curated.Errorf(ChunkTruncated, "header", offset)
	}

	id := string(data[offset : offset+idLength])
	size := int(binary.BigEndian.Uint32(data[offset+idLength:]))
	start := offset + headerLength
	if size < 0 || start+size > len(data) {
		return nil, curated.Errorf(ChunkTruncated, id, offset)
	}

	return &Chunk{
		ID:      id,
		Data:    data[start : start+size],
		Address: offset,
	}, nil
}

// Bytes serialises the chunk, including the header and pad byte.
func (c *Chunk) Bytes() []uint8 {
	b := make([]uint8, c.paddedSize())
	copy(b, c.ID)
	binary.BigEndian.PutUint32(b[idLength:], uint32(len(c.Data)))
	copy(b[headerLength:], c.Data)
	return b
}
