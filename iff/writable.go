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
)

// WritableForm accumulates chunks for serialisation as a FORM.
type WritableForm struct {
	SubID  string
	chunks []*Chunk
}

// NewWritableForm is the preferred method of initialisation for the
// WritableForm type.
func NewWritableForm(subID string) *WritableForm {
	return &WritableForm{SubID: subID}
}

// AddChunk appends a new chunk to the form. The data is not copied until
// Bytes() is called.
func (w *WritableForm) AddChunk(id string, data []uint8) {
	w.chunks = append(w.chunks, &Chunk{ID: id, Data: data})
}

// Chunks returns the chunks added so far.
func (w *WritableForm) Chunks() []*Chunk {
	return w.chunks
}

// Size returns the length of the FORM's payload as it will be written to the
// FORM header. This is the sub-type identifier plus every padded chunk.
func (w *WritableForm) Size() int {
	n := idLength
	for _, c := range w.chunks {
		n += c.paddedSize()
	}
	return n
}

// Bytes serialises the form.
func (w *WritableForm) Bytes() []uint8 {
	size := w.Size()
	b := make([]uint8, 0, headerLength+size)

	b = append(b, formID...)
	b = binary.BigEndian.AppendUint32(b, uint32(size))
	b = append(b, w.SubID...)
	for _, c := range w.chunks {
		b = append(b, c.Bytes()...)
	}

	return b
}
