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

package test

import (
	"github.com/zgopher/zgopher/curated"
)

// InvalidSize is the error pattern for writers created with a size of zero
// or less.
const InvalidSize = "test: invalid size for %s (%d)"

// RingWriter keeps only the most recent bytes written to it. Used to check
// the end of long output, such as a screen that has scrolled many times.
type RingWriter struct {
	buf  []byte
	size int
}

// NewRingWriter is the preferred method of initialisation for the
// RingWriter type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, curated.Errorf(InvalidSize, "RingWriter", size)
	}
	return &RingWriter{
		buf:  make([]byte, 0, size*2),
		size: size,
	}, nil
}

func (r *RingWriter) String() string {
	return string(r.buf)
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.buf = r.buf[:0]
}

// Write implements the io.Writer interface. Writes never fail.
func (r *RingWriter) Write(p []byte) (int, error) {
	if len(p) >= r.size {
		r.buf = append(r.buf[:0], p[len(p)-r.size:]...)
		return len(p), nil
	}
	r.buf = append(r.buf, p...)
	if over := len(r.buf) - r.size; over > 0 {
		r.buf = append(r.buf[:0], r.buf[over:]...)
	}
	return len(p), nil
}
