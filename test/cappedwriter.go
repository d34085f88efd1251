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
	"io"

	"github.com/zgopher/zgopher/curated"
)

// CappedWriter is an io.WriteCloser that accepts a limited number of bytes.
// It stands in for a file on a device that fills up. A write that does not
// fit is truncated and returns io.ErrShortWrite.
type CappedWriter struct {
	buf    []byte
	size   int
	closed bool
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, curated.Errorf(InvalidSize, "CappedWriter", size)
	}
	return &CappedWriter{
		buf:  make([]byte, 0, size),
		size: size,
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buf)
}

// Reset empties the writer and reopens it if it was closed.
func (c *CappedWriter) Reset() {
	c.buf = c.buf[:0]
	c.closed = false
}

// Write implements the io.Writer interface.
func (c *CappedWriter) Write(p []byte) (int, error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}
	n := min(len(p), c.size-len(c.buf))
	c.buf = append(c.buf, p[:n]...)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Close implements the io.Closer interface.
func (c *CappedWriter) Close() error {
	c.closed = true
	return nil
}

// Closed returns true if Close() has been called since the last Reset().
func (c *CappedWriter) Closed() bool {
	return c.closed
}
