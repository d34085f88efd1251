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

package streams

import (
	"io"
	"strings"
)

// lineStream buffers output a line at a time so that DELETE characters can
// be honoured
type lineStream struct {
	opener Opener
	w      io.WriteCloser
	line   []rune
}

func newLineStream(opener Opener) *lineStream {
	return &lineStream{opener: opener}
}

func (ls *lineStream) open() error {
	if ls.w != nil {
		return nil
	}
	if ls.opener == nil {
		return io.ErrClosedPipe
	}
	w, err := ls.opener()
	if err != nil {
		return err
	}
	ls.w = w
	return nil
}

func (ls *lineStream) add(r rune) {
	ls.line = append(ls.line, r)
}

func (ls *lineStream) delete() {
	if len(ls.line) > 0 {
		ls.line = ls.line[:len(ls.line)-1]
	}
}

func (ls *lineStream) newline() error {
	ls.line = append(ls.line, '\n')
	return ls.flush()
}

func (ls *lineStream) flush() error {
	if ls.w == nil || len(ls.line) == 0 {
		return nil
	}
	var s strings.Builder
	for _, r := range ls.line {
		s.WriteRune(r)
	}
	ls.line = ls.line[:0]
	_, err := io.WriteString(ls.w, s.String())
	return err
}

func (ls *lineStream) close() error {
	if ls.w == nil {
		return nil
	}
	err := ls.flush()
	if cerr := ls.w.Close(); err == nil {
		err = cerr
	}
	ls.w = nil
	return err
}
