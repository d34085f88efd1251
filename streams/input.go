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
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/zscii"
)

// InputStream is implemented by sources of player input.
type InputStream interface {
	// ReadChar blocks until a character is available or the context is
	// done. The context error is returned if the context is done first.
	ReadChar(ctx context.Context) (zscii.Char, error)
}

// convert a rune read from an input source to ZSCII
func toZscii(enc *zscii.Encoding, r rune) zscii.Char {
	switch r {
	case '\n', '\r':
		return zscii.Newline
	case '\b', 0x7f:
		return zscii.Delete
	case 0x1b:
		return zscii.Escape
	}
	return enc.ToZscii(r)
}

type keypress struct {
	c   zscii.Char
	err error
}

// Keyboard is an InputStream reading from an io.Reader. The reader is read
// by a goroutine so that reads can be abandoned when a context is done
// without losing the character.
type Keyboard struct {
	keys chan keypress
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The goroutine reading the reader ends when the reader returns an
// error.
func NewKeyboard(r io.Reader, enc *zscii.Encoding) *Keyboard {
	kb := &Keyboard{
		keys: make(chan keypress),
	}

	go func() {
		br := bufio.NewReader(r)
		var prev rune
		for {
			k, _, err := br.ReadRune()
			if err != nil {
				kb.keys <- keypress{err: err}
				close(kb.keys)
				return
			}

			// carriage return followed by newline is one key
			if k == '\n' && prev == '\r' {
				prev = 0
				continue
			}
			prev = k

			kb.keys <- keypress{c: toZscii(enc, k)}
		}
	}()

	return kb
}

// ReadChar implements the InputStream interface.
func (kb *Keyboard) ReadChar(ctx context.Context) (zscii.Char, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case k, ok := <-kb.keys:
		if !ok {
			return 0, io.EOF
		}
		return k.c, k.err
	}
}

// CommandFile is an InputStream reading from a previously recorded command
// script. When the script is exhausted input is read from the fallback
// stream.
type CommandFile struct {
	enc      *zscii.Encoding
	r        *bufio.Reader
	closer   io.Closer
	fallback InputStream
}

// NewCommandFile is the preferred method of initialisation for the
// CommandFile type. If the reader is also an io.Closer it is closed when
// exhausted.
func NewCommandFile(r io.Reader, enc *zscii.Encoding, fallback InputStream) *CommandFile {
	cf := &CommandFile{
		enc:      enc,
		r:        bufio.NewReader(r),
		fallback: fallback,
	}
	if c, ok := r.(io.Closer); ok {
		cf.closer = c
	}
	return cf
}

// Exhausted returns true if the command script has been read to the end.
func (cf *CommandFile) Exhausted() bool {
	return cf.r == nil
}

// ReadChar implements the InputStream interface.
func (cf *CommandFile) ReadChar(ctx context.Context) (zscii.Char, error) {
	if cf.r != nil {
		r, _, err := cf.r.ReadRune()
		if err == nil {
			if r == '\r' {
				return cf.ReadChar(ctx)
			}
			return toZscii(cf.enc, r), nil
		}
		cf.r = nil
		if cf.closer != nil {
			cf.closer.Close()
		}
		if !errors.Is(err, io.EOF) {
			return 0, err
		}
	}
	if cf.fallback == nil {
		return 0, io.EOF
	}
	return cf.fallback.ReadChar(ctx)
}

// Input manages the input streams.
type Input struct {
	keyboard InputStream
	file     InputStream
	current  int
}

// List of input streams.
const (
	KeyboardStream = 0
	FileStream     = 1
)

// UnknownInputStream is the error pattern for the selection of an input
// stream that does not exist.
const UnknownInputStream = "streams: unknown input stream (%d)"

// NewInput is the preferred method of initialisation for the Input type.
// The file stream may be nil.
func NewInput(keyboard InputStream, file InputStream) *Input {
	in := &Input{
		keyboard: keyboard,
		file:     file,
	}
	if file != nil {
		in.current = FileStream
	}
	return in
}

// Current returns the number of the selected input stream.
func (in *Input) Current() int {
	return in.current
}

// Select the input stream.
func (in *Input) Select(stream int) error {
	switch stream {
	case KeyboardStream:
	case FileStream:
		if in.file == nil {
			return curated.Errorf(UnknownInputStream, stream)
		}
	default:
		return curated.Errorf(UnknownInputStream, stream)
	}
	in.current = stream
	return nil
}

// ReadChar implements the InputStream interface.
func (in *Input) ReadChar(ctx context.Context) (zscii.Char, error) {
	if in.current == FileStream {
		return in.file.ReadChar(ctx)
	}
	if in.keyboard == nil {
		return 0, io.EOF
	}
	return in.keyboard.ReadChar(ctx)
}

// Interrupt is called when a timed read expires. If it returns true the read
// is abandoned.
type Interrupt func() (bool, error)

// ReadTimed reads a character from the input stream. If tenths is greater
// than zero and the interrupt is not nil, the interrupt is called every
// tenths of a second while waiting for input. The aborted value is true if
// the interrupt requested the read be abandoned.
func ReadTimed(ctx context.Context, in InputStream, tenths int, interrupt Interrupt) (c zscii.Char, aborted bool, err error) {
	if tenths <= 0 || interrupt == nil {
		c, err = in.ReadChar(ctx)
		return c, false, err
	}

	period := time.Duration(tenths) * time.Second / 10
	for {
		tctx, cancel := context.WithTimeout(ctx, period)
		c, err = in.ReadChar(tctx)
		cancel()

		if err == nil {
			return c, false, nil
		}
		if !errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return 0, false, err
		}

		abort, err := interrupt()
		if err != nil {
			return 0, false, err
		}
		if abort {
			return 0, true, nil
		}
	}
}
