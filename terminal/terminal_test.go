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

package terminal_test

import (
	"strings"
	"testing"

	"github.com/zgopher/zgopher/terminal"
	"github.com/zgopher/zgopher/terminal/ansi"
	"github.com/zgopher/zgopher/test"
)

func newTerminal(t *testing.T, version int, width int) (*terminal.Terminal, *strings.Builder) {
	t.Helper()
	out := &strings.Builder{}
	term := terminal.New(out, version, width, 10)
	test.DemandSuccess(t, term.Flush())
	out.Reset()
	return term, out
}

func TestWordWrap(t *testing.T) {
	term, out := newTerminal(t, 5, 10)

	_, err := term.Write([]byte("hello world foo"))
	test.ExpectSuccess(t, err)

	// the last word is held until the terminal is flushed
	test.ExpectEquality(t, out.String(), "")
	test.ExpectSuccess(t, term.Flush())
	test.ExpectEquality(t, out.String(), "hello \r\nworld foo")
}

func TestUnbuffered(t *testing.T) {
	term, out := newTerminal(t, 5, 10)
	term.SetBufferMode(false)

	_, err := term.Write([]byte("hello world"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, term.Flush())
	test.ExpectEquality(t, out.String(), "hello world")
}

func TestEcho(t *testing.T) {
	term, out := newTerminal(t, 5, 10)

	_, _ = term.Write([]byte(">"))
	term.EchoInput('a')
	term.EchoInput('b')
	term.EchoInput('\b')
	term.EchoInput('\n')
	test.ExpectEquality(t, out.String(), ">ab\b \b\r\n")
}

func TestUpperWindow(t *testing.T) {
	term, _ := newTerminal(t, 5, 20)

	term.SplitWindow(2)
	term.SetWindow(1)
	line, col := term.Cursor()
	test.ExpectEquality(t, line, 1)
	test.ExpectEquality(t, col, 1)

	// text beyond the right edge of the upper window is lost
	_, _ = term.Write([]byte("abcdefghijklmnopqrstuvwxyz"))
	line, col = term.Cursor()
	test.ExpectEquality(t, line, 1)
	test.ExpectEquality(t, col, 21)

	_, _ = term.Write([]byte("\n"))
	line, col = term.Cursor()
	test.ExpectEquality(t, line, 2)
	test.ExpectEquality(t, col, 1)

	term.SetCursor(2, 5, 0xfffd)
	line, col = term.Cursor()
	test.ExpectEquality(t, line, 2)
	test.ExpectEquality(t, col, 5)

	// returning to the lower window restores the cursor
	term.SetWindow(0)
	term.EraseWindow(1)
	term.SetWindow(1)
	line, col = term.Cursor()
	test.ExpectEquality(t, line, 1)
	test.ExpectEquality(t, col, 1)
}

func TestStatusLine(t *testing.T) {
	term, out := newTerminal(t, 3, 20)

	// no status line has been reserved
	term.UpdateStatusLine("West of House", "0/1")
	test.ExpectEquality(t, out.String(), "")

	term.SetStatusLine(true)
	out.Reset()
	term.UpdateStatusLine("West of House", "0/1")
	test.ExpectSuccess(t, strings.Contains(out.String(), ansi.PenStyles["inverse"]+" West of House  0/1 "))

	// long locations are truncated
	out.Reset()
	term.UpdateStatusLine("The Great Underground Empire", "0/1")
	test.ExpectSuccess(t, strings.Contains(out.String(), " The Great Unde 0/1 "))
}

func TestFonts(t *testing.T) {
	term, _ := newTerminal(t, 5, 20)
	test.ExpectEquality(t, term.SetFont(4), 1)
	test.ExpectEquality(t, term.SetFont(3), 0)
	test.ExpectEquality(t, term.SetFont(1), 4)

	w, h := term.Size()
	test.ExpectEquality(t, w, 20)
	test.ExpectEquality(t, h, 10)
}

func TestPlain(t *testing.T) {
	out := &strings.Builder{}
	p := terminal.NewPlain(out, 80, 25)

	_, _ = p.Write([]byte("lower "))
	p.SetWindow(1)
	_, _ = p.Write([]byte("upper "))
	p.SetWindow(0)
	_, _ = p.Write([]byte("text"))
	test.ExpectEquality(t, out.String(), "lower text")
}
