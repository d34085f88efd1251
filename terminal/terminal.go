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

package terminal

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/zgopher/zgopher/terminal/ansi"
)

// window numbers
const (
	lowerWindow = 0
	upperWindow = 1
)

// the window argument to SetCursor() that means the current window
const currentWindow = 0xfffd

// text styles
const (
	styleReverse = 1
	styleBold    = 2
	styleItalic  = 4
)

// fonts that can be drawn by a terminal
const (
	fontNormal = 1
	fontFixed  = 4
)

// colour names indexed by Z-machine colour number. colour 0 leaves the colour
// unchanged and colour 1 is the terminal default
var colours = []string{"", "normal", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// default size when the output is not a terminal
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Terminal implements the ScreenModel, StatusLine and InputEcho interfaces of
// the hardware package for ANSI terminals.
type Terminal struct {
	crit sync.Mutex

	out *bufio.Writer
	tty *tty

	version int

	width  int
	height int

	// the first line of the terminal is used for the status line
	statusLine bool

	// height of the upper window
	upper  int
	window int

	// cursor position in the upper window. counts from 1
	upperLine int
	upperCol  int

	// column of the cursor in the lower window. counts from 0
	lowerCol int

	// word wrapping in the lower window
	buffered bool
	word     []rune

	style  int
	pen    string
	paper  string
	font   int
	hidden bool
}

// New is the preferred method of initialisation for the Terminal type. The
// version is the version of the story being played. The output is not
// treated as a terminal device and the screen size is fixed.
func New(out io.Writer, version int, width int, height int) *Terminal {
	t := &Terminal{
		out:      bufio.NewWriter(out),
		version:  version,
		width:    width,
		height:   height,
		buffered: true,
		font:     fontNormal,
		pen:      colours[1],
		paper:    colours[1],
	}
	t.resetCursor()
	return t
}

// Open a Terminal on the terminal devices. The input device is put into
// cbreak mode until Close() is called.
func Open(input *os.File, output *os.File, version int) (*Terminal, error) {
	t := New(output, version, defaultWidth, defaultHeight)

	var err error
	t.tty, err = newTTY(input, output, t.resize)
	if err != nil {
		return nil, err
	}

	if w, h, err := t.tty.geometry(); err == nil {
		t.width = w
		t.height = h
	}

	t.out.WriteString(ansi.ClearScreen)
	t.setScrollRegion()
	t.resetCursor()
	t.out.Flush()

	return t, nil
}

// Close restores the terminal to the state it was in before Open().
func (t *Terminal) Close() {
	t.crit.Lock()
	defer t.crit.Unlock()

	t.flushWord()
	t.out.WriteString(ansi.ResetScrollRegion)
	t.out.WriteString(ansi.NormalPen)
	t.out.WriteString(ansi.CursorTo(t.height, 1))
	t.out.WriteString("\n")
	if t.hidden {
		t.out.WriteString("\033[?25h")
	}
	t.out.Flush()

	if t.tty != nil {
		t.tty.cleanUp()
		t.tty = nil
	}
}

func (t *Terminal) resize(width int, height int) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.width = width
	t.height = height
	t.clampUpper()
	t.setScrollRegion()
	t.out.Flush()
}

// SetStatusLine reserves the first line of the terminal for the status line.
func (t *Terminal) SetStatusLine(enabled bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.statusLine = enabled
	t.clampUpper()
	t.setScrollRegion()
	t.resetCursor()
	t.out.Flush()
}

// the number of the terminal line above the upper window
func (t *Terminal) top() int {
	if t.statusLine {
		return 1
	}
	return 0
}

func (t *Terminal) clampUpper() {
	t.upper = max(0, min(t.upper, t.height-t.top()-1))
}

// setting the scroll region moves the cursor to the top left of the screen.
// the stored cursor belongs to the lower window when the upper window is
// selected
func (t *Terminal) setScrollRegion() {
	if t.window == upperWindow {
		t.out.WriteString(ansi.ScrollRegion(t.top()+t.upper+1, t.height))
		t.moveUpper()
		return
	}
	t.out.WriteString(ansi.CursorStore)
	t.out.WriteString(ansi.ScrollRegion(t.top()+t.upper+1, t.height))
	t.out.WriteString(ansi.CursorRestore)
}

// move the cursor to the start of the lower window. stories before version
// 5 expect the cursor to be at the bottom of the screen
func (t *Terminal) resetCursor() {
	t.lowerCol = 0
	if t.version >= 5 {
		t.out.WriteString(ansi.CursorTo(t.top()+t.upper+1, 1))
	} else {
		t.out.WriteString(ansi.CursorTo(t.height, 1))
	}
}

func (t *Terminal) moveUpper() {
	t.out.WriteString(ansi.CursorTo(t.top()+t.upperLine, t.upperCol))
}

// write the sequences for the current style and colours
func (t *Terminal) pens() {
	t.out.WriteString(ansi.NormalPen)
	if t.style&styleReverse == styleReverse {
		t.out.WriteString(ansi.PenStyles["inverse"])
	}
	if t.style&styleBold == styleBold {
		t.out.WriteString(ansi.PenStyles["bold"])
	}
	if t.style&styleItalic == styleItalic {
		t.out.WriteString(ansi.PenStyles["italic"])
	}
	if s, err := ansi.ColorBuild(t.pen, t.paper, "", false, false); err == nil {
		t.out.WriteString(s)
	}
}

// Write implements the io.Writer interface.
func (t *Terminal) Write(p []byte) (int, error) {
	t.crit.Lock()
	defer t.crit.Unlock()

	for s := p; len(s) > 0; {
		r, n := utf8.DecodeRune(s)
		s = s[n:]
		if t.window == upperWindow {
			t.putUpper(r)
		} else {
			t.putLower(r)
		}
	}

	return len(p), nil
}

// Flush buffered output to the terminal, including any partial word.
func (t *Terminal) Flush() error {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.flushWord()
	return t.out.Flush()
}

// the upper window is not scrolled or wrapped. text beyond the right edge
// is lost
func (t *Terminal) putUpper(r rune) {
	if r == '\n' {
		t.upperLine++
		t.upperCol = 1
		t.moveUpper()
		return
	}
	if t.upperCol <= t.width {
		t.out.WriteRune(r)
		t.upperCol++
	}
}

func (t *Terminal) putLower(r rune) {
	if !t.buffered {
		t.emit(r)
		return
	}

	switch r {
	case ' ':
		t.flushWord()
		if t.lowerCol > 0 {
			t.emit(r)
		}
	case '\n':
		t.flushWord()
		t.emit(r)
	default:
		t.word = append(t.word, r)
	}
}

func (t *Terminal) flushWord() {
	if len(t.word) == 0 {
		return
	}
	if t.lowerCol > 0 && t.lowerCol+len(t.word) > t.width {
		t.emit('\n')
	}
	for _, r := range t.word {
		t.emit(r)
	}
	t.word = t.word[:0]
}

func (t *Terminal) emit(r rune) {
	if r == '\n' {
		t.out.WriteString("\r\n")
		t.lowerCol = 0
		return
	}
	t.out.WriteRune(r)
	t.lowerCol++
	if t.lowerCol >= t.width {
		t.lowerCol = 0
	}
}

// EchoInput implements the hardware.InputEcho interface.
func (t *Terminal) EchoInput(r rune) {
	t.crit.Lock()
	defer t.crit.Unlock()

	t.flushWord()
	switch r {
	case '\b':
		if t.lowerCol > 0 {
			t.out.WriteString("\b \b")
			t.lowerCol--
		}
	default:
		t.emit(r)
	}
	t.out.Flush()
}

// SplitWindow implements the hardware.ScreenModel interface.
func (t *Terminal) SplitWindow(lines int) {
	t.crit.Lock()
	defer t.crit.Unlock()

	t.flushWord()
	t.upper = lines
	t.clampUpper()
	t.setScrollRegion()

	// the upper window is cleared when it is created in version 3
	if t.version == 3 {
		t.clearLines(t.top()+1, t.top()+t.upper)
	}

	t.upperLine = max(1, min(t.upperLine, t.upper))
	if t.window == upperWindow {
		t.moveUpper()
	}
}

// SetWindow implements the hardware.ScreenModel interface.
func (t *Terminal) SetWindow(window int) {
	t.crit.Lock()
	defer t.crit.Unlock()

	t.flushWord()
	if window == t.window {
		return
	}

	t.window = window
	if window == upperWindow {
		t.out.WriteString(ansi.CursorStore)
		t.upperLine = 1
		t.upperCol = 1
		t.moveUpper()
	} else {
		t.out.WriteString(ansi.CursorRestore)
		t.pens()
	}
}

// clear the lines from first to last inclusive. the cursor is left on the
// first line
func (t *Terminal) clearLines(first int, last int) {
	for l := last; l >= first; l-- {
		t.out.WriteString(ansi.CursorTo(l, 1))
		t.out.WriteString(ansi.ClearLine)
	}
}

// EraseWindow implements the hardware.ScreenModel interface.
func (t *Terminal) EraseWindow(window int) {
	t.crit.Lock()
	defer t.crit.Unlock()

	t.flushWord()

	switch window {
	case -1, -2:
		if window == -1 {
			t.upper = 0
			t.setScrollRegion()
			if t.window == upperWindow {
				t.out.WriteString(ansi.CursorRestore)
				t.window = lowerWindow
			}
		}
		t.clearLines(t.top()+1, t.height)
		t.resetCursor()
		if t.window == upperWindow {
			t.out.WriteString(ansi.CursorStore)
			t.upperLine = 1
			t.upperCol = 1
			t.moveUpper()
		}

	case lowerWindow:
		t.clearLines(t.top()+t.upper+1, t.height)
		t.resetCursor()
		if t.window == upperWindow {
			t.out.WriteString(ansi.CursorStore)
			t.moveUpper()
		}

	case upperWindow:
		if t.window != upperWindow {
			t.out.WriteString(ansi.CursorStore)
		}
		t.clearLines(t.top()+1, t.top()+t.upper)
		t.upperLine = 1
		t.upperCol = 1
		if t.window == upperWindow {
			t.moveUpper()
		} else {
			t.out.WriteString(ansi.CursorRestore)
		}
	}
}

// EraseLine implements the hardware.ScreenModel interface.
func (t *Terminal) EraseLine(value int) {
	t.crit.Lock()
	defer t.crit.Unlock()
	if value == 1 {
		t.flushWord()
		t.out.WriteString(ansi.ClearToEndOfLine)
	}
}

// SetCursor implements the hardware.ScreenModel interface. A line of -1 hides
// the cursor and a line of -2 shows it again.
func (t *Terminal) SetCursor(line int, column int, window int) {
	t.crit.Lock()
	defer t.crit.Unlock()

	switch line {
	case -1:
		t.hidden = true
		t.out.WriteString("\033[?25l")
		return
	case -2:
		t.hidden = false
		t.out.WriteString("\033[?25h")
		return
	}

	if window == currentWindow {
		window = t.window
	}

	t.flushWord()
	line = max(1, line)
	column = max(1, min(column, t.width))

	if window == upperWindow {
		t.upperLine = line
		t.upperCol = column
		if t.window == upperWindow {
			t.moveUpper()
		}
		return
	}

	if t.window == lowerWindow {
		t.out.WriteString(ansi.CursorTo(min(t.top()+t.upper+line, t.height), column))
		t.lowerCol = column - 1
	}
}

// Cursor implements the hardware.ScreenModel interface.
func (t *Terminal) Cursor() (int, int) {
	t.crit.Lock()
	defer t.crit.Unlock()
	if t.window == upperWindow {
		return t.upperLine, t.upperCol
	}
	return t.height - t.top() - t.upper, t.lowerCol + 1 + len(t.word)
}

// SetTextStyle implements the hardware.ScreenModel interface. Fixed pitch
// text is the only pitch a terminal has.
func (t *Terminal) SetTextStyle(style int) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.flushWord()
	if style == 0 {
		t.style = 0
	} else {
		t.style |= style
	}
	t.pens()
}

// SetBufferMode implements the hardware.ScreenModel interface.
func (t *Terminal) SetBufferMode(buffered bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.flushWord()
	t.buffered = buffered
}

// SetColour implements the hardware.ScreenModel interface. Colours that a
// terminal cannot show are ignored.
func (t *Terminal) SetColour(foreground int, background int, window int) {
	t.crit.Lock()
	defer t.crit.Unlock()

	t.flushWord()
	if foreground > 0 && foreground < len(colours) {
		t.pen = colours[foreground]
	}
	if background > 0 && background < len(colours) {
		t.paper = colours[background]
	}
	t.pens()
}

// SetFont implements the hardware.ScreenModel interface.
func (t *Terminal) SetFont(font int) int {
	t.crit.Lock()
	defer t.crit.Unlock()

	switch font {
	case fontNormal, fontFixed:
		prev := t.font
		t.font = font
		return prev
	}
	return 0
}

// Size implements the hardware.ScreenModel interface.
func (t *Terminal) Size() (int, int) {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.width, t.height
}

// UpdateStatusLine implements the hardware.StatusLine interface.
func (t *Terminal) UpdateStatusLine(location string, status string) {
	t.crit.Lock()
	defer t.crit.Unlock()

	if !t.statusLine {
		return
	}

	t.flushWord()

	location = " " + location
	status = status + " "
	room := t.width - utf8.RuneCountInString(status) - 1
	if room < 0 {
		room = 0
		status = ""
	}
	if r := []rune(location); len(r) > room {
		location = string(r[:room])
	}
	pad := t.width - utf8.RuneCountInString(location) - utf8.RuneCountInString(status)

	if t.window != upperWindow {
		t.out.WriteString(ansi.CursorStore)
	}
	t.out.WriteString(ansi.CursorTo(1, 1))
	t.out.WriteString(ansi.NormalPen)
	t.out.WriteString(ansi.PenStyles["inverse"])
	t.out.WriteString(location)
	t.out.WriteString(strings.Repeat(" ", max(0, pad)))
	t.out.WriteString(status)
	if t.window == upperWindow {
		t.pens()
		t.moveUpper()
	} else {
		t.out.WriteString(ansi.CursorRestore)
	}
	t.out.Flush()
}
