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
	"io"
)

// Plain implements the hardware.ScreenModel interface for outputs that are
// not terminals, for example when output is redirected to a file. Only the
// text of the lower window is written. Text printed to the upper window is
// discarded.
type Plain struct {
	out    io.Writer
	width  int
	height int
	window int
	font   int
}

// NewPlain is the preferred method of initialisation for the Plain type.
func NewPlain(out io.Writer, width int, height int) *Plain {
	return &Plain{
		out:    out,
		width:  width,
		height: height,
		font:   fontNormal,
	}
}

// Write implements the io.Writer interface.
func (p *Plain) Write(b []byte) (int, error) {
	if p.window != lowerWindow {
		return len(b), nil
	}
	return p.out.Write(b)
}

func (p *Plain) SplitWindow(lines int)                                {}
func (p *Plain) EraseWindow(window int)                               {}
func (p *Plain) EraseLine(value int)                                  {}
func (p *Plain) SetCursor(line int, column int, window int)           {}
func (p *Plain) SetTextStyle(style int)                               {}
func (p *Plain) SetBufferMode(buffered bool)                          {}
func (p *Plain) SetColour(foreground int, background int, window int) {}

func (p *Plain) SetWindow(window int) {
	p.window = window
}

func (p *Plain) Cursor() (int, int) {
	return 1, 1
}

func (p *Plain) SetFont(font int) int {
	switch font {
	case fontNormal, fontFixed:
		prev := p.font
		p.font = font
		return prev
	}
	return 0
}

func (p *Plain) Size() (int, int) {
	return p.width, p.height
}
