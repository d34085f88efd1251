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

package hardware

import (
	"github.com/zgopher/zgopher/hardware/header"
)

// interpreter number and version written to the header. interpreter number
// six is the IBM PC
const (
	interpreterNumber  = 6
	interpreterVersion = 1
)

// Restart the story. Memory is reloaded from the original story file and
// the CPU is reset. The transcripting and force fixed font flags keep their
// values.
func (m *Machine) Restart() error {
	transcripting := m.Header.IsEnabled(header.Transcripting)
	fixedFont := m.Header.IsEnabled(header.ForceFixedFont)

	m.Mem.WriteBytes(0, m.story)

	m.Header.SetEnabled(header.Transcripting, transcripting)
	m.Header.SetEnabled(header.ForceFixedFont, fixedFont)

	if m.env.Sound != nil {
		m.env.Sound.Reset()
	}

	return m.reset()
}

// reset the CPU and the output streams and write the interpreter's details
// to the header
func (m *Machine) reset() error {
	m.halted = nil
	m.quit = false
	m.font = 1
	m.Output.Reset()
	m.initHeader()

	if m.Header.Version() == 6 {
		// the main routine of a version 6 story is a real routine. the
		// program start field is its packed address
		m.CPU.Reset(0)
		return m.CPU.Call(m.CPU.UnpackRoutine(uint16(m.Header.ProgramStart())), nil, 0, true)
	}

	m.CPU.Reset(m.Header.ProgramStart())
	return nil
}

func (m *Machine) initHeader() {
	hdr := m.Header
	v := hdr.Version()

	width := m.Prefs.ScreenWidth.Get().(int)
	height := m.Prefs.ScreenHeight.Get().(int)
	if m.env.Screen != nil {
		width, height = m.env.Screen.Size()
	}

	if v <= 3 {
		hdr.SetEnabled(header.StatusLine, false)
		hdr.SetEnabled(header.ScreenSplit, m.env.Screen != nil)
		hdr.SetEnabled(header.VariableDefaultFont, false)
	} else {
		hdr.SetInterpreterNumber(interpreterNumber)
		hdr.SetInterpreterVersion(interpreterVersion)
		hdr.SetScreenHeight(height)
		hdr.SetScreenWidth(width)
		hdr.SetEnabled(header.TimedInput, true)
		hdr.SetEnabled(header.Bold, m.env.Screen != nil)
		hdr.SetEnabled(header.Italic, m.env.Screen != nil)
		hdr.SetEnabled(header.FixedFont, m.env.Screen != nil)
	}

	if v >= 5 {
		hdr.SetEnabled(header.Colours, m.env.Screen != nil)
		hdr.SetScreenWidthUnits(width)
		hdr.SetScreenHeightUnits(height)
		hdr.SetFontWidth(1)
		hdr.SetFontHeight(1)
		hdr.SetDefaultForeground(colourWhite)
		hdr.SetDefaultBackground(colourBlack)
	}

	hdr.SetStandardRevision(1, 0)
}
