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
	"fmt"
	"strconv"

	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/streams"
	"github.com/zgopher/zgopher/zscii"
)

// the story can switch the transcript on and off by writing to the header
// directly
func (m *Machine) syncTranscript() {
	flag := m.Header.IsEnabled(header.Transcripting)
	if flag == m.Output.IsSelected(streams.Transcript) {
		return
	}
	if flag {
		if err := m.Output.Select(streams.Transcript); err != nil {
			m.warning("%v", err)
			m.Header.SetEnabled(header.Transcripting, false)
		}
	} else {
		_ = m.Output.Deselect(streams.Transcript)
	}
}

func (m *Machine) print(s zscii.String) {
	m.syncTranscript()
	m.Output.Print(s)
}

func (m *Machine) printChar(c zscii.Char) {
	m.syncTranscript()
	m.Output.PrintChar(c)
}

func (m *Machine) printString(s string) {
	m.print(m.encoding.Encode(s))
}

// print the packed string at the byte address
func (m *Machine) printEncoded(address int) {
	m.print(m.decoder.Decode(m.Mem, address, 0))
}

func (m *Machine) printNum(v uint16) {
	m.printString(strconv.Itoa(signed(v)))
}

func (m *Machine) newLine() {
	m.printChar(zscii.Newline)
}

// StatusLine returns the location and the score/time text of the status
// line. Only meaningful for version 1 to 3 stories.
func (m *Machine) StatusLine() (string, string) {
	location := m.ObjectName(int(m.CPU.Variable(0x10)))
	a := signed(m.CPU.Variable(0x11))
	b := signed(m.CPU.Variable(0x12))

	if m.Header.Version() < 3 || m.Header.IsEnabled(header.ScoreGame) {
		return location, fmt.Sprintf("Score: %d  Moves: %d", a, b)
	}
	return location, fmt.Sprintf("Time: %d:%02d", a, b)
}

func (m *Machine) updateStatusLine() {
	if m.Header.Version() > 3 || m.statusLine == nil {
		return
	}
	m.statusLine.UpdateStatusLine(m.StatusLine())
}
