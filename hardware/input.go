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
	"errors"
	"io"

	"github.com/zgopher/zgopher/hardware/cpu/execution"
	"github.com/zgopher/zgopher/hardware/dictionary"
	"github.com/zgopher/zgopher/streams"
	"github.com/zgopher/zgopher/zscii"
)

func init() {
	register(map[string]handler{
		"sread":       opRead,
		"aread":       opRead,
		"read_char":   opReadChar,
		"tokenise":    opTokenise,
		"encode_text": opEncodeText,
	})
}

// value in the terminating characters table meaning any function key
const anyFunctionKey = 255

// the interrupt function for timed input. the routine operand is a packed
// address
func (m *Machine) timedInterrupt(routine uint16) streams.Interrupt {
	if routine == 0 {
		return nil
	}
	return func() (bool, error) {
		v, err := m.interrupt(m.CPU.UnpackRoutine(routine))
		return v != 0, err
	}
}

// read a character from the current input stream. the end of input is
// treated the same as the quit instruction
func (m *Machine) readChar(tenths int, routine uint16) (zscii.Char, bool, error) {
	m.Output.Flush()
	c, aborted, err := streams.ReadTimed(m.ctx, m.Input, tenths, m.timedInterrupt(routine))
	if errors.Is(err, io.EOF) {
		m.quit = true
		return 0, true, nil
	}
	return c, aborted, err
}

// isTerminator returns true if the character ends line input
func (m *Machine) isTerminator(c zscii.Char) bool {
	if c == zscii.Newline {
		return true
	}
	if m.Header.Version() < 5 {
		return false
	}
	a := m.Header.Terminators()
	if a == 0 {
		return false
	}
	for ; ; a++ {
		t := zscii.Char(m.Mem.Uint8(a))
		switch {
		case t == 0:
			return false
		case t == c:
			return true
		case t == anyFunctionKey && (zscii.IsCursorKey(c) || zscii.IsFunctionKey(c)):
			return true
		}
	}
}

func opRead(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}

	v := m.Header.Version()
	text := int(res.Values[0])
	parse := int(operand(res, 1, 0))

	var tenths int
	var routine uint16
	if v >= 4 {
		tenths = int(operand(res, 2, 0))
		routine = operand(res, 3, 0)
	}

	m.updateStatusLine()

	// maximum number of characters and where they are written
	maxLen := int(m.Mem.Uint8(text))
	start := text + 1
	var input zscii.String
	if v >= 5 {
		start = text + 2
		n := int(m.Mem.Uint8(text + 1))
		for i := 0; i < n && i < maxLen; i++ {
			input = append(input, zscii.Char(m.Mem.Uint8(start+i)))
		}
	} else {
		maxLen--
	}

	var terminator zscii.Char
	for {
		c, aborted, err := m.readChar(tenths, routine)
		if err != nil {
			return err
		}
		if aborted {
			break
		}
		if m.isTerminator(c) {
			terminator = c
			break
		}
		switch {
		case c == zscii.Delete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				if m.echo != nil {
					m.echo.EchoInput('\b')
				}
			}
		case len(input) < maxLen && c >= zscii.AsciiStart:
			input = append(input, m.encoding.ToLower(c))
			if m.echo != nil {
				m.echo.EchoInput(m.encoding.ToUnicode(c))
			}
		}
	}

	if terminator == zscii.Newline {
		if m.echo != nil {
			m.echo.EchoInput('\n')
		}
		m.Output.Echo(append(input, zscii.Newline))
	}

	for i, c := range input {
		m.Mem.SetUint8(start+i, uint8(c))
	}
	if v >= 5 {
		m.Mem.SetUint8(text+1, uint8(len(input)))
	} else {
		m.Mem.SetUint8(start+len(input), 0)
	}

	if parse != 0 && terminator != 0 {
		m.tokenise(text, parse, m.Dictionary, false)
	}

	if res.Defn.Store {
		m.store(res, uint16(terminator))
	}

	return nil
}

func opReadChar(m *Machine, res *execution.Result) error {
	tenths := int(operand(res, 1, 0))
	routine := operand(res, 2, 0)

	c, aborted, err := m.readChar(tenths, routine)
	if err != nil {
		return err
	}
	if aborted {
		c = 0
	}
	m.store(res, uint16(c))
	return nil
}

// the text of a text buffer and the offset of the first character
func (m *Machine) textBuffer(text int) (zscii.String, int) {
	var s zscii.String
	if m.Header.Version() >= 5 {
		n := int(m.Mem.Uint8(text + 1))
		for i := 0; i < n; i++ {
			s = append(s, zscii.Char(m.Mem.Uint8(text+2+i)))
		}
		return s, 2
	}
	for a := text + 1; ; a++ {
		c := m.Mem.Uint8(a)
		if c == 0 {
			break
		}
		s = append(s, zscii.Char(c))
	}
	return s, 1
}

// tokenise the text buffer into the parse buffer. if skip is true then the
// parse buffer entries of words not in the dictionary are left unchanged
func (m *Machine) tokenise(text int, parse int, dct dictionary.Dictionary, skip bool) {
	input, offset := m.textBuffer(text)
	tokens := zscii.Tokenize(input, dct.Separators())

	maxTokens := int(m.Mem.Uint8(parse))
	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}

	m.Mem.SetUint8(parse+1, uint8(len(tokens)))
	for i, t := range tokens {
		a := parse + 2 + i*4
		word := dct.Lookup(t.Text)
		if word == 0 && skip {
			continue
		}
		m.Mem.SetUint16(a, uint16(word))
		m.Mem.SetUint8(a+2, uint8(len(t.Text)))
		m.Mem.SetUint8(a+3, uint8(t.Offset+offset))
	}
}

func opTokenise(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}

	var dct dictionary.Dictionary = m.Dictionary
	if a := operand(res, 2, 0); a != 0 {
		dct = dictionary.NewUser(m.Mem, int(a), m.decoder, m.encoder)
	}

	m.tokenise(int(res.Values[0]), int(res.Values[1]), dct, operand(res, 3, 0) != 0)
	return nil
}

func opEncodeText(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 4); err != nil {
		return err
	}
	text := int(res.Values[0])
	length := int(res.Values[1])
	from := int(res.Values[2])
	coded := int(res.Values[3])

	s := make(zscii.String, length)
	for i := range s {
		s[i] = zscii.Char(m.Mem.Uint8(text + from + i))
	}

	b := m.encoder.Encode(s)
	m.Mem.WriteBytes(coded, b[:])
	return nil
}
