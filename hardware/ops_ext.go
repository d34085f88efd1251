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
	"github.com/zgopher/zgopher/hardware/cpu/execution"
	"github.com/zgopher/zgopher/zscii"
)

func init() {
	register(map[string]handler{
		"save_undo":       opSaveUndo,
		"restore_undo":    opRestoreUndo,
		"log_shift":       opLogShift,
		"art_shift":       opArtShift,
		"print_unicode":   opPrintUnicode,
		"check_unicode":   opCheckUnicode,
		"set_true_colour": opSetTrueColour,
	})
}

// a positive places value shifts left and a negative value shifts right.
// logical right shifts fill with zero bits.
func opLogShift(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	v := res.Values[0]
	places := signed(res.Values[1])
	if places >= 0 {
		m.store(res, v<<places)
	} else {
		m.store(res, v>>(-places))
	}
	return nil
}

// arithmetic right shifts preserve the sign bit.
func opArtShift(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	v := int16(res.Values[0])
	places := signed(res.Values[1])
	if places >= 0 {
		m.store(res, uint16(v<<places))
	} else {
		m.store(res, uint16(v>>(-places)))
	}
	return nil
}

// unicodeChar returns the ZSCII character for the unicode character. Unicode
// characters with no ZSCII equivalent are passed through in the extended
// range.
func (m *Machine) unicodeChar(r rune) zscii.Char {
	if c := m.encoding.ToZscii(r); c != zscii.Null {
		return c
	}
	if r >= rune(zscii.UnicodeStart) && r <= 0xffff {
		return zscii.Char(r)
	}
	return zscii.Char('?')
}

func opPrintUnicode(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.printChar(m.unicodeChar(rune(res.Values[0])))
	return nil
}

// bit zero of the result is set if the character can be printed and bit one
// if it can be typed.
func opCheckUnicode(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	r := rune(res.Values[0])
	switch {
	case m.encoding.ToZscii(r) != zscii.Null:
		m.store(res, 3)
	case r >= rune(zscii.UnicodeStart):
		m.store(res, 1)
	default:
		m.store(res, 0)
	}
	return nil
}

// true colours are not supported by the screen model. the instruction is
// accepted and ignored.
func opSetTrueColour(m *Machine, res *execution.Result) error {
	return requireOperands(res, 2)
}
