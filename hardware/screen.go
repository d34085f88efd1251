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
)

// colour numbers used by set_colour and the header defaults.
const (
	colourBlack   = 2
	colourWhite   = 9
)

// window number meaning the current window.
const windowCurrent = 0xfffd

// sound effect numbers below this are the bleeps played by the interpreter.
const firstSampledSound = 3

// the sound effect operation used when none is given.
const soundStart = 2

func init() {
	register(map[string]handler{
		"split_window":   opSplitWindow,
		"set_window":     opSetWindow,
		"erase_window":   opEraseWindow,
		"erase_line":     opEraseLine,
		"set_cursor":     opSetCursor,
		"get_cursor":     opGetCursor,
		"set_text_style": opSetTextStyle,
		"buffer_mode":    opBufferMode,
		"set_font":       opSetFont,
		"sound_effect":   opSoundEffect,
	})
}

func opSplitWindow(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.SplitWindow(int(res.Values[0]))
	}
	return nil
}

func opSetWindow(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.SetWindow(signed(res.Values[0]))
	}
	return nil
}

// erase_window with -1 unsplits and clears the screen. -2 clears without
// unsplitting.
func opEraseWindow(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.EraseWindow(signed(res.Values[0]))
	}
	return nil
}

func opEraseLine(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.EraseLine(int(res.Values[0]))
	}
	return nil
}

func opSetCursor(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.SetCursor(signed(res.Values[0]), signed(res.Values[1]), int(operand(res, 2, windowCurrent)))
	}
	return nil
}

// get_cursor writes the line and column to the first two words of the array.
// without a screen the cursor is always at the top left.
func opGetCursor(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	line, column := 1, 1
	if m.env.Screen != nil {
		line, column = m.env.Screen.Cursor()
	}
	a := int(res.Values[0])
	m.checkWrite(res, a)
	m.Mem.SetUint16(a, uint16(line))
	m.Mem.SetUint16(a+2, uint16(column))
	return nil
}

func opSetTextStyle(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.SetTextStyle(int(res.Values[0]))
	}
	return nil
}

func opBufferMode(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.SetBufferMode(res.Values[0] != 0)
	}
	return nil
}

// set_font with font zero queries the current font without changing it. the
// previous font is stored, or zero if the requested font is unavailable.
func opSetFont(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}

	font := int(res.Values[0])
	if font == 0 {
		m.store(res, uint16(m.font))
		return nil
	}

	if m.env.Screen == nil {
		if font != 1 {
			m.store(res, 0)
			return nil
		}
		m.store(res, uint16(m.font))
		m.font = font
		return nil
	}

	prev := m.env.Screen.SetFont(font)
	if prev != 0 {
		m.font = font
	}
	m.store(res, uint16(prev))
	return nil
}

// sound_effect without operands plays the high bleep. the third operand
// packs the volume in the low byte and the number of repeats in the high
// byte.
func opSoundEffect(m *Machine, res *execution.Result) error {
	if m.env.Sound == nil || !m.Prefs.SoundEnabled.Get().(bool) {
		return nil
	}

	number := int(operand(res, 0, 1))
	effect := int(operand(res, 1, soundStart))
	v := operand(res, 2, 0x00ff)
	volume := int(v & 0xff)
	repeats := int(v >> 8)

	var routine int
	if r := operand(res, 3, 0); r != 0 && number >= firstSampledSound {
		routine = m.CPU.UnpackRoutine(r)
	}

	m.env.Sound.SoundEffect(m.ctx, number, effect, volume, repeats, routine)
	return nil
}
