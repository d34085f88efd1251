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

// the window operations of version 6 are passed to the ScreenModel6 if the
// screen implements it. without it they are ignored.

func init() {
	register(map[string]handler{
		"draw_picture":  opDrawPicture,
		"picture_data":  opPictureData,
		"erase_picture": opErasePicture,
		"set_margins":   opSetMargins,
		"move_window":   opMoveWindow,
		"window_size":   opWindowSize,
		"window_style":  opWindowStyle,
		"get_wind_prop": opGetWindProp,
		"put_wind_prop": opPutWindProp,
		"scroll_window": opScrollWindow,
		"pop_stack":     opPopStack,
		"push_stack":    opPushStack,
		"read_mouse":    opReadMouse,
		"mouse_window":  opMouseWindow,
		"print_form":    opPrintForm,
		"make_menu":     opMakeMenu,
		"picture_table": opPictureTable,
		"buffer_screen": opBufferScreen,
	})
}

// the largest number of pictures read from a picture table.
const maxPictureTable = 256

// a user stack begins with a word counting the free slots. the slots follow
// and fill from the highest address downwards.

func (m *Machine) pushUserStack(stack int, v uint16) bool {
	free := int(m.Mem.Uint16(stack))
	if free == 0 {
		return false
	}
	m.Mem.SetUint16(stack+2*free, v)
	m.Mem.SetUint16(stack, uint16(free-1))
	return true
}

func (m *Machine) pullUserStack(stack int) uint16 {
	free := int(m.Mem.Uint16(stack)) + 1
	m.Mem.SetUint16(stack, uint16(free))
	return m.Mem.Uint16(stack + 2*free)
}

func opDrawPicture(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.DrawPicture(int(res.Values[0]), int(operand(res, 1, 0)), int(operand(res, 2, 0)))
	}
	return nil
}

// picture_data for picture zero writes the number of pictures and the
// release number of the picture file.
func opPictureData(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.env.Pictures == nil {
		return m.branch(res, false)
	}

	pic := int(res.Values[0])
	a := int(res.Values[1])

	if pic == 0 {
		n := m.env.Pictures.NumPictures()
		m.Mem.SetUint16(a, uint16(n))
		m.Mem.SetUint16(a+2, uint16(m.env.Pictures.Release()))
		return m.branch(res, n > 0)
	}

	w, h, ok := m.env.Pictures.PictureSize(pic)
	if ok {
		m.Mem.SetUint16(a, uint16(h))
		m.Mem.SetUint16(a+2, uint16(w))
	}
	return m.branch(res, ok)
}

func opErasePicture(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.ErasePicture(int(res.Values[0]), int(operand(res, 1, 0)), int(operand(res, 2, 0)))
	}
	return nil
}

func opSetMargins(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.SetMargins(int(res.Values[0]), int(res.Values[1]), int(operand(res, 2, windowCurrent)))
	}
	return nil
}

func opMoveWindow(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.MoveWindow(signed(res.Values[0]), int(res.Values[1]), int(res.Values[2]))
	}
	return nil
}

func opWindowSize(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.WindowSize(signed(res.Values[0]), int(res.Values[1]), int(res.Values[2]))
	}
	return nil
}

func opWindowStyle(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.WindowStyle(signed(res.Values[0]), int(res.Values[1]), int(operand(res, 2, 0)))
	}
	return nil
}

func opGetWindProp(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	var v int
	if m.screen6 != nil {
		v = m.screen6.WindowProperty(signed(res.Values[0]), int(res.Values[1]))
	}
	m.store(res, uint16(v))
	return nil
}

func opPutWindProp(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.SetWindowProperty(signed(res.Values[0]), int(res.Values[1]), int(res.Values[2]))
	}
	return nil
}

func opScrollWindow(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.ScrollWindow(signed(res.Values[0]), signed(res.Values[1]))
	}
	return nil
}

// pop_stack without a stack address discards items from the game stack.
func opPopStack(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	items := int(res.Values[0])
	if stack := int(operand(res, 1, 0)); stack != 0 {
		free := int(m.Mem.Uint16(stack))
		m.Mem.SetUint16(stack, uint16(free+items))
		return nil
	}
	for i := 0; i < items; i++ {
		_ = m.CPU.Pop()
	}
	return nil
}

func opPushStack(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	return m.branch(res, m.pushUserStack(int(res.Values[1]), res.Values[0]))
}

// read_mouse writes the mouse y and x coordinates, the button state and the
// menu selection to the array.
func opReadMouse(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	var y, x, buttons, menu int
	if m.screen6 != nil {
		y, x, buttons, menu = m.screen6.Mouse()
	}
	a := int(res.Values[0])
	m.Mem.SetUint16(a, uint16(y))
	m.Mem.SetUint16(a+2, uint16(x))
	m.Mem.SetUint16(a+4, uint16(buttons))
	m.Mem.SetUint16(a+6, uint16(menu))
	return nil
}

func opMouseWindow(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.screen6 != nil {
		m.screen6.MouseWindow(signed(res.Values[0]))
	}
	return nil
}

// print_form prints a formatted table. each line is a length word followed
// by the characters of the line. the table ends with a zero length.
func opPrintForm(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	a := int(res.Values[0])
	first := true
	for {
		n := int(m.Mem.Uint16(a))
		if n == 0 {
			break
		}
		if !first {
			m.newLine()
		}
		first = false
		for i := 0; i < n; i++ {
			m.printChar(zscii.Char(m.Mem.Uint8(a + 2 + i)))
		}
		a += 2 + n
	}
	return nil
}

// menus are not supported by any screen model.
func opMakeMenu(m *Machine, res *execution.Result) error {
	return m.branch(res, false)
}

// picture_table is a hint that the pictures in the table will be needed
// soon. the table is a list of picture numbers ending with zero.
func opPictureTable(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}

	pl, ok := m.env.Pictures.(Preloader)
	if !ok {
		return nil
	}

	var pics []int
	for a := int(res.Values[0]); ; a += 2 {
		p := int(m.Mem.Uint16(a))
		if p == 0 || len(pics) >= maxPictureTable {
			break
		}
		pics = append(pics, p)
	}
	pl.Preload(pics)

	return nil
}

func opBufferScreen(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	var v int
	if m.screen6 != nil {
		v = m.screen6.BufferScreen(signed(res.Values[0]))
	}
	m.store(res, uint16(v))
	return nil
}
