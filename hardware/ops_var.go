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
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/streams"
	"github.com/zgopher/zgopher/zscii"
)

func init() {
	register(map[string]handler{
		"storew":          opStorew,
		"storeb":          opStoreb,
		"put_prop":        opPutProp,
		"print_char":      opPrintChar,
		"print_num":       opPrintNum,
		"random":          opRandom,
		"push":            opPush,
		"pull":            opPull,
		"output_stream":   opOutputStream,
		"input_stream":    opInputStream,
		"scan_table":      opScanTable,
		"copy_table":      opCopyTable,
		"print_table":     opPrintTable,
		"check_arg_count": opCheckArgCount,
	})
}

// the default form of scan_table. word sized fields two bytes apart
const scanTableForm = 0x82

func opStorew(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}
	a := int(res.Values[0] + 2*res.Values[1])
	m.checkWrite(res, a)
	m.Mem.SetUint16(a, res.Values[2])
	return nil
}

func opStoreb(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}
	a := int(res.Values[0] + res.Values[1])
	m.checkWrite(res, a)
	m.Mem.SetUint8(a, uint8(res.Values[2]))
	return nil
}

func opPutProp(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}
	if !m.objectOK(res, res.Values[0]) {
		return nil
	}
	return m.Objects.SetProperty(int(res.Values[0]), int(res.Values[1]), int(res.Values[2]))
}

func opPrintChar(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.printChar(zscii.Char(res.Values[0]))
	return nil
}

func opPrintNum(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.printNum(res.Values[0])
	return nil
}

// a positive range returns a number between 1 and range. a negative range
// seeds the generator predictably and zero seeds it unpredictably
func opRandom(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	r := signed(res.Values[0])
	switch {
	case r > 0:
		m.store(res, uint16(m.random.Intn(r)+1))
	case r < 0:
		m.random.Seed(int64(-r))
		m.store(res, 0)
	default:
		m.random.Reseed()
		m.store(res, 0)
	}
	return nil
}

func opPush(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.CPU.Push(res.Values[0])
	return nil
}

// in version 6 pull stores the value and can pull from a user stack. in all
// other versions the operand is a variable reference
func opPull(m *Machine, res *execution.Result) error {
	if res.Defn.Store {
		var v uint16
		if stack := operand(res, 0, 0); stack != 0 {
			v = m.pullUserStack(int(stack))
		} else {
			v = m.CPU.Pop()
		}
		m.store(res, v)
		return nil
	}

	if err := requireOperands(res, 1); err != nil {
		return err
	}
	v := m.CPU.Pop()
	m.CPU.ReplaceVariable(uint8(res.Values[0]), v)
	return nil
}

func opOutputStream(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}

	n := signed(res.Values[0])
	s := streams.Stream(n)
	if n < 0 {
		s = streams.Stream(-n)
	}

	switch {
	case n == 0:
		return nil
	case s == streams.Memory && n > 0:
		if err := requireOperands(res, 2); err != nil {
			return err
		}
		return m.Output.SelectMemory(int(res.Values[1]), signed(operand(res, 2, 0)))
	case n > 0:
		if err := m.Output.Select(s); err != nil {
			m.warning("output_stream: %v", err)
			return nil
		}
	default:
		if err := m.Output.Deselect(s); err != nil {
			m.warning("output_stream: %v", err)
			return nil
		}
	}

	if s == streams.Transcript {
		m.Header.SetEnabled(header.Transcripting, n > 0)
	}

	return nil
}

func opInputStream(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if err := m.Input.Select(int(res.Values[0])); err != nil {
		m.warning("input_stream: %v", err)
	}
	return nil
}

func opScanTable(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}

	x := res.Values[0]
	table := int(res.Values[1])
	n := int(res.Values[2])
	form := operand(res, 3, scanTableForm)
	width := int(form & 0x7f)
	words := form&0x80 == 0x80

	for i := 0; i < n; i++ {
		a := table + i*width
		var v uint16
		if words {
			v = m.Mem.Uint16(a)
		} else {
			v = uint16(m.Mem.Uint8(a))
		}
		if v == x {
			m.store(res, uint16(a))
			return m.branch(res, true)
		}
	}

	m.store(res, 0)
	return m.branch(res, false)
}

// copy_table copies forward when the size is negative or when the source is
// after the destination. a second table of zero zeroes the first table
func opCopyTable(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 3); err != nil {
		return err
	}

	first := int(res.Values[0])
	second := int(res.Values[1])
	size := signed(res.Values[2])
	n := size
	if n < 0 {
		n = -n
	}

	switch {
	case second == 0:
		for i := 0; i < n; i++ {
			m.Mem.SetUint8(first+i, 0)
		}
	case size < 0 || first > second:
		for i := 0; i < n; i++ {
			m.Mem.SetUint8(second+i, m.Mem.Uint8(first+i))
		}
	default:
		for i := n - 1; i >= 0; i-- {
			m.Mem.SetUint8(second+i, m.Mem.Uint8(first+i))
		}
	}

	return nil
}

// print_table prints a rectangle of text. each row after the first starts
// on the line below the first character of the previous row
func opPrintTable(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}

	a := int(res.Values[0])
	width := int(res.Values[1])
	height := int(operand(res, 2, 1))
	skip := int(operand(res, 3, 0))

	cursor := m.env.Screen != nil && m.Output.IsSelected(streams.Screen) && !m.Output.IsSelected(streams.Memory)
	var line, column int
	if cursor {
		line, column = m.env.Screen.Cursor()
	}

	for r := 0; r < height; r++ {
		if r > 0 {
			if cursor {
				m.env.Screen.SetCursor(line+r, column, windowCurrent)
			} else {
				m.newLine()
			}
		}
		for c := 0; c < width; c++ {
			m.printChar(zscii.Char(m.Mem.Uint8(a + c)))
		}
		a += width + skip
	}

	return nil
}

func opCheckArgCount(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	return m.branch(res, int(res.Values[0]) <= m.CPU.ArgCount())
}
