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

func init() {
	register(map[string]handler{
		"jz":           opJz,
		"get_sibling":  opGetSibling,
		"get_child":    opGetChild,
		"get_parent":   opGetParent,
		"get_prop_len": opGetPropLen,
		"inc":          opInc,
		"dec":          opDec,
		"print_addr":   opPrintAddr,
		"remove_obj":   opRemoveObj,
		"print_obj":    opPrintObj,
		"ret":          opRet,
		"jump":         opJump,
		"print_paddr":  opPrintPaddr,
		"load":         opLoad,
		"not":          opNot,
	})
}

func opJz(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	return m.branch(res, res.Values[0] == 0)
}

func opGetSibling(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	var v int
	if m.objectOK(res, res.Values[0]) {
		v = m.Objects.Sibling(int(res.Values[0]))
	}
	m.store(res, uint16(v))
	return m.branch(res, v != 0)
}

func opGetChild(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	var v int
	if m.objectOK(res, res.Values[0]) {
		v = m.Objects.Child(int(res.Values[0]))
	}
	m.store(res, uint16(v))
	return m.branch(res, v != 0)
}

func opGetParent(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	var v int
	if m.objectOK(res, res.Values[0]) {
		v = m.Objects.Parent(int(res.Values[0]))
	}
	m.store(res, uint16(v))
	return nil
}

// the operand of get_prop_len is the address of property data. an address
// of zero has a length of zero
func opGetPropLen(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.store(res, uint16(m.Objects.PropertyLength(int(res.Values[0]))))
	return nil
}

func opInc(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	v := uint8(res.Values[0])
	m.CPU.ReplaceVariable(v, m.CPU.PeekVariable(v)+1)
	return nil
}

func opDec(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	v := uint8(res.Values[0])
	m.CPU.ReplaceVariable(v, m.CPU.PeekVariable(v)-1)
	return nil
}

func opPrintAddr(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.printEncoded(int(res.Values[0]))
	return nil
}

func opRemoveObj(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.objectOK(res, res.Values[0]) {
		m.Objects.RemoveObject(int(res.Values[0]))
	}
	return nil
}

func opPrintObj(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	if m.objectOK(res, res.Values[0]) {
		m.printEncoded(m.Objects.ShortNameAddress(int(res.Values[0])))
	}
	return nil
}

func opRet(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	return m.CPU.Return(res.Values[0])
}

func opJump(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.CPU.Jump(int16(res.Values[0]))
	return nil
}

func opPrintPaddr(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.printEncoded(m.CPU.UnpackString(res.Values[0]))
	return nil
}

func opLoad(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.store(res, m.CPU.PeekVariable(uint8(res.Values[0])))
	return nil
}

func opNot(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	m.store(res, ^res.Values[0])
	return nil
}
