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
	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/cpu/execution"
)

func init() {
	register(map[string]handler{
		"je":            opJe,
		"jl":            opJl,
		"jg":            opJg,
		"dec_chk":       opDecChk,
		"inc_chk":       opIncChk,
		"jin":           opJin,
		"test":          opTest,
		"or":            opOr,
		"and":           opAnd,
		"test_attr":     opTestAttr,
		"set_attr":      opSetAttr,
		"clear_attr":    opClearAttr,
		"store":         opStore,
		"insert_obj":    opInsertObj,
		"loadw":         opLoadw,
		"loadb":         opLoadb,
		"get_prop":      opGetProp,
		"get_prop_addr": opGetPropAddr,
		"get_next_prop": opGetNextProp,
		"add":           opAdd,
		"sub":           opSub,
		"mul":           opMul,
		"div":           opDiv,
		"mod":           opMod,
		"set_colour":    opSetColour,
		"throw":         opThrow,
	})
}

func opJe(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	a := res.Values[0]
	for _, b := range res.Values[1:] {
		if a == b {
			return m.branch(res, true)
		}
	}
	return m.branch(res, false)
}

func opJl(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	return m.branch(res, signed(res.Values[0]) < signed(res.Values[1]))
}

func opJg(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	return m.branch(res, signed(res.Values[0]) > signed(res.Values[1]))
}

// the first operand of dec_chk and inc_chk is a variable reference
func opDecChk(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	v := uint8(res.Values[0])
	n := m.CPU.PeekVariable(v) - 1
	m.CPU.ReplaceVariable(v, n)
	return m.branch(res, signed(n) < signed(res.Values[1]))
}

func opIncChk(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	v := uint8(res.Values[0])
	n := m.CPU.PeekVariable(v) + 1
	m.CPU.ReplaceVariable(v, n)
	return m.branch(res, signed(n) > signed(res.Values[1]))
}

func opJin(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if !m.objectOK(res, res.Values[0]) {
		return m.branch(res, res.Values[1] == 0)
	}
	return m.branch(res, m.Objects.Parent(int(res.Values[0])) == int(res.Values[1]))
}

func opTest(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	return m.branch(res, res.Values[0]&res.Values[1] == res.Values[1])
}

func opOr(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	m.store(res, res.Values[0]|res.Values[1])
	return nil
}

func opAnd(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	m.store(res, res.Values[0]&res.Values[1])
	return nil
}

func opTestAttr(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if !m.objectOK(res, res.Values[0]) || !m.attributeOK(res, res.Values[1]) {
		return m.branch(res, false)
	}
	return m.branch(res, m.Objects.IsAttributeSet(int(res.Values[0]), int(res.Values[1])))
}

func opSetAttr(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.objectOK(res, res.Values[0]) && m.attributeOK(res, res.Values[1]) {
		m.Objects.SetAttribute(int(res.Values[0]), int(res.Values[1]))
	}
	return nil
}

func opClearAttr(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.objectOK(res, res.Values[0]) && m.attributeOK(res, res.Values[1]) {
		m.Objects.ClearAttribute(int(res.Values[0]), int(res.Values[1]))
	}
	return nil
}

func opStore(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	m.CPU.ReplaceVariable(uint8(res.Values[0]), res.Values[1])
	return nil
}

func opInsertObj(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.objectOK(res, res.Values[0]) && m.objectOK(res, res.Values[1]) {
		m.Objects.InsertObject(int(res.Values[1]), int(res.Values[0]))
	}
	return nil
}

func opLoadw(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	a := int(res.Values[0] + 2*res.Values[1])
	m.store(res, m.Mem.Uint16(a))
	return nil
}

func opLoadb(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	a := int(res.Values[0] + res.Values[1])
	m.store(res, uint16(m.Mem.Uint8(a)))
	return nil
}

func opGetProp(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if !m.objectOK(res, res.Values[0]) {
		m.store(res, 0)
		return nil
	}
	m.store(res, uint16(m.Objects.Property(int(res.Values[0]), int(res.Values[1]))))
	return nil
}

func opGetPropAddr(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if !m.objectOK(res, res.Values[0]) {
		m.store(res, 0)
		return nil
	}
	m.store(res, uint16(m.Objects.PropertyAddress(int(res.Values[0]), int(res.Values[1]))))
	return nil
}

func opGetNextProp(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if !m.objectOK(res, res.Values[0]) {
		m.store(res, 0)
		return nil
	}
	p, err := m.Objects.NextProperty(int(res.Values[0]), int(res.Values[1]))
	if err != nil {
		return err
	}
	m.store(res, uint16(p))
	return nil
}

func opAdd(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	m.store(res, res.Values[0]+res.Values[1])
	return nil
}

func opSub(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	m.store(res, res.Values[0]-res.Values[1])
	return nil
}

func opMul(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	m.store(res, res.Values[0]*res.Values[1])
	return nil
}

func opDiv(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if res.Values[1] == 0 {
		return curated.Errorf(DivideByZero, res.Address)
	}
	m.store(res, uint16(int16(res.Values[0])/int16(res.Values[1])))
	return nil
}

func opMod(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if res.Values[1] == 0 {
		return curated.Errorf(DivideByZero, res.Address)
	}
	m.store(res, uint16(int16(res.Values[0])%int16(res.Values[1])))
	return nil
}

func opSetColour(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	if m.env.Screen != nil {
		m.env.Screen.SetColour(signed(res.Values[0]), signed(res.Values[1]), signed(operand(res, 2, windowCurrent)))
	}
	return nil
}

func opThrow(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 2); err != nil {
		return err
	}
	frame := int(res.Values[1])
	if !m.CPU.Unwind(frame) {
		return curated.Errorf(InvalidThrow, frame)
	}
	return m.CPU.Return(res.Values[0])
}
