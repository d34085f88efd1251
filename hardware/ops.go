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

func requireOperands(res *execution.Result, n int) error {
	if len(res.Values) < n {
		return curated.Errorf(TooFewOperands, res.Defn.Mnemonic, n, res.Address)
	}
	return nil
}

// the value of the operand or the default value if the operand was omitted
func operand(res *execution.Result, i int, def uint16) uint16 {
	if i < len(res.Values) {
		return res.Values[i]
	}
	return def
}

func signed(v uint16) int {
	return int(int16(v))
}

func boolValue(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func (m *Machine) store(res *execution.Result, v uint16) {
	m.CPU.SetVariable(res.StoreVariable, v)
}

func (m *Machine) branch(res *execution.Result, condition bool) error {
	return m.CPU.Branch(res.Branch, condition)
}

// objectOK returns false, and raises a warning, if the object number is not
// valid
func (m *Machine) objectOK(res *execution.Result, obj uint16) bool {
	if m.Objects.ValidObject(int(obj)) {
		return true
	}
	m.warning("%s: invalid object %d at %05x", res.Defn.Mnemonic, obj, res.Address)
	return false
}

func (m *Machine) attributeOK(res *execution.Result, attr uint16) bool {
	if m.Objects.ValidAttribute(int(attr)) {
		return true
	}
	m.warning("%s: invalid attribute %d at %05x", res.Defn.Mnemonic, attr, res.Address)
	return false
}

// check that the address is in dynamic memory. writes outside of dynamic
// memory are allowed but raise a warning
func (m *Machine) checkWrite(res *execution.Result, address int) {
	if address >= m.Header.StaticMemory() {
		m.warning("%s: write to static memory (%05x) at %05x", res.Defn.Mnemonic, address, res.Address)
	}
}

// call the routine at the packed address with the arguments. the result of
// the routine is stored in the instruction's store variable if it has one.
// a routine address of zero returns false immediately
func (m *Machine) call(res *execution.Result, packed uint16, args []uint16) error {
	if packed == 0 {
		if res.Defn.Store {
			m.store(res, 0)
		}
		return nil
	}
	return m.CPU.Call(m.CPU.UnpackRoutine(packed), args, res.StoreVariable, !res.Defn.Store)
}

func opCall(m *Machine, res *execution.Result) error {
	if err := requireOperands(res, 1); err != nil {
		return err
	}
	return m.call(res, res.Values[0], res.Values[1:])
}

func init() {
	register(map[string]handler{
		"call":     opCall,
		"call_vs":  opCall,
		"call_vs2": opCall,
		"call_vn":  opCall,
		"call_vn2": opCall,
		"call_1s":  opCall,
		"call_1n":  opCall,
		"call_2s":  opCall,
		"call_2n":  opCall,
	})
}
