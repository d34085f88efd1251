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
		"rtrue":       opRtrue,
		"rfalse":      opRfalse,
		"print":       opPrint,
		"print_ret":   opPrintRet,
		"nop":         opNop,
		"save":        opSave,
		"restore":     opRestore,
		"restart":     opRestart,
		"ret_popped":  opRetPopped,
		"pop":         opPop,
		"catch":       opCatch,
		"quit":        opQuit,
		"new_line":    opNewLine,
		"show_status": opShowStatus,
		"verify":      opVerify,
		"piracy":      opPiracy,
	})
}

func opRtrue(m *Machine, res *execution.Result) error {
	return m.CPU.Return(1)
}

func opRfalse(m *Machine, res *execution.Result) error {
	return m.CPU.Return(0)
}

func opPrint(m *Machine, res *execution.Result) error {
	m.printEncoded(res.TextAddress)
	return nil
}

func opPrintRet(m *Machine, res *execution.Result) error {
	m.printEncoded(res.TextAddress)
	m.newLine()
	return m.CPU.Return(1)
}

func opNop(m *Machine, res *execution.Result) error {
	return nil
}

func opRestart(m *Machine, res *execution.Result) error {
	return m.Restart()
}

func opRetPopped(m *Machine, res *execution.Result) error {
	return m.CPU.Return(m.CPU.Pop())
}

func opPop(m *Machine, res *execution.Result) error {
	m.CPU.Pop()
	return nil
}

func opCatch(m *Machine, res *execution.Result) error {
	m.store(res, uint16(m.CPU.Catch()))
	return nil
}

func opQuit(m *Machine, res *execution.Result) error {
	m.quit = true
	m.Output.Flush()
	return nil
}

func opNewLine(m *Machine, res *execution.Result) error {
	m.newLine()
	return nil
}

func opShowStatus(m *Machine, res *execution.Result) error {
	m.updateStatusLine()
	return nil
}

func opVerify(m *Machine, res *execution.Result) error {
	ok := m.Header.Checksum() == m.checksum
	if !ok {
		m.warning("verify: checksum mismatch (header %04x computed %04x)", m.Header.Checksum(), m.checksum)
	}
	return m.branch(res, ok)
}

// this interpreter is genuine
func opPiracy(m *Machine, res *execution.Result) error {
	return m.branch(res, true)
}
