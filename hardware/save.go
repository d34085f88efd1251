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
	"github.com/zgopher/zgopher/hardware/cpu/instructions"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/quetzal"
	"github.com/zgopher/zgopher/rewind"
)

// error patterns for save and restore. these are never fatal
const (
	NoSaveStore = "machine: no save store"
	SaveFailed  = "machine: save failed: %v"
)

// the value stored by a version 4 and later save instruction when the game is
// restored
const restoredValue = 2

// complete a save or restore instruction with the result
func (m *Machine) saveResult(res *execution.Result, ok bool) error {
	if res.Defn.Branch {
		return m.branch(res, ok)
	}
	m.store(res, boolValue(ok))
	return nil
}

// SaveGame creates the save data for the current state. The pc argument is
// the address of the store or branch data of the saving instruction.
func (m *Machine) SaveGame(pc int) []uint8 {
	gs := quetzal.Capture(m.Mem, m.Header, m.CPU, pc, m.checksum)
	return gs.Export(m.story[:m.Header.StaticMemory()], m.Header.Version()).Bytes()
}

// RestoreGame restores the state in the save data. The program counter is
// left at the address of the store or branch data of the instruction that
// saved the game.
func (m *Machine) RestoreGame(data []uint8) error {
	gs, err := quetzal.Read(data, m.story[:m.Header.StaticMemory()], m.Header.Version())
	if err != nil {
		return err
	}
	if err := gs.Verify(m.Header, m.checksum); err != nil {
		return err
	}

	m.restoreState(func() {
		gs.Transfer(m.Mem, m.CPU)
	})

	return nil
}

// restore machine state with the transfer function. the transcripting and
// fixed font flags are preserved and the interpreter details are rewritten
// to the header
func (m *Machine) restoreState(transfer func()) {
	transcripting := m.Header.IsEnabled(header.Transcripting)
	fixedFont := m.Header.IsEnabled(header.ForceFixedFont)

	transfer()

	m.Header.SetEnabled(header.Transcripting, transcripting)
	m.Header.SetEnabled(header.ForceFixedFont, fixedFont)
	m.initHeader()
}

func opSave(m *Machine, res *execution.Result) error {
	// saving auxiliary tables is not supported
	if res.Defn.Count == instructions.Ext && len(res.Values) > 0 {
		m.store(res, 0)
		return nil
	}

	if m.env.Saves == nil {
		m.warning(NoSaveStore)
		return m.saveResult(res, false)
	}

	if err := m.env.Saves.Save(m.SaveGame(res.ResultAddress)); err != nil {
		m.warning("%v", curated.Errorf(SaveFailed, err))
		return m.saveResult(res, false)
	}

	return m.saveResult(res, true)
}

func opRestore(m *Machine, res *execution.Result) error {
	if res.Defn.Count == instructions.Ext && len(res.Values) > 0 {
		m.store(res, 0)
		return nil
	}

	if m.env.Saves == nil {
		m.warning(NoSaveStore)
		return m.saveResult(res, false)
	}

	data, err := m.env.Saves.Load()
	if err == nil {
		err = m.RestoreGame(data)
	}
	if err != nil {
		m.warning("restore: %v", err)
		return m.saveResult(res, false)
	}

	// the program counter now points to the store or branch data of the save
	// instruction that created the saved game
	if m.Header.Version() <= 3 {
		return m.CPU.ResumeBranch(true)
	}
	m.CPU.ResumeStore(restoredValue)
	return nil
}

func opSaveUndo(m *Machine, res *execution.Result) error {
	if !m.Prefs.Undo.Get().(bool) {
		m.store(res, 0xffff)
		return nil
	}
	m.undo.Append(&rewind.State{CPU: m.CPU, Mem: m.Mem})
	m.store(res, 1)
	return nil
}

func opRestoreUndo(m *Machine, res *execution.Result) error {
	st, ok := m.undo.Pop()
	if !ok {
		m.store(res, 0)
		return nil
	}

	// the store variable of the save_undo instruction that created the state
	storeVariable := st.CPU.LastResult.StoreVariable

	m.restoreState(func() {
		m.Mem.Plumb(st.Mem)
		m.CPU.Restore(st.CPU.PC, st.CPU.Frames(), st.CPU.Stack())
	})

	m.CPU.SetVariable(storeVariable, restoredValue)
	return nil
}

// Undo returns a summary of the undo states.
func (m *Machine) Undo() string {
	return m.undo.String()
}
