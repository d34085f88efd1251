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
	"context"
	"errors"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/cpu/execution"
	"github.com/zgopher/zgopher/hardware/cpu/instructions"
)

// handler implementations are called with a copy of the CPU's LastResult.
// the copy remains valid even if the handler causes other instructions to
// be executed, for example by calling an interrupt routine
type handler func(m *Machine, res *execution.Result) error

type handlerTable [instructions.NumOperandCounts][32]handler

// every mnemonic in the instruction definitions is handled by one of these
// functions. mnemonics that are shared by more than one definition (for
// example the version 4 and version 5 forms of save) are handled by the same
// function, which inspects the definition if necessary
var handlersByMnemonic = map[string]handler{}

func register(h map[string]handler) {
	for k, v := range h {
		handlersByMnemonic[k] = v
	}
}

// create the dispatch table for the instruction table
func newHandlerTable(table *instructions.Table) (handlerTable, error) {
	var tab handlerTable
	for c := instructions.ZeroOp; c < instructions.NumOperandCounts; c++ {
		for op := 0; op < 32; op++ {
			defn := table.Lookup(c, uint8(op))
			if defn == nil {
				continue
			}
			h, ok := handlersByMnemonic[defn.Mnemonic]
			if !ok {
				return tab, curated.Errorf(MissingHandler, defn.Mnemonic)
			}
			tab[c][op] = h
		}
	}
	return tab, nil
}

// Step executes the next instruction. If the machine has halted, the error
// that halted the machine is returned.
//
// An instruction abandoned because the Run() context is done does not halt
// the machine. The context error is returned and the instruction will be
// executed again by the next call to Step().
func (m *Machine) Step() error {
	if m.halted != nil {
		return m.halted
	}
	if m.quit {
		return nil
	}

	if err := m.step(); err != nil {
		if abandoned(err) {
			return err
		}
		m.halt(err)
		return err
	}

	return nil
}

// abandoned returns true if the error is the result of a context being done
func abandoned(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Run the machine until the story quits, the machine halts or the context
// is done. Input instructions block until input arrives and are abandoned if
// the context is done.
func (m *Machine) Run(ctx context.Context) error {
	m.ctx = ctx
	defer func() {
		m.ctx = context.Background()
		m.Output.Flush()
	}()

	for !m.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Step(); err != nil {
			return err
		}
	}

	return nil
}

// step decodes and executes one instruction. panics raised with curated
// errors, for example by illegal memory accesses, are returned as errors
func (m *Machine) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && curated.IsAny(e) {
				err = e
				return
			}
			panic(r)
		}
	}()

	pc := m.CPU.PC
	depth := m.CPU.NumFrames()

	if err := m.pollSound(); err != nil {
		if abandoned(err) {
			m.CPU.Unwind(depth - 1)
			m.CPU.PC = pc
		}
		return err
	}

	if err := m.CPU.Decode(); err != nil {
		return err
	}
	if err := m.CPU.LastResult.IsValid(); err != nil {
		return err
	}
	m.CPU.ResolveOperands()

	res := m.CPU.LastResult
	err = m.handlers[res.Defn.Count][res.Defn.OpCode](m, &res)
	if err != nil && abandoned(err) {
		m.rollback(depth, &res)
	}
	return err
}

// rollback undoes the effect of an instruction on the CPU so that it can be
// executed again. frames of any interrupt routine called by the instruction
// are discarded and operands taken from the stack are pushed back
func (m *Machine) rollback(depth int, res *execution.Result) {
	m.CPU.Unwind(depth - 1)
	for i := len(res.Operands) - 1; i >= 0; i-- {
		if res.Operands[i].Type == execution.Variable && res.Operands[i].Raw == 0 {
			m.CPU.Push(res.Values[i])
		}
	}
	m.CPU.PC = res.Address
}

// call the routine as an interrupt and run the machine until it returns.
// the value returned by the routine is returned
func (m *Machine) interrupt(routine int) (uint16, error) {
	depth := m.CPU.NumFrames()
	if err := m.CPU.CallInterrupt(routine); err != nil {
		return 0, err
	}
	for m.CPU.NumFrames() > depth {
		if m.quit {
			return 0, nil
		}
		if err := m.step(); err != nil {
			return 0, err
		}
	}
	return m.CPU.InterruptValue(), nil
}

// call interrupt routines of sounds that have finished
func (m *Machine) pollSound() error {
	if m.env.Sound == nil {
		return nil
	}
	select {
	case routine := <-m.env.Sound.Finished():
		if routine != 0 {
			_, err := m.interrupt(routine)
			return err
		}
	default:
	}
	return nil
}
