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

package rewind

import (
	"fmt"
	"strings"

	"github.com/zgopher/zgopher/hardware/cpu"
	"github.com/zgopher/zgopher/hardware/memory"
)

// State contains pointers to areas of the machine. They can be read for
// reference.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

func (s State) String() string {
	return fmt.Sprintf("%05x", s.CPU.PC)
}

// snapshot creates a copy of the state. the CPU of the new state is plumbed
// into the new memory.
func (s *State) snapshot() *State {
	n := &State{
		CPU: s.CPU.Snapshot(),
		Mem: s.Mem.Snapshot(),
	}
	n.CPU.Plumb(n.Mem)
	return n
}

// DefaultMaxEntries is the number of entries in a new Rewind.
const DefaultMaxEntries = 5

// Rewind contains a history of machine states.
type Rewind struct {
	// circular array of snapshotted entries
	entries []*State
	start   int
	count   int
}

// NewRewind is the preferred method of initialisation for the Rewind type. A
// maxEntries value of less than one is treated as one.
func NewRewind(maxEntries int) *Rewind {
	r := &Rewind{}
	r.SetMaxEntries(maxEntries)
	return r
}

func (r *Rewind) String() string {
	s := strings.Builder{}
	for i, e := range r.States() {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(e.String())
	}
	return fmt.Sprintf("undo [%d/%d] %s", r.count, len(r.entries), s.String())
}

// SetMaxEntries changes the capacity of the history. If the new capacity is
// smaller than the number of entries then the oldest entries are discarded.
func (r *Rewind) SetMaxEntries(maxEntries int) {
	if maxEntries < 1 {
		maxEntries = 1
	}

	states := r.States()
	if len(states) > maxEntries {
		states = states[len(states)-maxEntries:]
	}

	r.entries = make([]*State, maxEntries)
	r.start = 0
	r.count = copy(r.entries, states)
}

// MaxEntries returns the capacity of the history.
func (r *Rewind) MaxEntries() int {
	return len(r.entries)
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	return r.count
}

// Reset removes all entries from the history.
func (r *Rewind) Reset() {
	for i := range r.entries {
		r.entries[i] = nil
	}
	r.start = 0
	r.count = 0
}

// Append a snapshot of the state to the history. If the history is full the
// oldest entry is discarded.
func (r *Rewind) Append(s *State) {
	e := (r.start + r.count) % len(r.entries)
	r.entries[e] = s.snapshot()

	if r.count == len(r.entries) {
		// push start index along
		r.start++
		if r.start >= len(r.entries) {
			r.start = 0
		}
	} else {
		r.count++
	}
}

// Pop removes the most recent entry from the history and returns it. The
// second return value is false if the history is empty.
func (r *Rewind) Pop() (*State, bool) {
	if r.count == 0 {
		return nil, false
	}

	e := (r.start + r.count - 1) % len(r.entries)
	s := r.entries[e]
	r.entries[e] = nil
	r.count--

	return s, true
}

// States returns the entries in the history, oldest first. The states should
// not be altered.
func (r *Rewind) States() []*State {
	states := make([]*State, 0, r.count)
	for i := 0; i < r.count; i++ {
		states = append(states, r.entries[(r.start+i)%len(r.entries)])
	}
	return states
}
