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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// each group on the stack is the set of key/value pairs given by a single
// call to PushCommandLineStack(). the overridden map records which keys have
// been consumed from the group so that a later Load() does not replace them.
type commandLineGroup struct {
	values     map[string]Value
	overridden map[string]bool
}

var commandLineStack []commandLineGroup

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the "unused" preferences of the stack entry.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped.values))
	for key := range popped.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%v; ", key, popped.values[key]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// PushCommandLineStack parses a command line and adds it as a new group. The
// prefs string is a list of key/value pairs separated by semi-colons. Keys
// and values are separated by a double colon. For example:
//
//	"machine.warnings::false; sound.volume::0.5"
func PushCommandLineStack(prefs string) {
	cl := commandLineGroup{
		values:     make(map[string]Value),
		overridden: make(map[string]bool),
	}

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl.values[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack = append(commandLineStack, cl)
}

// GetCommandLinePref value from current group. The value is deleted when it is
// returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl.values[key]; ok {
		delete(cl.values, key)
		cl.overridden[key] = true
		return true, v
	}

	return false, nil
}

// isOverridden returns true if the key was taken from the current group.
func isOverridden(key string) bool {
	if len(commandLineStack) == 0 {
		return false
	}
	return commandLineStack[len(commandLineStack)-1].overridden[key]
}
