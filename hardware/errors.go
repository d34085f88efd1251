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
	"github.com/zgopher/zgopher/hardware/cpu"
)

// List of fatal error patterns. A machine that encounters any of these errors
// halts.
const (
	InvalidOpcode    = cpu.InvalidOpcode
	DivideByZero     = "machine: division by zero at %05x"
	InvalidThrow     = "machine: throw to frame %d which does not exist"
	TooFewOperands   = "machine: %s requires %d operands at %05x"
	MissingHandler   = "machine: no handler for %s"
	Halted           = "machine: halted: %v"
	InvalidStory     = "machine: invalid story file: %s"
	UnsupportedStory = "machine: unsupported story version (%d)"
)
