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

package execution

import (
	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	if len(r.Operands) > r.Defn.MaxOperands() {
		return curated.Errorf("cpu: too many operands for %s (%d)", r.Defn.Mnemonic, len(r.Operands))
	}

	switch r.Defn.Count {
	case instructions.ZeroOp:
		if len(r.Operands) != 0 {
			return curated.Errorf("cpu: unexpected operands for %s", r.Defn.Mnemonic)
		}
	case instructions.OneOp:
		if len(r.Operands) != 1 {
			return curated.Errorf("cpu: %s requires one operand", r.Defn.Mnemonic)
		}
	case instructions.TwoOp:
		if r.Form == instructions.Long && len(r.Operands) != 2 {
			return curated.Errorf("cpu: long form %s requires two operands", r.Defn.Mnemonic)
		}
	}

	for _, op := range r.Operands {
		if op.Type == Omitted {
			return curated.Errorf("cpu: omitted operand in operand list for %s", r.Defn.Mnemonic)
		}
	}

	if r.Defn.Text && r.TextLength == 0 {
		return curated.Errorf("cpu: %s has no inline text", r.Defn.Mnemonic)
	}

	if r.ByteCount <= 0 {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d)", r.ByteCount)
	}

	return nil
}
