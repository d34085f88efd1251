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

// Package execution tracks the result of instruction decoding and execution.
// The Result type records the instruction's address, its definition, the
// decoded operands and any store or branch information.
//
// The IsValid() function can be used to check whether the result is
// consistent with the instruction definition. The CPU package does not call
// IsValid() during normal operation but it is useful for testing.
package execution
