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

// Package rewind keeps a history of machine states. It is used to implement
// the save_undo and restore_undo instructions.
//
// The history is a circular array of a fixed number of entries. Appending an
// entry to a full history silently discards the oldest entry. States are
// snapshotted when they are appended, so that the stored state is never
// altered by the running machine.
package rewind
