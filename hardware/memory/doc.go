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

// Package memory implements the byte addressable memory of the Z-machine.
//
// The Memory type owns the only copy of the story image. All reads and writes
// are big-endian and are made through the typed accessors of the Accessor
// interface. Values wider than a byte are assembled from (or split into)
// consecutive bytes, the most significant byte being at the lowest address.
//
// A Section is a window onto a Memory. It rebases addresses by a fixed offset
// and is clipped to a fixed length. A Section has no storage of its own and
// every access is forwarded to the underlying Memory.
//
// Addresses outside of the Memory (or Section) are illegal. Rather than
// burdening every accessor with an error return, an illegal access will panic
// with an error created with the AddressError pattern. The hardware package
// recovers from these panics at the instruction boundary and halts the
// machine, which is the required behaviour for an illegal access.
//
//	defer func() {
//		if r := recover(); r != nil {
//			if err, ok := r.(error); ok && curated.Is(err, memory.AddressError) {
//				// halt
//			}
//		}
//	}()
package memory
