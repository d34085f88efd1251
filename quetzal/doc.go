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

// Package quetzal implements the Quetzal save file format. A saved game is an
// IFF FORM of type IFZS containing the following chunks:
//
//	IFhd	release number, serial number and checksum of the story and
//		the program counter at the point of the save
//	CMem	dynamic memory, XOR'd against the original story and run-length
//		encoded
//	UMem	dynamic memory, uncompressed (read only)
//	Stks	the call frames and evaluation stack
//	ANNO	an optional annotation
//
// The PortableGameState type is the decoded form of a save file. It is
// created from a running machine with Capture() and applied to a machine
// with Transfer().
package quetzal
