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

// Package streams implements the input and output streams of the Z-machine.
//
// There are four output streams. Stream 1 is the screen, stream 2 is the
// transcript, stream 3 redirects output to a table in memory and stream 4
// records the player's input to a command script. While stream 3 is
// selected all printed text goes to the memory table and to no other
// stream. Stream 3 can be selected while already selected, up to a nesting
// depth of 16.
//
// There are two input streams. Stream 0 is the keyboard and stream 1 is a
// command file. Reading from an input stream takes a context.Context, which
// is how timed input is implemented.
package streams
