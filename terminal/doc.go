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

// Package terminal is a screen model for ANSI terminals. The upper window is
// drawn at the top of the terminal and the lower window scrolls beneath it.
// The status line of early stories occupies the first line of the terminal
// when enabled with SetStatusLine().
//
// Input is read from the terminal in cbreak mode so that single key presses
// reach the interpreter without waiting for the return key. The terminal
// does not echo key presses in this mode. Line input is echoed by the
// EchoInput() function.
package terminal
