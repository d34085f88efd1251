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

// Package logger is the central log for the interpreter. Non-fatal problems
// encountered while running a story (reading object zero, setting an
// attribute out of range, writing to static memory, etc.) are logged here
// rather than being returned as errors.
//
// The package level functions Log() and Logf() add entries to the central
// log. Alternative logs can be created with NewLogger(), which is mostly
// useful for testing.
//
// Every logging request is accompanied by a Permission. Requests with a
// Permission that doesn't allow logging are silently dropped. The Allow
// value always allows logging.
package logger
