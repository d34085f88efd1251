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

// Package statsview serves live runtime statistics of the interpreter, such
// as heap size, goroutine count and garbage collection activity, while a story
// is running. It is requested with the -statsview flag of the RUN mode and is
// only built when the statsview build tag is present. Without the tag,
// Available() returns false.
//
// The statistics are served at:
//
//	localhost:12700/debug/statsview
//
// The standard pprof endpoints are served at:
//
//	localhost:12700/debug/pprof/
//
// The server stops when the context passed to Launch() is done.
package statsview
