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

// Package hardware is the base package for the Z-machine. The Machine type
// holds the story file, the CPU and the subsystems that interpret the
// structures in story memory. It dispatches every decoded instruction to
// the handler for that instruction.
//
// The screen, the sound system, the picture manager and the save store are
// external collaborators. They are supplied to the Machine through the
// Environment type and any of them can be nil, in which case the
// corresponding instructions do nothing.
//
// Errors are in three tiers. A fatal error halts the Machine and is
// returned by Step() and Run(). A warning, for example an attempt to access
// object zero, is logged with the "warning" tag and counted but execution
// continues. Failures of saving, restoring and the transcript are reported
// to the story through the result of the instruction.
package hardware
