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

// Package prefs facilitates the storage of preferential values in the
// interpreter. Preferences are typed values (Bool, Int, Float, String) that
// can be read and written concurrently. Each type has optional hooks that are
// called before and after a new value is set.
//
// Preferences are persisted with the Disk type. A Disk associates a key with
// each preference and stores them in an INI file. The part of the key before
// the first full-stop is used as the INI section. For example, the key
// "sound.volume" is stored as:
//
//	[sound]
//	volume = 0.800
//
// Values given on the command line override both the default value and the
// value stored on disk. See PushCommandLineStack().
package prefs
