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

// Package paths contains functions to prepare paths to ZGopher resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file:
//
//	p, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is ".zgopher" in the current working
// directory. For release builds (the "release" build tag) it is the "zgopher"
// directory in the user's config directory, as reported by
// os.UserConfigDir(). On a modern Linux system that would be:
//
//	/home/user/.config/zgopher/preferences
//
// The sub-path will be created if it doesn't already exist.
package paths
