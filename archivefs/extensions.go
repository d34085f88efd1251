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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// StoryExtensions is the list of file extensions used for story files and
// Blorb files containing a story.
var StoryExtensions = [...]string{
	".Z1", ".Z2", ".Z3", ".Z4", ".Z5", ".Z6", ".Z7", ".Z8",
	".DAT", ".ZBLORB", ".ZLB",
}

// IsStory returns true if the filename has one of the story file extensions.
func IsStory(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range StoryExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimArchiveExt removes the file extension of any supported archive type
// from the end of the string.
func TrimArchiveExt(s string) string {
	sext := strings.ToUpper(filepath.Ext(s))
	for _, ext := range ArchiveExtensions {
		if sext == ext {
			return strings.TrimSuffix(s, filepath.Ext(s))
		}
	}
	return s
}
