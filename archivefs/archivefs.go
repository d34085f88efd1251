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

// Package archivefs allows story files to be loaded from inside zip
// archives. A path can pass through an archive as though the archive was a
// directory, for example:
//
//	games/infocom.zip/zork1/zork1.z3
//
// A path that ends at the archive itself refers to the only story file in
// the archive.
package archivefs

import (
	"io"

	"github.com/zgopher/zgopher/curated"
)

// error patterns
const (
	NotFound  = "archivefs: %v"
	NoStory   = "archivefs: no story file in %s"
	TooMany   = "archivefs: more than one story file in %s"
	ReadError = "archivefs: read: %v"
)

// ReadFile returns the contents of the file. The filename can be inside an
// archive.
func ReadFile(filename string) ([]uint8, error) {
	var afs Path
	if err := afs.Set(filename); err != nil {
		return nil, err
	}
	defer afs.Close()

	if afs.IsDir() {
		if !afs.InArchive() {
			return nil, curated.Errorf(NoStory, filename)
		}
		story, err := afs.story()
		if err != nil {
			return nil, err
		}
		if err := afs.Set(story); err != nil {
			return nil, err
		}
	}

	r, _, err := afs.Open()
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	return data, nil
}
