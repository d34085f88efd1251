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

package blorb

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zgopher/zgopher/archivefs"
	"github.com/zgopher/zgopher/curated"
)

// list of filename extensions used for Blorb files.
var extensions = []string{".zblorb", ".zlb", ".blb", ".blorb"}

// HasBlorbExtension returns true if the filename has one of the extensions
// used for Blorb files.
func HasBlorbExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadStory returns the story in the data. The data can be a raw story file
// or a Blorb file with an embedded story. The Blorb is returned if there is
// one and nil otherwise.
func LoadStory(data []uint8) ([]uint8, *Blorb, error) {
	if !IsBlorb(data) {
		if len(data) == 0 || data[0] < 1 || data[0] > 8 {
			return nil, nil, curated.Errorf(NotZcode, "bad version")
		}
		return data, nil, nil
	}

	b, err := Read(data)
	if err != nil {
		return nil, nil, err
	}
	if b.Story() == nil {
		return nil, nil, curated.Errorf(NoStory)
	}

	return b.Story(), b, nil
}

// LoadFile reads the file and passes the data to LoadStory().
func LoadFile(filename string) ([]uint8, *Blorb, error) {
	data, err := archivefs.ReadFile(filename)
	if err != nil {
		return nil, nil, curated.Errorf("blorb: %v", err)
	}
	return LoadStory(data)
}

// ResourceFile returns the name of a Blorb file with the same base name as
// the story file. Returns the empty string if there is no such file. Raw
// story files can have their pictures and sounds in a separate Blorb file.
func ResourceFile(story string) string {
	base := strings.TrimSuffix(story, filepath.Ext(story))
	for _, e := range extensions {
		fn := base + e
		if fn == story {
			continue
		}
		if _, err := os.Stat(fn); err == nil {
			return fn
		}
	}
	return ""
}
