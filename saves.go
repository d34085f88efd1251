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

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/logger"
	"github.com/zgopher/zgopher/streams"
)

// the filename extension for Quetzal save files
const saveExtension = ".qzl"

// fileSaves implements the hardware.SaveStore interface. Games are saved to
// a single file, named after the story unless a filename is given.
type fileSaves struct {
	filename string
}

func newFileSaves(story string, filename string) *fileSaves {
	if filename == "" {
		filename = strings.TrimSuffix(filepath.Base(story), filepath.Ext(story)) + saveExtension
	}
	return &fileSaves{filename: filename}
}

// Save implements the hardware.SaveStore interface.
func (fs *fileSaves) Save(data []uint8) error {
	if err := os.WriteFile(fs.filename, data, 0o644); err != nil {
		return curated.Errorf("save: %v", err)
	}
	logger.Logf(logger.Allow, "save", "saved game to %s", fs.filename)
	return nil
}

// Load implements the hardware.SaveStore interface.
func (fs *fileSaves) Load() ([]uint8, error) {
	data, err := os.ReadFile(fs.filename)
	if err != nil {
		return nil, curated.Errorf("restore: %v", err)
	}
	return data, nil
}

// fileOpener creates the named file when the stream is first selected. An
// existing file is appended to.
func fileOpener(filename string) streams.Opener {
	return func() (io.WriteCloser, error) {
		f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, curated.Errorf("stream: %v", err)
		}
		return f, nil
	}
}
