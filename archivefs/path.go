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
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zgopher/zgopher/curated"
)

// Node represents a single part of a full path
type Node struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// an archive file is also considered to be a directory
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path represents a single destination in the file system
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// path inside the zip file split into the containing directory and the
	// file itself. zip paths always use the forward slash
	inZipPath string
	inZipFile string
}

// String returns the current path
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open returns an io.ReadSeeker for the filename previously set by Set(),
// along with the size of the data.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, err
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing directory
func (afs *Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		dir := afs.inZipPath
		if dir == "" {
			dir = "."
		}
		// fs.ReadDir includes directories that have no entry of their own
		zd, err := fs.ReadDir(afs.zf, dir)
		if err != nil {
			return []Node{}, curated.Errorf(NotFound, err)
		}
		for _, d := range zd {
			ent = append(ent, Node{
				Name:  d.Name(),
				IsDir: d.IsDir(),
			})
		}
	} else {
		p := afs.current
		if !afs.isDir {
			p = filepath.Dir(p)
		}

		dir, err := os.ReadDir(p)
		if err != nil {
			return []Node{}, curated.Errorf(NotFound, err)
		}

		for _, d := range dir {
			// os.Stat() follows links to directories
			fi, err := os.Stat(filepath.Join(p, d.Name()))
			if err != nil {
				continue
			}

			n := Node{Name: d.Name(), IsDir: fi.IsDir()}
			if !n.IsDir {
				if zf, err := zip.OpenReader(filepath.Join(p, d.Name())); err == nil {
					zf.Close()
					n.IsDir = true
					n.IsArchive = true
				}
			}
			ent = append(ent, n)
		}
	}

	// directories first and then alphabetically (case insensitive)
	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}

// Set the path. Any archive in the path is opened and treated as a directory.
func (afs *Path) Set(p string) error {
	afs.Close()

	p = filepath.Clean(p)
	lst := strings.Split(p, string(filepath.Separator))

	// strings.Split will remove a leading separator. add one back so that
	// filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	p = ""

	for _, l := range lst {
		p = filepath.Join(p, l)

		if afs.zf != nil {
			zp := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(zp)
			if err != nil {
				return curated.Errorf(NotFound, err)
			}
			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				return curated.Errorf(NotFound, err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = zp
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}
			continue
		}

		fi, err := os.Stat(p)
		if err != nil {
			return curated.Errorf(NotFound, err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(p)
		if err == nil {
			afs.isDir = true
			continue
		}
		afs.zf = nil

		if !errors.Is(err, zip.ErrFormat) {
			return curated.Errorf(NotFound, err)
		}
	}

	afs.current = filepath.Clean(p)

	return nil
}

// story returns the full path of the only story file anywhere in the archive.
func (afs Path) story() (string, error) {
	var found string
	for _, f := range afs.zf.File {
		if f.FileInfo().IsDir() || !IsStory(f.Name) {
			continue
		}
		if found != "" {
			return "", curated.Errorf(TooMany, afs.current)
		}
		found = f.Name
	}
	if found == "" {
		return "", curated.Errorf(NoStory, afs.current)
	}

	// the archive path with any in-archive directory removed
	base := afs.current
	if afs.inZipPath != "" {
		base = strings.TrimSuffix(base, string(filepath.Separator)+filepath.FromSlash(afs.inZipPath))
	}
	return filepath.Join(base, filepath.FromSlash(found)), nil
}
