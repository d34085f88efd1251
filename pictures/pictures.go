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

package pictures

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/zgopher/zgopher/blorb"
	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/logger"
)

// NoPicture is the error pattern for a request for a picture that does not
// exist.
const NoPicture = "pictures: no picture %d"

// Manager answers picture queries from the pictures in a Blorb file.
type Manager struct {
	pictures map[int]*blorb.Picture
	release  int

	// size of the window in pixels. used to scale pictures
	width  int
	height int

	cache map[int]image.Image
}

// NewManager is the preferred method of initialisation for the Manager type.
// The Blorb can be nil, in which case the manager has no pictures.
func NewManager(b *blorb.Blorb, width int, height int) *Manager {
	m := &Manager{
		pictures: make(map[int]*blorb.Picture),
		width:    width,
		height:   height,
		cache:    make(map[int]image.Image),
	}
	if b != nil {
		m.pictures = b.Pictures
		m.release = b.Release
	}
	return m
}

// SetWindowSize changes the size of the window that pictures are scaled for.
// Cached pictures are discarded.
func (m *Manager) SetWindowSize(width int, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.Reset()
}

// PictureSize returns the scaled size of the picture. The ok value is false
// if the picture does not exist.
func (m *Manager) PictureSize(picture int) (int, int, bool) {
	p, ok := m.pictures[picture]
	if !ok {
		return 0, 0, false
	}
	w, h := p.Size(m.width, m.height)
	return w, h, true
}

// NumPictures returns the number of pictures available.
func (m *Manager) NumPictures() int {
	return len(m.pictures)
}

// Release returns the release number of the picture file.
func (m *Manager) Release() int {
	return m.release
}

// Picture returns the decoded picture scaled to the size returned by
// PictureSize().
func (m *Manager) Picture(picture int) (image.Image, error) {
	if img, ok := m.cache[picture]; ok {
		return img, nil
	}

	p, ok := m.pictures[picture]
	if !ok {
		return nil, curated.Errorf(NoPicture, picture)
	}

	img, err := p.Decode()
	if err != nil {
		return nil, err
	}

	w, h := p.Size(m.width, m.height)
	if w != p.Width || h != p.Height {
		img = scale(img, w, h)
	}

	m.cache[picture] = img
	return img, nil
}

// Preload decodes the pictures so that later calls to Picture() return
// quickly. Pictures that cannot be decoded are skipped.
func (m *Manager) Preload(pictures []int) {
	for _, p := range pictures {
		if _, err := m.Picture(p); err != nil {
			logger.Log(logger.Allow, "pictures", err)
		}
	}
}

// Reset discards all cached pictures.
func (m *Manager) Reset() {
	m.cache = make(map[int]image.Image)
}

func scale(img image.Image, width int, height int) image.Image {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
