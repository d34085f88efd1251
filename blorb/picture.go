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
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/iff"
)

// PictureFormat identifies the encoding of a picture resource.
type PictureFormat int

// List of valid PictureFormat values.
const (
	PNG PictureFormat = iota
	JPEG

	// a placeholder has a size but no image data
	Placeholder
)

func (f PictureFormat) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case Placeholder:
		return "Rect"
	}
	return "unknown"
}

// Picture is a picture resource.
type Picture struct {
	Number int
	Format PictureFormat

	// encoded image data. nil for placeholders
	Data []uint8

	// the size of the picture before scaling
	Width  int
	Height int

	// scaling information from the Reso chunk. nil if the picture is always
	// shown at its natural size
	Scale *Scale
}

func newPicture(number int, c *iff.Chunk) (*Picture, error) {
	p := &Picture{Number: number}

	switch c.ID {
	case "Rect":
		if len(c.Data) < 8 {
			return nil, curated.Errorf(InvalidChunk, c.ID)
		}
		p.Format = Placeholder
		p.Width = int(binary.BigEndian.Uint32(c.Data))
		p.Height = int(binary.BigEndian.Uint32(c.Data[4:]))
		return p, nil
	case "PNG ":
		p.Format = PNG
	case "JPEG":
		p.Format = JPEG
	default:
		return nil, curated.Errorf("blorb: unsupported picture format (%s)", c.ID)
	}

	p.Data = c.Data
	cfg, _, err := image.DecodeConfig(bytes.NewReader(c.Data))
	if err != nil {
		return nil, curated.Errorf("blorb: %v", err)
	}
	p.Width = cfg.Width
	p.Height = cfg.Height

	return p, nil
}

func (p *Picture) String() string {
	s := fmt.Sprintf("picture %d: %s %dx%d", p.Number, p.Format, p.Width, p.Height)
	if p.Scale != nil {
		s = fmt.Sprintf("%s scale %s", s, p.Scale)
	}
	return s
}

// Decode the picture. Placeholders cannot be decoded.
func (p *Picture) Decode() (image.Image, error) {
	if p.Format == Placeholder {
		return nil, curated.Errorf("blorb: picture %d is a placeholder", p.Number)
	}
	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, curated.Errorf("blorb: picture %d: %v", p.Number, err)
	}
	return img, nil
}

// Size returns the size of the picture when displayed in a window of the
// specified size.
func (p *Picture) Size(windowWidth int, windowHeight int) (int, int) {
	if p.Scale == nil {
		return p.Width, p.Height
	}
	r := p.Scale.Ratio(windowWidth, windowHeight)
	return int(math.Round(float64(p.Width) * r)), int(math.Round(float64(p.Height) * r))
}

// Dimension is a width and a height.
type Dimension struct {
	Width  int
	Height int
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Resolution is the window size information from the Reso chunk.
type Resolution struct {
	Standard Dimension
	Minimum  Dimension
	Maximum  Dimension
}

func (r Resolution) String() string {
	return fmt.Sprintf("%s (min %s, max %s)", r.Standard, r.Minimum, r.Maximum)
}

// elasticity returns the ratio of the window size to the standard window
// size. the smaller of the horizontal and vertical ratios is used
func (r Resolution) elasticity(windowWidth int, windowHeight int) float64 {
	if r.Standard.Width == 0 || r.Standard.Height == 0 {
		return 1.0
	}
	x := float64(windowWidth) / float64(r.Standard.Width)
	y := float64(windowHeight) / float64(r.Standard.Height)
	return math.Min(x, y)
}

// Ratio is a fraction. A ratio with a zero denominator is unset.
type Ratio struct {
	Numerator   int
	Denominator int
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// IsSet returns true if the ratio has a value.
func (r Ratio) IsSet() bool {
	return r.Denominator != 0 && r.Numerator != 0
}

// Value of the ratio as a floating point number.
func (r Ratio) Value() float64 {
	if r.Denominator == 0 {
		return 0
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

// Scale is the scaling information for a single picture.
type Scale struct {
	resolution *Resolution

	Standard Ratio
	Minimum  Ratio
	Maximum  Ratio
}

func (s *Scale) String() string {
	return fmt.Sprintf("%s (min %s, max %s)", s.Standard, s.Minimum, s.Maximum)
}

// Ratio returns the scaling ratio for the picture in a window of the
// specified size. The standard ratio is multiplied by the elasticity of the
// window and then clamped to the minimum and maximum ratios.
func (s *Scale) Ratio(windowWidth int, windowHeight int) float64 {
	r := s.Standard.Value()
	if r == 0 {
		r = 1.0
	}
	r *= s.resolution.elasticity(windowWidth, windowHeight)
	if s.Minimum.IsSet() && r < s.Minimum.Value() {
		r = s.Minimum.Value()
	}
	if s.Maximum.IsSet() && r > s.Maximum.Value() {
		r = s.Maximum.Value()
	}
	return r
}

// the Reso chunk is six words of window sizes followed by seven words for
// each scaled picture
func (b *Blorb) readResolution(d []uint8) error {
	if len(d) < 24 {
		return curated.Errorf(InvalidChunk, "Reso")
	}

	w := func(i int) int {
		return int(binary.BigEndian.Uint32(d[i*4:]))
	}

	b.Resolution = &Resolution{
		Standard: Dimension{w(0), w(1)},
		Minimum:  Dimension{w(2), w(3)},
		Maximum:  Dimension{w(4), w(5)},
	}

	for o := 6; (o+7)*4 <= len(d); o += 7 {
		p, ok := b.Pictures[w(o)]
		if !ok {
			continue
		}
		p.Scale = &Scale{
			resolution: b.Resolution,
			Standard:   Ratio{w(o + 1), w(o + 2)},
			Minimum:    Ratio{w(o + 3), w(o + 4)},
			Maximum:    Ratio{w(o + 5), w(o + 6)},
		}
	}

	return nil
}
