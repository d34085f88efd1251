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
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/iff"
	"github.com/zgopher/zgopher/logger"
)

// Sentinal error patterns.
const (
	NotBlorb      = "blorb: not a blorb file (%s)"
	InvalidIndex  = "blorb: invalid resource index (%s)"
	InvalidChunk  = "blorb: invalid %s chunk"
	NoStory       = "blorb: no story in blorb file"
	NotZcode      = "blorb: story is not zcode (%s)"
	formTypeBlorb = "IFRS"
)

// resource usage identifiers of the resource index.
const (
	usagePicture    = "Pict"
	usageSound      = "Snd "
	usageExecutable = "Exec"
	usageData       = "Data"
)

// Resource is a single entry in the resource index.
type Resource struct {
	Usage  string
	Number int

	// offset of the chunk header in the file
	Start int
}

func (r Resource) String() string {
	return fmt.Sprintf("%s %d @ %#x", strings.TrimSpace(r.Usage), r.Number, r.Start)
}

// Blorb is a parsed Blorb resource file.
type Blorb struct {
	form  *iff.Form
	index []Resource

	Pictures map[int]*Picture
	Sounds   map[int]*Sound

	// the picture to show before the story begins. zero if there is none
	Frontispiece int

	// release number from the RelN chunk
	Release int

	// resolution information from the Reso chunk. nil if there is none
	Resolution *Resolution

	// nil if there is no IFmd chunk
	Metadata *Metadata

	// the zcode executable. nil if there is none
	story []uint8
}

// IsBlorb returns true if the data looks like a Blorb file.
func IsBlorb(data []uint8) bool {
	return len(data) >= 12 && string(data[:4]) == "FORM" && string(data[8:12]) == formTypeBlorb
}

// Read parses the data as a Blorb file. The resources returned refer to the
// data and do not copy it.
func Read(data []uint8) (*Blorb, error) {
	form, err := iff.ReadForm(data)
	if err != nil {
		return nil, curated.Errorf(NotBlorb, err)
	}
	if form.SubID != formTypeBlorb {
		return nil, curated.Errorf(NotBlorb, form.SubID)
	}

	b := &Blorb{
		form:     form,
		Pictures: make(map[int]*Picture),
		Sounds:   make(map[int]*Sound),
	}

	if err := b.readIndex(); err != nil {
		return nil, err
	}

	for _, r := range b.index {
		c := form.ChunkAtAddress(r.Start)
		if c == nil {
			return nil, curated.Errorf(InvalidIndex, fmt.Sprintf("no chunk for %s", r))
		}

		switch r.Usage {
		case usagePicture:
			p, err := newPicture(r.Number, c)
			if err != nil {
				logger.Logf(logger.Allow, "blorb", "picture %d: %v", r.Number, err)
				continue
			}
			b.Pictures[r.Number] = p
		case usageSound:
			s, err := newSound(r.Number, c, data)
			if err != nil {
				logger.Logf(logger.Allow, "blorb", "sound %d: %v", r.Number, err)
				continue
			}
			b.Sounds[r.Number] = s
		case usageExecutable:
			if c.ID == "ZCOD" {
				b.story = c.Data
			} else if b.story == nil {
				logger.Logf(logger.Allow, "blorb", "executable %d is %s", r.Number, c.ID)
			}
		case usageData:
		default:
			logger.Logf(logger.Allow, "blorb", "unknown resource usage %q", r.Usage)
		}
	}

	if c := form.Chunk("Fspc"); c != nil {
		if len(c.Data) < 4 {
			return nil, curated.Errorf(InvalidChunk, c.ID)
		}
		b.Frontispiece = int(binary.BigEndian.Uint32(c.Data))
	}

	if c := form.Chunk("RelN"); c != nil {
		if len(c.Data) < 2 {
			return nil, curated.Errorf(InvalidChunk, c.ID)
		}
		b.Release = int(binary.BigEndian.Uint16(c.Data))
	}

	if c := form.Chunk("Reso"); c != nil {
		if err := b.readResolution(c.Data); err != nil {
			return nil, err
		}
	}

	if c := form.Chunk("IFmd"); c != nil {
		md, err := readMetadata(c.Data)
		if err != nil {
			logger.Logf(logger.Allow, "blorb", "metadata: %v", err)
		} else {
			b.Metadata = md
		}
	}

	return b, nil
}

// the resource index must be the first chunk in the file
func (b *Blorb) readIndex() error {
	chunks := b.form.Chunks()
	if len(chunks) == 0 || chunks[0].ID != "RIdx" {
		return curated.Errorf(InvalidIndex, "missing")
	}

	d := chunks[0].Data
	if len(d) < 4 {
		return curated.Errorf(InvalidIndex, "too short")
	}
	n := int(binary.BigEndian.Uint32(d))
	if len(d) < 4+n*12 {
		return curated.Errorf(InvalidIndex, fmt.Sprintf("%d entries in %d bytes", n, len(d)))
	}

	b.index = make([]Resource, n)
	for i := range b.index {
		e := d[4+i*12:]
		b.index[i] = Resource{
			Usage:  string(e[:4]),
			Number: int(binary.BigEndian.Uint32(e[4:])),
			Start:  int(binary.BigEndian.Uint32(e[8:])),
		}
	}

	return nil
}

// Index returns the resource index.
func (b *Blorb) Index() []Resource {
	return b.index
}

// Story returns the embedded zcode story. Returns nil if there is none.
func (b *Blorb) Story() []uint8 {
	return b.story
}

// PictureNumbers returns the numbers of all pictures in ascending order.
func (b *Blorb) PictureNumbers() []int {
	return sortedKeys(b.Pictures)
}

// SoundNumbers returns the numbers of all sounds in ascending order.
func (b *Blorb) SoundNumbers() []int {
	return sortedKeys(b.Sounds)
}

func sortedKeys[T any](m map[int]T) []int {
	k := make([]int, 0, len(m))
	for n := range m {
		k = append(k, n)
	}
	slices.Sort(k)
	return k
}

func (b *Blorb) String() string {
	s := strings.Builder{}
	s.WriteString(b.form.String())
	s.WriteString("\n")
	if b.Metadata != nil {
		s.WriteString(b.Metadata.String())
	}
	if b.story != nil {
		s.WriteString(fmt.Sprintf("story: %d bytes\n", len(b.story)))
	}
	if b.Release != 0 {
		s.WriteString(fmt.Sprintf("release: %d\n", b.Release))
	}
	if b.Frontispiece != 0 {
		s.WriteString(fmt.Sprintf("frontispiece: %d\n", b.Frontispiece))
	}
	if b.Resolution != nil {
		s.WriteString(fmt.Sprintf("resolution: %s\n", b.Resolution))
	}
	for _, n := range b.PictureNumbers() {
		s.WriteString(fmt.Sprintf("%s\n", b.Pictures[n]))
	}
	for _, n := range b.SoundNumbers() {
		s.WriteString(fmt.Sprintf("%s\n", b.Sounds[n]))
	}
	return s.String()
}
