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
	"fmt"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/iff"
)

// SoundFormat identifies the encoding of a sound resource.
type SoundFormat int

// List of valid SoundFormat values.
const (
	AIFF SoundFormat = iota
	Ogg
	Mod
	WAV
	MP3
)

func (f SoundFormat) String() string {
	switch f {
	case AIFF:
		return "AIFF"
	case Ogg:
		return "Ogg"
	case Mod:
		return "MOD"
	case WAV:
		return "WAV"
	case MP3:
		return "MP3"
	}
	return "unknown"
}

// Sound is a sound resource.
type Sound struct {
	Number int
	Format SoundFormat

	// the complete encoded sound. for AIFF sounds this includes the FORM
	// header so that the data is a valid AIFF file
	Data []uint8
}

func newSound(number int, c *iff.Chunk, file []uint8) (*Sound, error) {
	s := &Sound{
		Number: number,
		Data:   c.Data,
	}

	switch c.ID {
	case "FORM":
		if len(c.Data) < 4 || string(c.Data[:4]) != "AIFF" {
			return nil, curated.Errorf("blorb: sound form is not AIFF")
		}
		s.Format = AIFF
		s.Data = file[c.Address : c.Address+8+c.Size()]
	case "OGGV":
		s.Format = Ogg
	case "MOD ":
		s.Format = Mod
	case "WAV ":
		s.Format = WAV
	case "MP3 ":
		s.Format = MP3
	default:
		return nil, curated.Errorf("blorb: unsupported sound format (%s)", c.ID)
	}

	return s, nil
}

func (s *Sound) String() string {
	return fmt.Sprintf("sound %d: %s %d bytes", s.Number, s.Format, len(s.Data))
}
