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

package hardware

import (
	"github.com/zgopher/zgopher/paths"
	"github.com/zgopher/zgopher/prefs"
	"github.com/zgopher/zgopher/rewind"
)

// Preferences for the Machine.
type Preferences struct {
	dsk *prefs.Disk

	// log and count warnings
	Warnings prefs.Bool

	// the seed used for the random number generator. zero means an
	// unpredictable seed
	RandomSeed prefs.Int

	// whether save_undo is supported and the number of undo states kept
	Undo        prefs.Bool
	UndoEntries prefs.Int

	// the screen size written to the header if there is no screen model
	ScreenWidth  prefs.Int
	ScreenHeight prefs.Int

	SoundEnabled prefs.Bool
	SoundVolume  prefs.Float

	// the default filename of the transcript
	TranscriptFilename prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "preferences not saved to disk"
	}
	return p.dsk.String()
}

// NewPreferences creates preferences that are stored on disk in the default
// preferences file.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("machine.warnings", &p.Warnings)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.randomseed", &p.RandomSeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.undo", &p.Undo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.undoEntries", &p.UndoEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("screen.width", &p.ScreenWidth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("screen.height", &p.ScreenHeight)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.enabled", &p.SoundEnabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.volume", &p.SoundVolume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("transcript.filename", &p.TranscriptFilename)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences creates preferences with default values that are
// not stored on disk.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Warnings.Set(true)
	p.RandomSeed.Set(0)
	p.Undo.Set(true)
	p.UndoEntries.Set(rewind.DefaultMaxEntries)
	p.ScreenWidth.Set(80)
	p.ScreenHeight.Set(25)
	p.SoundEnabled.Set(true)
	p.SoundVolume.Set(1.0)
	p.TranscriptFilename.Set("transcript.txt")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
