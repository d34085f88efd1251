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
	"context"
	"fmt"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/cpu"
	"github.com/zgopher/zgopher/hardware/dictionary"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/hardware/objects"
	"github.com/zgopher/zgopher/logger"
	"github.com/zgopher/zgopher/prefs"
	"github.com/zgopher/zgopher/random"
	"github.com/zgopher/zgopher/rewind"
	"github.com/zgopher/zgopher/streams"
	"github.com/zgopher/zgopher/zscii"
)

// the smallest possible story file is one that is all header
const headerSize = 0x40

// Machine is the main container for the components of the Z-machine.
type Machine struct {
	Prefs *Preferences

	// the story file as it was loaded. used by restart, by the checksum and
	// by the compression of saved games
	story []uint8

	Mem        *memory.Memory
	Header     *header.Header
	CPU        *cpu.CPU
	Objects    *objects.Tree
	Dictionary *dictionary.Default

	alphabet      *zscii.AlphabetTable
	encoding      *zscii.Encoding
	decoder       *zscii.Decoder
	encoder       *zscii.Encoder
	abbreviations *dictionary.Abbreviations

	Output *streams.Output
	Input  *streams.Input

	env        Environment
	statusLine StatusLine
	screen6    ScreenModel6
	echo       InputEcho

	random *random.Random
	undo   *rewind.Rewind

	handlers handlerTable

	// the context of the current call to Run(). input instructions block
	// until a character arrives or the context is done
	ctx context.Context

	// the error that halted the machine
	halted error

	// the quit instruction has been executed
	quit bool

	warnings int
	checksum int
	font     int
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The story data is copied. If the preferences argument is nil then default
// preferences are used.
func NewMachine(story []uint8, env Environment, p *Preferences) (*Machine, error) {
	if len(story) < headerSize {
		return nil, curated.Errorf(InvalidStory, "too short")
	}
	if story[0] < 1 || story[0] > 8 {
		return nil, curated.Errorf(UnsupportedStory, story[0])
	}

	if p == nil {
		p = NewDefaultPreferences()
	}

	m := &Machine{
		Prefs: p,
		story: make([]uint8, len(story)),
		env:   env,
		ctx:   context.Background(),
		font:  1,
	}
	copy(m.story, story)

	data := make([]uint8, len(story))
	copy(data, story)
	m.Mem = memory.NewMemory(data)
	m.Header = header.NewHeader(m.Mem)

	if m.Header.StaticMemory() < headerSize || m.Header.StaticMemory() > len(story) {
		return nil, curated.Errorf(InvalidStory, "static memory out of range")
	}

	m.checksum = m.computeChecksum()

	v := m.Header.Version()

	if a := m.Header.AlphabetTable(); v >= 5 && a != 0 {
		m.alphabet = zscii.NewCustomAlphabetTable(m.Mem, a)
	} else {
		m.alphabet = zscii.NewAlphabetTable(v)
	}
	if a := m.Header.AccentTable(); a != 0 {
		m.encoding = zscii.NewEncoding(zscii.NewCustomAccentTable(m.Mem, a))
	} else {
		m.encoding = zscii.NewEncoding(nil)
	}

	m.abbreviations = dictionary.NewAbbreviations(m.Mem, m.Header.Abbreviations())
	if v == 1 {
		m.decoder = zscii.NewDecoder(m.alphabet, nil)
	} else {
		m.decoder = zscii.NewDecoder(m.alphabet, m.abbreviations)
	}
	m.encoder = zscii.NewEncoder(m.alphabet)

	m.Objects = objects.NewTree(m.Mem, m.Header.ObjectTable(), objects.LayoutForVersion(v))
	m.Dictionary = dictionary.NewDefault(m.Mem, m.Header.Dictionary(), m.decoder, dictionary.SizesForVersion(v))

	m.CPU = cpu.NewCPU(m.Mem, m.Header)

	var err error
	m.handlers, err = newHandlerTable(m.CPU.Table())
	if err != nil {
		return nil, err
	}

	if env.Screen != nil {
		m.statusLine, _ = env.Screen.(StatusLine)
		m.screen6, _ = env.Screen.(ScreenModel6)
		m.echo, _ = env.Screen.(InputEcho)
		m.Output = streams.NewOutput(m, m.encoding, m.Mem, env.Screen, env.Transcript, env.Script)
	} else {
		m.Output = streams.NewOutput(m, m.encoding, m.Mem, nil, env.Transcript, env.Script)
	}
	m.Input = streams.NewInput(env.Keyboard, env.CommandFile)

	m.random = random.NewRandom()
	if seed := m.Prefs.RandomSeed.Get().(int); seed != 0 {
		m.random.Seed(int64(seed))
	}

	m.undo = rewind.NewRewind(m.Prefs.UndoEntries.Get().(int))
	m.Prefs.UndoEntries.SetHookPost(func(v prefs.Value) error {
		m.undo.SetMaxEntries(v.(int))
		return nil
	})

	if err := m.reset(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s %s", m.Header, m.CPU)
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return m.Prefs.Warnings.Get().(bool)
}

// warning logs a recoverable error. execution continues after a warning
func (m *Machine) warning(detail string, args ...any) {
	m.warnings++
	logger.Logf(m, "warning", detail, args...)
}

// Warnings returns the number of warnings raised since the story was
// loaded.
func (m *Machine) Warnings() int {
	return m.warnings
}

// Halted returns the error that halted the machine. Returns nil if the
// machine has not halted.
func (m *Machine) Halted() error {
	return m.halted
}

// Quit returns true if the story has executed the quit instruction.
func (m *Machine) Quit() bool {
	return m.quit
}

// Checksum returns the checksum of the story as computed by the verify
// instruction.
func (m *Machine) Checksum() int {
	return m.checksum
}

// Encoding returns the ZSCII encoding used by the story.
func (m *Machine) Encoding() *zscii.Encoding {
	return m.encoding
}

// Decoder returns the z-character decoder used by the story.
func (m *Machine) Decoder() *zscii.Decoder {
	return m.decoder
}

// Story returns a copy of the story file as it was loaded.
func (m *Machine) Story() []uint8 {
	s := make([]uint8, len(m.story))
	copy(s, m.story)
	return s
}

// ObjectName returns the short name of the object.
func (m *Machine) ObjectName(obj int) string {
	if !m.Objects.ValidObject(obj) {
		return ""
	}
	return m.encoding.Decode(m.decoder.Decode(m.Mem, m.Objects.ShortNameAddress(obj), 0))
}

// the sum of every byte in the story after the header, up to the file
// length given in the header
func (m *Machine) computeChecksum() int {
	end := m.Header.FileLength()
	if end == 0 || end > len(m.story) {
		end = len(m.story)
	}
	var sum int
	for _, b := range m.story[headerSize:end] {
		sum += int(b)
	}
	return sum & 0xffff
}

// halt the machine with the error. the error is written to the screen
func (m *Machine) halt(err error) {
	m.halted = curated.Errorf(Halted, err)
	logger.Log(logger.Allow, "machine", m.halted)
	if m.env.Screen != nil {
		fmt.Fprintf(m.env.Screen, "\n[%v]\n", err)
	}
}
