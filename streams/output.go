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

package streams

import (
	"fmt"
	"io"
	"strings"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/logger"
	"github.com/zgopher/zgopher/zscii"
)

// Sentinal error patterns.
const (
	NestingDepthExceeded = "streams: memory stream nested more than %d times"
	UnknownStream        = "streams: unknown output stream (%d)"
	NoTranscript         = "streams: transcript unavailable: %v"
)

// Stream identifies one of the output streams.
type Stream int

// List of output streams.
const (
	Screen     Stream = 1
	Transcript Stream = 2
	Memory     Stream = 3
	Script     Stream = 4
)

func (s Stream) String() string {
	switch s {
	case Screen:
		return "screen"
	case Transcript:
		return "transcript"
	case Memory:
		return "memory"
	case Script:
		return "script"
	}
	return fmt.Sprintf("stream %d", int(s))
}

// the maximum depth memory tables can be nested
const maxNesting = 16

// Opener creates the writer for the transcript or command script. It is
// called the first time the stream is selected.
type Opener func() (io.WriteCloser, error)

// Output manages the output streams.
type Output struct {
	perm logger.Permission
	enc  *zscii.Encoding
	mem  memory.Accessor

	screen     io.Writer
	transcript *lineStream
	script     *lineStream

	screenSelected     bool
	transcriptSelected bool
	scriptSelected     bool

	tables []*memoryTable
}

// NewOutput is the preferred method of initialisation for the Output type.
// The screen stream is selected and writes to the screen writer, which may
// be nil. The openers are used to create the transcript and command script
// writers and may also be nil, in which case selecting the stream fails.
func NewOutput(perm logger.Permission, enc *zscii.Encoding, mem memory.Accessor, screen io.Writer, transcript Opener, script Opener) *Output {
	return &Output{
		perm:           perm,
		enc:            enc,
		mem:            mem,
		screen:         screen,
		transcript:     newLineStream(transcript),
		script:         newLineStream(script),
		screenSelected: true,
	}
}

func (out *Output) String() string {
	var s strings.Builder
	for i := Screen; i <= Script; i++ {
		if out.IsSelected(i) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(i.String())
		}
	}
	if len(out.tables) > 0 {
		s.WriteString(fmt.Sprintf(" (%d tables)", len(out.tables)))
	}
	return s.String()
}

// Plumb new memory into the memory stream.
func (out *Output) Plumb(mem memory.Accessor) {
	out.mem = mem
}

// IsSelected returns true if the stream is selected.
func (out *Output) IsSelected(s Stream) bool {
	switch s {
	case Screen:
		return out.screenSelected
	case Transcript:
		return out.transcriptSelected
	case Memory:
		return len(out.tables) > 0
	case Script:
		return out.scriptSelected
	}
	return false
}

// Select the output stream. Selecting the memory stream should be done with
// SelectMemory().
func (out *Output) Select(s Stream) error {
	switch s {
	case Screen:
		out.screenSelected = true
	case Transcript:
		if err := out.transcript.open(); err != nil {
			return curated.Errorf(NoTranscript, err)
		}
		out.transcriptSelected = true
	case Script:
		if err := out.script.open(); err != nil {
			return curated.Errorf(NoTranscript, err)
		}
		out.scriptSelected = true
	default:
		return curated.Errorf(UnknownStream, int(s))
	}
	return nil
}

// Deselect the output stream. Deselecting the memory stream completes the
// most recently selected table.
func (out *Output) Deselect(s Stream) error {
	switch s {
	case Screen:
		out.screenSelected = false
	case Transcript:
		out.transcript.flush()
		out.transcriptSelected = false
	case Memory:
		if len(out.tables) > 0 {
			t := out.tables[len(out.tables)-1]
			out.tables = out.tables[:len(out.tables)-1]
			t.complete(out.mem)
		}
	case Script:
		out.script.flush()
		out.scriptSelected = false
	default:
		return curated.Errorf(UnknownStream, int(s))
	}
	return nil
}

// SelectMemory selects the memory stream. Output is written to the table at
// the address until the stream is deselected. The width value is recorded
// but does not affect the output.
func (out *Output) SelectMemory(table int, width int) error {
	if len(out.tables) >= maxNesting {
		return curated.Errorf(NestingDepthExceeded, maxNesting)
	}
	out.tables = append(out.tables, &memoryTable{address: table, width: width})
	return nil
}

// MemoryWidth returns the width recorded for the current memory table and
// the number of characters written to it so far.
func (out *Output) MemoryWidth() (int, int) {
	if len(out.tables) == 0 {
		return 0, 0
	}
	t := out.tables[len(out.tables)-1]
	return t.width, t.count
}

// Print the ZSCII string to the selected output streams.
func (out *Output) Print(s zscii.String) {
	for _, c := range s {
		out.PrintChar(c)
	}
}

// PrintChar prints a single ZSCII character to the selected output streams.
func (out *Output) PrintChar(c zscii.Char) {
	if c == zscii.Newline10 {
		c = zscii.Newline
	}

	if len(out.tables) > 0 {
		out.tables[len(out.tables)-1].write(out.mem, c)
		return
	}

	if out.screenSelected && out.screen != nil {
		out.writeScreen(c)
	}

	if out.transcriptSelected {
		out.write(out.transcript, c)
	}
}

// Echo input typed by the player. Input is recorded in the transcript and
// the command script but is not sent to the screen, which is expected to
// have displayed the input as it was typed.
func (out *Output) Echo(s zscii.String) {
	if len(out.tables) > 0 {
		return
	}
	for _, c := range s {
		if c == zscii.Newline10 {
			c = zscii.Newline
		}
		if out.transcriptSelected {
			out.write(out.transcript, c)
		}
		if out.scriptSelected {
			out.write(out.script, c)
		}
	}
}

// screens that buffer output implement the flusher interface
type flusher interface {
	Flush() error
}

// Flush any buffered output in the transcript and command script. The
// screen is also flushed if it buffers output.
func (out *Output) Flush() {
	out.transcript.flush()
	out.script.flush()
	if f, ok := out.screen.(flusher); ok {
		if err := f.Flush(); err != nil {
			logger.Log(out.perm, "streams", err)
		}
	}
}

// Close the transcript and command script. The streams are deselected.
func (out *Output) Close() {
	out.transcriptSelected = false
	out.scriptSelected = false
	if err := out.transcript.close(); err != nil {
		logger.Log(out.perm, "streams", err)
	}
	if err := out.script.close(); err != nil {
		logger.Log(out.perm, "streams", err)
	}
}

// Reset the streams to their initial state: the screen is selected and the
// memory stream is not. The transcript and command script are unchanged.
func (out *Output) Reset() {
	out.screenSelected = true
	out.tables = out.tables[:0]
}

func (out *Output) writeScreen(c zscii.Char) {
	var err error
	if c == zscii.Newline {
		_, err = io.WriteString(out.screen, "\n")
	} else if c >= zscii.AsciiStart && out.enc.IsZsciiChar(c) {
		_, err = io.WriteString(out.screen, string(out.enc.ToUnicode(c)))
	}
	if err != nil {
		logger.Log(out.perm, "streams", err)
	}
}

func (out *Output) write(ls *lineStream, c zscii.Char) {
	var err error
	switch {
	case c == zscii.Newline:
		err = ls.newline()
	case c == zscii.Delete:
		ls.delete()
	case c >= zscii.AsciiStart && out.enc.IsZsciiChar(c):
		ls.add(out.enc.ToUnicode(c))
	}
	if err != nil {
		logger.Log(out.perm, "streams", err)
	}
}
