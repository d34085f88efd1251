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
	"io"

	"github.com/zgopher/zgopher/streams"
)

// ScreenModel is implemented by the screen of the host. Text printed to
// output stream 1 is written to the io.Writer.
type ScreenModel interface {
	io.Writer

	SplitWindow(lines int)
	SetWindow(window int)
	EraseWindow(window int)
	EraseLine(value int)
	SetCursor(line int, column int, window int)
	Cursor() (line int, column int)
	SetTextStyle(style int)
	SetBufferMode(buffered bool)
	SetColour(foreground int, background int, window int)

	// returns the previous font or zero if the font is not available
	SetFont(font int) int

	// width and height in characters
	Size() (width int, height int)
}

// StatusLine is an optional capability of a ScreenModel. Version 1 to 3
// stories have the status line drawn by the interpreter.
type StatusLine interface {
	UpdateStatusLine(location string, status string)
}

// InputEcho is an optional capability of a ScreenModel. The characters of
// line input are passed to EchoInput() as they are accepted. Deleting a
// character is indicated by the rune '\b'.
type InputEcho interface {
	EchoInput(r rune)
}

// ScreenModel6 is an optional capability of a ScreenModel. It implements the
// extra screen operations of version 6 stories.
type ScreenModel6 interface {
	DrawPicture(picture int, y int, x int)
	ErasePicture(picture int, y int, x int)
	SetMargins(left int, right int, window int)
	MoveWindow(window int, y int, x int)
	WindowSize(window int, y int, x int)
	WindowStyle(window int, flags int, operation int)
	WindowProperty(window int, property int) int
	SetWindowProperty(window int, property int, value int)
	ScrollWindow(window int, pixels int)
	MouseWindow(window int)
	Mouse() (y int, x int, buttons int, menu int)
	BufferScreen(mode int) int
}

// SoundSystem is implemented by the sound collaborator. The routine argument
// of SoundEffect() is the unpacked address of the routine to call when the
// sound finishes, or zero. When a sound with a routine finishes the routine
// address is sent on the Finished() channel. SoundEffect() must not block
// beyond the life of the context.
type SoundSystem interface {
	SoundEffect(ctx context.Context, number int, effect int, volume int, repeats int, routine int)
	Finished() <-chan int
	Reset()
}

// PictureManager answers the picture queries of version 6 stories.
type PictureManager interface {
	PictureSize(picture int) (width int, height int, ok bool)
	NumPictures() int
	Release() int
}

// Preloader is an optional capability of a PictureManager.
type Preloader interface {
	Preload(pictures []int)
}

// SaveStore is where saved games are written to and read from.
type SaveStore interface {
	Save(data []uint8) error
	Load() ([]uint8, error)
}

// Environment collects the collaborators of the Machine. Any field can be
// nil.
type Environment struct {
	Screen   ScreenModel
	Sound    SoundSystem
	Pictures PictureManager
	Saves    SaveStore

	// input streams zero and one
	Keyboard    streams.InputStream
	CommandFile streams.InputStream

	// writers for output streams two and four
	Transcript streams.Opener
	Script     streams.Opener
}
