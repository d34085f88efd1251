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

package hardware_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/streams"
	"github.com/zgopher/zgopher/zscii"
	"github.com/zgopher/zgopher/test"
)

const (
	dictionaryAddress = 0x100
	objectsAddress    = 0x140
	globalsAddress    = 0x240
	scratchAddress    = 0x420
	staticAddress     = 0x480
	programAddress    = 0x500
	storySize         = 0x800
)

// a story with a two word dictionary, two objects and the program at
// programAddress. the area between scratchAddress and staticAddress is free
// for the tests to use
func newStory(version uint8, program ...uint8) []uint8 {
	data := make([]uint8, storySize)
	data[0x00] = version
	data[0x02] = 0
	data[0x03] = 7
	data[0x06] = programAddress >> 8
	data[0x08] = dictionaryAddress >> 8
	data[0x0a] = objectsAddress >> 8
	data[0x0b] = objectsAddress & 0xff
	data[0x0c] = globalsAddress >> 8
	data[0x0d] = globalsAddress & 0xff
	data[0x0e] = staticAddress >> 8
	data[0x0f] = staticAddress & 0xff
	copy(data[0x12:], "230101")

	// dictionary with comma separator and nine byte entries
	enc := zscii.NewEncoding(nil)
	encoder := zscii.NewEncoder(zscii.NewAlphabetTable(5))
	a := dictionaryAddress
	data[a] = 1
	data[a+1] = ','
	data[a+2] = 9
	data[a+4] = 2
	for i, w := range []string{"lamp", "north"} {
		e := encoder.Encode(enc.Encode(w))
		copy(data[a+5+i*9:], e[:])
	}

	// two objects with empty property tables
	props := []int{0x1e0, 0x1f0}
	if version <= 3 {
		start := objectsAddress + 31*2
		for i, p := range props {
			data[start+i*9+7] = uint8(p >> 8)
			data[start+i*9+8] = uint8(p)
		}
	} else {
		start := objectsAddress + 63*2
		for i, p := range props {
			data[start+i*14+12] = uint8(p >> 8)
			data[start+i*14+13] = uint8(p)
		}
	}

	copy(data[programAddress:], program)
	return data
}

func newMachine(t *testing.T, version uint8, env hardware.Environment, program ...uint8) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(newStory(version, program...), env, nil)
	test.DemandSuccess(t, err)
	return m
}

func global(m *hardware.Machine, g int) uint16 {
	return m.Mem.Uint16(globalsAddress + g*2)
}

type memorySaves struct {
	data []uint8
}

func (s *memorySaves) Save(data []uint8) error {
	s.data = data
	return nil
}

func (s *memorySaves) Load() ([]uint8, error) {
	if s.data == nil {
		return nil, errors.New("nothing saved")
	}
	return s.data, nil
}

// testScreen is a ScreenModel that records the text written to it
type testScreen struct {
	strings.Builder
	line   int
	column int
	window int
	split  int
}

func (scr *testScreen) SplitWindow(lines int) { scr.split = lines }
func (scr *testScreen) SetWindow(window int) { scr.window = window }
func (scr *testScreen) EraseWindow(window int) {}
func (scr *testScreen) EraseLine(value int) {}
func (scr *testScreen) SetCursor(line int, column int, _ int) { scr.line, scr.column = line, column }
func (scr *testScreen) Cursor() (int, int) { return scr.line, scr.column }
func (scr *testScreen) SetTextStyle(style int) {}
func (scr *testScreen) SetBufferMode(buffered bool) {}
func (scr *testScreen) SetColour(fg int, bg int, window int) {}
func (scr *testScreen) SetFont(font int) int { return 1 }
func (scr *testScreen) Size() (int, int) { return 80, 25 }

func TestBranch(t *testing.T) {
	// je #05 #03 #05 ?(5)
	m := newMachine(t, 5, hardware.Environment{}, 0xc1, 0x57, 0x05, 0x03, 0x05, 0xc5)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.PC, programAddress+6+3)

	// je #05 #03 ?(5)
	m = newMachine(t, 5, hardware.Environment{}, 0xc1, 0x5f, 0x05, 0x03, 0xc5)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.PC, programAddress+5)
}

func TestDivideByZero(t *testing.T) {
	// div #10 #00 -> G00
	m := newMachine(t, 5, hardware.Environment{}, 0x17, 0x0a, 0x00, 0x10)
	err := m.Step()
	test.ExpectEquality(t, curated.Is(err, hardware.DivideByZero), true)
	test.ExpectEquality(t, curated.Is(m.Halted(), hardware.Halted), true)
	test.ExpectEquality(t, global(m, 0), uint16(0))

	// the machine stays halted
	test.ExpectEquality(t, curated.Is(m.Step(), hardware.Halted), true)
}

func TestIncDecChk(t *testing.T) {
	// inc_chk G00 #00 ?(5)
	m := newMachine(t, 5, hardware.Environment{}, 0x05, 0x10, 0x00, 0xc5)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16(1))
	test.ExpectEquality(t, m.CPU.PC, programAddress+4+3)

	// dec_chk G00 #00 ?(5)
	m = newMachine(t, 5, hardware.Environment{}, 0x04, 0x10, 0x00, 0xc5)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16(0xffff))
	test.ExpectEquality(t, m.CPU.PC, programAddress+4+3)
}

func TestInvalidThrow(t *testing.T) {
	// throw #01 #05
	m := newMachine(t, 5, hardware.Environment{}, 0x1c, 0x01, 0x05)
	err := m.Step()
	test.ExpectEquality(t, curated.Is(err, hardware.InvalidThrow), true)
	test.ExpectEquality(t, curated.Is(m.Halted(), hardware.Halted), true)
}

func TestMissingCollaborators(t *testing.T) {
	// sound_effect #01
	// split_window #01
	m := newMachine(t, 5, hardware.Environment{}, 0xf5, 0x7f, 0x01, 0xea, 0x7f, 0x01)
	test.DemandSuccess(t, m.Step())
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.PC, programAddress+6)
	test.ExpectEquality(t, m.Halted(), nil)
}

func TestChecksum(t *testing.T) {
	// verify ?(5)
	story := newStory(5, 0xbd, 0xc5)
	story[0x600] = 0x55

	var sum int
	for _, b := range story[0x40:] {
		sum += int(b)
	}
	sum &= 0xffff

	m, err := hardware.NewMachine(story, hardware.Environment{}, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Checksum(), sum)

	// the header checksum is zero so verify fails
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.PC, programAddress+2)
	test.ExpectEquality(t, m.Warnings(), 1)
	test.ExpectEquality(t, m.Halted(), nil)

	// the header is not part of the checksum
	story[0x1c] = uint8(sum >> 8)
	story[0x1d] = uint8(sum)
	m, err = hardware.NewMachine(story, hardware.Environment{}, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Checksum(), sum)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.PC, programAddress+2+3)
	test.ExpectEquality(t, m.Warnings(), 0)

	// changing any byte after the header changes the checksum
	story[0x600]++
	m, err = hardware.NewMachine(story, hardware.Environment{}, nil)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, m.Checksum(), sum)

	// bytes after the file length in the header are not counted
	story[0x600]--
	story[0x1a] = (0x600 / 4) >> 8
	story[0x1b] = (0x600 / 4) & 0xff
	m, err = hardware.NewMachine(story, hardware.Environment{}, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Checksum(), (sum-0x55)&0xffff)
}

func TestInvalidObject(t *testing.T) {
	// get_parent #00 -> G00
	m := newMachine(t, 5, hardware.Environment{}, 0x93, 0x00, 0x10)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.Warnings(), 1)
	test.ExpectEquality(t, global(m, 0), uint16(0))
	test.ExpectEquality(t, m.Halted(), nil)
}

func TestPrintAndQuit(t *testing.T) {
	scr := &testScreen{}

	// print "hi" new_line quit
	m := newMachine(t, 5, hardware.Environment{Screen: scr}, 0xb2, 0xb5, 0xc5, 0xbb, 0xba)
	test.DemandSuccess(t, m.Run(context.Background()))
	test.ExpectEquality(t, m.Quit(), true)
	test.ExpectEquality(t, scr.String(), "hi\n")

	// interpreter details are written to the header of a version 5 story
	test.ExpectEquality(t, m.Header.ScreenWidth(), 80)
	test.ExpectEquality(t, m.Header.IsEnabled(header.Colours), true)
}

func TestSaveRestore(t *testing.T) {
	saves := &memorySaves{}

	// save -> G00
	// restore -> G01
	m := newMachine(t, 5, hardware.Environment{Saves: saves},
		0xbe, 0x00, 0xff, 0x10,
		0xbe, 0x01, 0xff, 0x11,
	)

	m.Mem.SetUint16(scratchAddress, 0x1234)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16(1))
	test.ExpectInequality(t, len(saves.data), 0)

	m.Mem.SetUint16(scratchAddress, 0x9999)
	test.DemandSuccess(t, m.Step())

	// execution continues after the save instruction, which stores two
	test.ExpectEquality(t, m.Mem.Uint16(scratchAddress), uint16(0x1234))
	test.ExpectEquality(t, global(m, 0), uint16(2))
	test.ExpectEquality(t, global(m, 1), uint16(0))
	test.ExpectEquality(t, m.CPU.PC, programAddress+4)
}

func TestRestoreWithoutSave(t *testing.T) {
	// restore -> G01
	m := newMachine(t, 5, hardware.Environment{Saves: &memorySaves{}}, 0xbe, 0x01, 0xff, 0x11)
	m.Mem.SetUint16(globalsAddress+2, 0xffff)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 1), uint16(0))
	test.ExpectEquality(t, m.Warnings(), 1)
}

func TestSaveVersion3(t *testing.T) {
	saves := &memorySaves{}

	// save ?(5)
	m := newMachine(t, 3, hardware.Environment{Saves: saves}, 0xb5, 0xc5)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.PC, programAddress+2+3)

	// restoring branches as though the save had succeeded
	m.CPU.PC = programAddress + 0x80
	test.DemandSuccess(t, m.RestoreGame(saves.data))
	test.ExpectEquality(t, m.CPU.PC, programAddress+1)
	test.DemandSuccess(t, m.CPU.ResumeBranch(true))
	test.ExpectEquality(t, m.CPU.PC, programAddress+2+3)
}

func TestUndo(t *testing.T) {
	// save_undo -> G00
	// restore_undo -> G01
	m := newMachine(t, 5, hardware.Environment{},
		0xbe, 0x09, 0xff, 0x10,
		0xbe, 0x0a, 0xff, 0x11,
	)

	m.Mem.SetUint16(scratchAddress, 0x1234)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16(1))

	m.Mem.SetUint16(scratchAddress, 0x9999)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.Mem.Uint16(scratchAddress), uint16(0x1234))
	test.ExpectEquality(t, global(m, 0), uint16(2))
	test.ExpectEquality(t, m.CPU.PC, programAddress+4)

	// nothing left to undo
	m.Mem.SetUint16(globalsAddress+2, 0xffff)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 1), uint16(0))
}

func TestUndoDisabled(t *testing.T) {
	p := hardware.NewDefaultPreferences()
	test.DemandSuccess(t, p.Undo.Set(false))

	m, err := hardware.NewMachine(newStory(5, 0xbe, 0x09, 0xff, 0x10), hardware.Environment{}, p)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16(0xffff))
}

func TestRestart(t *testing.T) {
	// nop
	m := newMachine(t, 5, hardware.Environment{}, 0xb4)
	test.DemandSuccess(t, m.Step())

	m.Mem.SetUint16(scratchAddress, 0x1234)
	m.Header.SetEnabled(header.Transcripting, true)
	test.DemandSuccess(t, m.Restart())

	test.ExpectEquality(t, m.Mem.Uint16(scratchAddress), uint16(0))
	test.ExpectEquality(t, m.Header.IsEnabled(header.Transcripting), true)
	test.ExpectEquality(t, m.CPU.PC, programAddress)
}

func TestCopyTable(t *testing.T) {
	// copy_table $0420 $0424 #04
	// copy_table $0420 #00 #04
	m := newMachine(t, 5, hardware.Environment{},
		0xfd, 0x07, 0x04, 0x20, 0x04, 0x24, 0x04,
		0xfd, 0x17, 0x04, 0x20, 0x00, 0x04,
	)
	m.Mem.WriteBytes(scratchAddress, []uint8{1, 2, 3, 4})

	test.DemandSuccess(t, m.Step())
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, m.Mem.Uint8(scratchAddress+4+i), uint8(i+1))
	}

	test.DemandSuccess(t, m.Step())
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, m.Mem.Uint8(scratchAddress+i), uint8(0))
	}
	test.ExpectEquality(t, m.Mem.Uint8(scratchAddress+4), uint8(1))
}

func TestScanTable(t *testing.T) {
	// scan_table $1234 $0420 #03 -> G00 ?(5)
	m := newMachine(t, 5, hardware.Environment{}, 0xf7, 0x07, 0x12, 0x34, 0x04, 0x20, 0x03, 0x10, 0xc5)
	m.Mem.SetUint16(scratchAddress, 0x1111)
	m.Mem.SetUint16(scratchAddress+2, 0x1234)
	m.Mem.SetUint16(scratchAddress+4, 0x2222)

	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16(scratchAddress+2))
	test.ExpectEquality(t, m.CPU.PC, programAddress+9+3)

	m = newMachine(t, 5, hardware.Environment{}, 0xf7, 0x07, 0x12, 0x34, 0x04, 0x20, 0x03, 0x10, 0xc5)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16(0))
	test.ExpectEquality(t, m.CPU.PC, programAddress+9)
}

func TestTokenise(t *testing.T) {
	const text = scratchAddress
	const parse = scratchAddress + 0x20

	// tokenise $0420 $0440
	m := newMachine(t, 5, hardware.Environment{}, 0xfb, 0x0f, 0x04, 0x20, 0x04, 0x40)

	input := "lamp,xyzzy"
	m.Mem.SetUint8(text, 20)
	m.Mem.SetUint8(text+1, uint8(len(input)))
	m.Mem.WriteBytes(text+2, []uint8(input))
	m.Mem.SetUint8(parse, 4)

	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.Mem.Uint8(parse+1), uint8(3))

	// lamp is the first entry in the dictionary
	test.ExpectEquality(t, m.Mem.Uint16(parse+2), uint16(dictionaryAddress+5))
	test.ExpectEquality(t, m.Mem.Uint8(parse+4), uint8(4))
	test.ExpectEquality(t, m.Mem.Uint8(parse+5), uint8(2))

	// the separator is a word of its own
	test.ExpectEquality(t, m.Mem.Uint16(parse+6), uint16(0))
	test.ExpectEquality(t, m.Mem.Uint8(parse+8), uint8(1))
	test.ExpectEquality(t, m.Mem.Uint8(parse+9), uint8(6))

	test.ExpectEquality(t, m.Mem.Uint16(parse+10), uint16(0))
	test.ExpectEquality(t, m.Mem.Uint8(parse+12), uint8(5))
}

func TestMemoryStream(t *testing.T) {
	const table = scratchAddress + 0x40
	scr := &testScreen{}

	// output_stream #03 $0460
	// print_char #68
	// print_char #69
	// output_stream $fffd
	// print_char #21
	m := newMachine(t, 5, hardware.Environment{Screen: scr},
		0xf3, 0x4f, 0x03, 0x04, 0x60,
		0xe5, 0x7f, 0x68,
		0xe5, 0x7f, 0x69,
		0xf3, 0x3f, 0xff, 0xfd,
		0xe5, 0x7f, 0x21,
	)

	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, m.Step())
	}

	test.ExpectEquality(t, m.Mem.Uint16(table), uint16(2))
	test.ExpectEquality(t, string(m.Mem.ReadBytes(table+2, 2)), "hi")
	test.ExpectEquality(t, scr.String(), "!")
}

func TestReadChar(t *testing.T) {
	enc := zscii.NewEncoding(nil)
	env := hardware.Environment{
		CommandFile: streams.NewCommandFile(strings.NewReader("x"), enc, nil),
	}

	// read_char #01 -> G00
	// read_char #01 -> G00
	m := newMachine(t, 5, env, 0xf6, 0x7f, 0x01, 0x10, 0xf6, 0x7f, 0x01, 0x10)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, global(m, 0), uint16('x'))
	test.ExpectEquality(t, m.Quit(), false)

	// the end of input quits the story
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.Quit(), true)
}

// gatedInput delivers characters sent on the channel
type gatedInput struct {
	ch chan zscii.Char
}

func (g *gatedInput) ReadChar(ctx context.Context) (zscii.Char, error) {
	select {
	case c := <-g.ch:
		return c, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func TestReadAbandoned(t *testing.T) {
	in := &gatedInput{ch: make(chan zscii.Char, 1)}

	// push #05
	// read_char SP -> G00
	// quit
	m := newMachine(t, 5, hardware.Environment{Keyboard: in}, 0xe8, 0x7f, 0x05, 0xf6, 0xbf, 0x00, 0x10, 0xba)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := m.Run(ctx)
	test.ExpectEquality(t, errors.Is(err, context.DeadlineExceeded), true)

	// the machine is not halted and the read will be executed again
	test.ExpectEquality(t, m.Halted(), nil)
	test.ExpectEquality(t, m.CPU.PC, programAddress+3)
	test.DemandEquality(t, m.CPU.StackDepth(), 1)
	test.ExpectEquality(t, m.CPU.Peek(), uint16(5))

	in.ch <- zscii.Char('y')
	test.DemandSuccess(t, m.Run(context.Background()))
	test.ExpectEquality(t, global(m, 0), uint16('y'))
	test.ExpectEquality(t, m.CPU.StackDepth(), 0)
	test.ExpectEquality(t, m.Quit(), true)
}

func TestRandom(t *testing.T) {
	// random #-10 -> G00
	// random #10 -> G01
	// random #10 -> G02
	program := []uint8{
		0xe7, 0x3f, 0xff, 0xf6, 0x10,
		0xe7, 0x7f, 0x0a, 0x11,
		0xe7, 0x7f, 0x0a, 0x12,
	}

	m := newMachine(t, 5, hardware.Environment{}, program...)
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, global(m, 0), uint16(0))
	a, b := global(m, 1), global(m, 2)
	test.ExpectSuccess(t, a >= 1 && a <= 10)
	test.ExpectSuccess(t, b >= 1 && b <= 10)

	// the same seed produces the same sequence
	m = newMachine(t, 5, hardware.Environment{}, program...)
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, global(m, 1), a)
	test.ExpectEquality(t, global(m, 2), b)
}

func TestInvalidStory(t *testing.T) {
	_, err := hardware.NewMachine(make([]uint8, 0x20), hardware.Environment{}, nil)
	test.ExpectEquality(t, curated.Is(err, hardware.InvalidStory), true)

	story := newStory(5)
	story[0] = 9
	_, err = hardware.NewMachine(story, hardware.Environment{}, nil)
	test.ExpectEquality(t, curated.Is(err, hardware.UnsupportedStory), true)
}
