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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zgopher/zgopher/test"
)

// a version 3 story with two objects and an empty dictionary. the program
// prints "hi" and quits
func newStory() []uint8 {
	data := make([]uint8, 0x800)
	data[0x00] = 3
	data[0x03] = 7
	data[0x04] = 0x04
	data[0x06] = 0x05
	data[0x08] = 0x01
	data[0x0a] = 0x01
	data[0x0b] = 0x40
	data[0x0c] = 0x02
	data[0x0d] = 0x40
	data[0x0e] = 0x04
	data[0x0f] = 0x80
	copy(data[0x12:], "230101")

	// dictionary
	data[0x100] = 1
	data[0x101] = ','
	data[0x102] = 7

	// object 1 is the parent of object 2. both property tables are empty
	obj := 0x140 + 31*2
	data[obj+6] = 2
	data[obj+8] = 0x90
	data[obj+7] = 0x01
	data[obj+9+4] = 1
	data[obj+9+7] = 0x01
	data[obj+9+8] = 0x92

	copy(data[0x500:], []uint8{0xb2, 0xb5, 0xc5, 0xbb, 0xba})
	return data
}

// run the test in a temporary directory so that preferences and other files
// are not written to the source tree
func inTempDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	fn := filepath.Join(dir, "test.z3")
	test.DemandSuccess(t, os.WriteFile(fn, newStory(), 0o644))
	return fn
}

func TestVersion(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"VERSION"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "ZGopher "))
}

func TestHeader(t *testing.T) {
	fn := inTempDir(t)

	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"HEADER", fn}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "release:       7\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "serial:        230101\n"))

	// the story file is required
	out.Reset()
	test.ExpectEquality(t, launch(&out, []string{"HEADER"}), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "story file required"))
}

func TestDictionary(t *testing.T) {
	fn := inTempDir(t)

	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"DICTIONARY", fn}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "with 0 entries"))
	test.ExpectSuccess(t, strings.Contains(out.String(), `separators: ","`))
}

func TestObjects(t *testing.T) {
	fn := inTempDir(t)

	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"OBJECTS", fn}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "with 2 objects\n[1] \n  [2] \n"))
}

func TestBlorbMode(t *testing.T) {
	fn := inTempDir(t)

	// a story file is not a blorb file
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"BLORB", fn}), 20)
}

func TestRun(t *testing.T) {
	fn := inTempDir(t)

	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-nosound", fn}), 0)
	test.ExpectEquality(t, out.String(), "hi\n")

	// RUN is the default mode
	out.Reset()
	test.ExpectEquality(t, launch(&out, []string{"-nosound", fn}), 0)
	test.ExpectEquality(t, out.String(), "hi\n")
}

func TestFileSaves(t *testing.T) {
	fn := inTempDir(t)

	fs := newFileSaves(fn, "")
	test.ExpectEquality(t, fs.filename, "test.qzl")

	_, err := fs.Load()
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, fs.Save([]uint8{1, 2, 3}))
	data, err := fs.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), 3)

	open := fileOpener("transcript.txt")
	w, err := open()
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("west of house\n"))
	test.ExpectSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	data, err = os.ReadFile("transcript.txt")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "west of house\n")
}
