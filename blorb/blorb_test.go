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

package blorb_test

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/zgopher/zgopher/blorb"
	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/iff"
	"github.com/zgopher/zgopher/test"
)

type resource struct {
	usage  string
	number int
	id     string
	data   []uint8
}

type chunk struct {
	id   string
	data []uint8
}

func words(v ...int) []uint8 {
	var b []uint8
	for _, w := range v {
		b = binary.BigEndian.AppendUint32(b, uint32(w))
	}
	return b
}

// build a blorb file. the resource index is created from the resources,
// which are written in the order given, followed by the other chunks
func build(resources []resource, others ...chunk) []uint8 {
	idx := words(len(resources))
	offset := 12 + 8 + len(idx) + len(resources)*12
	for _, r := range resources {
		idx = append(idx, r.usage...)
		idx = append(idx, words(r.number, offset)...)
		offset += 8 + len(r.data) + len(r.data)%2
	}

	f := iff.NewWritableForm("IFRS")
	f.AddChunk("RIdx", idx)
	for _, r := range resources {
		f.AddChunk(r.id, r.data)
	}
	for _, c := range others {
		f.AddChunk(c.id, c.data)
	}
	return f.Bytes()
}

func pngData(t *testing.T, width int, height int) []uint8 {
	t.Helper()
	var b bytes.Buffer
	test.DemandSuccess(t, png.Encode(&b, image.NewGray(image.Rect(0, 0, width, height))))
	return b.Bytes()
}

const metadata = `<?xml version="1.0" encoding="UTF-8"?>
<ifindex version="1.0" xmlns="http://babel.ifarchive.org/protocol/iFiction/">
<story>
<bibliographic>
<title>Test Story</title>
<author>Nobody</author>
<firstpublished>1987</firstpublished>
</bibliographic>
<zcode><coverpicture>1</coverpicture></zcode>
</story>
</ifindex>`

func TestRead(t *testing.T) {
	story := []uint8{5, 0, 0, 1}
	data := build([]resource{
		{"Pict", 1, "PNG ", pngData(t, 4, 2)},
		{"Pict", 2, "Rect", words(10, 20)},
		{"Snd ", 3, "FORM", append([]uint8("AIFF"), 1, 2, 3)},
		{"Exec", 0, "ZCOD", story},
	},
		chunk{"Fspc", words(1)},
		chunk{"RelN", []uint8{0, 5}},
		chunk{"Reso", words(100, 100, 50, 50, 400, 400, 1, 2, 1, 0, 0, 3, 1)},
		chunk{"IFmd", []uint8(metadata)},
	)

	test.ExpectEquality(t, blorb.IsBlorb(data), true)

	b, err := blorb.Read(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b.Index()), 4)
	test.ExpectEquality(t, b.Frontispiece, 1)
	test.ExpectEquality(t, b.Release, 5)
	test.ExpectEquality(t, string(b.Story()), string(story))

	pic := b.Pictures[1]
	test.DemandInequality(t, pic, nil)
	test.ExpectEquality(t, pic.Format, blorb.PNG)
	test.ExpectEquality(t, pic.Width, 4)
	test.ExpectEquality(t, pic.Height, 2)

	// the window is twice the standard width but the same height
	w, h := pic.Size(200, 100)
	test.ExpectEquality(t, w, 8)
	test.ExpectEquality(t, h, 4)

	// clamped to the maximum ratio
	w, h = pic.Size(600, 600)
	test.ExpectEquality(t, w, 12)
	test.ExpectEquality(t, h, 6)

	img, err := pic.Decode()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)

	rect := b.Pictures[2]
	test.ExpectEquality(t, rect.Format, blorb.Placeholder)
	test.ExpectEquality(t, rect.Height, 20)
	w, h = rect.Size(10, 10)
	test.ExpectEquality(t, w, 10)
	test.ExpectEquality(t, h, 20)
	_, err = rect.Decode()
	test.ExpectFailure(t, err)

	snd := b.Sounds[3]
	test.DemandInequality(t, snd, nil)
	test.ExpectEquality(t, snd.Format, blorb.AIFF)
	test.ExpectEquality(t, string(snd.Data[:4]), "FORM")
	test.ExpectEquality(t, string(snd.Data[8:12]), "AIFF")

	test.DemandInequality(t, b.Metadata, nil)
	test.ExpectEquality(t, b.Metadata.Title, "Test Story")
	test.ExpectEquality(t, b.Metadata.Year, "1987")
	test.ExpectEquality(t, b.Metadata.CoverPicture, 1)

	test.ExpectEquality(t, len(b.PictureNumbers()), 2)
	test.ExpectEquality(t, b.PictureNumbers()[0], 1)
}

func TestLoadStory(t *testing.T) {
	story := make([]uint8, 64)
	story[0] = 3

	s, b, err := blorb.LoadStory(story)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b == nil, true)
	test.ExpectEquality(t, len(s), 64)

	_, _, err = blorb.LoadStory([]uint8("hello world"))
	test.ExpectEquality(t, curated.Is(err, blorb.NotZcode), true)

	data := build([]resource{{"Exec", 0, "ZCOD", story}})
	s, b, err = blorb.LoadStory(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b != nil, true)
	test.ExpectEquality(t, len(s), 64)

	data = build([]resource{{"Pict", 1, "Rect", words(1, 1)}})
	_, _, err = blorb.LoadStory(data)
	test.ExpectEquality(t, curated.Is(err, blorb.NoStory), true)

	test.ExpectEquality(t, blorb.HasBlorbExtension("story.zblorb"), true)
	test.ExpectEquality(t, blorb.HasBlorbExtension("story.z5"), false)
}

func TestInvalidIndex(t *testing.T) {
	f := iff.NewWritableForm("IFRS")
	f.AddChunk("Fspc", words(1))
	_, err := blorb.Read(f.Bytes())
	test.ExpectEquality(t, curated.Is(err, blorb.InvalidIndex), true)

	// an index entry that points to nothing
	f = iff.NewWritableForm("IFRS")
	f.AddChunk("RIdx", append(words(1), append([]uint8("Pict"), words(1, 0x400)...)...))
	_, err = blorb.Read(f.Bytes())
	test.ExpectEquality(t, curated.Is(err, blorb.InvalidIndex), true)

	_, err = blorb.Read(iff.NewWritableForm("IFZS").Bytes())
	test.ExpectEquality(t, curated.Is(err, blorb.NotBlorb), true)
}

func TestResourceFile(t *testing.T) {
	dir := t.TempDir()
	story := filepath.Join(dir, "zork0.z6")
	test.DemandSuccess(t, os.WriteFile(story, []uint8{6}, 0o644))
	test.ExpectEquality(t, blorb.ResourceFile(story), "")

	res := filepath.Join(dir, "zork0.blb")
	test.DemandSuccess(t, os.WriteFile(res, []uint8{0}, 0o644))
	test.ExpectEquality(t, blorb.ResourceFile(story), res)

	test.ExpectSuccess(t, blorb.HasBlorbExtension(res))
	test.ExpectFailure(t, blorb.HasBlorbExtension(story))
}

func TestLoadFileFromArchive(t *testing.T) {
	story := make([]uint8, 64)
	story[0] = 5

	dir := t.TempDir()
	arc := filepath.Join(dir, "stories.zip")
	f, err := os.Create(arc)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("curses.z5")
	test.DemandSuccess(t, err)
	_, err = w.Write(story)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	s, b, err := blorb.LoadFile(filepath.Join(arc, "curses.z5"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b == nil, true)
	test.ExpectEquality(t, len(s), 64)

	s, _, err = blorb.LoadFile(arc)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s[0], uint8(5))
}
