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

package sound

import (
	"bytes"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep/v2"
	"github.com/hajimehoshi/go-mp3"

	"github.com/zgopher/zgopher/blorb"
	"github.com/zgopher/zgopher/curated"
)

// UnsupportedFormat is the error pattern for a sound resource that cannot be
// decoded.
const UnsupportedFormat = "sound: cannot decode %s sounds"

// decode the sound resource into a buffer at the output sample rate
func decode(snd *blorb.Sound, rate beep.SampleRate) (*beep.Buffer, error) {
	var samples [][2]float64
	var srcRate int
	var err error

	switch snd.Format {
	case blorb.AIFF:
		dec := aiff.NewDecoder(bytes.NewReader(snd.Data))
		if !dec.IsValidFile() {
			return nil, curated.Errorf("sound: aiff: not a valid aiff file")
		}
		var buf *audio.IntBuffer
		buf, err = dec.FullPCMBuffer()
		if err != nil {
			return nil, curated.Errorf("sound: aiff: %v", err)
		}
		samples = fromIntBuffer(buf, int(dec.BitDepth))
		srcRate = buf.Format.SampleRate

	case blorb.WAV:
		dec := wav.NewDecoder(bytes.NewReader(snd.Data))
		if !dec.IsValidFile() {
			return nil, curated.Errorf("sound: wav: not a valid wav file")
		}
		var buf *audio.IntBuffer
		buf, err = dec.FullPCMBuffer()
		if err != nil {
			return nil, curated.Errorf("sound: wav: %v", err)
		}
		samples = fromIntBuffer(buf, int(dec.BitDepth))
		srcRate = buf.Format.SampleRate

	case blorb.MP3:
		samples, srcRate, err = decodeMP3(snd.Data)
		if err != nil {
			return nil, err
		}

	default:
		return nil, curated.Errorf(UnsupportedFormat, snd.Format)
	}

	if srcRate <= 0 {
		return nil, curated.Errorf("sound: %s sound %d has no sample rate", snd.Format, snd.Number)
	}

	var s beep.Streamer = sliceStreamer(samples)
	if beep.SampleRate(srcRate) != rate {
		s = beep.Resample(3, beep.SampleRate(srcRate), rate, s)
	}

	out := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	out.Append(s)
	return out, nil
}

// convert the interleaved integer samples to stereo floating point samples.
// mono sounds are copied to both channels
func fromIntBuffer(buf *audio.IntBuffer, bitDepth int) [][2]float64 {
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int(1) << (bitDepth - 1))

	chans := buf.Format.NumChannels
	if chans < 1 {
		chans = 1
	}

	samples := make([][2]float64, len(buf.Data)/chans)
	for i := range samples {
		l := float64(buf.Data[i*chans]) / scale
		r := l
		if chans > 1 {
			r = float64(buf.Data[i*chans+1]) / scale
		}
		samples[i] = [2]float64{l, r}
	}
	return samples
}

// the go-mp3 decoder always produces 16bit little endian stereo samples
func decodeMP3(data []uint8) ([][2]float64, int, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, curated.Errorf("sound: mp3: %v", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, curated.Errorf("sound: mp3: %v", err)
	}

	samples := make([][2]float64, len(pcm)/4)
	for i := range samples {
		l := int16(uint16(pcm[i*4]) | uint16(pcm[i*4+1])<<8)
		r := int16(uint16(pcm[i*4+2]) | uint16(pcm[i*4+3])<<8)
		samples[i] = [2]float64{float64(l) / 32768, float64(r) / 32768}
	}

	return samples, dec.SampleRate(), nil
}

// sliceStreamer streams the samples in the slice once
func sliceStreamer(samples [][2]float64) beep.Streamer {
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if len(samples) == 0 {
			return 0, false
		}
		n := copy(out, samples)
		samples = samples[n:]
		return n, true
	})
}
