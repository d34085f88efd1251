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

// Package wavwriter records the sounds played by the sound package to a WAV
// file. Sounds are recorded one after the other in the order that they are
// read by the output, they are not mixed. Audio data is buffered in memory
// in its entirety and written to disk when the WavWriter is closed.
package wavwriter

import (
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep/v2"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/logger"
	"github.com/zgopher/zgopher/sound"
)

const bitDepth = 16

// WavWriter implements the sound.Output interface. It wraps another Output
// and keeps a copy of everything that is played through it.
type WavWriter struct {
	filename string
	out      sound.Output

	crit   sync.Mutex
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, out sound.Output) (*WavWriter, error) {
	if out == nil {
		return nil, curated.Errorf("wavwriter: no output to record")
	}
	return &WavWriter{
		filename: filename,
		out:      out,
	}, nil
}

// SampleRate implements the sound.Output interface.
func (aw *WavWriter) SampleRate() beep.SampleRate {
	return aw.out.SampleRate()
}

// Play implements the sound.Output interface.
func (aw *WavWriter) Play(s beep.Streamer) {
	aw.out.Play(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		aw.record(samples[:n])
		return n, ok
	}))
}

// Lock implements the sound.Output interface.
func (aw *WavWriter) Lock() {
	aw.out.Lock()
}

// Unlock implements the sound.Output interface.
func (aw *WavWriter) Unlock() {
	aw.out.Unlock()
}

func (aw *WavWriter) record(samples [][2]float64) {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	for _, s := range samples {
		aw.buffer = append(aw.buffer, quantise(s[0]), quantise(s[1]))
	}
}

func quantise(v float64) int {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int(v * 32767)
}

// Len returns the number of stereo samples recorded so far.
func (aw *WavWriter) Len() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer) / 2
}

// Close writes the recorded audio to disk.
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	rate := int(aw.out.SampleRate())
	enc := wav.NewEncoder(f, rate, bitDepth, 2, 1)

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
