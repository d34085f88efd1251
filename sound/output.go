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
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/zgopher/zgopher/curated"
)

// SampleRate is the rate at which the speaker is driven. Decoded sounds are
// resampled to this rate.
const SampleRate = beep.SampleRate(44100)

// Output is the destination of the sounds played by the System.
type Output interface {
	SampleRate() beep.SampleRate

	// play the streamer. the streamer is read from another goroutine
	Play(s beep.Streamer)

	// Lock and Unlock must be used around changes to a playing streamer
	Lock()
	Unlock()
}

// Speaker is an Output that plays sounds on the host's audio device.
type Speaker struct {
	rate beep.SampleRate
}

// NewSpeaker initialises the audio device. Only one Speaker should be
// created.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, curated.Errorf("sound: %v", err)
	}
	return &Speaker{rate: SampleRate}, nil
}

// SampleRate implements the Output interface.
func (spk *Speaker) SampleRate() beep.SampleRate {
	return spk.rate
}

// Play implements the Output interface.
func (spk *Speaker) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Lock implements the Output interface.
func (spk *Speaker) Lock() {
	speaker.Lock()
}

// Unlock implements the Output interface.
func (spk *Speaker) Unlock() {
	speaker.Unlock()
}

// Close the audio device.
func (spk *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
