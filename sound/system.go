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
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"github.com/zgopher/zgopher/blorb"
	"github.com/zgopher/zgopher/logger"
)

// the effect operand of the sound_effect instruction
const (
	EffectPrepare = 1
	EffectStart   = 2
	EffectStop    = 3
	EffectFinish  = 4
)

// the two generated sounds
const (
	BleepHigh = 1
	BleepLow  = 2
)

// volume and repeat values that have special meaning
const (
	VolumeDefault  = 0xff
	RepeatsForever = 0xff
	maxVolume      = 8
)

// length of the channel returned by Finished()
const finishedQueue = 16

// Option changes the behaviour of a System.
type Option func(*System)

// WaitForPrevious causes the start of a sound to wait for the end of the
// sound that is currently playing, rather than stopping it. A sound that
// repeats forever is still stopped.
func WaitForPrevious() Option {
	return func(sys *System) {
		sys.waitForPrevious = true
	}
}

// Volume sets the master volume of the System. The value should be between
// zero and one.
func Volume(v float64) Option {
	return func(sys *System) {
		sys.volume = v
	}
}

// System plays sound effects on an Output. It implements the SoundSystem
// interface of the hardware package.
type System struct {
	out    Output
	sounds map[int]*blorb.Sound

	waitForPrevious bool
	volume          float64

	// decoded sounds
	crit   sync.Mutex
	loaded map[int]*beep.Buffer

	current  *task
	finished chan int
}

// NewSystem is the preferred method of initialisation for the System type.
// The Blorb argument can be nil, in which case only the bleeps are
// available.
func NewSystem(out Output, b *blorb.Blorb, opts ...Option) *System {
	sys := &System{
		out:      out,
		sounds:   make(map[int]*blorb.Sound),
		volume:   1.0,
		loaded:   make(map[int]*beep.Buffer),
		finished: make(chan int, finishedQueue),
	}

	if b != nil {
		sys.sounds = b.Sounds
	}

	for _, o := range opts {
		o(sys)
	}

	return sys
}

// Finished implements the hardware.SoundSystem interface.
func (sys *System) Finished() <-chan int {
	return sys.finished
}

// Reset stops the current sound and forgets all decoded sounds.
func (sys *System) Reset() {
	sys.stop(0)

	sys.crit.Lock()
	defer sys.crit.Unlock()
	sys.loaded = make(map[int]*beep.Buffer)

	for {
		select {
		case <-sys.finished:
		default:
			return
		}
	}
}

// Playing returns the number of the sampled sound that is playing. Returns
// zero if no sampled sound is playing.
func (sys *System) Playing() int {
	if sys.current == nil || sys.current.isDone() {
		return 0
	}
	return sys.current.number
}

// SoundEffect implements the hardware.SoundSystem interface. The context
// only matters when the sound must wait for the previous sound to finish. A
// cancelled context abandons the wait and the sound is not started.
func (sys *System) SoundEffect(ctx context.Context, number int, effect int, volume int, repeats int, routine int) {
	if number == BleepHigh || number == BleepLow {
		sys.bleep(number)
		return
	}

	switch effect {
	case EffectPrepare:
		sys.load(number)
	case EffectStart:
		sys.start(ctx, number, volume, repeats, routine)
	case EffectStop:
		sys.stop(number)
	case EffectFinish:
		sys.stop(number)
		sys.unload(number)
	default:
		logger.Logf(logger.Allow, "sound", "unknown effect (%d) for sound %d", effect, number)
	}
}

func (sys *System) load(number int) *beep.Buffer {
	sys.crit.Lock()
	defer sys.crit.Unlock()

	if buf, ok := sys.loaded[number]; ok {
		return buf
	}

	snd, ok := sys.sounds[number]
	if !ok {
		logger.Logf(logger.Allow, "sound", "no sound resource %d", number)
		return nil
	}

	buf, err := decode(snd, sys.out.SampleRate())
	if err != nil {
		logger.Logf(logger.Allow, "sound", "sound %d: %v", number, err)
		return nil
	}

	sys.loaded[number] = buf
	return buf
}

func (sys *System) unload(number int) {
	sys.crit.Lock()
	defer sys.crit.Unlock()
	delete(sys.loaded, number)
}

func (sys *System) start(ctx context.Context, number int, volume int, repeats int, routine int) {
	buf := sys.load(number)
	if buf == nil {
		return
	}

	if sys.current != nil && !sys.current.isDone() {
		if sys.waitForPrevious && !sys.current.forever {
			if !sys.current.wait(ctx) {
				logger.Logf(logger.Allow, "sound", "abandoned wait for sound %d", sys.current.number)
				return
			}
		} else {
			sys.stop(0)
		}
	}

	var s beep.Streamer
	switch repeats {
	case 0, 1:
		s = buf.Streamer(0, buf.Len())
	case RepeatsForever:
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	default:
		s = beep.Loop(repeats, buf.Streamer(0, buf.Len()))
	}

	t := newTask(number, routine)
	t.forever = repeats == RepeatsForever
	t.ctrl = &beep.Ctrl{Streamer: sys.amplify(s, volume)}
	sys.current = t

	sys.out.Play(beep.Seq(t.ctrl, beep.Callback(func() {
		t.end(sys.finished)
	})))
}

// a number of zero stops whatever is playing
func (sys *System) stop(number int) {
	t := sys.current
	if t == nil || t.isDone() {
		return
	}
	if number != 0 && number != t.number {
		return
	}

	t.stopped.Store(true)
	sys.out.Lock()
	t.ctrl.Streamer = nil
	sys.out.Unlock()
}

// volumes one to eight are a fraction of the full volume. any other volume
// is treated as full volume
func (sys *System) amplify(s beep.Streamer, volume int) beep.Streamer {
	gain := sys.volume
	if volume >= 1 && volume < maxVolume {
		gain *= float64(volume) / maxVolume
	}

	if gain >= 1.0 {
		return s
	}

	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(gain),
		Silent:   gain <= 0,
	}
}

// the bleeps do not interrupt or wait for a sampled sound
func (sys *System) bleep(number int) {
	freq := 880.0
	if number == BleepLow {
		freq = 220.0
	}
	rate := sys.out.SampleRate()
	sys.out.Play(sys.amplify(tone(rate, freq, rate.N(time.Second/10)), VolumeDefault))
}

// tone generates a square wave of the frequency for n samples
func tone(rate beep.SampleRate, freq float64, n int) beep.Streamer {
	period := float64(rate) / freq
	var pos int
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		c := 0
		for i := range samples {
			if pos >= n {
				break
			}
			v := 0.25
			if math.Mod(float64(pos), period) >= period/2 {
				v = -0.25
			}
			samples[i] = [2]float64{v, v}
			pos++
			c++
		}
		return c, true
	})
}

// task is a sampled sound that has been started
type task struct {
	number  int
	routine int
	forever bool
	ctrl    *beep.Ctrl

	stopped atomic.Bool
	done    chan struct{}
	once    sync.Once
}

func newTask(number int, routine int) *task {
	return &task{
		number:  number,
		routine: routine,
		done:    make(chan struct{}),
	}
}

func (t *task) isDone() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// wait for the task to end. returns false if the context was done first
func (t *task) wait(ctx context.Context) bool {
	select {
	case <-t.done:
		return true
	case <-ctx.Done():
		return false
	}
}

// end is called by the output when the task's streamer is exhausted. the
// routine is only sent if the sound was not stopped
func (t *task) end(finished chan int) {
	t.once.Do(func() {
		if !t.stopped.Load() && t.routine != 0 {
			select {
			case finished <- t.routine:
			default:
				logger.Logf(logger.Allow, "sound", "finished queue full. dropping routine for sound %d", t.number)
			}
		}
		close(t.done)
	})
}
