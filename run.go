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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"

	"github.com/zgopher/zgopher/blorb"
	"github.com/zgopher/zgopher/hardware"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/hardware/objects"
	"github.com/zgopher/zgopher/logger"
	"github.com/zgopher/zgopher/modalflag"
	"github.com/zgopher/zgopher/paths"
	"github.com/zgopher/zgopher/pictures"
	"github.com/zgopher/zgopher/prefs"
	"github.com/zgopher/zgopher/sound"
	"github.com/zgopher/zgopher/statsview"
	"github.com/zgopher/zgopher/streams"
	"github.com/zgopher/zgopher/terminal"
	"github.com/zgopher/zgopher/wavwriter"
	"github.com/zgopher/zgopher/zscii"
)

// the window size used to scale pictures. a terminal has no pixels so a
// common size for version 6 stories is used
const (
	pictureWindowWidth  = 640
	pictureWindowHeight = 400
)

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	transcript := md.AddString("transcript", "", "filename of transcript (output stream 2)")
	script := md.AddString("script", "", "read input from command script")
	record := md.AddString("record", "", "filename of command script recording (output stream 4)")
	savefile := md.AddString("savefile", "", "filename for saved games")
	seed := md.AddInt("seed", 0, "seed for random number generator")
	nosound := md.AddBool("nosound", false, "disable sound")
	wav := md.AddString("wav", "", "record sound effects to wav file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write dot graph of object tree to file on quit")
	log := md.AddBool("log", false, "echo log to stderr")
	prefsArg := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := storyArg(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer prefs.PopCommandLineStack()
	}

	pref, err := hardware.NewPreferences()
	if err != nil {
		return err
	}
	if *seed != 0 {
		if err := pref.RandomSeed.Set(*seed); err != nil {
			return err
		}
	}
	if *transcript != "" {
		if err := pref.TranscriptFilename.Set(*transcript); err != nil {
			return err
		}
	}

	story, b, err := blorb.LoadFile(fn)
	if err != nil {
		return err
	}
	if b == nil {
		if res := blorb.ResourceFile(fn); res != "" {
			data, err := os.ReadFile(res)
			if err != nil {
				return err
			}
			b, err = blorb.Read(data)
			if err != nil {
				logger.Logf(logger.Allow, "run", "ignoring resources in %s: %v", res, err)
			}
		}
	}

	// the header is needed before the machine is created
	if len(story) < 64 {
		return fmt.Errorf("story file is too short")
	}
	mem := memory.NewMemory(append([]uint8{}, story...))
	hdr := header.NewHeader(mem)

	// a transcript started by the story without a named file gets a file
	// of its own
	tfn := pref.TranscriptFilename.Get().(string)
	if tfn == "" {
		tfn = paths.UniqueFilename("transcript", fn, "txt")
	}

	env := hardware.Environment{
		Saves:      newFileSaves(fn, *savefile),
		Transcript: fileOpener(tfn),
	}
	if *record != "" {
		env.Script = fileOpener(*record)
	}

	// screen
	if output == os.Stdout && terminal.IsTerminal(os.Stdin) && terminal.IsTerminal(os.Stdout) {
		term, err := terminal.Open(os.Stdin, os.Stdout, hdr.Version())
		if err != nil {
			return err
		}
		defer term.Close()
		term.SetStatusLine(hdr.Version() <= 3)
		env.Screen = term
	} else {
		env.Screen = terminal.NewPlain(output, pref.ScreenWidth.Get().(int), pref.ScreenHeight.Get().(int))
	}

	// input
	enc := encoding(mem, hdr)
	env.Keyboard = streams.NewKeyboard(os.Stdin, enc)
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return err
		}
		env.CommandFile = streams.NewCommandFile(f, enc, env.Keyboard)
	}

	// pictures
	if b != nil && len(b.Pictures) > 0 {
		env.Pictures = pictures.NewManager(b, pictureWindowWidth, pictureWindowHeight)
	}

	// sound
	if !*nosound && pref.SoundEnabled.Get().(bool) {
		sys, closer, err := newSound(b, hdr, pref, *wav)
		if err != nil {
			logger.Logf(logger.Allow, "run", "sound disabled: %v", err)
		} else {
			defer closer()
			env.Sound = sys
		}
	}

	m, err := hardware.NewMachine(story, env, pref)
	if err != nil {
		return err
	}

	if *stats && !statsview.Available() {
		return fmt.Errorf("statsview not available in this build")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *stats {
		statsview.Launch(ctx, os.Stderr)
	}

	err = m.Run(ctx)
	m.Output.Close()

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, m); err != nil {
			logger.Log(logger.Allow, "run", err)
		}
	}

	if err != nil && ctx.Err() == nil {
		return err
	}

	return pref.Save()
}

// the ZSCII encoding used to convert keyboard input. the machine creates
// the same encoding from the header
func encoding(mem *memory.Memory, hdr *header.Header) *zscii.Encoding {
	if a := hdr.AccentTable(); a != 0 {
		return zscii.NewEncoding(zscii.NewCustomAccentTable(mem, a))
	}
	return zscii.NewEncoding(nil)
}

// newSound creates the sound system. the returned function closes the
// speaker and writes the wav file if one was requested
func newSound(b *blorb.Blorb, hdr *header.Header, pref *hardware.Preferences, wav string) (*sound.System, func(), error) {
	spk, err := sound.NewSpeaker()
	if err != nil {
		return nil, nil, err
	}

	var out sound.Output = spk
	var aw *wavwriter.WavWriter
	if wav != "" {
		aw, err = wavwriter.New(wav, spk)
		if err != nil {
			spk.Close()
			return nil, nil, err
		}
		out = aw
	}

	opts := []sound.Option{sound.Volume(pref.SoundVolume.Get().(float64))}
	if sound.RequiresWait(hdr.Release(), hdr.Serial()) {
		opts = append(opts, sound.WaitForPrevious())
	}

	closer := func() {
		spk.Close()
		if aw != nil {
			if err := aw.Close(); err != nil {
				logger.Log(logger.Allow, "run", err)
			}
		}
	}

	return sound.NewSystem(out, b, opts...), closer, nil
}

// the object tree is written as a graph of Nodes
func writeMemviz(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, objects.Graph(m.Objects, m.ObjectName))
	return nil
}
