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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zgopher/zgopher/blorb"
	"github.com/zgopher/zgopher/hardware"
	"github.com/zgopher/zgopher/hardware/objects"
	"github.com/zgopher/zgopher/modalflag"
	"github.com/zgopher/zgopher/version"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit status of the program
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADER", "DICTIONARY", "OBJECTS", "BLORB", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "HEADER":
		err = showHeader(md, output)

	case "DICTIONARY":
		err = showDictionary(md, output)

	case "OBJECTS":
		err = showObjects(md, output)

	case "BLORB":
		err = showBlorb(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the single story file argument of a mode
func storyArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("story file required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// a machine for the modes that inspect a story without running it
func inspect(md *modalflag.Modes) (*hardware.Machine, error) {
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return nil, err
	}

	fn, err := storyArg(md)
	if err != nil {
		return nil, err
	}

	story, _, err := blorb.LoadFile(fn)
	if err != nil {
		return nil, err
	}

	return hardware.NewMachine(story, hardware.Environment{}, nil)
}

func showHeader(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	raw := md.AddBool("raw", false, "show the header bytes")
	m, err := inspect(md)
	if err != nil || m == nil {
		return err
	}

	if *raw {
		fmt.Fprint(output, m.Header.Dump())
		return nil
	}

	hdr := m.Header
	major, minor := hdr.StandardRevision()
	fmt.Fprintf(output, "version:       %d\n", hdr.Version())
	fmt.Fprintf(output, "release:       %d\n", hdr.Release())
	fmt.Fprintf(output, "serial:        %s\n", hdr.Serial())
	fmt.Fprintf(output, "checksum:      %#04x\n", hdr.Checksum())
	fmt.Fprintf(output, "file length:   %d\n", hdr.FileLength())
	fmt.Fprintf(output, "high memory:   %#04x\n", hdr.HighMemory())
	fmt.Fprintf(output, "static memory: %#04x\n", hdr.StaticMemory())
	fmt.Fprintf(output, "program start: %#04x\n", hdr.ProgramStart())
	fmt.Fprintf(output, "dictionary:    %#04x\n", hdr.Dictionary())
	fmt.Fprintf(output, "objects:       %#04x\n", hdr.ObjectTable())
	fmt.Fprintf(output, "globals:       %#04x\n", hdr.Globals())
	fmt.Fprintf(output, "abbreviations: %#04x\n", hdr.Abbreviations())
	fmt.Fprintf(output, "standard:      %d.%d\n", major, minor)

	if hdr.Checksum() != m.Checksum() {
		fmt.Fprintf(output, "checksum mismatch: calculated checksum is %#04x\n", m.Checksum())
	}
	return nil
}

func showDictionary(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	m, err := inspect(md)
	if err != nil || m == nil {
		return err
	}

	fmt.Fprintln(output, m.Dictionary)
	fmt.Fprintf(output, "separators: %q\n", m.Encoding().Decode(m.Dictionary.Separators()))
	for i, e := range m.Dictionary.Entries() {
		fmt.Fprintf(output, "%5d %#04x %s\n", i+1, m.Dictionary.EntryAddress(i), m.Encoding().Decode(e))
	}
	return nil
}

func showObjects(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	m, err := inspect(md)
	if err != nil || m == nil {
		return err
	}

	fmt.Fprintln(output, m.Objects)

	var show func(n *objects.Node, depth int)
	show = func(n *objects.Node, depth int) {
		fmt.Fprintf(output, "%s[%d] %s\n", strings.Repeat("  ", depth), n.Number, n.Name)
		for _, c := range n.Children {
			show(c, depth+1)
		}
	}
	for _, n := range objects.Graph(m.Objects, m.ObjectName) {
		show(n, 0)
	}
	return nil
}

func showBlorb(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fn, err := storyArg(md)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}

	b, err := blorb.Read(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, b)
	for _, r := range b.Index() {
		fmt.Fprintln(output, r)
	}
	for _, n := range b.PictureNumbers() {
		fmt.Fprintln(output, b.Pictures[n])
	}
	for _, n := range b.SoundNumbers() {
		fmt.Fprintln(output, b.Sounds[n])
	}
	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}
	return nil
}
