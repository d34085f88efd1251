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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse():
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADER", "DICTIONARY")
//	_, _ = md.Parse()
//
// After Parse() has returned the Mode() function says which mode was
// selected. The first sub-mode in the list is the default mode and is used
// if the first non-flag argument is not the name of a mode. Comparison of
// mode names is case insensitive.
//
// A mode can then have its own flags:
//
//	md.NewMode()
//	transcript := md.AddString("transcript", "", "write transcript to file")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Non-flag arguments remaining after the parse are available through
// RemainingArgs() and GetArg(). The Path() function returns the sequence of
// modes encountered so far, separated by a forward slash.
package modalflag
