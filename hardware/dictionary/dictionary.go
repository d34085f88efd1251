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

package dictionary

import (
	"fmt"
	"strings"

	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/zscii"
)

// Dictionary is the interface common to all dictionary types.
type Dictionary interface {
	Separators() zscii.String
	EntryLength() int
	NumEntries() int
	EntryAddress(entry int) int

	// returns the address of the entry for the token. zero if the token is
	// not in the dictionary
	Lookup(token zscii.String) int
}

// table holds the fields common to both dictionary types.
type table struct {
	mem     memory.Accessor
	address int
	decoder *zscii.Decoder
	sizes   Sizes
}

// Separators returns the list of word separator characters.
func (tab *table) Separators() zscii.String {
	n := int(tab.mem.Uint8(tab.address))
	s := make(zscii.String, n)
	for i := range s {
		s[i] = zscii.Char(tab.mem.Uint8(tab.address + 1 + i))
	}
	return s
}

func (tab *table) numSeparators() int {
	return int(tab.mem.Uint8(tab.address))
}

// EntryLength returns the size in bytes of each entry.
func (tab *table) EntryLength() int {
	return int(tab.mem.Uint8(tab.address + tab.numSeparators() + 1))
}

// NumEntries returns the number of entries. The value is signed. A negative
// value indicates a user dictionary that is not sorted.
func (tab *table) NumEntries() int {
	return int(tab.mem.Int16(tab.address + tab.numSeparators() + 2))
}

// EntryAddress returns the address of the entry.
func (tab *table) EntryAddress(entry int) int {
	return tab.address + tab.numSeparators() + 4 + entry*tab.EntryLength()
}

func (tab *table) decodeEntry(entry int) zscii.String {
	return tab.decoder.Decode(tab.mem, tab.EntryAddress(entry), tab.sizes.EntryBytes)
}

func (tab *table) truncate(token zscii.String) zscii.String {
	if len(token) > tab.sizes.MaxChars {
		return token[:tab.sizes.MaxChars]
	}
	return token
}

// key returns a value that can be used as a map key for the ZSCII string
func key(s zscii.String) string {
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Default is the story's own dictionary. Entries are decoded when the
// dictionary is created and stored in a map.
type Default struct {
	table

	lookup map[string]int

	// the length of the longest decoded entry
	maxEntryChars int
}

// NewDefault is the preferred method of initialisation for the Default type.
func NewDefault(mem memory.Accessor, address int, decoder *zscii.Decoder, sizes Sizes) *Default {
	dct := &Default{
		table: table{
			mem:     mem,
			address: address,
			decoder: decoder,
			sizes:   sizes,
		},
		lookup: make(map[string]int),
	}

	for i := 0; i < dct.NumEntries(); i++ {
		s := dct.decodeEntry(i)
		if len(s) > dct.maxEntryChars {
			dct.maxEntryChars = len(s)
		}
		dct.lookup[key(s)] = dct.EntryAddress(i)
	}

	return dct
}

// MaxEntryChars returns the length of the longest entry in the dictionary.
func (dct *Default) MaxEntryChars() int {
	return dct.maxEntryChars
}

// Lookup implements the Dictionary interface.
func (dct *Default) Lookup(token zscii.String) int {
	return dct.lookup[key(dct.truncate(token))]
}

// Entries returns the decoded text of every entry, in dictionary order.
func (dct *Default) Entries() []zscii.String {
	entries := make([]zscii.String, dct.NumEntries())
	for i := range entries {
		entries[i] = dct.decodeEntry(i)
	}
	return entries
}

func (dct *Default) String() string {
	return fmt.Sprintf("dictionary at %#04x with %d entries", dct.address, dct.NumEntries())
}
