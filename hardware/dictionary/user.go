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
	"bytes"

	"golang.org/x/exp/slices"

	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/zscii"
)

// User is a dictionary supplied to the tokenise instruction. User
// dictionaries only exist in version 5 stories and later.
//
// The entries of a user dictionary with a positive number of entries are
// sorted by their encoded form and are searched with a binary search of the
// encoded token. A negative number of entries indicates an unsorted
// dictionary and is searched linearly.
type User struct {
	table
	encoder *zscii.Encoder
}

// NewUser is the preferred method of initialisation for the User type.
func NewUser(mem memory.Accessor, address int, decoder *zscii.Decoder, encoder *zscii.Encoder) *User {
	return &User{
		table: table{
			mem:     mem,
			address: address,
			decoder: decoder,
			sizes:   SizesForVersion(5),
		},
		encoder: encoder,
	}
}

// Lookup implements the Dictionary interface.
func (dct *User) Lookup(token zscii.String) int {
	token = dct.truncate(token)

	n := dct.NumEntries()
	if n < 0 {
		return dct.linear(token, -n)
	}

	target := dct.encoder.Encode(token)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	i, found := slices.BinarySearchFunc(idx, target[:], func(entry int, target []uint8) int {
		return bytes.Compare(dct.mem.ReadBytes(dct.EntryAddress(entry), zscii.EncodedSize), target)
	})
	if !found {
		return 0
	}
	return dct.EntryAddress(i)
}

func (dct *User) linear(token zscii.String, n int) int {
	k := key(token)
	for i := 0; i < n; i++ {
		if key(dct.decodeEntry(i)) == k {
			return dct.EntryAddress(i)
		}
	}
	return 0
}
