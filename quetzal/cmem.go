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

package quetzal

import (
	"github.com/zgopher/zgopher/curated"
)

// the maximum length of a run of zeroes in a single run-length pair
const maxRun = 256

// Compress dynamic memory by XORing it with the original memory and run-length
// encoding the zero bytes in the result. A run of zero bytes is encoded as a
// zero byte followed by the length of the run minus one. Trailing zero bytes
// are not encoded.
func Compress(current []uint8, original []uint8) []uint8 {
	var out []uint8

	run := 0
	flush := func() {
		for run > 0 {
			n := run
			if n > maxRun {
				n = maxRun
			}
			out = append(out, 0, uint8(n-1))
			run -= n
		}
	}

	for i, b := range current {
		var o uint8
		if i < len(original) {
			o = original[i]
		}
		x := b ^ o
		if x == 0 {
			run++
			continue
		}
		flush()
		out = append(out, x)
	}

	return out
}

// Decompress the CMem data against the original memory. The returned memory
// is the same length as the original.
func Decompress(data []uint8, original []uint8) ([]uint8, error) {
	out := make([]uint8, len(original))
	copy(out, original)

	i := 0
	for p := 0; p < len(data); p++ {
		if data[p] == 0 {
			p++
			if p >= len(data) {
				return nil, curated.Errorf(MalformedChunk, idCompressed)
			}
			i += int(data[p]) + 1
			continue
		}
		if i >= len(out) {
			return nil, curated.Errorf(MalformedChunk, idCompressed)
		}
		out[i] ^= data[p]
		i++
	}

	if i > len(out) {
		return nil, curated.Errorf(MalformedChunk, idCompressed)
	}

	return out, nil
}
