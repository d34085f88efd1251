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

package random

import (
	"math/rand"
	"time"
)

// Random is a random number generator that can be switched between
// predictable and unpredictable sequences.
type Random struct {
	rnd *rand.Rand

	// the seed of the current sequence and whether it was requested
	// explicitly
	seed        int64
	predictable bool

	// use zero seed rather than a time based seed when reseeding
	// unpredictably. this is only really useful for testing
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Reseed()
	return rnd
}

// Reseed puts the generator into unpredictable mode.
func (rnd *Random) Reseed() {
	rnd.predictable = false
	if rnd.ZeroSeed {
		rnd.seed = 0
	} else {
		rnd.seed = time.Now().UnixNano()
	}
	rnd.rnd = rand.New(rand.NewSource(rnd.seed))
}

// Seed puts the generator into predictable mode. The same seed value will
// always produce the same sequence of numbers.
func (rnd *Random) Seed(seed int64) {
	rnd.predictable = true
	rnd.seed = seed
	rnd.rnd = rand.New(rand.NewSource(seed))
}

// Predictable returns true if the generator was last seeded with Seed().
func (rnd *Random) Predictable() bool {
	return rnd.predictable
}

// Intn returns a number in the range 0 to n-1. If n is less than or equal
// to zero then zero is returned.
func (rnd *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rnd.Intn(n)
}
