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

package random_test

import (
	"testing"

	"github.com/zgopher/zgopher/random"
	"github.com/zgopher/zgopher/test"
)

func TestPredictable(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.Seed(1234)
	b.Seed(1234)
	test.ExpectSuccess(t, a.Predictable())

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true
	a.Reseed()
	b.Reseed()
	test.ExpectFailure(t, a.Predictable())

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestRange(t *testing.T) {
	a := random.NewRandom()
	for i := 0; i < 1000; i++ {
		v := a.Intn(6)
		test.ExpectSuccess(t, v >= 0 && v < 6)
	}
	test.ExpectEquality(t, a.Intn(0), 0)
	test.ExpectEquality(t, a.Intn(-5), 0)
}
