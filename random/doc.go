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

// Package random should be used in preference to the math/rand package when a
// random number is required by the interpreter.
//
// The Z-machine's random opcode can put the generator into a predictable
// mode by seeding it with a specific value. It can also return the generator
// to an unpredictable mode. Both are supported by the Random type.
//
// If the same random numbers are required every single time, even in
// unpredictable mode, then set ZeroSeed to true. This is useful for testing
// purposes.
package random
