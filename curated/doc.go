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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. Packages that raise errors which
// callers may want to identify export the pattern as a const string. For
// example, the hardware package exports the DivideByZero pattern:
//
//	err := curated.Errorf(hardware.DivideByZero, pc)
//
//	if curated.Is(err, hardware.DivideByZero) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(hardware.DivideByZero, pc)
//	f := curated.Errorf("halted: %v", e)
//
//	if curated.Has(f, hardware.DivideByZero) {
//		fmt.Println("true")
//	}
//
// The call to Is() with error f and the DivideByZero pattern would fail
// because the error is "wrapped" inside the pattern "halted: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf().
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separted by the sub-string ': '. For
// example:
//
//	part 1: part 2: part 3
//
// Wrapped curated errors and wrapped standard errors can also be reached
// with errors.Is() and errors.As() from the standard library because curated
// errors implement the Unwrap() function.
package curated
