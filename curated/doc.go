// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like the
// Errorf() function in the fmt package except that the formatting pattern is
// retained and can be tested for later:
//
//	e := curated.Errorf("flags: %d is not a condition flag", bit)
//
//	if curated.Is(e, "flags: %d is not a condition flag") {
//		fmt.Println("true")
//	}
//
// The Has() function is like Is() but checks for the pattern anywhere in the
// error chain, rather than at the outermost error only. The IsAny() function
// answers whether the error was created by Errorf() at all; errors that were
// not are 'uncurated' and should be treated as unexpected.
//
// Sentinal patterns should be stored as const strings, suitably named and
// commented, in the package that creates them. The packages in this project
// use that convention for every error kind they can return.
//
// The Error() function normalises the error chain so that adjacent duplicate
// parts appear only once. Parts of a chain are separated by the sub-string
// ': ' as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan). The practical advantage is that errors can be wrapped freely
// at every level of a call chain without the final message stuttering.
package curated
