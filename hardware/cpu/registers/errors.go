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

package registers

// sentinal errors returned by the flag and register accessors. to be used
// with the curated package.
//
// InvalidFlag and OutOfRangeFlag describe the same condition (a bit that is
// not one of the five condition flags) reported through two different entry
// points. the named Set()/Clear() functions report InvalidFlag while the
// indexed Bit()/SetBit() functions report OutOfRangeFlag. the two call
// shapes exist at genuinely different call sites in the execution loop and
// the distinction is kept as part of the API contract.
const (
	InvalidFlag     = "flags: %v is not a condition flag"
	OutOfRangeFlag  = "flags: bit out of range (%v)"
	InvalidValue    = "flags: %d is not a flag value (0 or 1)"
	InvalidRegister = "registers: %v is not an addressable register"
	InvalidPair     = "registers: %v does not select a register pair"
	TypeMismatch    = "registers: expected an integer key (%T)"
)
