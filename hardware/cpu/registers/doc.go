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

// Package registers implements the architectural state of the 8080: the
// condition flags and the general purpose register file. Both types are pure
// state containers. The instruction execution loop reads operands from the
// File type, performs whatever arithmetic is required and writes the result
// back, refreshing the Flags type from the result as it goes. For instance:
//
//	v, _ := f.Value(registers.A)
//	v += operand
//	f.SetValue(registers.A, v)
//	fl.SetZero(v)
//	fl.CalculateParity(v)
//
// The seven byte-wide registers are addressed by the codes B, C, D, E, H, L
// and A. The code M is the memory pseudo-register: it names no storage cell
// in this package and scalar access with it is an error. When the decoder
// encounters M the operand lives in memory at the address held in the H/L
// pair, retrieved with the Address() function.
//
// Three fixed register pairs overlay the file: B/C, D/E and H/L. The first
// named register of a pair is always the most significant byte of the 16 bit
// value. Note that the two encodings used by opcodes to name pairs are
// different conventions and are deliberately not unified: Address() takes the
// code of the high register (B, D or H) while DecodePair() takes the two bit
// field (0, 1 or 2) used by the pair-load, push and pop instruction groups.
//
// A note on the auxiliary carry flag: period documentation for the 8080
// describes the auxiliary carry as occupying bit 4 of the PSW but the
// reference implementation this package is modelled on binds its constant to
// bit 3. The constant wins here, because it is the constant that every code
// path actually reads. AuxCarry is bit 3 throughout this package and any
// future ALU code must follow that placement.
package registers
