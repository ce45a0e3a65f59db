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

// Package assert contains assertion helpers for the registers package,
// useful for testing code that manipulates the register file and condition
// flags.
package assert

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
)

// EquateRegister tests that the named register in the file holds the
// expected value.
func EquateRegister(t *testing.T, f *registers.File, reg registers.Register, expected int) {
	t.Helper()

	v, err := f.Value(reg)
	if err != nil {
		t.Fatalf("assert register failed (%v)", err)
	}
	if int(v) != expected {
		t.Errorf("assert register %s failed (%#02x - wanted %#02x)", reg, v, expected)
	}
}

// EquatePair tests that the pair in the file holds the expected 16 bit
// value.
func EquatePair(t *testing.T, f *registers.File, pair registers.RegisterPair, expected int) {
	t.Helper()

	v := f.PairValue(pair)
	if int(v) != expected {
		t.Errorf("assert pair %s failed (%#04x - wanted %#04x)", pair, v, expected)
	}
}

// EquateFlags tests the rendered state of the flag register against an 8
// character string in the same form produced by the String() function. For
// example, a freshly constructed flag register renders as:
//
//	sz--ap-c
//
// Upper-case means the flag is set; the dash positions are ignored.
func EquateFlags(t *testing.T, fl *registers.Flags, expected string) {
	t.Helper()

	if len(expected) != 8 {
		t.Fatalf("assert flags failed (expected string must be 8 chars)")
	}

	s := fl.String()
	for i := range s {
		if expected[i] == '-' {
			continue
		}
		if s[i] != expected[i] {
			t.Errorf("assert flags failed (%s - wanted %s)", s, expected)
			return
		}
	}
}
