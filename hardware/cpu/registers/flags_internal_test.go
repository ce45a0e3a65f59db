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

import (
	"testing"
)

// the reserved bits of the flag word are not visible through the public
// surface so their invariants are tested from inside the package.

func TestFlagsReservedBits(t *testing.T) {
	fl := NewFlags(func(val uint8) bool { return val&0x80 == 0x80 })

	// bit 1 is one at power-on, everything else is zero
	if fl.value != resetValue {
		t.Errorf("unexpected power-on flag word (%#02x - wanted %#02x)", fl.value, resetValue)
	}

	// setting and clearing every condition flag never disturbs the
	// reserved bits
	for _, f := range flagOrder {
		if err := fl.Set(f); err != nil {
			t.Fatalf("unexpected error (%v)", err)
		}
	}
	if fl.value&0b00110010 != 0b00000010 {
		t.Errorf("reserved bits disturbed by Set() (%#02x)", fl.value)
	}

	fl.ClearAll()
	if fl.value != resetValue {
		t.Errorf("unexpected flag word after ClearAll() (%#02x - wanted %#02x)", fl.value, resetValue)
	}
}
