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
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// Flag is the bit position of a condition flag in the flag word.
type Flag int

// The five addressable condition flags. Bit 1 of the flag word is always one
// and bits 4 and 5 are always zero; none of the three is addressable. See the
// package documentation for why AuxCarry is bit 3 and not bit 4.
const (
	Carry    Flag = 0
	Parity   Flag = 2
	AuxCarry Flag = 3
	Zero     Flag = 6
	Sign     Flag = 7
)

// NumFlags is the number of addressable condition flags.
const NumFlags = 5

// flagOrder is the order in which the condition flags are presented by the
// Bits() function.
var flagOrder = [NumFlags]Flag{Carry, Parity, AuxCarry, Zero, Sign}

// addressable is true if the flag is one of the five condition flags.
func (fl Flag) addressable() bool {
	switch fl {
	case Carry, Parity, AuxCarry, Zero, Sign:
		return true
	}
	return false
}

// NegativeFunc is the negativity predicate consumed by SetSign(). The
// arithmetic helpers that define it live with the execution loop, not in this
// package. Implementations must return true if and only if bit 7 of the value
// is set, interpreting the byte as two's-complement.
type NegativeFunc func(val uint8) bool

// resetValue is the flag word at power-on. Bit 1 is always one.
const resetValue = 0x02

// Flags is the condition flag register of the 8080.
//
// Each CPU instance owns exactly one Flags value for the lifetime of the
// emulation and all mutation is funnelled through the execution loop. There
// is no locking; a host running more than one emulated CPU must give each
// its own instance.
type Flags struct {
	value    uint8
	negative NegativeFunc
}

// NewFlags is the preferred method of initialisation for the Flags type. The
// negative argument must not be nil; it is called by SetSign().
func NewFlags(negative NegativeFunc) *Flags {
	return &Flags{
		value:    resetValue,
		negative: negative,
	}
}

func (f *Flags) String() string {
	s := strings.Builder{}

	// most significant bit first. dashes mark the bits that are not
	// condition flags
	if f.isSet(Sign) {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if f.isSet(Zero) {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}

	s.WriteRune('-')
	s.WriteRune('-')

	if f.isSet(AuxCarry) {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}
	if f.isSet(Parity) {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}

	s.WriteRune('-')

	if f.isSet(Carry) {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

func (f *Flags) isSet(fl Flag) bool {
	return f.value&(1<<uint(fl)) != 0
}

func (f *Flags) set(fl Flag) {
	f.value |= 1 << uint(fl)
}

func (f *Flags) clear(fl Flag) {
	f.value &^= 1 << uint(fl)
}

// Set the named condition flag to one. Returns an error of the InvalidFlag
// kind if the bit is not a condition flag.
func (f *Flags) Set(fl Flag) error {
	if !fl.addressable() {
		return curated.Errorf(InvalidFlag, int(fl))
	}
	f.set(fl)
	return nil
}

// Clear the named condition flag to zero. Returns an error of the InvalidFlag
// kind if the bit is not a condition flag.
func (f *Flags) Clear(fl Flag) error {
	if !fl.addressable() {
		return curated.Errorf(InvalidFlag, int(fl))
	}
	f.clear(fl)
	return nil
}

// flagKey converts an indexed-access key to a Flag. keys must be integers;
// anything else is a TypeMismatch. bits outside the five condition flags are
// OutOfRangeFlag.
func flagKey(key interface{}) (Flag, error) {
	var fl Flag

	switch k := key.(type) {
	case Flag:
		fl = k
	case int:
		fl = Flag(k)
	default:
		return 0, curated.Errorf(TypeMismatch, key)
	}

	if !fl.addressable() {
		return 0, curated.Errorf(OutOfRangeFlag, int(fl))
	}

	return fl, nil
}

// Bit returns the value (0 or 1) of the condition flag at the keyed bit
// position. The key can be a Flag or a plain int.
//
// Note that unlike Set() and Clear(), an unaddressable bit is reported with
// the OutOfRangeFlag kind. The two entry points have different call sites
// and keep their own error kinds.
func (f *Flags) Bit(key interface{}) (uint8, error) {
	fl, err := flagKey(key)
	if err != nil {
		return 0, err
	}
	return (f.value >> uint(fl)) & 0x01, nil
}

// SetBit writes the value (0 or 1) of the condition flag at the keyed bit
// position. The key can be a Flag or a plain int. Values other than 0 or 1
// are an error of the InvalidValue kind.
func (f *Flags) SetBit(key interface{}, value uint8) error {
	fl, err := flagKey(key)
	if err != nil {
		return err
	}

	switch value {
	case 0:
		f.clear(fl)
	case 1:
		f.set(fl)
	default:
		return curated.Errorf(InvalidValue, value)
	}

	return nil
}

// ClearAll clears the five condition flags. The non-addressable bits of the
// flag word are left untouched.
func (f *Flags) ClearAll() {
	for _, fl := range flagOrder {
		f.clear(fl)
	}
}

// Bits returns the value of every condition flag in the fixed order Carry,
// Parity, AuxCarry, Zero, Sign. A fresh array is returned on every call so
// iteration can be restarted at will. Non-addressable bits are never
// included.
func (f *Flags) Bits() [NumFlags]uint8 {
	var b [NumFlags]uint8
	for i, fl := range flagOrder {
		b[i] = (f.value >> uint(fl)) & 0x01
	}
	return b
}

// CalculateParity derives the Parity flag from a result byte. Parity is set
// if the number of one bits is even and cleared otherwise.
func (f *Flags) CalculateParity(data uint8) {
	count := 0
	for i := 0; i < 8; i++ {
		if data&0x01 == 0x01 {
			count++
		}
		data >>= 1
	}

	if count%2 == 0 {
		f.set(Parity)
	} else {
		f.clear(Parity)
	}
}

// SetZero derives the Zero flag from a result byte. Zero is set if the value
// is zero and cleared otherwise.
func (f *Flags) SetZero(data uint8) {
	if data == 0 {
		f.set(Zero)
	} else {
		f.clear(Zero)
	}
}

// SetSign derives the Sign flag from a result byte. The flag is cleared and
// then set if the negativity predicate supplied to NewFlags() reports the
// value as negative.
func (f *Flags) SetSign(val uint8) {
	f.clear(Sign)
	if f.negative(val) {
		f.set(Sign)
	}
}
