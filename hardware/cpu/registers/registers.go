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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// Register is the symbolic code of a general purpose register. The codes are
// the same three bit values used by the opcode encoding.
type Register int

// The register codes. M is the memory pseudo-register: an opcode that names
// M wants the byte at the address held in the H/L pair. There is no storage
// cell for M in this package and the execution loop must special-case it.
const (
	B Register = 0
	C Register = 1
	D Register = 2
	E Register = 3
	H Register = 4
	L Register = 5
	M Register = 6
	A Register = 7
)

// numRegisters is the size of the backing array. The M slot exists but is
// never read or written.
const numRegisters = 8

var registerNames = [numRegisters]string{"B", "C", "D", "E", "H", "L", "M", "A"}

func (r Register) String() string {
	if r < 0 || int(r) >= numRegisters {
		return fmt.Sprintf("Register(%d)", int(r))
	}
	return registerNames[r]
}

// storable is true if the code names one of the seven storage cells. M is
// deliberately excluded.
func (r Register) storable() bool {
	return r >= B && r <= A && r != M
}

// RegisterPair names the two registers that combine into one of the 8080's
// 16 bit values. Hi is always the most significant byte of the pair. A
// RegisterPair is a plain immutable descriptor; it holds no state of its own.
type RegisterPair struct {
	Hi Register
	Lo Register
}

func (p RegisterPair) String() string {
	return fmt.Sprintf("%s%s", p.Hi, p.Lo)
}

// The three register pairs.
var (
	BC = RegisterPair{Hi: B, Lo: C}
	DE = RegisterPair{Hi: D, Lo: E}
	HL = RegisterPair{Hi: H, Lo: L}
)

// pairEncodings maps the two bit pair-select field used by the pair-load,
// push and pop instruction groups onto the pair descriptors. Note that this
// is a different convention to the register codes accepted by Address().
var pairEncodings = [3]RegisterPair{BC, DE, HL}

// File is the general purpose register file of the 8080.
//
// Like the Flags type, a File is owned by exactly one CPU instance and is
// mutated only by the execution loop. No locking.
type File struct {
	regs [numRegisters]uint8
}

// NewFile is the preferred method of initialisation for the File type. All
// registers are initialised to zero.
func NewFile() *File {
	return &File{}
}

func (f *File) String() string {
	s := strings.Builder{}
	for _, r := range [...]Register{B, C, D, E, H, L, A} {
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%02x", r, f.regs[r]))
	}
	return s.String()
}

// registerKey converts an indexed-access key to a Register. keys must be
// integers; anything else is a TypeMismatch. codes outside the seven storage
// cells, including M, are InvalidRegister.
func registerKey(key interface{}) (Register, error) {
	var r Register

	switch k := key.(type) {
	case Register:
		r = k
	case int:
		r = Register(k)
	default:
		return 0, curated.Errorf(TypeMismatch, key)
	}

	if !r.storable() {
		return 0, curated.Errorf(InvalidRegister, r)
	}

	return r, nil
}

// Value returns the contents of the keyed register. The key can be a
// Register or a plain int.
func (f *File) Value(key interface{}) (uint8, error) {
	r, err := registerKey(key)
	if err != nil {
		return 0, err
	}
	return f.regs[r], nil
}

// SetValue stores a byte in the keyed register. The key can be a Register or
// a plain int.
func (f *File) SetValue(key interface{}, value uint8) error {
	r, err := registerKey(key)
	if err != nil {
		return err
	}
	f.regs[r] = value
	return nil
}

// Address returns the 16 bit address held in the pair selected by the given
// high-register code. The first register of the pair is the most significant
// byte of the address.
//
// Only the codes B, D and H select a pair; anything else is an error of the
// InvalidPair kind. This is the entry point the execution loop uses to
// resolve memory operands - the M pseudo-register always resolves through
// Address(H).
func (f *File) Address(reg Register) (uint16, error) {
	var p RegisterPair

	switch reg {
	case B:
		p = BC
	case D:
		p = DE
	case H:
		p = HL
	default:
		return 0, curated.Errorf(InvalidPair, reg)
	}

	return f.PairValue(p), nil
}

// PairValue returns the 16 bit value held in the given pair, hi byte first.
func (f *File) PairValue(pair RegisterPair) uint16 {
	return uint16(f.regs[pair.Hi])<<8 | uint16(f.regs[pair.Lo])
}

// SetPairValue stores a 16 bit value in the given pair. The value is masked
// to 16 bits and split hi=value>>8, lo=value&0xff.
func (f *File) SetPairValue(pair RegisterPair, value uint16) {
	f.regs[pair.Hi] = uint8(value >> 8)
	f.regs[pair.Lo] = uint8(value & 0x00ff)
}

// DecodeRegister returns the register named by the three bit field of the
// opcode at the given offset. The field values map onto the register codes
// directly:
//
//	000=B 001=C 010=D 011=E 100=H 101=L 110=M 111=A
//
// No validation of opcode or offset is performed. An offset beyond the top
// of an eight bit opcode simply yields whatever bits are present, which is
// zero. The 110 field is the M pseudo-register and must be special-cased by
// the caller.
func DecodeRegister(opcode uint8, offset uint) Register {
	return Register((opcode >> offset) & 0x07)
}

// DecodePair returns the pair descriptor named by the two bit pair-select
// field used by the pair-load, push and pop instruction groups: 0=BC 1=DE
// 2=HL.
//
// The fourth encoding names the stack pointer (or the PSW in the push/pop
// group), neither of which lives in this register file, so a selector of 3
// is an error of the InvalidPair kind.
func DecodePair(selector uint8) (RegisterPair, error) {
	if int(selector) >= len(pairEncodings) {
		return RegisterPair{}, curated.Errorf(InvalidPair, selector)
	}
	return pairEncodings[selector], nil
}
