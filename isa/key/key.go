// This file is part of isa-symexec.
//
// isa-symexec is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// isa-symexec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with isa-symexec.  If not, see <https://www.gnu.org/licenses/>.

// Package key identifies locations in machine state: registers, data and
// program memory addresses, the instruction counter and register, and the
// status flags. Key is comparable so it can be used directly as a map key
// in a Context's bindings.
package key

import "fmt"

// Kind tags which variant a Key holds.
type Kind int

const (
	KindReg Kind = iota
	KindAddr
	KindProg
	KindIC
	KindIR
	KindFlag
)

// Register names the fixed register file. Four general-purpose registers
// is enough to express every scenario in the reference programs without
// forcing every test fixture to enumerate an oversized file.
type Register int

const (
	R0 Register = iota
	R1
	R2
	R3
)

func (r Register) String() string {
	switch r {
	case R0:
		return "r0"
	case R1:
		return "r1"
	case R2:
		return "r2"
	case R3:
		return "r3"
	default:
		return fmt.Sprintf("r?%d", int(r))
	}
}

// Flag names a status bit.
type Flag int

const (
	Halted Flag = iota
	Overflow
	DivisionByZero
	Condition
)

func (f Flag) String() string {
	switch f {
	case Halted:
		return "halted"
	case Overflow:
		return "overflow"
	case DivisionByZero:
		return "divisionByZero"
	case Condition:
		return "condition"
	default:
		return fmt.Sprintf("flag?%d", int(f))
	}
}

// Key is the comparable sum type identifying a store location.
type Key struct {
	kind Kind
	reg  Register
	addr int32
	flag Flag
}

// Reg identifies a register in the fixed register file.
func Reg(r Register) Key { return Key{kind: KindReg, reg: r} }

// Addr identifies a concrete data-memory address.
func Addr(a int32) Key { return Key{kind: KindAddr, addr: a} }

// Prog identifies a concrete program-memory slot.
func Prog(a int32) Key { return Key{kind: KindProg, addr: a} }

// IC identifies the instruction counter.
func IC() Key { return Key{kind: KindIC} }

// IR identifies the instruction register.
func IR() Key { return Key{kind: KindIR} }

// F identifies a status flag.
func F(flag Flag) Key { return Key{kind: KindFlag, flag: flag} }

// Kind reports which variant k is.
func (k Key) Kind() Kind { return k.kind }

// Register returns k's register. Only meaningful if Kind() == KindReg.
func (k Key) Register() Register { return k.reg }

// Address returns k's address. Only meaningful if Kind() is KindAddr or
// KindProg.
func (k Key) Address() int32 { return k.addr }

// FlagName returns k's flag. Only meaningful if Kind() == KindFlag.
func (k Key) FlagName() Flag { return k.flag }

func (k Key) String() string {
	switch k.kind {
	case KindReg:
		return k.reg.String()
	case KindAddr:
		return fmt.Sprintf("addr[%d]", k.addr)
	case KindProg:
		return fmt.Sprintf("prog[%d]", k.addr)
	case KindIC:
		return "ic"
	case KindIR:
		return "ir"
	case KindFlag:
		return fmt.Sprintf("flag(%s)", k.flag)
	default:
		return "key?"
	}
}
