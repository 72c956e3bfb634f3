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

// Package semantics defines the instruction set - one opcode clause per
// row of the table in spec.md §4.D - written once against effect.Effect
// and shared verbatim by the concrete and symbolic carriers. It also owns
// the Instruction discriminated union and its bit-level encode/decode,
// which spec.md §6 leaves to the (out-of-scope) assembly front end beyond
// requiring that encode and decode round-trip.
package semantics

import (
	"fmt"

	"github.com/geo2a/isa-symexec/isa/key"
)

// Opcode tags which instruction clause a value represents.
type Opcode int

const (
	OpHalt Opcode = iota
	OpLoad
	OpLoadMI
	OpSet
	OpStore
	OpAdd
	OpSub
	OpMul
	OpAddI
	OpSubI
	OpDiv
	OpMod
	OpAbs
	OpCmpEq
	OpCmpGt
	OpCmpLt
	OpJump
	OpJumpCt
	OpJumpCf
)

func (o Opcode) String() string {
	switch o {
	case OpHalt:
		return "Halt"
	case OpLoad:
		return "Load"
	case OpLoadMI:
		return "LoadMI"
	case OpSet:
		return "Set"
	case OpStore:
		return "Store"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpAddI:
		return "AddI"
	case OpSubI:
		return "SubI"
	case OpDiv:
		return "Div"
	case OpMod:
		return "Mod"
	case OpAbs:
		return "Abs"
	case OpCmpEq:
		return "CmpEq"
	case OpCmpGt:
		return "CmpGt"
	case OpCmpLt:
		return "CmpLt"
	case OpJump:
		return "Jump"
	case OpJumpCt:
		return "JumpCt"
	case OpJumpCf:
		return "JumpCf"
	default:
		return fmt.Sprintf("opcode?%d", int(o))
	}
}

// Instruction is the full discriminated union from spec.md §4.D. Not
// every opcode uses every field; Reg is the destination/source register,
// Addr is the operand data-memory address, Imm is an immediate operand,
// and Disp is a jump displacement.
type Instruction struct {
	Op   Opcode
	Reg  key.Register
	Addr int32
	Imm  int8
	Disp int32
}

func Halt() Instruction                         { return Instruction{Op: OpHalt} }
func Load(r key.Register, a int32) Instruction  { return Instruction{Op: OpLoad, Reg: r, Addr: a} }
func LoadMI(r key.Register, p int32) Instruction { return Instruction{Op: OpLoadMI, Reg: r, Addr: p} }
func Set(r key.Register, imm int8) Instruction  { return Instruction{Op: OpSet, Reg: r, Imm: imm} }
func Store(r key.Register, a int32) Instruction { return Instruction{Op: OpStore, Reg: r, Addr: a} }
func Add(r key.Register, a int32) Instruction   { return Instruction{Op: OpAdd, Reg: r, Addr: a} }
func Sub(r key.Register, a int32) Instruction   { return Instruction{Op: OpSub, Reg: r, Addr: a} }
func Mul(r key.Register, a int32) Instruction   { return Instruction{Op: OpMul, Reg: r, Addr: a} }
func AddI(r key.Register, imm int8) Instruction { return Instruction{Op: OpAddI, Reg: r, Imm: imm} }
func SubI(r key.Register, imm int8) Instruction { return Instruction{Op: OpSubI, Reg: r, Imm: imm} }
func Div(r key.Register, a int32) Instruction   { return Instruction{Op: OpDiv, Reg: r, Addr: a} }
func Mod(r key.Register, a int32) Instruction   { return Instruction{Op: OpMod, Reg: r, Addr: a} }
func Abs(r key.Register) Instruction            { return Instruction{Op: OpAbs, Reg: r} }
func CmpEq(r key.Register, a int32) Instruction { return Instruction{Op: OpCmpEq, Reg: r, Addr: a} }
func CmpGt(r key.Register, a int32) Instruction { return Instruction{Op: OpCmpGt, Reg: r, Addr: a} }
func CmpLt(r key.Register, a int32) Instruction { return Instruction{Op: OpCmpLt, Reg: r, Addr: a} }
func Jump(disp int32) Instruction               { return Instruction{Op: OpJump, Disp: disp} }
func JumpCt(disp int32) Instruction             { return Instruction{Op: OpJumpCt, Disp: disp} }
func JumpCf(disp int32) Instruction             { return Instruction{Op: OpJumpCf, Disp: disp} }

func (i Instruction) String() string {
	switch i.Op {
	case OpHalt:
		return "halt"
	case OpAbs:
		return fmt.Sprintf("abs %s", i.Reg)
	case OpSet:
		return fmt.Sprintf("set %s, #%d", i.Reg, i.Imm)
	case OpAddI:
		return fmt.Sprintf("addi %s, #%d", i.Reg, i.Imm)
	case OpSubI:
		return fmt.Sprintf("subi %s, #%d", i.Reg, i.Imm)
	case OpJump:
		return fmt.Sprintf("jump %+d", i.Disp)
	case OpJumpCt:
		return fmt.Sprintf("jumpct %+d", i.Disp)
	case OpJumpCf:
		return fmt.Sprintf("jumpcf %+d", i.Disp)
	default:
		return fmt.Sprintf("%s %s, [%d]", i.Op, i.Reg, i.Addr)
	}
}
