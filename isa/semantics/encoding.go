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

package semantics

import "github.com/geo2a/isa-symexec/isa/key"

// InstructionCode is the 16-bit wire encoding of an Instruction: opcode in
// the high 5 bits, register index in the next 2 bits, and a 9-bit
// operand field holding an address, an immediate, or a jump displacement
// depending on the opcode, matching the "opcode in high bits, operand in
// low bits" shape spec.md §6 requires without fixing a layout. 19 opcodes
// need 5 bits (4 would only reach 16); the operand field gives up a bit to
// make room.
type InstructionCode uint16

const (
	operandBits = 9
	operandMask = (1 << operandBits) - 1
	regBits     = 2
	regMask     = (1 << regBits) - 1
)

func operandOf(i Instruction) int32 {
	switch i.Op {
	case OpSet, OpAddI, OpSubI:
		return int32(i.Imm)
	case OpJump, OpJumpCt, OpJumpCf:
		return i.Disp
	default:
		return i.Addr
	}
}

// Encode packs i into its 16-bit wire form.
func Encode(i Instruction) InstructionCode {
	operand := uint16(operandOf(i)) & operandMask
	code := uint16(i.Op)<<(regBits+operandBits) | uint16(i.Reg)<<operandBits | operand
	return InstructionCode(code)
}

// Decode unpacks a wire code back into an Instruction, reporting false if
// the opcode field does not name a known opcode.
func Decode(code InstructionCode) (Instruction, bool) {
	c := uint16(code)
	op := Opcode(c >> (regBits + operandBits))
	reg := key.Register((c >> operandBits) & regMask)
	field := c & operandMask

	var signed int32
	if field&(1<<(operandBits-1)) != 0 {
		signed = int32(field) - (1 << operandBits)
	} else {
		signed = int32(field)
	}

	switch op {
	case OpHalt:
		return Halt(), true
	case OpLoad:
		return Load(reg, int32(field)), true
	case OpLoadMI:
		return LoadMI(reg, int32(field)), true
	case OpSet:
		return Set(reg, int8(signed)), true
	case OpStore:
		return Store(reg, int32(field)), true
	case OpAdd:
		return Add(reg, int32(field)), true
	case OpSub:
		return Sub(reg, int32(field)), true
	case OpMul:
		return Mul(reg, int32(field)), true
	case OpAddI:
		return AddI(reg, int8(signed)), true
	case OpSubI:
		return SubI(reg, int8(signed)), true
	case OpDiv:
		return Div(reg, int32(field)), true
	case OpMod:
		return Mod(reg, int32(field)), true
	case OpAbs:
		return Abs(reg), true
	case OpCmpEq:
		return CmpEq(reg, int32(field)), true
	case OpCmpGt:
		return CmpGt(reg, int32(field)), true
	case OpCmpLt:
		return CmpLt(reg, int32(field)), true
	case OpJump:
		return Jump(signed), true
	case OpJumpCt:
		return JumpCt(signed), true
	case OpJumpCf:
		return JumpCf(signed), true
	default:
		return Instruction{}, false
	}
}
