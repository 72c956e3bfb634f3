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

package sym

import (
	"github.com/geo2a/isa-symexec/isa/value"
	"github.com/geo2a/isa-symexec/symerr"
)

// DefaultSimplifySteps is the iteration cap used when a caller doesn't
// override it via config.
const DefaultSimplifySteps = 1000

// Simplify iterates TryFoldConstant(TryReduce(t)) until it reaches a fixed
// point or maxSteps is exhausted, whichever comes first. maxSteps is a cost
// guard, not a correctness requirement: an early return simply leaves
// residual un-simplified structure in the term.
func Simplify(maxSteps int, t Sym) Sym {
	cur := t
	for i := 0; i < maxSteps; i++ {
		next := TryFoldConstant(TryReduce(cur))
		if Equal(next, cur) {
			return next
		}
		cur = next
	}
	return cur
}

// ToConcreteAddress simplifies t (capped at 100 steps, cheap relative to a
// full run) and, if the result is a usable address, returns it. An
// unsigned-word result is explicitly unimplemented - the source ISA never
// addresses memory with a word-typed expression - and a boolean result is
// a type error. A still-symbolic result is returned as-is for the engine
// to surface (e.g. as a SymbolicIC condition at fetch).
func ToConcreteAddress(t Sym) (addr int32, resolved bool, residual Sym) {
	s := Simplify(100, t)
	c, ok := s.(Const)
	if !ok {
		return 0, false, s
	}
	switch c.Value.Kind() {
	case value.Int32:
		return c.Value.Int32(), true, nil
	case value.Word16:
		symerr.Panic(symerr.TypeError, "word-typed concrete address is not implemented: %s", c.Value)
	case value.Bool:
		symerr.Panic(symerr.TypeError, "boolean is not a valid address: %s", c.Value)
	}
	return 0, false, s
}

// ToImmediate is ToConcreteAddress restricted to the 8-bit signed
// immediate range used by Set/AddI/SubI operands.
func ToImmediate(t Sym) (imm int8, resolved bool, residual Sym) {
	addr, ok, res := ToConcreteAddress(t)
	if !ok {
		return 0, false, res
	}
	if addr < -128 || addr > 127 {
		symerr.Panic(symerr.TypeError, "immediate out of 8-bit range: %d", addr)
	}
	return int8(addr), true, nil
}

// ToInstructionCode is ToConcreteAddress restricted to the instruction
// encoding's value range (the full uint16 encoding space).
func ToInstructionCode(t Sym) (code uint16, resolved bool, residual Sym) {
	addr, ok, res := ToConcreteAddress(t)
	if !ok {
		return 0, false, res
	}
	if addr < 0 || addr > 0xFFFF {
		symerr.Panic(symerr.TypeError, "instruction code out of range: %d", addr)
	}
	return uint16(addr), true, nil
}
