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

import (
	"github.com/geo2a/isa-symexec/isa/effect"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
	"github.com/geo2a/isa-symexec/symerr"
)

// noop is the empty effect used by the Jump* clauses' untaken arm.
func noop(effect.Effect) {}

// Run dispatches i against eff, the way the table in spec.md §4.D reads:
// one clause per opcode, each expressed purely in terms of Read, Write and
// IfS so it drives the concrete carrier and the forking carrier alike.
// LoadMI is the one exception - spec.md §9 notes the reference semantics'
// Selective-only variant is a no-op for it, preserved here as "skip
// silently unless the carrier advertises LoadMI capability".
func Run(i Instruction, eff effect.Effect) {
	switch i.Op {
	case OpHalt:
		eff.Write(key.F(key.Halted), sym.True)

	case OpLoad:
		eff.Write(key.Reg(i.Reg), eff.Read(key.Addr(i.Addr)))

	case OpLoadMI:
		runLoadMI(i, eff)

	case OpSet:
		eff.Write(key.Reg(i.Reg), sym.Const{Value: value.CInt32(int32(i.Imm))})

	case OpStore:
		eff.Write(key.Addr(i.Addr), eff.Read(key.Reg(i.Reg)))

	case OpAdd:
		runBinaryArith(eff, i.Reg, eff.Read(key.Addr(i.Addr)), addOverflows, sym.Add{})
	case OpSub:
		runBinaryArith(eff, i.Reg, eff.Read(key.Addr(i.Addr)), subOverflows, sym.Sub{})
	case OpMul:
		runBinaryArith(eff, i.Reg, eff.Read(key.Addr(i.Addr)), mulOverflows, sym.Mul{})
	case OpAddI:
		runBinaryArith(eff, i.Reg, sym.Const{Value: value.CInt32(int32(i.Imm))}, addOverflows, sym.Add{})
	case OpSubI:
		runBinaryArith(eff, i.Reg, sym.Const{Value: value.CInt32(int32(i.Imm))}, subOverflows, sym.Sub{})

	case OpDiv:
		runDivMod(eff, i.Reg, eff.Read(key.Addr(i.Addr)), divOverflows, func(x, y sym.Sym) sym.Sym { return sym.Div{X: x, Y: y} })
	case OpMod:
		runDivMod(eff, i.Reg, eff.Read(key.Addr(i.Addr)), divOverflows, func(x, y sym.Sym) sym.Sym { return sym.Mod{X: x, Y: y} })

	case OpAbs:
		x := eff.Read(key.Reg(i.Reg))
		eff.Write(key.F(key.Overflow), absOverflows(x))
		eff.Write(key.Reg(i.Reg), sym.Abs{X: x})

	case OpCmpEq:
		eff.Write(key.F(key.Condition), sym.Eq{X: eff.Read(key.Reg(i.Reg)), Y: eff.Read(key.Addr(i.Addr))})
	case OpCmpGt:
		eff.Write(key.F(key.Condition), sym.Gt{X: eff.Read(key.Reg(i.Reg)), Y: eff.Read(key.Addr(i.Addr))})
	case OpCmpLt:
		eff.Write(key.F(key.Condition), sym.Lt{X: eff.Read(key.Reg(i.Reg)), Y: eff.Read(key.Addr(i.Addr))})

	case OpJump:
		eff.Write(key.IC(), sym.Add{X: eff.Read(key.IC()), Y: sym.Const{Value: value.CInt32(i.Disp)}})

	case OpJumpCt:
		disp := i.Disp
		eff.IfS(eff.Read(key.F(key.Condition)), func(e effect.Effect) {
			e.Write(key.IC(), sym.Add{X: e.Read(key.IC()), Y: sym.Const{Value: value.CInt32(disp)}})
		}, noop)

	case OpJumpCf:
		disp := i.Disp
		eff.IfS(eff.Read(key.F(key.Condition)), noop, func(e effect.Effect) {
			e.Write(key.IC(), sym.Add{X: e.Read(key.IC()), Y: sym.Const{Value: value.CInt32(disp)}})
		})

	default:
		symerr.Panic(symerr.UnknownOpcode, "unknown opcode: %v", i.Op)
	}
}

// runLoadMI is the Monad-capability clause: read the pointer at Addr(p),
// try to concretize it to an address, and read through it. A carrier that
// does not advertise LoadMI capability skips the instruction entirely,
// matching the reference semantics' Selective-only no-op (spec.md §9).
func runLoadMI(i Instruction, eff effect.Effect) {
	capable, ok := eff.(effect.LoadMICapable)
	if !ok || !capable.AllowsLoadMI() {
		return
	}
	pointer := eff.Read(key.Addr(i.Addr))
	addr, resolved, _ := sym.ToConcreteAddress(pointer)
	if !resolved {
		symerr.Panic(symerr.InvalidIndirectAddress, "LoadMI: pointer is not concrete: %s", pointer)
	}
	eff.Write(key.Reg(i.Reg), eff.Read(key.Addr(addr)))
}

func runBinaryArith(eff effect.Effect, r key.Register, operand sym.Sym, overflows func(x, y sym.Sym) sym.Sym, op sym.Sym) {
	x := eff.Read(key.Reg(r))
	eff.Write(key.F(key.Overflow), overflows(x, operand))
	eff.Write(key.Reg(r), applyBinary(op, x, operand))
}

func runDivMod(eff effect.Effect, r key.Register, divisor sym.Sym, overflows func(x, y sym.Sym) sym.Sym, op func(x, y sym.Sym) sym.Sym) {
	x := eff.Read(key.Reg(r))
	eff.Write(key.F(key.Overflow), overflows(x, divisor))
	eff.Write(key.F(key.DivisionByZero), sym.Eq{X: divisor, Y: sym.Zero})
	eff.Write(key.Reg(r), op(x, divisor))
}

// applyBinary rebuilds a binary Sym node of op's shape over x and y: op is
// passed as a zero-valued instance purely to dispatch on its type, the way
// a single table-driven clause needs one function per opcode rather than a
// closure per call site.
func applyBinary(op sym.Sym, x, y sym.Sym) sym.Sym {
	switch op.(type) {
	case sym.Add:
		return sym.Add{X: x, Y: y}
	case sym.Sub:
		return sym.Sub{X: x, Y: y}
	case sym.Mul:
		return sym.Mul{X: x, Y: y}
	default:
		symerr.Panic(symerr.TypeError, "applyBinary: unsupported op node %T", op)
		return nil
	}
}
