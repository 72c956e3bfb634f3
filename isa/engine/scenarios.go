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

package engine

import (
	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/semantics"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
)

// The assembler is out of scope (spec.md §1, §6), so the reference
// programs spec.md §8 requires are built directly as semantics.Instruction
// sequences here, the way the teacher's own functional-test fixtures build
// CPU test programs directly in Go rather than assembling them from text.

func loadProgram(ctx *context.Context, prog []semantics.Instruction) {
	for i, instr := range prog {
		code := sym.Const{Value: value.CInt32(int32(semantics.Encode(instr)))}
		ctx.Write(key.Prog(int32(i)), code)
	}
	ctx.Write(key.IC(), sym.Zero)
}

func boundedBy(ctx *context.Context, v sym.Sym, lo, hi int32) {
	ctx.AddConstraint("lower", sym.Not{X: sym.Lt{X: v, Y: sym.Const{Value: value.CInt32(lo)}}})
	ctx.AddConstraint("upper", sym.Not{X: sym.Gt{X: v, Y: sym.Const{Value: value.CInt32(hi)}}})
}

// ScenarioAddition is spec.md §8's "Addition" reference program:
// Set r0, 0; Add r0, @x; Halt, with Addr(x) = Var "x" and -10 <= x <= 10.
// The engine produces a single leaf whose Reg r0 simplifies to Var "x",
// and AllG (Reg r0 = Var "x") Proves.
func ScenarioAddition() *context.Context {
	ctx := context.New()
	loadProgram(ctx, []semantics.Instruction{
		semantics.Set(key.R0, 0),
		semantics.Add(key.R0, 0),
		semantics.Halt(),
	})
	x := sym.Var{Name: "x"}
	ctx.Write(key.Addr(0), x)
	ctx.Declare("x", x)
	boundedBy(ctx, x, -10, 10)
	return ctx
}

// ScenarioSumToN is spec.md §8's "Sum 1..n": a loop summing 1..n, with
// n = Var "n" and 1 <= n <= 5. Feasible paths fork once per loop
// iteration on the loop-exit test (CmpGt r1, @n); the solver marks the
// infeasible sides Unsatisfiable, leaving one satisfiable halted leaf per
// value of n in range.
func ScenarioSumToN() *context.Context {
	ctx := context.New()
	loadProgram(ctx, []semantics.Instruction{
		semantics.Set(key.R0, 0),   // 0: sum = 0
		semantics.Set(key.R1, 1),   // 1: i = 1
		semantics.CmpGt(key.R1, 0), // 2: condition = i > n      (Addr(0) = n)
		semantics.JumpCt(4),        // 3: if condition, exit to Halt at 8
		semantics.Store(key.R1, 1), // 4: tmp(Addr(1)) = i
		semantics.Add(key.R0, 1),   // 5: sum += tmp
		semantics.AddI(key.R1, 1),  // 6: i += 1
		semantics.Jump(-6),         // 7: loop back to 2
		semantics.Halt(),           // 8
	})
	n := sym.Var{Name: "n"}
	ctx.Write(key.Addr(0), n)
	ctx.Declare("n", n)
	boundedBy(ctx, n, 1, 5)
	return ctx
}

// ScenarioMotorControl is spec.md §8's "Motor control": a straight-line
// program (r0 = 100; r0 *= speed; Halt) with overflow potential on the
// multiplication. It has no loop and no branch. AllG (F Overflow =
// false) is Falsifiable for input ranges admitting overflow; the
// counterexample's operand pair multiplies past Int32's range.
func ScenarioMotorControl() *context.Context {
	ctx := context.New()
	loadProgram(ctx, []semantics.Instruction{
		semantics.Set(key.R0, 100),
		semantics.Mul(key.R0, 0),
		semantics.Halt(),
	})
	speed := sym.Var{Name: "speed"}
	ctx.Write(key.Addr(0), speed)
	ctx.Declare("speed", speed)
	boundedBy(ctx, speed, -2_000_000_00, 2_000_000_00)
	return ctx
}

// ScenarioLoadMIUnconstrained is spec.md §8's "LoadMI error" first
// variant: LoadMI r0, @p with Addr(p) = Var "p" and no pointer
// constraint. Execution terminates fatally with InvalidIndirectAddress.
func ScenarioLoadMIUnconstrained() *context.Context {
	ctx := context.New()
	loadProgram(ctx, []semantics.Instruction{
		semantics.LoadMI(key.R0, 0),
		semantics.Halt(),
	})
	p := sym.Var{Name: "p"}
	ctx.Write(key.Addr(0), p)
	ctx.Declare("p", p)
	return ctx
}

// ScenarioLoadMIConstrained is the "LoadMI error" second variant: the same
// program with the pointer cell Addr(0) overwritten by the concrete value
// 42 (and Addr(42) = 7), so the pointer resolves and LoadMI loads
// Addr(42). No constraint p = 42 is added; a pointer that stays symbolic
// is not resolved through the solver.
func ScenarioLoadMIConstrained() *context.Context {
	ctx := ScenarioLoadMIUnconstrained()
	ctx.Write(key.Addr(0), sym.Const{Value: value.CInt32(42)})
	ctx.Write(key.Addr(42), sym.Const{Value: value.CInt32(7)})
	return ctx
}

// ScenarioDivisionByZero is spec.md §8's "Division-by-zero prune":
// Div r0, @y with Var "y" unconstrained. F DivisionByZero is reachable;
// AllG (F DivisionByZero = false) is Falsifiable with model y = 0.
func ScenarioDivisionByZero() *context.Context {
	ctx := context.New()
	loadProgram(ctx, []semantics.Instruction{
		semantics.Set(key.R0, 10),
		semantics.Div(key.R0, 0),
		semantics.Halt(),
	})
	y := sym.Var{Name: "y"}
	ctx.Write(key.Addr(0), y)
	ctx.Declare("y", y)
	return ctx
}
