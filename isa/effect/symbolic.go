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

package effect

import (
	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/sym"
)

// Symbolic drives a Context that may fork. Reads and writes before the
// first IfS call (if any) mutate Ctx directly, matching the concrete
// carrier's sequential style; a call to IfS whose guard cannot be fully
// concretized clones Ctx into two children, extends each child's path
// condition with the guard (or its negation), and runs then/els against
// the respective clone. After the semantic clause returns, Forked reports
// which shape the result took.
type Symbolic struct {
	Ctx *context.Context

	forked      bool
	left, right *Symbolic
}

// NewSymbolic wraps ctx in a Symbolic carrier.
func NewSymbolic(ctx *context.Context) *Symbolic {
	return &Symbolic{Ctx: ctx}
}

func (s *Symbolic) Read(k key.Key) sym.Sym { return s.Ctx.Read(k) }

func (s *Symbolic) Write(k key.Key, v sym.Sym) { s.Ctx.Write(k, v) }

// IfS concretizes cond when possible, in which case execution advances
// along exactly one branch without forking (a Trunk in the state tree).
// When cond cannot be concretized, the selective boolean defaults to
// "could be true" for both arms: both branches are taken, each recording
// the guard in its path condition for the solver to judge feasible or not
// later. This is the forker's over-approximation and must not be narrowed
// to "skip the branch that looks unreachable" - narrowing it would drop
// paths the solver should have been allowed to rule on.
func (s *Symbolic) IfS(cond sym.Sym, then, els func(Effect)) {
	if v, ok := sym.GetValue(cond); ok {
		if v.Bool() {
			then(s)
		} else {
			els(s)
		}
		return
	}

	left := s.Ctx.Clone()
	right := s.Ctx.Clone()
	left.PathCondition = sym.And{X: left.PathCondition, Y: cond}
	right.PathCondition = sym.And{X: right.PathCondition, Y: sym.Not{X: cond}}

	leftEff := &Symbolic{Ctx: left}
	rightEff := &Symbolic{Ctx: right}
	then(leftEff)
	els(rightEff)

	s.forked = true
	s.left, s.right = leftEff, rightEff
}

// AllowsLoadMI is always true: this module's symbolic carrier is the full
// Monad-capable backend, never the Selective-only restriction the
// reference semantics also define.
func (s *Symbolic) AllowsLoadMI() bool { return true }

// Forked reports whether the instruction run against s produced a
// two-way split, and if so the two resulting Contexts.
func (s *Symbolic) Forked() (left, right *context.Context, ok bool) {
	if !s.forked {
		return nil, nil, false
	}
	return s.left.Ctx, s.right.Ctx, true
}

// Result returns the single resulting Context for an instruction that did
// not fork.
func (s *Symbolic) Result() *context.Context {
	return s.Ctx
}
