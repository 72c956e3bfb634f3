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

// Package actl implements the restricted universal-branching-time logic
// checker described in spec.md §4.H: a formula AST over atomic predicates
// on machine Keys and symbolic terms, negated and lowered to a set of
// per-node SMT problems, whose results decide a Proved/Falsifiable verdict.
package actl

import (
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/sym"
)

// Atom is a boolean expression over machine Keys and symbolic variables,
// evaluable at any Context via evalAtom (eval.go).
type Atom interface {
	atomNode()
}

// KeyAtom reads a machine Key's bound value and treats it as boolean;
// absent is false.
type KeyAtom struct{ Key key.Key }

// SymAtom is a literal symbolic term, asserted directly.
type SymAtom struct{ Sym sym.Sym }

// NotAtom negates an Atom.
type NotAtom struct{ X Atom }

// AndAtom, OrAtom, EqAtom, GtAtom and LtAtom are the binary atom
// combinators spec.md §3 lists.
type (
	AndAtom struct{ X, Y Atom }
	OrAtom  struct{ X, Y Atom }
	EqAtom  struct{ X, Y Atom }
	GtAtom  struct{ X, Y Atom }
	LtAtom  struct{ X, Y Atom }
)

func (KeyAtom) atomNode() {}
func (SymAtom) atomNode() {}
func (NotAtom) atomNode() {}
func (AndAtom) atomNode() {}
func (OrAtom) atomNode()  {}
func (EqAtom) atomNode()  {}
func (GtAtom) atomNode()  {}
func (LtAtom) atomNode()  {}

// ACTL is the formula AST: AllG/AllF over an atom, or a conjunction of two
// sub-formulas.
type ACTL interface {
	actlNode()
}

// AllG holds when atom holds at every node along every path (spec.md
// §4.H: one task per node in the tree).
type AllG struct{ Atom Atom }

// AllF holds when atom eventually holds along every path - checked only
// at leaves, the point by which "eventually" must have happened within
// the bounded run.
type AllF struct{ Atom Atom }

// And is the conjunction of two ACTL formulas.
type And struct{ P, Q ACTL }

func (AllG) actlNode() {}
func (AllF) actlNode() {}
func (And) actlNode()  {}
