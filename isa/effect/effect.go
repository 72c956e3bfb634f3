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

// Package effect defines the read/write/branch abstraction that every
// instruction semantic clause is written against, and its two
// instantiations: a concrete carrier that mutates a single Context in
// sequence, and a symbolic carrier that forks into two child Contexts at a
// branch whose guard cannot be concretized.
//
// The source this specification distills from drives the same semantic
// clauses with a capability-class-parameterised effect (Functor,
// Applicative, Selective, Monad) so that how much of the instruction's
// effect structure is visible to static analysis can vary by backend. Go
// has no direct equivalent and does not need one: every clause here simply
// calls whichever of Read, Write and IfS it needs, and IfS is always
// available to both carriers. See effect.LoadMICapable for the one place
// that distinction still matters, the Selective-only restriction on
// LoadMI.
package effect

import (
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/sym"
)

// Effect is the interface every instruction semantic clause is written
// against.
type Effect interface {
	// Read returns the current value of k.
	Read(k key.Key) sym.Sym

	// Write binds k to v.
	Write(k key.Key, v sym.Sym)

	// IfS is the selective conditional: both then and els must be plain
	// functions of an Effect, not hidden behind a closure over a
	// pre-decided branch, so that a forking carrier can run both. The
	// concrete carrier runs exactly one.
	IfS(cond sym.Sym, then, els func(Effect))
}

// LoadMICapable is satisfied by carriers that implement the full
// monad-shaped LoadMI semantics (read the pointer, then read the address
// it names). A carrier that only implements Effect's Functor/Applicative/
// Selective surface does not need to satisfy this interface; the LoadMI
// clause skips silently on such a carrier, mirroring the reference
// semantics' Selective-only variant being a no-op for this one
// instruction.
type LoadMICapable interface {
	Effect
	AllowsLoadMI() bool
}
