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

// Package context implements Context, the state of one execution point:
// bindings from Key to symbolic term, the accumulated path condition, user
// constraints, the free-variable store, and the solver's verdict on
// whether the point is reachable.
//
// A Context is created either as the caller-supplied initial state or by
// cloning its parent for a step, mutated only by the step that produced
// it, and treated as immutable once it has been placed in the state tree.
package context

import (
	"sort"

	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
)

// SolutionKind classifies the solver's verdict on a Context's reachability.
type SolutionKind int

const (
	Unknown SolutionKind = iota
	Unsatisfiable
	Satisfiable
)

func (k SolutionKind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Unsatisfiable:
		return "unsatisfiable"
	case Satisfiable:
		return "satisfiable"
	default:
		return "?"
	}
}

// Solution is the outcome the solver driver attaches to a Context in its
// second pass over the tree.
type Solution struct {
	Kind  SolutionKind
	Model map[string]int32 // only meaningful when Kind == Satisfiable
}

// Constraint is a single user-supplied assertion, kept alongside its label
// for reporting.
type Constraint struct {
	Label string
	Expr  sym.Sym
}

// AddrBinding is one entry of a memory dump, in address order.
type AddrBinding struct {
	Address int32
	Value   sym.Sym
}

// Context is the mixed concrete/symbolic machine state described in
// spec.md §3.
type Context struct {
	Bindings      map[key.Key]sym.Sym
	PathCondition sym.Sym
	Constraints   []Constraint
	Store         map[string]sym.Sym
	Solution      Solution
}

// New returns an empty Context: no bindings, path condition true, no
// constraints, no declared free variables, solution unknown.
func New() *Context {
	return &Context{
		Bindings:      make(map[key.Key]sym.Sym),
		PathCondition: sym.True,
		Constraints:   nil,
		Store:         make(map[string]sym.Sym),
		Solution:      Solution{Kind: Unknown},
	}
}

// Read returns the value bound to k, or the semantic floor Const 0 if k
// has never been written.
func (c *Context) Read(k key.Key) sym.Sym {
	if v, ok := c.Bindings[k]; ok {
		return v
	}
	return sym.Zero
}

// Write binds k to v, mutating c in place. Per the Context lifecycle, this
// is only ever called on a Context that has not yet been placed in the
// state tree - either the initial state, or a fresh clone made for a step.
func (c *Context) Write(k key.Key, v sym.Sym) {
	c.Bindings[k] = v
}

// Declare records name = def in the free-variable store, the equality the
// SMT translator asserts for a declared symbol.
func (c *Context) Declare(name string, def sym.Sym) {
	c.Store[name] = def
}

// AddConstraint appends a labelled user assertion.
func (c *Context) AddConstraint(label string, expr sym.Sym) {
	c.Constraints = append(c.Constraints, Constraint{Label: label, Expr: expr})
}

// Clone returns a deep-enough copy of c for the forking effect carrier to
// mutate independently: a new bindings map, a new constraints slice, a new
// store map, the same PathCondition term (terms are immutable once built),
// and a reset Solution, since a freshly forked child has not been through
// the solver yet.
func (c *Context) Clone() *Context {
	n := &Context{
		Bindings:      make(map[key.Key]sym.Sym, len(c.Bindings)),
		PathCondition: c.PathCondition,
		Constraints:   append([]Constraint(nil), c.Constraints...),
		Store:         make(map[string]sym.Sym, len(c.Store)),
		Solution:      Solution{Kind: Unknown},
	}
	for k, v := range c.Bindings {
		n.Bindings[k] = v
	}
	for k, v := range c.Store {
		n.Store[k] = v
	}
	return n
}

// DumpMemory enumerates the Addr-keyed bindings in ascending address order,
// for solver submission or for a JSON trace dump.
func DumpMemory(c *Context) []AddrBinding {
	out := make([]AddrBinding, 0, len(c.Bindings))
	for k, v := range c.Bindings {
		if k.Kind() == key.KindAddr {
			out = append(out, AddrBinding{Address: k.Address(), Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// FindFreeVars returns the set of variable names occurring in c's
// bindings, path condition and constraints.
func FindFreeVars(c *Context) map[string]struct{} {
	fv := make(map[string]struct{})
	for _, v := range c.Bindings {
		sym.FreeVars(v, fv)
	}
	sym.FreeVars(c.PathCondition, fv)
	for _, con := range c.Constraints {
		sym.FreeVars(con.Expr, fv)
	}
	return fv
}

// Halted reports whether c's Halted flag is bound to the concrete value
// true - the only condition under which a leaf stops expanding.
func (c *Context) Halted() bool {
	v, ok := c.Bindings[key.F(key.Halted)]
	if !ok {
		return false
	}
	cst, ok := v.(sym.Const)
	if !ok {
		return false
	}
	return cst.Value.Kind() == value.Bool && cst.Value.Bool()
}
