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

// Package smttest provides a brute-force smt.Backend for tests that want
// to exercise the driver/pool/checker against real (if small) satisfiable
// instances without a live Z3 process. It enumerates the cartesian product
// of each declared variable's bound range and evaluates every assertion
// directly; this is exponential in the number of free variables, so it is
// only suitable for the handful of variables the reference scenarios in
// spec.md §8 actually use.
package smttest

import (
	"time"

	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
)

// Range is an inclusive [Lo, Hi] search bound for one free variable.
type Range struct{ Lo, Hi int32 }

type scope struct {
	names []string
	terms []sym.Sym
}

// Backend is the brute-force smt.Backend. The zero value is not usable;
// build one with NewFactory.
type Backend struct {
	bounds       map[string]Range
	defaultRange Range
	scopes       []scope
}

// NewFactory returns an smt.BackendFactory producing brute-force backends
// that search bounds for declared variables named there, falling back to
// defaultRange for anything else.
func NewFactory(bounds map[string]Range, defaultRange Range) smt.BackendFactory {
	return func() (smt.Backend, error) {
		return &Backend{bounds: bounds, defaultRange: defaultRange}, nil
	}
}

func (b *Backend) Push() { b.scopes = append(b.scopes, scope{}) }

func (b *Backend) Pop() {
	if len(b.scopes) > 0 {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}
}

func (b *Backend) DeclareInt(name string) {
	top := &b.scopes[len(b.scopes)-1]
	top.names = append(top.names, name)
}

func (b *Backend) Assert(t sym.Sym) error {
	top := &b.scopes[len(b.scopes)-1]
	top.terms = append(top.terms, t)
	return nil
}

func (b *Backend) Close() {}

// allNames collects every name declared in any open scope.
func (b *Backend) allNames() []string {
	var out []string
	for _, s := range b.scopes {
		out = append(out, s.names...)
	}
	return out
}

func (b *Backend) allTerms() []sym.Sym {
	var out []sym.Sym
	for _, s := range b.scopes {
		out = append(out, s.terms...)
	}
	return out
}

func (b *Backend) rangeFor(name string) Range {
	if r, ok := b.bounds[name]; ok {
		return r
	}
	return b.defaultRange
}

// CheckSat enumerates every assignment of the declared variables within
// their search bounds and returns the first one that satisfies every
// asserted term. timeout is ignored - the reference scenarios this
// backend exists for are small enough to finish well inside it.
func (b *Backend) CheckSat(_ time.Duration, modelVars []string) (smt.Verdict, map[string]int32, error) {
	names := b.allNames()
	terms := b.allTerms()

	assignment := make(map[string]int32, len(names))
	found, ok := search(names, 0, b, assignment, terms)
	if !ok {
		return smt.VUnsat, nil, nil
	}
	model := make(map[string]int32, len(modelVars))
	for _, name := range modelVars {
		if v, ok := found[name]; ok {
			model[name] = v
		}
	}
	return smt.VSat, model, nil
}

func search(names []string, i int, b *Backend, assignment map[string]int32, terms []sym.Sym) (map[string]int32, bool) {
	if i == len(names) {
		for _, t := range terms {
			v, ok := evalBool(t, assignment)
			if !ok || !v {
				return nil, false
			}
		}
		out := make(map[string]int32, len(assignment))
		for k, v := range assignment {
			out[k] = v
		}
		return out, true
	}
	name := names[i]
	r := b.rangeFor(name)
	for v := r.Lo; v <= r.Hi; v++ {
		assignment[name] = v
		if out, ok := search(names, i+1, b, assignment, terms); ok {
			return out, true
		}
	}
	delete(assignment, name)
	return nil, false
}

// evalBool evaluates t to a boolean under assignment. Division and modulo
// by zero follow SMT-LIB's total-function convention (result 0) rather
// than the host panic isa/value.Div uses - a real solver's integer theory
// never traps, and this backend exists to stand in for one.
func evalBool(t sym.Sym, assignment map[string]int32) (bool, bool) {
	v, ok := eval(t, assignment)
	if !ok || v.Kind() != value.Bool {
		return false, false
	}
	return v.Bool(), true
}

func eval(t sym.Sym, assignment map[string]int32) (value.Concrete, bool) {
	switch n := t.(type) {
	case sym.Const:
		return n.Value, true
	case sym.Var:
		v, ok := assignment[n.Name]
		if !ok {
			return value.Concrete{}, false
		}
		return value.CInt32(v), true
	case sym.Ite:
		c, ok := eval(n.Cond, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		if c.Bool() {
			return eval(n.Then, assignment)
		}
		return eval(n.Else, assignment)
	case sym.Add:
		return evalArith(n.X, n.Y, assignment, func(x, y int32) int32 { return x + y })
	case sym.Sub:
		return evalArith(n.X, n.Y, assignment, func(x, y int32) int32 { return x - y })
	case sym.Mul:
		return evalArith(n.X, n.Y, assignment, func(x, y int32) int32 { return x * y })
	case sym.Div:
		return evalArith(n.X, n.Y, assignment, func(x, y int32) int32 {
			if y == 0 {
				return 0
			}
			return x / y
		})
	case sym.Mod:
		return evalArith(n.X, n.Y, assignment, func(x, y int32) int32 {
			if y == 0 {
				return 0
			}
			return x % y
		})
	case sym.Abs:
		x, ok := eval(n.X, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		v := x.Int32()
		if v < 0 {
			v = -v
		}
		return value.CInt32(v), true
	case sym.Eq:
		x, y, ok := evalPair(n.X, n.Y, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		return value.CBool(x == y), true
	case sym.Gt:
		x, y, ok := evalPair(n.X, n.Y, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		return value.CBool(x > y), true
	case sym.Lt:
		x, y, ok := evalPair(n.X, n.Y, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		return value.CBool(x < y), true
	case sym.And:
		x, ok := eval(n.X, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		y, ok := eval(n.Y, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		return value.CBool(x.Bool() && y.Bool()), true
	case sym.Or:
		x, ok := eval(n.X, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		y, ok := eval(n.Y, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		return value.CBool(x.Bool() || y.Bool()), true
	case sym.Not:
		x, ok := eval(n.X, assignment)
		if !ok {
			return value.Concrete{}, false
		}
		return value.CBool(!x.Bool()), true
	default:
		return value.Concrete{}, false
	}
}

func evalArith(x, y sym.Sym, assignment map[string]int32, op func(int32, int32) int32) (value.Concrete, bool) {
	xv, yv, ok := evalPair(x, y, assignment)
	if !ok {
		return value.Concrete{}, false
	}
	return value.CInt32(op(xv, yv)), true
}

func evalPair(x, y sym.Sym, assignment map[string]int32) (int32, int32, bool) {
	xv, ok := eval(x, assignment)
	if !ok {
		return 0, 0, false
	}
	yv, ok := eval(y, assignment)
	if !ok {
		return 0, 0, false
	}
	return xv.Int32(), yv.Int32(), true
}
