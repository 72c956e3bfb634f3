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

package actl

import (
	"fmt"

	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/sym"
)

// EvalAtom translates atom into a Sym over ctx's bindings, the
// "evalAtom" operation spec.md §4.H defines.
func EvalAtom(atom Atom, ctx *context.Context) sym.Sym {
	switch a := atom.(type) {
	case KeyAtom:
		// spec.md §4.H: "Key k: read(k) from the Context; if absent,
		// interpreted as false" - ctx.Read's own semantic floor is
		// Const 0 (an Int32), which is the wrong type for a NotAtom/AndAtom
		// over a flag that was never written on this node's path.
		if v, ok := ctx.Bindings[a.Key]; ok {
			return v
		}
		return sym.False
	case SymAtom:
		return a.Sym
	case NotAtom:
		return sym.Not{X: EvalAtom(a.X, ctx)}
	case AndAtom:
		return sym.And{X: EvalAtom(a.X, ctx), Y: EvalAtom(a.Y, ctx)}
	case OrAtom:
		return sym.Or{X: EvalAtom(a.X, ctx), Y: EvalAtom(a.Y, ctx)}
	case EqAtom:
		return sym.Eq{X: EvalAtom(a.X, ctx), Y: EvalAtom(a.Y, ctx)}
	case GtAtom:
		return sym.Gt{X: EvalAtom(a.X, ctx), Y: EvalAtom(a.Y, ctx)}
	case LtAtom:
		return sym.Lt{X: EvalAtom(a.X, ctx), Y: EvalAtom(a.Y, ctx)}
	default:
		panic(fmt.Sprintf("actl: unhandled Atom node %T", atom))
	}
}

// negateAtom builds ¬atom without double-wrapping an existing NotAtom, the
// way simplify's Not/Not cancellation keeps terms from growing unbounded.
func negateAtom(atom Atom) Atom {
	if n, ok := atom.(NotAtom); ok {
		return n.X
	}
	return NotAtom{X: atom}
}
