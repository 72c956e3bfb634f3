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

import "github.com/geo2a/isa-symexec/isa/value"

func isZero(t Sym) bool {
	c, ok := t.(Const)
	return ok && c.Value.Kind() != value.Bool && c.Value.Int32() == 0
}

func isTrue(t Sym) bool {
	c, ok := t.(Const)
	return ok && c.Value.Kind() == value.Bool && c.Value.Bool()
}

func isFalse(t Sym) bool {
	c, ok := t.(Const)
	return ok && c.Value.Kind() == value.Bool && !c.Value.Bool()
}

// TryReduce applies one round of algebraic rewrites, recursing into
// children first (so a rewrite can fire on a subterm that only became a
// constant after its own children were reduced). It is not a fixed-point
// operator by itself - Simplify iterates it to one.
func TryReduce(t Sym) Sym {
	switch n := t.(type) {
	case Add:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if isZero(x) {
			return y
		}
		if isZero(y) {
			return x
		}
		if cx, ok := x.(Const); ok {
			if cy, ok := y.(Const); ok {
				return Const{Value: value.Add(cx.Value, cy.Value)}
			}
		}
		return Add{x, y}

	case Sub:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if isZero(y) {
			return x
		}
		if cx, ok := x.(Const); ok {
			if cy, ok := y.(Const); ok {
				return Const{Value: value.Sub(cx.Value, cy.Value)}
			}
		}
		return Sub{x, y}

	case Mul:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if cx, ok := x.(Const); ok {
			if cy, ok := y.(Const); ok {
				return Const{Value: value.Mul(cx.Value, cy.Value)}
			}
		}
		return Mul{x, y}

	case Div:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		return Div{x, y}

	case Mod:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		return Mod{x, y}

	case Abs:
		x := TryReduce(n.X)
		if cx, ok := x.(Const); ok {
			return Const{Value: value.Abs(cx.Value)}
		}
		return Abs{x}

	case Eq:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if isZero(x) && isZero(y) {
			return True
		}
		if cx, ok := x.(Const); ok {
			if cy, ok := y.(Const); ok {
				return Const{Value: value.Eq(cx.Value, cy.Value)}
			}
		}
		return Eq{x, y}

	case Gt:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if isZero(x) && isZero(y) {
			return False
		}
		if cx, ok := x.(Const); ok {
			if cy, ok := y.(Const); ok {
				return Const{Value: value.Gt(cx.Value, cy.Value)}
			}
		}
		return Gt{x, y}

	case Lt:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if isZero(x) && isZero(y) {
			return False
		}
		if cx, ok := x.(Const); ok {
			if cy, ok := y.(Const); ok {
				return Const{Value: value.Lt(cx.Value, cy.Value)}
			}
		}
		return Lt{x, y}

	case And:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if isTrue(x) {
			return y
		}
		if isTrue(y) {
			return x
		}
		if isFalse(x) || isFalse(y) {
			return False
		}
		return And{x, y}

	case Or:
		x, y := TryReduce(n.X), TryReduce(n.Y)
		if isFalse(x) {
			return y
		}
		if isFalse(y) {
			return x
		}
		if isTrue(x) || isTrue(y) {
			return True
		}
		return Or{x, y}

	case Not:
		x := TryReduce(n.X)
		if isTrue(x) {
			return False
		}
		if isFalse(x) {
			return True
		}
		if inner, ok := x.(Not); ok {
			return inner.X
		}
		return Not{x}

	case Ite:
		cond := TryReduce(n.Cond)
		then := TryReduce(n.Then)
		els := TryReduce(n.Else)
		if isTrue(cond) {
			return then
		}
		if isFalse(cond) {
			return els
		}
		return Ite{cond, then, els}

	case Pointer:
		return Pointer{Target: TryReduce(n.Target)}

	default:
		return t
	}
}
