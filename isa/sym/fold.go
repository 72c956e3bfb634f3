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

// GetValue attempts full concretization of t: it succeeds iff t contains no
// Var, no Pointer and no Ite anywhere in its tree. A division or modulo by
// a concrete zero encountered here is a host-level DivisionByZeroReached
// error - the symbolic semantics sets the DivisionByZero flag and relies on
// the solver to prune any path where it would be reached, so GetValue
// should never actually be called with one live.
func GetValue(t Sym) (value.Concrete, bool) {
	switch n := t.(type) {
	case Const:
		return n.Value, true
	case Var, Pointer, Ite:
		return value.Concrete{}, false
	case Add:
		return foldBinary(n.X, n.Y, value.Add)
	case Sub:
		return foldBinary(n.X, n.Y, value.Sub)
	case Mul:
		return foldBinary(n.X, n.Y, value.Mul)
	case Div:
		return foldBinary(n.X, n.Y, value.Div)
	case Mod:
		return foldBinary(n.X, n.Y, value.Mod)
	case Abs:
		x, ok := GetValue(n.X)
		if !ok {
			return value.Concrete{}, false
		}
		return value.Abs(x), true
	case Eq:
		return foldBinary(n.X, n.Y, value.Eq)
	case Gt:
		return foldBinary(n.X, n.Y, value.Gt)
	case Lt:
		return foldBinary(n.X, n.Y, value.Lt)
	case And:
		return foldBinary(n.X, n.Y, value.And)
	case Or:
		return foldBinary(n.X, n.Y, value.Or)
	case Not:
		x, ok := GetValue(n.X)
		if !ok {
			return value.Concrete{}, false
		}
		return value.Not(x), true
	default:
		return value.Concrete{}, false
	}
}

func foldBinary(x, y Sym, op func(a, b value.Concrete) value.Concrete) (value.Concrete, bool) {
	xv, ok := GetValue(x)
	if !ok {
		return value.Concrete{}, false
	}
	yv, ok := GetValue(y)
	if !ok {
		return value.Concrete{}, false
	}
	return op(xv, yv), true
}

// TryFoldConstant returns Const v if t fully concretizes to v, and t
// unchanged otherwise.
func TryFoldConstant(t Sym) Sym {
	if v, ok := GetValue(t); ok {
		return Const{Value: v}
	}
	return t
}
