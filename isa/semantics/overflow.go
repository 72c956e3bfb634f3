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
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
)

func minBound() sym.Sym { return sym.Const{Value: value.CInt32(value.MinBound)} }
func maxBound() sym.Sym { return sym.Const{Value: value.CInt32(value.MaxBound)} }
func minusOne() sym.Sym { return sym.Const{Value: value.CInt32(-1)} }

// addOverflows holds when x+y would exceed the signed Int32 range. Sums
// wrap, so this is stated on the wrapped result: two positives whose sum
// is negative, or two negatives whose sum is non-negative, expressed as a
// closed-form SMT-compatible boolean term per spec.md §4.D.
func addOverflows(x, y sym.Sym) sym.Sym {
	posOverflow := sym.And{
		X: sym.Gt{X: x, Y: sym.Zero},
		Y: sym.And{X: sym.Gt{X: y, Y: sym.Zero}, Y: sym.Lt{X: sym.Add{X: x, Y: y}, Y: sym.Zero}},
	}
	negOverflow := sym.And{
		X: sym.Lt{X: x, Y: sym.Zero},
		Y: sym.And{X: sym.Lt{X: y, Y: sym.Zero}, Y: sym.Not{X: sym.Lt{X: sym.Add{X: x, Y: y}, Y: sym.Zero}}},
	}
	return sym.Or{X: posOverflow, Y: negOverflow}
}

// subOverflows holds when x-y would exceed the signed Int32 range: a
// non-negative x minus a negative y whose wrapped difference is negative,
// or a negative x minus a positive y whose wrapped difference is
// non-negative.
func subOverflows(x, y sym.Sym) sym.Sym {
	posOverflow := sym.And{
		X: sym.Not{X: sym.Lt{X: x, Y: sym.Zero}},
		Y: sym.And{X: sym.Lt{X: y, Y: sym.Zero}, Y: sym.Lt{X: sym.Sub{X: x, Y: y}, Y: sym.Zero}},
	}
	negOverflow := sym.And{
		X: sym.Lt{X: x, Y: sym.Zero},
		Y: sym.And{X: sym.Gt{X: y, Y: sym.Zero}, Y: sym.Not{X: sym.Lt{X: sym.Sub{X: x, Y: y}, Y: sym.Zero}}},
	}
	return sym.Or{X: posOverflow, Y: negOverflow}
}

// mulOverflows holds when x*y would exceed the signed Int32 range: for
// y != 0, when dividing the wrapped product by y does not give back x, or
// when x*y is MinBound * -1, whose quotient wraps back to x. y = 0 never
// overflows, so the term guards the division used to check the product
// against a zero divisor.
func mulOverflows(x, y sym.Sym) sym.Sym {
	nonZero := sym.Not{X: sym.Eq{X: y, Y: sym.Zero}}
	product := sym.Mul{X: x, Y: y}
	roundTrip := sym.Or{
		X: sym.Not{X: sym.Eq{X: sym.Div{X: product, Y: y}, Y: x}},
		Y: divOverflows(x, y),
	}
	return sym.Ite{Cond: nonZero, Then: roundTrip, Else: sym.False}
}

// divOverflows holds exactly for the one division that overflows Int32:
// MinBound / -1.
func divOverflows(x, y sym.Sym) sym.Sym {
	return sym.And{X: sym.Eq{X: x, Y: minBound()}, Y: sym.Eq{X: y, Y: minusOne()}}
}

// absOverflows holds when taking the absolute value of x would overflow:
// exactly when x is MinBound, whose negation has no Int32 representation.
func absOverflows(x sym.Sym) sym.Sym {
	return sym.Eq{X: x, Y: minBound()}
}
