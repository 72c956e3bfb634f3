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

// Subst rewrites every free occurrence of Var name within term with
// replacement. It is structural on every other node: Const is a leaf with
// no Vars to rewrite, and every compound node recurses into its children.
func Subst(term Sym, name string, replacement Sym) Sym {
	switch t := term.(type) {
	case Const:
		return t
	case Var:
		if t.Name == name {
			return replacement
		}
		return t
	case Pointer:
		return Pointer{Target: Subst(t.Target, name, replacement)}
	case Ite:
		return Ite{
			Cond: Subst(t.Cond, name, replacement),
			Then: Subst(t.Then, name, replacement),
			Else: Subst(t.Else, name, replacement),
		}
	case Add:
		return Add{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Sub:
		return Sub{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Mul:
		return Mul{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Div:
		return Div{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Mod:
		return Mod{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Abs:
		return Abs{Subst(t.X, name, replacement)}
	case Eq:
		return Eq{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Gt:
		return Gt{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Lt:
		return Lt{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case And:
		return And{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Or:
		return Or{Subst(t.X, name, replacement), Subst(t.Y, name, replacement)}
	case Not:
		return Not{Subst(t.X, name, replacement)}
	default:
		return t
	}
}

// FreeVars collects the set of variable names occurring anywhere in t.
func FreeVars(t Sym, into map[string]struct{}) {
	switch n := t.(type) {
	case Var:
		into[n.Name] = struct{}{}
	case Pointer:
		FreeVars(n.Target, into)
	case Ite:
		FreeVars(n.Cond, into)
		FreeVars(n.Then, into)
		FreeVars(n.Else, into)
	case Add:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Sub:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Mul:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Div:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Mod:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Abs:
		FreeVars(n.X, into)
	case Eq:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Gt:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Lt:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case And:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Or:
		FreeVars(n.X, into)
		FreeVars(n.Y, into)
	case Not:
		FreeVars(n.X, into)
	}
}
