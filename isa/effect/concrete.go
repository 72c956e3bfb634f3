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
	"github.com/geo2a/isa-symexec/symerr"
)

// Concrete drives a single Context in sequence; this is the specialisation
// every instruction semantic clause gets "for free" by being written
// against Effect, the way a plain, non-symbolic simulator would run the
// same instruction set.
type Concrete struct {
	Ctx *context.Context
}

// NewConcrete wraps ctx in a Concrete carrier.
func NewConcrete(ctx *context.Context) *Concrete {
	return &Concrete{Ctx: ctx}
}

func (c *Concrete) Read(k key.Key) sym.Sym { return c.Ctx.Read(k) }

func (c *Concrete) Write(k key.Key, v sym.Sym) { c.Ctx.Write(k, v) }

// IfS requires cond to be fully concrete, which it always is under this
// carrier: nothing ever introduces a Var into a Context driven purely by
// Concrete. A symbolic guard reaching here is a caller bug, not a guest
// program condition, so it is reported as an unclassified type error
// rather than one of the guest-facing fatal kinds.
func (c *Concrete) IfS(cond sym.Sym, then, els func(Effect)) {
	v, ok := sym.GetValue(cond)
	if !ok {
		symerr.Panic(symerr.TypeError, "concrete carrier reached a non-concrete branch guard: %s", cond)
	}
	if v.Bool() {
		then(c)
	} else {
		els(c)
	}
}

// AllowsLoadMI is always true for the concrete carrier: a concrete run
// never needs the Selective-only restriction, since every read it performs
// is already fully resolved.
func (c *Concrete) AllowsLoadMI() bool { return true }
