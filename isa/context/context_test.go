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

package context_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
)

func TestReadMissingKeyIsSemanticFloor(t *testing.T) {
	ctx := context.New()
	got := ctx.Read(key.Reg(key.R0))
	assert.True(t, sym.Equal(got, sym.Zero))
}

func TestWriteThenRead(t *testing.T) {
	ctx := context.New()
	ctx.Write(key.Reg(key.R0), sym.Const{Value: value.CInt32(7)})
	got := ctx.Read(key.Reg(key.R0))
	assert.True(t, sym.Equal(got, sym.Const{Value: value.CInt32(7)}))
}

func TestCloneIsIndependent(t *testing.T) {
	parent := context.New()
	parent.Write(key.Reg(key.R0), sym.Const{Value: value.CInt32(1)})
	parent.Declare("x", sym.Var{Name: "x"})

	child := parent.Clone()
	child.Write(key.Reg(key.R0), sym.Const{Value: value.CInt32(2)})

	assert.True(t, sym.Equal(parent.Read(key.Reg(key.R0)), sym.Const{Value: value.CInt32(1)}))
	assert.True(t, sym.Equal(child.Read(key.Reg(key.R0)), sym.Const{Value: value.CInt32(2)}))
	_, declared := child.Store["x"]
	assert.True(t, declared)
}

func TestCloneResetsSolution(t *testing.T) {
	parent := context.New()
	parent.Solution = context.Solution{Kind: context.Satisfiable, Model: map[string]int32{"x": 1}}
	child := parent.Clone()
	assert.Equal(t, context.Unknown, child.Solution.Kind)
}

func TestDumpMemoryOrdersByAddress(t *testing.T) {
	ctx := context.New()
	ctx.Write(key.Addr(5), sym.Const{Value: value.CInt32(50)})
	ctx.Write(key.Addr(1), sym.Const{Value: value.CInt32(10)})
	ctx.Write(key.Reg(key.R0), sym.Const{Value: value.CInt32(999)}) // not an Addr key

	dump := context.DumpMemory(ctx)
	require.Len(t, dump, 2)
	assert.Equal(t, int32(1), dump[0].Address)
	assert.Equal(t, int32(5), dump[1].Address)
}

func TestFindFreeVars(t *testing.T) {
	ctx := context.New()
	ctx.Write(key.Reg(key.R0), sym.Var{Name: "x"})
	ctx.PathCondition = sym.Gt{X: sym.Var{Name: "y"}, Y: sym.Zero}
	ctx.AddConstraint("c1", sym.Eq{X: sym.Var{Name: "z"}, Y: sym.Zero})

	fv := context.FindFreeVars(ctx)
	for _, name := range []string{"x", "y", "z"} {
		_, ok := fv[name]
		assert.Truef(t, ok, "expected %s in free variables", name)
	}
}

func TestHaltedFlag(t *testing.T) {
	ctx := context.New()
	assert.False(t, ctx.Halted())
	ctx.Write(key.F(key.Halted), sym.Const{Value: value.CBool(true)})
	assert.True(t, ctx.Halted())
}
