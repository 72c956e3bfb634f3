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

package smt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/isa/smt/smttest"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
)

func newDriver(t *testing.T, bounds map[string]smttest.Range) *smt.Driver {
	t.Helper()
	backend, err := smttest.NewFactory(bounds, smttest.Range{Lo: -16, Hi: 16})()
	require.NoError(t, err)
	return smt.NewDriver(backend, time.Second, &smt.Stats{}, nil, nil)
}

func TestProcessContextMarksSatisfiablePathWithModel(t *testing.T) {
	ctx := context.New()
	x := sym.Var{Name: "x"}
	ctx.Declare("x", x)
	ctx.PathCondition = sym.Gt{X: x, Y: sym.Zero}

	d := newDriver(t, map[string]smttest.Range{"x": {Lo: -5, Hi: 5}})
	require.NoError(t, d.ProcessContext(ctx))

	assert.Equal(t, context.Satisfiable, ctx.Solution.Kind)
	assert.Greater(t, ctx.Solution.Model["x"], int32(0))
}

func TestProcessContextMarksUnsatisfiablePath(t *testing.T) {
	ctx := context.New()
	x := sym.Var{Name: "x"}
	ctx.Declare("x", x)
	ctx.PathCondition = sym.And{X: sym.Gt{X: x, Y: sym.Zero}, Y: sym.Lt{X: x, Y: sym.Zero}}

	d := newDriver(t, map[string]smttest.Range{"x": {Lo: -5, Hi: 5}})
	require.NoError(t, d.ProcessContext(ctx))

	assert.Equal(t, context.Unsatisfiable, ctx.Solution.Kind)
}

func TestQueryDoesNotMutateContextSolution(t *testing.T) {
	ctx := context.New()
	y := sym.Var{Name: "y"}
	ctx.Declare("y", y)

	d := newDriver(t, map[string]smttest.Range{"y": {Lo: -5, Hi: 5}})
	sat, model, err := d.Query(ctx, sym.Eq{X: y, Y: sym.Zero})
	require.NoError(t, err)
	assert.True(t, sat)
	assert.Equal(t, int32(0), model["y"])
	assert.Equal(t, context.Unknown, ctx.Solution.Kind)
}

// TestImpliesDetectsPathConditionMonotonicity is spec.md §8 Testable
// Property 1: a forked child's path condition must imply its parent's.
// Implies(a, b) checks a => b, so the property is phrased as
// Implies(child, parent).
func TestImpliesDetectsPathConditionMonotonicity(t *testing.T) {
	parent := context.New()
	n := sym.Var{Name: "n"}
	parent.Declare("n", n)
	parent.PathCondition = sym.Gt{X: n, Y: sym.Const{Value: value.CInt32(0)}}

	child := context.New()
	child.Declare("n", n)
	child.PathCondition = sym.And{
		X: parent.PathCondition,
		Y: sym.Lt{X: n, Y: sym.Const{Value: value.CInt32(10)}},
	}

	d := newDriver(t, map[string]smttest.Range{"n": {Lo: -20, Hi: 20}})
	implies, err := d.Implies(child, parent)
	require.NoError(t, err)
	assert.True(t, implies, "a forked child's path condition must imply its parent's")

	unrelated := context.New()
	unrelated.Declare("n", n)
	unrelated.PathCondition = sym.Lt{X: n, Y: sym.Const{Value: value.CInt32(-5)}}

	implies, err = d.Implies(unrelated, parent)
	require.NoError(t, err)
	assert.False(t, implies)
}

func TestProcessContextDeclaresConstraintsToo(t *testing.T) {
	ctx := context.New()
	ctx.Write(key.Reg(key.R0), sym.Zero)
	z := sym.Var{Name: "z"}
	ctx.Declare("z", z)
	ctx.AddConstraint("bound", sym.Eq{X: z, Y: sym.Const{Value: value.CInt32(4)}})

	d := newDriver(t, map[string]smttest.Range{"z": {Lo: 0, Hi: 10}})
	require.NoError(t, d.ProcessContext(ctx))

	assert.Equal(t, context.Satisfiable, ctx.Solution.Kind)
	assert.Equal(t, int32(4), ctx.Solution.Model["z"])
}
