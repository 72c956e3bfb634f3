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

package engine_test

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo2a/isa-symexec/config"
	isactx "github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/engine"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/isa/smt/smttest"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
)

func poolFor(t *testing.T, bounds map[string]smttest.Range) *smt.Pool {
	t.Helper()
	factory := smttest.NewFactory(bounds, smttest.Range{Lo: -32, Hi: 32})
	return smt.NewPool(factory, 1, 0, nil, nil)
}

func TestScenarioAdditionSingleLeafProvesIdentity(t *testing.T) {
	cfg := config.Default()
	cfg.StepBudget = 20
	pool := poolFor(t, map[string]smttest.Range{"x": {Lo: -10, Hi: 10}})
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioAddition())
	require.NoError(t, err)

	leafs := trace.Tree.Leafs()
	require.Len(t, leafs, 1)

	leafCtx, ok := trace.ContextAt(leafs[0])
	require.True(t, ok)
	got := sym.Simplify(100, leafCtx.Read(key.Reg(key.R0)))
	assert.True(t, sym.Equal(got, sym.Var{Name: "x"}), "got %s", got)
}

func TestScenarioSumToNForksOnLoopExit(t *testing.T) {
	cfg := config.Default()
	cfg.StepBudget = 100
	pool := poolFor(t, map[string]smttest.Range{"n": {Lo: 1, Hi: 5}})
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioSumToN())
	require.NoError(t, err)

	// At least one branch node exists (the loop-exit test CmpGt/JumpCt
	// forks at least once since i eventually exceeds a symbolic n), and
	// every satisfiable leaf has Halted = true.
	sawBranch := false
	for _, id := range trace.Tree.Keys() {
		if trace.Tree.Get(id).Kind == 2 { // KindBranch
			sawBranch = true
		}
	}
	assert.True(t, sawBranch, "expected at least one fork on the loop-exit test")

	for _, id := range trace.Tree.Leafs() {
		ctx, ok := trace.ContextAt(id)
		require.True(t, ok)
		if ctx.Solution.Kind == isactx.Unsatisfiable {
			continue
		}
		assert.True(t, ctx.Halted(), "leaf %d is satisfiable but not halted", id)
	}
}

func TestScenarioMotorControlCanOverflow(t *testing.T) {
	cfg := config.Default()
	pool := poolFor(t, map[string]smttest.Range{"speed": {Lo: -200_000_000, Hi: 200_000_000}})
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioMotorControl())
	require.NoError(t, err)

	leafs := trace.Tree.Leafs()
	require.Len(t, leafs, 1)
	leafCtx, ok := trace.ContextAt(leafs[0])
	require.True(t, ok)
	overflow := leafCtx.Read(key.F(key.Overflow))
	assert.False(t, sym.Equal(sym.Simplify(100, overflow), sym.False), "overflow flag folded to false: %s", overflow)
}

func TestScenarioLoadMIUnconstrainedIsFatal(t *testing.T) {
	cfg := config.Default()
	e := engine.New(cfg, nil, nil, nil)
	_, _, err := e.Run(stdctx.Background(), engine.ScenarioLoadMIUnconstrained())
	require.Error(t, err)
}

func TestScenarioLoadMIConstrainedLoadsThroughPointer(t *testing.T) {
	cfg := config.Default()
	e := engine.New(cfg, nil, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioLoadMIConstrained())
	require.NoError(t, err)

	leafs := trace.Tree.Leafs()
	require.Len(t, leafs, 1)
	leafCtx, _ := trace.ContextAt(leafs[0])
	got := sym.Simplify(10, leafCtx.Read(key.Reg(key.R0)))
	assert.True(t, sym.Equal(got, sym.Const{Value: value.CInt32(7)}), "got %s", got)
}

func TestScenarioDivisionByZeroIsReachable(t *testing.T) {
	cfg := config.Default()
	pool := poolFor(t, map[string]smttest.Range{"y": {Lo: -10, Hi: 10}})
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioDivisionByZero())
	require.NoError(t, err)

	leafs := trace.Tree.Leafs()
	require.Len(t, leafs, 1)
	leafCtx, _ := trace.ContextAt(leafs[0])
	dz := leafCtx.Read(key.F(key.DivisionByZero))
	assert.True(t, sym.Equal(sym.Simplify(10, dz), sym.Eq{X: sym.Var{Name: "y"}, Y: sym.Zero}))
}
