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

package actl_test

import (
	stdctx "context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo2a/isa-symexec/config"
	"github.com/geo2a/isa-symexec/isa/actl"
	"github.com/geo2a/isa-symexec/isa/engine"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/isa/smt/smttest"
)

func driverFor(t *testing.T, bounds map[string]smttest.Range) *smt.Driver {
	t.Helper()
	backend, err := smttest.NewFactory(bounds, smttest.Range{Lo: -32, Hi: 32})()
	require.NoError(t, err)
	return smt.NewDriver(backend, time.Second, &smt.Stats{}, nil, nil)
}

// TestAllGOverflowNeverFalseIsFalsifiableOnMotorControl checks that
// ScenarioMotorControl's single leaf can overflow, so AllG (not Overflow)
// is Falsifiable with a witnessing model.
func TestAllGOverflowNeverFalseIsFalsifiableOnMotorControl(t *testing.T) {
	cfg := config.Default()
	pool := smt.NewPool(smttest.NewFactory(map[string]smttest.Range{"speed": {Lo: -200_000_000, Hi: 200_000_000}}, smttest.Range{Lo: -32, Hi: 32}), 1, 0, nil, nil)
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioMotorControl())
	require.NoError(t, err)

	formula := actl.AllG{Atom: actl.NotAtom{X: actl.KeyAtom{Key: key.F(key.Overflow)}}}
	d := driverFor(t, map[string]smttest.Range{"speed": {Lo: -200_000_000, Hi: 200_000_000}})
	proof, err := actl.Check(trace, formula, d)
	require.NoError(t, err)

	assert.Equal(t, actl.Falsifiable, proof.Verdict)
	require.NotEmpty(t, proof.Witnesses)
}

// TestAllGTrueAtomIsAlwaysProved checks an atom that genuinely never fails
// along ScenarioAddition's one path with x in -10..10: AllG (not Overflow).
func TestAllGTrueAtomIsAlwaysProved(t *testing.T) {
	cfg := config.Default()
	pool := smt.NewPool(smttest.NewFactory(map[string]smttest.Range{"x": {Lo: -10, Hi: 10}}, smttest.Range{Lo: -10, Hi: 10}), 1, 0, nil, nil)
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioAddition())
	require.NoError(t, err)

	formula := actl.AllG{Atom: actl.NotAtom{X: actl.KeyAtom{Key: key.F(key.Overflow)}}}
	d := driverFor(t, map[string]smttest.Range{"x": {Lo: -10, Hi: 10}})
	proof, err := actl.Check(trace, formula, d)
	require.NoError(t, err)
	assert.Equal(t, actl.Proved, proof.Verdict)
}

// TestAllGImpliesAllF is spec.md §8 Testable Property 8: AllG alpha =>
// AllF alpha (anything true everywhere is, in particular, eventually
// true). Exercised by checking that whenever AllG is Proved, checking the
// weaker AllF of the same atom is Proved too.
func TestAllGImpliesAllF(t *testing.T) {
	cfg := config.Default()
	pool := smt.NewPool(smttest.NewFactory(map[string]smttest.Range{"x": {Lo: -10, Hi: 10}}, smttest.Range{Lo: -10, Hi: 10}), 1, 0, nil, nil)
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioAddition())
	require.NoError(t, err)

	atom := actl.NotAtom{X: actl.KeyAtom{Key: key.F(key.Overflow)}}
	d := driverFor(t, map[string]smttest.Range{"x": {Lo: -10, Hi: 10}})

	allG, err := actl.Check(trace, actl.AllG{Atom: atom}, d)
	require.NoError(t, err)
	require.Equal(t, actl.Proved, allG.Verdict)

	allF, err := actl.Check(trace, actl.AllF{Atom: atom}, d)
	require.NoError(t, err)
	assert.Equal(t, actl.Proved, allF.Verdict)
}

func TestAndConjoinsBothSubformulasTaskSets(t *testing.T) {
	cfg := config.Default()
	pool := smt.NewPool(smttest.NewFactory(map[string]smttest.Range{"y": {Lo: -10, Hi: 10}}, smttest.Range{Lo: -10, Hi: 10}), 1, 0, nil, nil)
	defer pool.Close()

	e := engine.New(cfg, pool, nil, nil)
	trace, _, err := e.Run(stdctx.Background(), engine.ScenarioDivisionByZero())
	require.NoError(t, err)

	alwaysTrue := actl.AllG{Atom: actl.NotAtom{X: actl.KeyAtom{Key: key.F(key.Overflow)}}}
	neverDivByZero := actl.AllG{Atom: actl.NotAtom{X: actl.KeyAtom{Key: key.F(key.DivisionByZero)}}}

	d := driverFor(t, map[string]smttest.Range{"y": {Lo: -10, Hi: 10}})
	proof, err := actl.Check(trace, actl.And{P: alwaysTrue, Q: neverDivByZero}, d)
	require.NoError(t, err)

	// The Div-by-zero prune scenario must be caught by the conjunction even
	// though the Overflow half alone would pass.
	assert.Equal(t, actl.Falsifiable, proof.Verdict)
}
