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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	isactx "github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/isa/smt/smttest"
	"github.com/geo2a/isa-symexec/isa/sym"
)

func TestProcessAllAnnotatesEveryContextConcurrently(t *testing.T) {
	factory := smttest.NewFactory(map[string]smttest.Range{
		"a": {Lo: -5, Hi: 5},
		"b": {Lo: -5, Hi: -1}, // forces b's own range unsatisfiable against b > 0
	}, smttest.Range{Lo: -8, Hi: 8})

	pool := smt.NewPool(factory, 3, time.Second, nil, nil)
	defer pool.Close()

	a := isactx.New()
	av := sym.Var{Name: "a"}
	a.Declare("a", av)
	a.PathCondition = sym.Gt{X: av, Y: sym.Zero}

	b := isactx.New()
	bv := sym.Var{Name: "b"}
	b.Declare("b", bv)
	b.PathCondition = sym.Gt{X: bv, Y: sym.Zero}

	err := pool.ProcessAll(context.Background(), []*isactx.Context{a, b})
	require.NoError(t, err)

	assert.Equal(t, isactx.Satisfiable, a.Solution.Kind)
	assert.Equal(t, isactx.Unsatisfiable, b.Solution.Kind)
	assert.Equal(t, 2, pool.Stats().Calls())
}

func TestPoolLazilyAllocatesUpToSize(t *testing.T) {
	factory := smttest.NewFactory(nil, smttest.Range{Lo: -2, Hi: 2})
	pool := smt.NewPool(factory, 4, time.Second, nil, nil)
	defer pool.Close()

	ctxs := make([]*isactx.Context, 0, 10)
	for i := 0; i < 10; i++ {
		c := isactx.New()
		c.PathCondition = sym.True
		ctxs = append(ctxs, c)
	}

	err := pool.ProcessAll(context.Background(), ctxs)
	require.NoError(t, err)
	for _, c := range ctxs {
		assert.Equal(t, isactx.Satisfiable, c.Solution.Kind)
	}
}
