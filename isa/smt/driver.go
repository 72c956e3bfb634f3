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

package smt

import (
	"sort"
	"sync"
	"time"

	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/logger"
)

// Stats accumulates wall-clock time spent in solver calls across however
// many Contexts a Driver has processed, the SymExecStats{elapsed} spec.md
// §4.G asks the driver to return alongside a Trace.
type Stats struct {
	mu      sync.Mutex
	elapsed time.Duration
	calls   int
}

func (s *Stats) add(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed += d
	s.calls++
}

// Elapsed returns the total wall-clock time spent across every solver
// call recorded so far.
func (s *Stats) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Calls returns the number of solver calls recorded so far.
func (s *Stats) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Driver wraps one Backend - exclusive to whichever goroutine owns it, per
// spec.md §5 - and runs the per-Context query spec.md §4.G describes: in
// a fresh assertion scope, declare every free variable, assert the path
// condition and each user constraint, check-sat, and attach the verdict.
type Driver struct {
	backend Backend
	timeout time.Duration
	stats   *Stats
	log     *logger.Logger
	perm    logger.Permission
}

// NewDriver wraps backend with a per-call timeout and shared Stats
// accumulator. log/perm may be nil, in which case logging is silently
// skipped.
func NewDriver(backend Backend, timeout time.Duration, stats *Stats, log *logger.Logger, perm logger.Permission) *Driver {
	return &Driver{backend: backend, timeout: timeout, stats: stats, log: log, perm: perm}
}

// ProcessContext annotates ctx.Solution in place, per spec.md §4.F/§4.G:
// children marked Unsatisfiable are still recorded in the tree but must
// not be expanded further - that decision belongs to the engine, not here.
func (d *Driver) ProcessContext(ctx *context.Context) error {
	start := time.Now()
	defer func() { d.stats.add(time.Since(start)) }()

	d.backend.Push()
	defer d.backend.Pop()

	freeVars := context.FindFreeVars(ctx)
	names := make([]string, 0, len(freeVars))
	for name := range freeVars {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic declaration order, not solver-visible but test-friendly

	for _, name := range names {
		d.backend.DeclareInt(name)
	}

	if err := d.backend.Assert(ctx.PathCondition); err != nil {
		return err
	}
	for _, c := range ctx.Constraints {
		if err := d.backend.Assert(c.Expr); err != nil {
			return err
		}
	}

	verdict, model, err := d.backend.CheckSat(d.timeout, names)
	if err != nil {
		return err
	}

	if d.log != nil {
		d.log.Logf(d.perm, "smt", "check-sat -> %s (%d free vars)", verdict, len(names))
	}

	switch verdict {
	case VSat:
		ctx.Solution = context.Solution{Kind: context.Satisfiable, Model: model}
	case VUnsat:
		ctx.Solution = context.Solution{Kind: context.Unsatisfiable}
	default:
		ctx.Solution = context.Solution{Kind: context.Unknown}
	}
	return nil
}

// Close releases the underlying backend.
func (d *Driver) Close() { d.backend.Close() }

// Query checks satisfiability of ctx's path condition and constraints
// together with one extra boolean term, without touching ctx.Solution.
// This is the primitive the ACTL checker (spec.md §4.H) builds each
// per-node proof task from: "state bindings ∧ path condition ∧
// constraints ∧ evalAtom(...)" - the bindings contribution is already
// baked into extra by the caller's evalAtom pass over ctx.
func (d *Driver) Query(ctx *context.Context, extra sym.Sym) (bool, map[string]int32, error) {
	start := time.Now()
	defer func() { d.stats.add(time.Since(start)) }()

	d.backend.Push()
	defer d.backend.Pop()

	fv := context.FindFreeVars(ctx)
	sym.FreeVars(extra, fv)
	names := make([]string, 0, len(fv))
	for name := range fv {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.backend.DeclareInt(name)
	}

	if err := d.backend.Assert(ctx.PathCondition); err != nil {
		return false, nil, err
	}
	for _, c := range ctx.Constraints {
		if err := d.backend.Assert(c.Expr); err != nil {
			return false, nil, err
		}
	}
	if err := d.backend.Assert(extra); err != nil {
		return false, nil, err
	}

	verdict, model, err := d.backend.CheckSat(d.timeout, names)
	if err != nil {
		return false, nil, err
	}
	return verdict == VSat, model, nil
}

// Implies reports whether the first Context's path condition implies the
// second's. It is checked by proving first ∧ ¬second is unsatisfiable, so
// the invariant spec.md §8 Testable Property 1 names, solver.implies(C,
// P), is Implies(child, parent).
func (d *Driver) Implies(parent, child *context.Context) (bool, error) {
	d.backend.Push()
	defer d.backend.Pop()

	fv := make(map[string]struct{})
	sym.FreeVars(parent.PathCondition, fv)
	sym.FreeVars(child.PathCondition, fv)
	names := make([]string, 0, len(fv))
	for name := range fv {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.backend.DeclareInt(name)
	}

	if err := d.backend.Assert(parent.PathCondition); err != nil {
		return false, err
	}
	if err := d.backend.Assert(sym.Not{X: child.PathCondition}); err != nil {
		return false, err
	}
	verdict, _, err := d.backend.CheckSat(d.timeout, nil)
	if err != nil {
		return false, err
	}
	return verdict == VUnsat, nil
}
