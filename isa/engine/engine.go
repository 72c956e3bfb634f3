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

package engine

import (
	stdctx "context"

	"github.com/geo2a/isa-symexec/config"
	isactx "github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/effect"
	"github.com/geo2a/isa-symexec/isa/key"
	"github.com/geo2a/isa-symexec/isa/semantics"
	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/tree"
	"github.com/geo2a/isa-symexec/isa/value"
	"github.com/geo2a/isa-symexec/logger"
	"github.com/geo2a/isa-symexec/symerr"

	"github.com/geo2a/isa-symexec/assert"
)

// Engine runs the bounded fetch-increment-decode-execute loop described in
// spec.md §4.F. A nil Pool is legal: the engine still builds the full
// tree, it just leaves every Context's Solution at context.Unknown instead
// of pruning infeasible paths (useful for tests that only care about
// shape, not satisfiability).
type Engine struct {
	Config config.Config
	Pool   *smt.Pool
	Log    *logger.Logger
	Perm   logger.Permission

	single assert.SingleGoroutine
}

// New builds an Engine. pool may be nil.
func New(cfg config.Config, pool *smt.Pool, log *logger.Logger, perm logger.Permission) *Engine {
	return &Engine{Config: cfg, Pool: pool, Log: log, Perm: perm}
}

// Run explores every feasible path from initial up to Config.StepBudget
// steps, returning the resulting Trace and timing statistics. initial
// becomes the tree's root Context; every step runs on a clone, so the
// engine never writes initial's bindings. Only its Solution is set when a
// Pool checks the tree.
func (e *Engine) Run(std stdctx.Context, initial *isactx.Context) (trace *Trace, stats Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = symerr.Recover(r)
		}
	}()

	t := tree.New(initial)
	trace = &Trace{Tree: t, Contexts: map[tree.NodeID]*isactx.Context{t.Root(): initial}}

	if e.Pool != nil {
		if procErr := e.Pool.ProcessAll(std, []*isactx.Context{initial}); procErr != nil {
			return nil, Stats{}, procErr
		}
	}

	e.expand(std, trace, t.Root(), 0, &stats)

	if e.Pool != nil {
		stats.Elapsed = e.Pool.Stats().Elapsed()
		stats.Calls = e.Pool.Stats().Calls()
	}
	return trace, stats, nil
}

// expand grows the tree at id by one step, recursing into whatever
// children that step produces, in left-then-right order - the depth-first
// pre-order spec.md §5 requires for deterministic node-ID assignment,
// which falls out naturally here because tree.Tree.Insert1/Insert2 hand
// out the next arena slot at the moment each child is created.
func (e *Engine) expand(std stdctx.Context, trace *Trace, id tree.NodeID, steps int, stats *Stats) {
	e.single.Check()

	ctx := trace.Contexts[id]
	if ctx.Halted() {
		return
	}
	if ctx.Solution.Kind == isactx.Unsatisfiable {
		return
	}
	if steps >= e.Config.StepBudget {
		return
	}

	// step mutates whatever Context it is handed in place, but ctx is the
	// very object already placed in trace.Contexts[id] - spec.md §4.C
	// ("once placed in the tree it is immutable") means that object must
	// never change again. Hand step a clone instead, so a straight-line
	// run's later steps overwrite only the clone, never id's frozen state.
	forked, left, right := e.step(ctx.Clone())
	stats.Steps++

	if !forked {
		childID := trace.Tree.Insert1(id, left)
		trace.Contexts[childID] = left
		e.annotate(std, []*isactx.Context{left})
		e.expand(std, trace, childID, steps+1, stats)
		return
	}

	leftID, rightID := trace.Tree.Insert2(id, left, right)
	trace.Contexts[leftID] = left
	trace.Contexts[rightID] = right
	e.annotate(std, []*isactx.Context{left, right})

	if e.Log != nil {
		e.Log.Logf(e.Perm, "engine", "branch at node %d -> %d, %d", id, leftID, rightID)
	}

	e.expand(std, trace, leftID, steps+1, stats)
	e.expand(std, trace, rightID, steps+1, stats)
}

// annotate runs every Context in ctxs through the solver Pool, if one is
// configured. This is the F<->G integration spec.md §4.F names:
// "[e]ach produced child Context is passed through processContext".
func (e *Engine) annotate(std stdctx.Context, ctxs []*isactx.Context) {
	if e.Pool == nil {
		return
	}
	if err := e.Pool.ProcessAll(std, ctxs); err != nil {
		symerr.Panic(symerr.TypeError, "solver pool error: %v", err)
	}
}

// step runs the fetch-increment-decode-execute pipeline once against ctx,
// mutating it in place for the reads/writes that happen before any fork
// and returning either a single successor Context (a Trunk step) or two
// (a Branch step, from a JumpCt/JumpCf whose Condition flag could not be
// concretized).
func (e *Engine) step(ctx *isactx.Context) (forked bool, left, right *isactx.Context) {
	e.fetch(ctx)
	e.increment(ctx)
	instr := e.decode(ctx)

	if e.Log != nil {
		e.Log.Logf(e.Perm, "engine", "execute %s", instr)
	}

	sc := effect.NewSymbolic(ctx)
	semantics.Run(instr, sc)

	if l, r, ok := sc.Forked(); ok {
		return true, l, r
	}
	return false, sc.Result(), nil
}

// fetch loads IR from the program-memory slot IC currently names. The
// instruction counter must concretize via constant folding/simplification
// alone - spec.md §4.F is explicit that no further concretization is
// attempted at fetch; a symbolic IC here is always fatal.
func (e *Engine) fetch(ctx *isactx.Context) {
	ic := ctx.Read(key.IC())
	addr, resolved, residual := sym.ToConcreteAddress(ic)
	if !resolved {
		symerr.Panic(symerr.SymbolicIC, "instruction counter did not concretize: %s", residual)
	}
	ctx.Write(key.IR(), ctx.Read(key.Prog(addr)))
}

// increment advances IC by one, simplifying the result so that the
// invariant "IC was simplified on read" (spec.md §4.B) holds for whatever
// reads it next - most immediately the next step's own fetch.
func (e *Engine) increment(ctx *isactx.Context) {
	next := sym.Add{X: ctx.Read(key.IC()), Y: sym.Const{Value: value.CInt32(1)}}
	ctx.Write(key.IC(), sym.Simplify(e.Config.EffectiveSimplifySteps(), next))
}

// decode concretizes IR to an instruction code and table-looks-up an
// Instruction. Both a non-concretizable IR and an unrecognised code are
// fatal UnknownOpcode conditions - spec.md §4.F does not distinguish them
// from each other, only from the separate SymbolicIC case at fetch.
func (e *Engine) decode(ctx *isactx.Context) semantics.Instruction {
	ir := ctx.Read(key.IR())
	code, resolved, residual := sym.ToInstructionCode(ir)
	if !resolved {
		symerr.Panic(symerr.UnknownOpcode, "instruction register did not concretize: %s", residual)
	}
	instr, ok := semantics.Decode(semantics.InstructionCode(code))
	if !ok {
		symerr.Panic(symerr.UnknownOpcode, "no instruction for code %d", code)
	}
	return instr
}
