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

package actl

import (
	"github.com/geo2a/isa-symexec/isa/engine"
	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/isa/tree"
)

// Verdict is the two-way outcome of the proof procedure in spec.md §4.H.
type Verdict int

const (
	Proved Verdict = iota
	Falsifiable
)

func (v Verdict) String() string {
	if v == Proved {
		return "proved"
	}
	return "falsifiable"
}

// Witness is one (nodeId, counterexample model) pair accompanying a
// Falsifiable verdict.
type Witness struct {
	Node  tree.NodeID
	Model map[string]int32
}

// Proof is the checker's result for one formula run against one Trace.
type Proof struct {
	Verdict   Verdict
	Witnesses []Witness
}

// scope selects which nodes of the tree a formula's tasks range over.
type scope int

const (
	scopeAllNodes scope = iota
	scopeLeavesOnly
)

// task is one atomic proof obligation: check atom (already negated
// relative to the original formula) for satisfiability at every node the
// given scope selects.
type task struct {
	scope scope
	atom  Atom
}

// negate lowers φ's negation into the task set the proof procedure
// iterates, per spec.md §4.H: negate(AllG α) searches every node for ¬α;
// negate(AllF α) is the same search restricted to leaves; negate(And p q)
// is the union of p's and q's task sets (Or's sat-witnesses union).
func negate(formula ACTL) []task {
	switch f := formula.(type) {
	case AllG:
		return []task{{scope: scopeAllNodes, atom: negateAtom(f.Atom)}}
	case AllF:
		return []task{{scope: scopeLeavesOnly, atom: negateAtom(f.Atom)}}
	case And:
		return append(negate(f.P), negate(f.Q)...)
	default:
		return nil
	}
}

// Check runs the proof procedure: negate formula, query every resulting
// task's atom for satisfiability at the nodes its scope selects, and
// report Proved if no task was satisfiable anywhere, else Falsifiable
// with every witnessing (nodeId, model) pair.
func Check(trace *engine.Trace, formula ACTL, driver *smt.Driver) (Proof, error) {
	var witnesses []Witness

	for _, t := range negate(formula) {
		for _, id := range nodesFor(trace.Tree, t.scope) {
			ctx, ok := trace.ContextAt(id)
			if !ok {
				continue
			}
			sat, model, err := driver.Query(ctx, EvalAtom(t.atom, ctx))
			if err != nil {
				return Proof{}, err
			}
			if sat {
				witnesses = append(witnesses, Witness{Node: id, Model: model})
			}
		}
	}

	if len(witnesses) == 0 {
		return Proof{Verdict: Proved}, nil
	}
	return Proof{Verdict: Falsifiable, Witnesses: witnesses}, nil
}

func nodesFor(t *tree.Tree, s scope) []tree.NodeID {
	if s == scopeLeavesOnly {
		return t.Leafs()
	}
	return t.Keys()
}
