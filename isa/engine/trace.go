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

// Package engine implements the symbolic execution engine, spec.md §4.F:
// the bounded fetch-increment-decode-execute loop that walks the state
// tree, forking children at conditional branches and consulting the SMT
// driver to prune infeasible paths.
package engine

import (
	"time"

	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/tree"
)

// Trace is a State Tree (tree.Tree) augmented with the node-ID -> Context
// map spec.md §3 names.
type Trace struct {
	Tree     *tree.Tree
	Contexts map[tree.NodeID]*context.Context
}

// Stats is the SymExecStats{elapsed} spec.md §4.G asks the solver driver
// to return alongside a Trace.
type Stats struct {
	Elapsed time.Duration
	Calls   int
	Steps   int
}

// ContextAt returns the Context associated with id, and false if the tree
// has no such node (a caller bug; every node this package ever created has
// an entry).
func (t *Trace) ContextAt(id tree.NodeID) (*context.Context, bool) {
	c, ok := t.Contexts[id]
	return c, ok
}
