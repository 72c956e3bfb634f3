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

// Package monitor keeps counters for an engine run - solver-call counts,
// cumulative SMT elapsed time, and tree node counts - readable through
// Snapshot, and serves statsview's own runtime dashboard
// (github.com/go-echarts/statsview, the same library the teacher wires up
// for its own runtime performance view). The counters are not plotted on
// that dashboard. It is purely observational: an engine.Run that never
// starts a Monitor behaves identically.
package monitor

import (
	"sync/atomic"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Monitor tracks run counters and serves statsview's HTTP viewer.
type Monitor struct {
	nodeCount   atomic.Int64
	solverCalls atomic.Int64
	elapsedNs   atomic.Int64

	mgr *statsview.ViewManager
}

// New builds a Monitor bound to addr (e.g. ":18066", statsview's own
// default). Start must be called separately to actually serve it.
func New(addr string) *Monitor {
	m := &Monitor{}
	viewer.SetConfiguration(viewer.WithAddr(addr))
	m.mgr = statsview.New()
	return m
}

// Start begins serving the dashboard in the background. It returns
// immediately; the caller is responsible for stopping the process (there
// is no graceful Stop in statsview's own API).
func (m *Monitor) Start() {
	go m.mgr.Start()
}

// RecordNodes sets the tree node count. The run subcommand calls it once,
// after engine.Run returns.
func (m *Monitor) RecordNodes(n int) { m.nodeCount.Store(int64(n)) }

// RecordSolverCall increments the solver-call counter and adds d
// (nanoseconds) to the cumulative elapsed time. The run subcommand calls
// it once, after engine.Run returns, with the run's total elapsed time.
func (m *Monitor) RecordSolverCall(elapsedNs int64) {
	m.solverCalls.Add(1)
	m.elapsedNs.Add(elapsedNs)
}

// Snapshot returns the current counters for a CLI status line or test
// assertion, without touching statsview's own internal series.
func (m *Monitor) Snapshot() (nodes, solverCalls int64, elapsedNs int64) {
	return m.nodeCount.Load(), m.solverCalls.Load(), m.elapsedNs.Load()
}
