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

package main

import (
	stdctx "context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geo2a/isa-symexec/config"
	isactx "github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/engine"
	"github.com/geo2a/isa-symexec/isa/smt"
	"github.com/geo2a/isa-symexec/logger"
	"github.com/geo2a/isa-symexec/monitor"
)

var (
	runVerbose     bool
	runMonitorAddr string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a named reference program to completion and summarize its trace",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenario,
}

func init() {
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "drain the engine's log ring to stdout once the run finishes")
	runCmd.Flags().StringVar(&runMonitorAddr, "monitor", "", "serve a live statsview dashboard at this address while running (e.g. :18066)")
}

// newPool builds the solver Pool a run/check command shares: one Z3Backend
// per worker, sized and timed out per cfg, per spec.md §5's worker-pool
// sizing.
func newPool(cfg config.Config, log *logger.Logger, perm logger.Permission) *smt.Pool {
	return smt.NewPool(smt.NewZ3Backend, cfg.PoolSize, cfg.SolverTimeout, log, perm)
}

func runScenario(cmd *cobra.Command, args []string) error {
	ctx, err := lookupScenario(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var mon *monitor.Monitor
	if runMonitorAddr != "" {
		mon = monitor.New(runMonitorAddr)
		mon.Start()
	}

	log := logger.NewLogger(256)
	perm := logger.Allow

	pool := newPool(cfg, log, perm)
	defer pool.Close()

	e := engine.New(cfg, pool, log, perm)
	trace, stats, err := e.Run(stdctx.Background(), ctx)
	if err != nil {
		return fmt.Errorf("run %s: %w", args[0], err)
	}

	if mon != nil {
		mon.RecordNodes(len(trace.Tree.Keys()))
		mon.RecordSolverCall(stats.Elapsed.Nanoseconds())
	}

	summarize(trace, stats)

	if runVerbose {
		log.Write(os.Stdout)
	}
	return nil
}

func summarize(trace *engine.Trace, stats engine.Stats) {
	leafs := trace.Tree.Leafs()
	halted, satisfiable := 0, 0
	for _, id := range leafs {
		leafCtx, ok := trace.ContextAt(id)
		if !ok {
			continue
		}
		if leafCtx.Halted() {
			halted++
		}
		if leafCtx.Solution.Kind == isactx.Satisfiable {
			satisfiable++
		}
	}

	fmt.Printf("steps=%d nodes=%d leaves=%d halted=%d satisfiable=%d solver-calls=%d solver-elapsed=%s\n",
		stats.Steps, len(trace.Tree.Keys()), len(leafs), halted, satisfiable, stats.Calls, stats.Elapsed)
}
