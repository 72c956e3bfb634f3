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

	"github.com/geo2a/isa-symexec/isa/engine"
	"github.com/geo2a/isa-symexec/isa/tree"
	"github.com/geo2a/isa-symexec/logger"
)

var dumpOut string

var dumpCmd = &cobra.Command{
	Use:   "dump <scenario>",
	Short: "Run a named scenario and render its state tree as a Graphviz graph",
	Args:  cobra.ExactArgs(1),
	RunE:  dumpScenario,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOut, "out", "o", "", "write the graph here instead of stdout")
}

func dumpScenario(cmd *cobra.Command, args []string) error {
	ctx, err := lookupScenario(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// No Pool: dump is a pure shape inspector, spec.md §4.F's "nil Pool
	// is legal" exists for exactly this kind of caller.
	e := engine.New(cfg, nil, nil, logger.Allow)
	trace, _, err := e.Run(stdctx.Background(), ctx)
	if err != nil {
		return fmt.Errorf("run %s: %w", args[0], err)
	}

	w := os.Stdout
	if dumpOut != "" {
		f, err := os.Create(dumpOut)
		if err != nil {
			return fmt.Errorf("open %s: %w", dumpOut, err)
		}
		defer f.Close()
		tree.Visualize(f, trace.Tree)
		return nil
	}
	tree.Visualize(w, trace.Tree)
	return nil
}
