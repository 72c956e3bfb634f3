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

// Command symexec drives the symbolic execution core from the command
// line: run a reference program to a Trace, check an ACTL property
// against it, or dump its state tree as a Graphviz graph. It is the
// minimal CLI surface spec.md §1 leaves to "external harnesses", built
// the way the rest of the retrieval pack ships one root command fanning
// out to cobra subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geo2a/isa-symexec/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "symexec",
	Short: "Symbolic execution and ACTL model checking for the reference ISA",
	Long: `symexec runs the bounded fetch-decode-execute engine over one of the
named reference programs from spec.md §8, builds its state tree, and can
either report on the resulting Trace directly (run), check an ACTL
property against it (check), or render its tree as a Graphviz graph
(dump).`,
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFile(configPath)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default: built-in defaults)")
	rootCmd.AddCommand(runCmd, checkCmd, dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
