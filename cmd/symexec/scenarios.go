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
	"fmt"
	"sort"

	"github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/isa/engine"
)

// scenarios maps the names the run/check/dump subcommands accept to the
// reference programs engine/scenarios.go builds. There is no assembler
// (spec.md §1, §6 rule it out), so a named scenario is the only program
// source this CLI understands.
var scenarios = map[string]func() *context.Context{
	"addition":             engine.ScenarioAddition,
	"sum-to-n":             engine.ScenarioSumToN,
	"motor-control":        engine.ScenarioMotorControl,
	"loadmi-unconstrained": engine.ScenarioLoadMIUnconstrained,
	"loadmi-constrained":   engine.ScenarioLoadMIConstrained,
	"division-by-zero":     engine.ScenarioDivisionByZero,
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupScenario(name string) (*context.Context, error) {
	build, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (want one of %v)", name, scenarioNames())
	}
	return build(), nil
}
