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

// Package config implements the engine's configuration surface named in
// spec.md §6: stepBudget, solverTimeout, simplifySteps. The teacher's own
// prefs package is a live-reloadable JSON preference store; this module's
// needs are much smaller, so it follows the same "small struct with a
// Default constructor and a file loader" shape but decodes YAML, the
// format the rest of the retrieval pack's own simulator configs use.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/geo2a/isa-symexec/isa/sym"
)

// Config is the engine's bounded-run configuration.
type Config struct {
	// StepBudget caps the number of fetch-decode-execute steps the engine
	// will take along any single path before it stops expanding.
	StepBudget int `yaml:"stepBudget"`

	// SolverTimeout bounds each individual SMT check-sat call; a timeout
	// is reported as context.Unknown, not an error.
	SolverTimeout time.Duration `yaml:"solverTimeout"`

	// SimplifySteps overrides sym.DefaultSimplifySteps when positive; zero
	// means "use the default".
	SimplifySteps int `yaml:"simplifySteps"`

	// PoolSize bounds how many SMT workers the engine's solver Pool runs
	// concurrently. Not named in spec.md §6 but required to make the
	// worker-pool sizing in spec.md §5 configurable rather than hardcoded.
	PoolSize int `yaml:"poolSize"`
}

// Default returns the configuration a caller gets without supplying one:
// a generous but finite step budget, a one-second solver timeout, the
// algebra's own default simplification cap, and a single-worker pool.
func Default() Config {
	return Config{
		StepBudget:    1000,
		SolverTimeout: time.Second,
		SimplifySteps: sym.DefaultSimplifySteps,
		PoolSize:      1,
	}
}

// EffectiveSimplifySteps returns c.SimplifySteps if set, else the
// algebra's own default.
func (c Config) EffectiveSimplifySteps() int {
	if c.SimplifySteps > 0 {
		return c.SimplifySteps
	}
	return sym.DefaultSimplifySteps
}

// Load decodes a Config from the YAML in data, starting from Default() so that a
// partial file only overrides the fields it mentions.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and decodes the YAML configuration file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Load(data)
}
