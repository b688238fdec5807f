// SPDX-License-Identifier: MIT

// Package config holds the spantree command configuration: a YAML file,
// optionally overridden by environment variables (which may come from .env
// files), in turn overridden by command-line flags in package cmd.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvMethod   = "SPANTREE_METHOD"
	EnvRoot     = "SPANTREE_ROOT"
	EnvOutput   = "SPANTREE_OUTPUT"
	EnvBase     = "SPANTREE_BASE"
	EnvLogLevel = "SPANTREE_LOG_LEVEL"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full command configuration.
type Config struct {
	Input  Input  `yaml:"input"`
	Output Output `yaml:"output"`
	Solver Solver `yaml:"solver"`
	Log    Log    `yaml:"log"`
}

// Input describes where the graph comes from.
type Input struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // text, csv, yaml; empty detects from Path
	Base   int    `yaml:"base"`
}

// Output describes how the comparison is rendered.
type Output struct {
	Format string `yaml:"format"` // text, yaml, json
	Notes  bool   `yaml:"notes"`
}

// Solver selects the algorithms.
type Solver struct {
	Method string `yaml:"method"` // kruskal, prim, both
	Root   int    `yaml:"root"`   // Prim's root, in input labels (Input.Base applies)
}

// Log configures logrus.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Input:  Input{Base: 1},
		Output: Output{Format: "text", Notes: true},
		Solver: Solver{Method: "both", Root: 1},
		Log:    Log{Level: "info"},
	}
}

// Load reads a YAML file over Default(). Keys absent from the file keep their
// defaults, except solver.root, which follows input.base when only the base
// is given.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	var set struct {
		Solver struct {
			Root *int `yaml:"root"`
		} `yaml:"solver"`
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if set.Solver.Root == nil {
		cfg.Solver.Root = cfg.Input.Base
	}

	return cfg, nil
}

// LoadEnvFiles loads .env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load env file %s", f)
		}
	}

	return nil
}

// ApplyEnv overrides cfg from SPANTREE_* variables read through lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMethod); ok {
		c.Solver.Method = strings.ToLower(v)
	}
	if v, ok := lookup(EnvOutput); ok {
		c.Output.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(v)
	}
	for name, dst := range map[string]*int{EnvBase: &c.Input.Base, EnvRoot: &c.Solver.Root} {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s=%q is not an integer", name, v)
		}
		*dst = n
	}
	if _, rootSet := lookup(EnvRoot); !rootSet {
		if _, baseSet := lookup(EnvBase); baseSet {
			c.Solver.Root = c.Input.Base
		}
	}

	return nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	checks := []struct {
		field, value string
		allowed      []string
	}{
		{"input.format", c.Input.Format, []string{"", "text", "csv", "yaml"}},
		{"output.format", c.Output.Format, []string{"text", "yaml", "json"}},
		{"solver.method", c.Solver.Method, []string{"kruskal", "prim", "both"}},
		{"log.level", c.Log.Level, []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}},
	}
	for _, chk := range checks {
		if !contains(chk.allowed, chk.value) {
			return errors.Wrapf(ErrInvalidConfig, "%s: %q not in %v", chk.field, chk.value, chk.allowed)
		}
	}
	if c.Solver.Root < c.Input.Base {
		return errors.Wrapf(ErrInvalidConfig, "solver.root: %d is below input.base %d", c.Solver.Root, c.Input.Base)
	}

	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}
