// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/chembal/balance"
	"github.com/katalvlaran/chembal/equation"
	"github.com/katalvlaran/chembal/solver"
	"gopkg.in/yaml.v3"
)

// errBadConfig marks semantically invalid configuration values.
var errBadConfig = errors.New("chembal: invalid config")

// Config is the CLI configuration. It can be loaded from a YAML file:
//
//	max_bound: 12
//	arrows: ["->", "→", "="]
//	joiner: "+"
//	verbose: true
//
// Command-line flags override file values.
type Config struct {
	MaxBound int      `yaml:"max_bound"`
	Arrows   []string `yaml:"arrows"`
	Joiner   string   `yaml:"joiner"`
	Verbose  bool     `yaml:"verbose"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	eo := equation.DefaultOptions()

	return Config{
		MaxBound: solver.DefaultMaxBound,
		Arrows:   eo.Arrows,
		Joiner:   eo.Joiner,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return decodeConfig(f)
}

// decodeConfig decodes YAML from r, rejecting unknown keys. An empty
// document yields the defaults.
func decodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise panic in option constructors.
func (c Config) Validate() error {
	if c.MaxBound < 1 {
		return fmt.Errorf("%w: max_bound must be >= 1, got %d", errBadConfig, c.MaxBound)
	}
	if c.Joiner == "" {
		return fmt.Errorf("%w: joiner must be non-empty", errBadConfig)
	}
	usable := 0
	for _, a := range c.Arrows {
		if a == "" {
			continue
		}
		usable++
		if strings.Contains(a, c.Joiner) {
			return fmt.Errorf("%w: joiner %q occurs inside arrow %q", errBadConfig, c.Joiner, a)
		}
	}
	if usable == 0 {
		return fmt.Errorf("%w: at least one arrow is required", errBadConfig)
	}

	return nil
}

// Options converts a validated Config into balance options.
func (c Config) Options() []balance.Option {
	return []balance.Option{
		balance.WithMaxBound(c.MaxBound),
		balance.WithArrows(c.Arrows...),
		balance.WithJoiner(c.Joiner),
	}
}
