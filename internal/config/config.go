// SPDX-License-Identifier: MIT

// Package config loads the optional YAML configuration of the wtamin CLI.
//
//	epsilon: 1e-5
//	log_level: info
//	grammar: grammars/counter.txt
//	demo: counter
//	trees:
//	  - "(a c)"
//	  - "(b c (a c))"
//
// Unknown keys are rejected. Command-line flags override every field.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/wta/matrix"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the CLI configuration.
type Config struct {
	Epsilon  float64  `yaml:"epsilon"`
	LogLevel string   `yaml:"log_level"`
	Grammar  string   `yaml:"grammar"`
	Demo     string   `yaml:"demo"`
	Trees    []string `yaml:"trees"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Epsilon: matrix.DefaultEpsilon, LogLevel: "info"}
}

// Load reads a configuration from r on top of Default.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads the configuration stored at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every field.
func (c Config) Validate() error {
	if !matrix.ValidateEpsilon(c.Epsilon) {
		return fmt.Errorf("epsilon %g: %w", c.Epsilon, ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Grammar != "" && c.Demo != "" {
		return fmt.Errorf("grammar and demo are exclusive: %w", ErrInvalid)
	}

	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)

	return l
}

// ParseLevel maps debug, info, warn and error to slog levels; "" is info.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, ErrInvalid)
	}

	return l, nil
}
