// Package config loads session defaults for the REPL from an
// optional YAML file. Grounded directly on
// theRebelliousNerd-codenerd's internal/config/config.go: a
// Load(path) that starts from Default(), reads the file, and treats a
// missing file as "use the defaults" rather than an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config seeds the process-wide flags the REPL exposes at startup
// (spec §6: "Persisted state. None. The KB is in-memory for the
// session." — this never stores KB content, only the session's
// starting posture).
type Config struct {
	OccursCheck bool   `yaml:"occurs_check"`
	MaxDepth    int    `yaml:"max_depth"`
	HistoryFile string `yaml:"history_file"`
	Verbose     bool   `yaml:"verbose"`
}

// Default returns the reference session posture: occurs check off
// (the permissive default that lets scenario 2's cyclic second
// answer through), the resolver's default depth bound (MaxDepth 0),
// no history file, quiet.
func Default() *Config {
	return &Config{
		OccursCheck: false,
		MaxDepth:    0,
		HistoryFile: "",
		Verbose:     false,
	}
}

// Load reads path as YAML over Default(), so an absent or partial
// file only overrides the fields it sets. A missing file is not an
// error — it just means "run with defaults."
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
