// Package config loads fieldguard settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/fieldguard/internal/locate"
	"github.com/sirkon/fieldguard/internal/report"
	"github.com/sirkon/fieldguard/internal/rules"
)

// Config is the configuration file content.
type Config struct {
	// Writes selects statements treated as writes.
	Writes locate.WriteMode `yaml:"writes"`

	// Workers limits files checked in parallel, 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Generated enables checks of generated files.
	Generated bool `yaml:"generated"`

	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig overrides a builtin rule with the same ID or defines a new one.
// Unset fields of an override keep builtin values.
type RuleConfig struct {
	ID                  string            `yaml:"id"`
	Title               string            `yaml:"title"`
	Category            string            `yaml:"category"`
	Message             string            `yaml:"message"`
	Severity            *report.Severity  `yaml:"severity"`
	Enabled             *bool             `yaml:"enabled"`
	Marker              string            `yaml:"marker"`
	Policy              *rules.Policy     `yaml:"policy"`
	ConstructorPrefixes []string          `yaml:"constructor_prefixes"`
	Initializers        []rules.Reference `yaml:"initializers"`
}

// Load reads the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration data. Unknown keys are errors, empty data is
// an empty configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}

	return &cfg, nil
}
