// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oakline-app/oakline/lib/route"
)

// Config is the master configuration for the Oakline app.
type Config struct {
	// Scheme is the deep-link URL scheme the app answers to.
	Scheme string `yaml:"scheme"`

	// DefaultTab is the feature name selected at startup and after
	// logout.
	DefaultTab string `yaml:"default_tab"`

	// SimulatedLatency is how long mock services wait before
	// answering. Zero answers immediately.
	SimulatedLatency Duration `yaml:"simulated_latency"`

	// SessionTTL bounds how long a session lives without activity.
	// Zero disables expiry.
	SessionTTL Duration `yaml:"session_ttl"`

	// PreferencesPath overrides the preference file location.
	// Supports ${VAR} expansion. Empty selects the user config dir.
	PreferencesPath string `yaml:"preferences_path"`
}

// Duration is a time.Duration that unmarshals from Go duration syntax.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns a Config with development defaults.
func Default() *Config {
	return &Config{
		Scheme:           "oakline",
		DefaultTab:       "home",
		SimulatedLatency: Duration(400 * time.Millisecond),
		SessionTTL:       Duration(5 * time.Minute),
	}
}

// Load reads the config file named by OAKLINE_CONFIG. An unset
// variable yields Default() — the app runs without any config file.
func Load() (*Config, error) {
	path := os.Getenv("OAKLINE_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a config file. Unset fields take their
// defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.PreferencesPath = os.ExpandEnv(cfg.PreferencesPath)
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scheme == "" {
		return fmt.Errorf("scheme must not be empty")
	}
	if _, ok := route.TabFromName(c.DefaultTab); !ok {
		return fmt.Errorf("unknown default_tab %q", c.DefaultTab)
	}
	if c.SimulatedLatency < 0 {
		return fmt.Errorf("simulated_latency must not be negative")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must not be negative")
	}
	return nil
}

// Tab resolves the configured default tab.
func (c *Config) Tab() route.Tab {
	tab, ok := route.TabFromName(c.DefaultTab)
	if !ok {
		return route.TabHome
	}
	return tab
}
