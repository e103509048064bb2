// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package prefstore persists the app's single durable preference: the
// biometric-login toggle. Nothing else survives a restart — navigation
// state in particular is never serialized.
//
// The preference lives in a small YAML file with owner-only
// permissions, read at call time so the auth service always sees the
// current value.
package prefstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// preferences is the on-disk document.
type preferences struct {
	BiometricEnabled bool `yaml:"biometric_enabled"`
}

// Store reads and writes the preference file at a fixed path.
type Store struct {
	path string
}

// New returns a store over the given file path. The file need not
// exist yet; a missing file reads as all-defaults.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is the preference file location under the user config
// directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(configDir, "oakline", "preferences.yaml"), nil
}

// BiometricEnabled reads the persisted toggle. A missing or unreadable
// file reads as false: the app never fails startup over a preference.
func (s *Store) BiometricEnabled() bool {
	prefs, err := s.load()
	if err != nil {
		return false
	}
	return prefs.BiometricEnabled
}

// SetBiometricEnabled persists the toggle, creating the parent
// directory on first write.
func (s *Store) SetBiometricEnabled(enabled bool) error {
	prefs, err := s.load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	prefs.BiometricEnabled = enabled

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating preference dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

func (s *Store) load() (preferences, error) {
	var prefs preferences
	data, err := os.ReadFile(s.path)
	if err != nil {
		return prefs, err
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return preferences{}, fmt.Errorf("decoding preferences: %w", err)
	}
	return prefs, nil
}
