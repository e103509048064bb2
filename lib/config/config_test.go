// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oakline-app/oakline/lib/route"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oakline.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Scheme != "oakline" {
		t.Errorf("scheme = %q", cfg.Scheme)
	}
	if cfg.Tab() != route.TabHome {
		t.Errorf("default tab = %v", cfg.Tab())
	}
	if time.Duration(cfg.SessionTTL) != 5*time.Minute {
		t.Errorf("session TTL = %v", time.Duration(cfg.SessionTTL))
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
scheme: oakline-dev
default_tab: accounts
simulated_latency: 50ms
session_ttl: 90s
preferences_path: ${HOME}/prefs.yaml
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Scheme != "oakline-dev" {
		t.Errorf("scheme = %q", cfg.Scheme)
	}
	if cfg.Tab() != route.TabAccounts {
		t.Errorf("tab = %v", cfg.Tab())
	}
	if time.Duration(cfg.SimulatedLatency) != 50*time.Millisecond {
		t.Errorf("latency = %v", time.Duration(cfg.SimulatedLatency))
	}
	if time.Duration(cfg.SessionTTL) != 90*time.Second {
		t.Errorf("TTL = %v", time.Duration(cfg.SessionTTL))
	}
	if strings.Contains(cfg.PreferencesPath, "${") {
		t.Errorf("preferences path not expanded: %q", cfg.PreferencesPath)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "default_tab: cards\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Scheme != "oakline" {
		t.Errorf("scheme should default, got %q", cfg.Scheme)
	}
	if cfg.Tab() != route.TabCards {
		t.Errorf("tab = %v", cfg.Tab())
	}
}

func TestValidation(t *testing.T) {
	for name, body := range map[string]string{
		"empty scheme": "scheme: \"\"\n",
		"unknown tab":  "default_tab: loans\n",
		"bad duration": "session_ttl: soon\n",
	} {
		if _, err := LoadFile(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadWithoutEnvIsDefault(t *testing.T) {
	t.Setenv("OAKLINE_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme != "oakline" {
		t.Errorf("scheme = %q", cfg.Scheme)
	}
}
