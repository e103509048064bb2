// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the Oakline
// binary.
//
// Configuration is loaded from a single file specified by either the
// OAKLINE_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks and no automatic file
// search; a missing OAKLINE_CONFIG simply yields [Default]. This keeps
// configuration deterministic with no hidden overrides.
//
// Variable expansion (${HOME} and friends) is performed on the
// preferences path after loading. Durations are written in Go syntax
// ("300ms", "5m").
//
// Key exports:
//
//   - [Config] -- scheme, default tab, latency, session TTL, paths
//   - [Default] -- development defaults
//   - [Load] and [LoadFile] -- the two entry points
package config
