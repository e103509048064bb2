// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package route defines the typed navigation destinations of the
// Oakline app: one closed set of route values per feature tab, plus
// the composite [App] route that pairs a tab with an optional
// feature-specific destination.
//
// Routes are immutable value types. Two routes constructed from equal
// associated values compare equal and produce equal [Route.RouteID]
// strings. [Route.Segments] is the URL-path representation used for
// deep-link round-tripping (see lib/deeplink), and [Ancestors] is the
// chain of screens that must sit beneath a route on a navigation stack
// for back-navigation to reach it.
//
// Key exports:
//
//   - [Tab] -- the six feature tabs
//   - [Route] -- sealed interface over every destination
//   - [App] -- tab + optional route, the deep-link target type
//   - [Ancestors] -- stack reconstruction chain for a route
package route
