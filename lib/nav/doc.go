// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package nav is Oakline's navigation core: per-feature coordinators
// owning a navigation stack and two modal slots, and the [App]
// coordinator that mediates tab selection, authentication gating, and
// deep-link dispatch across features.
//
// All state in this package is mutated from a single goroutine — the
// bubbletea update loop — so there is no locking. Asynchronous events
// (session expiry, deep links arriving from the OS) must be delivered
// into that goroutine as messages before they touch a coordinator.
//
// Key exports:
//
//   - [Item] -- unique-identity wrapper around a route
//   - [Coordinator] -- one feature's stack and modal slots
//   - [App] -- root aggregate: six coordinators, tab, auth, pending link
//   - [Parent] -- the child-to-parent request interface
package nav
