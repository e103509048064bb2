// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package bankui implements the Oakline terminal banking interface as
// a bubbletea application. The top-level [Model] owns the navigation
// state (a [nav.App] of per-tab coordinators) and a lazily built cache
// of screens, one per navigation item. Screens fetch their data from
// the mock services asynchronously; results are routed back by the
// owning item's ID, so a result arriving after its screen was popped
// is dropped rather than applied to the wrong screen.
package bankui
