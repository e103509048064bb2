// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Oakline packages.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that individual
// tests do not need direct time.After calls. These are the only place
// in the test suite where real wall-clock timeouts are used; package
// code under test always goes through lib/clock.
//
// [UniqueID] generates monotonically increasing identifiers for tests
// that need distinguishable account, card, or transfer IDs.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no Oakline-internal dependencies.
package testutil
