// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides Oakline's mock backend: in-memory data
// services with simulated latency, and the auth service that owns the
// session.
//
// There is no network layer. Each service holds fixed fixture data,
// scans it linearly, and waits a configured latency through an
// injected [clock.Clock] before answering, so screens exercise real
// loading and error states. All methods take a context and honor
// cancellation during the latency wait. Failures are closed sentinel
// error sets per service; callers interpret them only as "failed,
// offer retry". All services are safe for concurrent use: fetch
// commands run on their own goroutines.
//
// [Auth] is the one service with behavior of its own: it publishes
// the authenticated flag over a subscription channel and owns a
// session-expiry timer that can flip the flag without user action.
package service
