// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"time"

	"github.com/oakline-app/oakline/lib/clock"
)

// simulate blocks for the configured latency or until the context is
// cancelled, whichever comes first. Every mock fetch and mutation
// passes through here so screens see realistic loading states and
// in-flight cancellation.
func simulate(ctx context.Context, c clock.Clock, latency time.Duration) error {
	if latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-c.After(latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
