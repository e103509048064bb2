// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"slices"
	"time"

	"github.com/oakline-app/oakline/lib/clock"
)

// Notices serves the bank's notices and offers feed for the home tab.
type Notices struct {
	clock   clock.Clock
	latency time.Duration

	notices []Notice
}

// NewNotices returns a notice service over the given fixtures.
func NewNotices(c clock.Clock, latency time.Duration, fixtures Fixtures) *Notices {
	return &Notices{clock: c, latency: latency, notices: fixtures.Notices}
}

// List returns all notices, newest first.
func (s *Notices) List(ctx context.Context) ([]Notice, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return nil, err
	}
	notices := slices.Clone(s.notices)
	slices.SortFunc(notices, func(a, b Notice) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	return notices, nil
}

// Get returns one notice by ID.
func (s *Notices) Get(ctx context.Context, noticeID string) (Notice, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Notice{}, err
	}
	for _, notice := range s.notices {
		if notice.ID == noticeID {
			return notice, nil
		}
	}
	return Notice{}, ErrNoticeNotFound
}
