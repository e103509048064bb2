// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/oakline-app/oakline/lib/clock"
)

// Cards serves the customer's payment cards and their controls.
type Cards struct {
	clock   clock.Clock
	latency time.Duration

	// mu guards the card state. Fetch commands run concurrently off
	// the UI goroutine.
	mu    sync.Mutex
	cards []Card
}

// NewCards returns a card service over the given fixtures.
func NewCards(c clock.Clock, latency time.Duration, fixtures Fixtures) *Cards {
	return &Cards{clock: c, latency: latency, cards: fixtures.Cards}
}

// List returns all cards.
func (s *Cards) List(ctx context.Context) ([]Card, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cards), nil
}

// Get returns one card by ID.
func (s *Cards) Get(ctx context.Context, cardID string) (Card, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	card, _, err := s.lookup(cardID)
	return card, err
}

// SetLocked locks or unlocks a card. Locking an already-locked card
// is a no-op, matching the idempotent toggle in the UI.
func (s *Cards) SetLocked(ctx context.Context, cardID string, locked bool) (Card, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, index, err := s.lookup(cardID)
	if err != nil {
		return Card{}, err
	}
	if locked {
		s.cards[index].Status = CardLocked
	} else {
		s.cards[index].Status = CardActive
	}
	return s.cards[index], nil
}

// SetLimit updates a card's spending limit. Locked cards reject
// changes.
func (s *Cards) SetLimit(ctx context.Context, cardID string, limitCents int64) (Card, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	card, index, err := s.lookup(cardID)
	if err != nil {
		return Card{}, err
	}
	if card.Status == CardLocked {
		return Card{}, ErrCardLocked
	}
	if limitCents <= 0 {
		return Card{}, ErrInvalidAmount
	}
	s.cards[index].LimitCents = limitCents
	return s.cards[index], nil
}

// lookup requires s.mu held.
func (s *Cards) lookup(cardID string) (Card, int, error) {
	for i, card := range s.cards {
		if card.ID == cardID {
			return card, i, nil
		}
	}
	return Card{}, 0, ErrCardNotFound
}
