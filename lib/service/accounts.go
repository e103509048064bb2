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

// Accounts serves the customer's accounts, transactions, and
// statements from fixture data.
type Accounts struct {
	clock   clock.Clock
	latency time.Duration

	// mu guards the fixture state. Fetch commands run concurrently
	// off the UI goroutine.
	mu           sync.Mutex
	accounts     []Account
	transactions map[string][]Transaction
	statements   map[string][]Statement
}

// NewAccounts returns an account service over the given fixtures.
func NewAccounts(c clock.Clock, latency time.Duration, fixtures Fixtures) *Accounts {
	return &Accounts{
		clock:        c,
		latency:      latency,
		accounts:     fixtures.Accounts,
		transactions: fixtures.Transactions,
		statements:   fixtures.Statements,
	}
}

// List returns all accounts.
func (s *Accounts) List(ctx context.Context) ([]Account, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.accounts), nil
}

// Get returns one account by ID.
func (s *Accounts) Get(ctx context.Context, accountID string) (Account, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range s.accounts {
		if account.ID == accountID {
			return account, nil
		}
	}
	return Account{}, ErrAccountNotFound
}

// Transactions returns the posted transactions of an account, newest
// first.
func (s *Accounts) Transactions(ctx context.Context, accountID string) ([]Transaction, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accountExists(accountID) {
		return nil, ErrAccountNotFound
	}
	entries := slices.Clone(s.transactions[accountID])
	slices.SortFunc(entries, func(a, b Transaction) int {
		return b.PostedAt.Compare(a.PostedAt)
	})
	return entries, nil
}

// Transaction returns one transaction of an account.
func (s *Accounts) Transaction(ctx context.Context, accountID, transactionID string) (Transaction, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.transactions[accountID] {
		if entry.ID == transactionID {
			return entry, nil
		}
	}
	return Transaction{}, ErrTransactionNotFound
}

// Statements returns the monthly statements of an account.
func (s *Accounts) Statements(ctx context.Context, accountID string) ([]Statement, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accountExists(accountID) {
		return nil, ErrAccountNotFound
	}
	return slices.Clone(s.statements[accountID]), nil
}

// debit applies a completed transfer to the account balance and
// transaction history. Called by the transfer service; not exported
// as API.
func (s *Accounts) debit(accountID string, amountCents int64, description string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID != accountID {
			continue
		}
		if s.accounts[i].BalanceCents < amountCents {
			return ErrInsufficientFunds
		}
		s.accounts[i].BalanceCents -= amountCents
		s.transactions[accountID] = append(s.transactions[accountID], Transaction{
			ID:          "TXN-" + at.Format("20060102150405"),
			AccountID:   accountID,
			Description: description,
			Category:    "transfer",
			AmountCents: -amountCents,
			PostedAt:    at,
		})
		return nil
	}
	return ErrAccountNotFound
}

// accountExists requires s.mu held.
func (s *Accounts) accountExists(accountID string) bool {
	for _, account := range s.accounts {
		if account.ID == accountID {
			return true
		}
	}
	return false
}
