// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/oakline-app/oakline/lib/clock"
)

// Transfers serves saved beneficiaries and executes mock transfers
// against the account service's balances.
type Transfers struct {
	clock   clock.Clock
	latency time.Duration

	accounts *Accounts

	// mu guards the mutable state below. Fetch commands run
	// concurrently off the UI goroutine.
	mu            sync.Mutex
	beneficiaries []Beneficiary
	receipts      []TransferReceipt
	nextID        int
}

// NewTransfers returns a transfer service over the given fixtures,
// debiting balances through the account service.
func NewTransfers(c clock.Clock, latency time.Duration, accounts *Accounts, fixtures Fixtures) *Transfers {
	return &Transfers{
		clock:         c,
		latency:       latency,
		accounts:      accounts,
		beneficiaries: fixtures.Beneficiaries,
		nextID:        1,
	}
}

// Beneficiaries returns the saved recipients.
func (s *Transfers) Beneficiaries(ctx context.Context) ([]Beneficiary, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.beneficiaries), nil
}

// Beneficiary returns one saved recipient by ID.
func (s *Transfers) Beneficiary(ctx context.Context, beneficiaryID string) (Beneficiary, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Beneficiary{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupBeneficiary(beneficiaryID)
}

// AddBeneficiary saves a new recipient and returns it with an
// assigned ID.
func (s *Transfers) AddBeneficiary(ctx context.Context, beneficiary Beneficiary) (Beneficiary, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Beneficiary{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	beneficiary.ID = fmt.Sprintf("BEN%03d", len(s.beneficiaries)+1)
	s.beneficiaries = append(s.beneficiaries, beneficiary)
	return beneficiary, nil
}

// Submit executes a transfer: validates the request, debits the source
// account, and records a receipt.
func (s *Transfers) Submit(ctx context.Context, request TransferRequest) (TransferReceipt, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return TransferReceipt{}, err
	}
	if request.AmountCents <= 0 {
		return TransferReceipt{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	beneficiary, err := s.lookupBeneficiary(request.BeneficiaryID)
	if err != nil {
		return TransferReceipt{}, err
	}

	description := "Transfer to " + beneficiary.Name
	if request.Reference != "" {
		description += " (" + request.Reference + ")"
	}
	if err := s.accounts.debit(request.FromAccountID, request.AmountCents, description, s.clock.Now()); err != nil {
		return TransferReceipt{}, err
	}

	receipt := TransferReceipt{
		ID:          fmt.Sprintf("TRF%03d", s.nextID),
		Request:     request,
		CompletedAt: s.clock.Now(),
	}
	s.nextID++
	s.receipts = append(s.receipts, receipt)
	return receipt, nil
}

// Receipt returns the record of a completed transfer, as loaded by the
// confirmation screen from a deep link.
func (s *Transfers) Receipt(ctx context.Context, transferID string) (TransferReceipt, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return TransferReceipt{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, receipt := range s.receipts {
		if receipt.ID == transferID {
			return receipt, nil
		}
	}
	return TransferReceipt{}, ErrTransferNotFound
}

// lookupBeneficiary requires s.mu held.
func (s *Transfers) lookupBeneficiary(beneficiaryID string) (Beneficiary, error) {
	for _, beneficiary := range s.beneficiaries {
		if beneficiary.ID == beneficiaryID {
			return beneficiary, nil
		}
	}
	return Beneficiary{}, ErrBeneficiaryNotFound
}
