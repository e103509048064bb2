// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oakline-app/oakline/lib/clock"
)

var serviceEpoch = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

// instant returns an account service that answers without latency, for
// tests that only care about data behavior.
func instantAccounts() *Accounts {
	return NewAccounts(clock.Fake(serviceEpoch), 0, DefaultFixtures())
}

func TestAccountsList(t *testing.T) {
	accounts, err := instantAccounts().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("got %d accounts, want 3", len(accounts))
	}
}

func TestAccountsGet(t *testing.T) {
	s := instantAccounts()

	account, err := s.Get(context.Background(), "ACC001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if account.Name != "Everyday Checking" {
		t.Errorf("account name = %q", account.Name)
	}

	if _, err := s.Get(context.Background(), "ACC999"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("unknown account error = %v, want ErrAccountNotFound", err)
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	entries, err := instantAccounts().Transactions(context.Background(), "ACC001")
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("got %d transactions", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].PostedAt.After(entries[i-1].PostedAt) {
			t.Errorf("transactions out of order at %d: %v after %v", i, entries[i].PostedAt, entries[i-1].PostedAt)
		}
	}

	if _, err := instantAccounts().Transactions(context.Background(), "ACC999"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("unknown account error = %v, want ErrAccountNotFound", err)
	}
}

func TestTransactionLookup(t *testing.T) {
	s := instantAccounts()
	entry, err := s.Transaction(context.Background(), "ACC001", "TXN1002")
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if entry.AmountCents != 420_000 {
		t.Errorf("amount = %d", entry.AmountCents)
	}
	if _, err := s.Transaction(context.Background(), "ACC001", "TXN9999"); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("unknown transaction error = %v, want ErrTransactionNotFound", err)
	}
}

func TestSimulatedLatency(t *testing.T) {
	fake := clock.Fake(serviceEpoch)
	s := NewAccounts(fake, 300*time.Millisecond, DefaultFixtures())

	type result struct {
		accounts []Account
		err      error
	}
	done := make(chan result, 1)
	go func() {
		accounts, err := s.List(context.Background())
		done <- result{accounts, err}
	}()

	// The call parks on the fake clock until time advances.
	fake.WaitForTimers(1)
	select {
	case <-done:
		t.Fatal("List returned before the latency elapsed")
	default:
	}

	fake.Advance(300 * time.Millisecond)
	r := <-done
	if r.err != nil {
		t.Fatalf("List: %v", r.err)
	}
	if len(r.accounts) != 3 {
		t.Errorf("got %d accounts", len(r.accounts))
	}
}

func TestFetchCancellation(t *testing.T) {
	fake := clock.Fake(serviceEpoch)
	s := NewAccounts(fake, time.Second, DefaultFixtures())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.List(ctx)
		done <- err
	}()

	fake.WaitForTimers(1)
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled fetch error = %v, want context.Canceled", err)
	}
}

func TestTransfersSubmitDebitsAccount(t *testing.T) {
	fake := clock.Fake(serviceEpoch)
	fixtures := DefaultFixtures()
	accounts := NewAccounts(fake, 0, fixtures)
	transfers := NewTransfers(fake, 0, accounts, fixtures)
	ctx := context.Background()

	before, _ := accounts.Get(ctx, "ACC001")
	receipt, err := transfers.Submit(ctx, TransferRequest{
		FromAccountID: "ACC001",
		BeneficiaryID: "BEN001",
		AmountCents:   12_500,
		Reference:     "rent share",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if receipt.ID == "" {
		t.Error("receipt should carry an ID")
	}

	after, _ := accounts.Get(ctx, "ACC001")
	if after.BalanceCents != before.BalanceCents-12_500 {
		t.Errorf("balance = %d, want %d", after.BalanceCents, before.BalanceCents-12_500)
	}

	// The receipt is retrievable for the confirmation screen.
	loaded, err := transfers.Receipt(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("Receipt: %v", err)
	}
	if loaded.Request.Reference != "rent share" {
		t.Errorf("loaded reference = %q", loaded.Request.Reference)
	}
}

func TestTransfersSubmitValidation(t *testing.T) {
	fake := clock.Fake(serviceEpoch)
	fixtures := DefaultFixtures()
	accounts := NewAccounts(fake, 0, fixtures)
	transfers := NewTransfers(fake, 0, accounts, fixtures)
	ctx := context.Background()

	cases := []struct {
		name    string
		request TransferRequest
		want    error
	}{
		{"zero amount", TransferRequest{FromAccountID: "ACC001", BeneficiaryID: "BEN001"}, ErrInvalidAmount},
		{"unknown beneficiary", TransferRequest{FromAccountID: "ACC001", BeneficiaryID: "BEN999", AmountCents: 100}, ErrBeneficiaryNotFound},
		{"unknown account", TransferRequest{FromAccountID: "ACC999", BeneficiaryID: "BEN001", AmountCents: 100}, ErrAccountNotFound},
		{"insufficient funds", TransferRequest{FromAccountID: "ACC003", BeneficiaryID: "BEN001", AmountCents: 10_000_000}, ErrInsufficientFunds},
	}
	for _, test := range cases {
		if _, err := transfers.Submit(ctx, test.request); !errors.Is(err, test.want) {
			t.Errorf("%s: error = %v, want %v", test.name, err, test.want)
		}
	}
}

func TestCardsLockAndLimit(t *testing.T) {
	fake := clock.Fake(serviceEpoch)
	s := NewCards(fake, 0, DefaultFixtures())
	ctx := context.Background()

	card, err := s.SetLocked(ctx, "CARD001", true)
	if err != nil {
		t.Fatalf("SetLocked: %v", err)
	}
	if card.Status != CardLocked {
		t.Errorf("status = %s, want locked", card.Status)
	}

	if _, err := s.SetLimit(ctx, "CARD001", 500_000); !errors.Is(err, ErrCardLocked) {
		t.Errorf("limit change on locked card error = %v, want ErrCardLocked", err)
	}

	card, err = s.SetLocked(ctx, "CARD001", false)
	if err != nil {
		t.Fatalf("SetLocked: %v", err)
	}
	if card.Status != CardActive {
		t.Errorf("status = %s, want active", card.Status)
	}
	if _, err := s.SetLimit(ctx, "CARD001", 500_000); err != nil {
		t.Errorf("SetLimit: %v", err)
	}
}
