// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import "time"

// Account is a bank account owned by the signed-in customer. Amounts
// are integer cents to keep arithmetic exact.
type Account struct {
	ID           string
	Name         string
	Number       string
	Currency     string
	BalanceCents int64
}

// Transaction is one posted entry on an account. Negative amounts are
// debits.
type Transaction struct {
	ID          string
	AccountID   string
	Description string
	Category    string
	AmountCents int64
	PostedAt    time.Time
}

// Statement is a monthly account statement stub.
type Statement struct {
	AccountID    string
	Month        string // "2026-02"
	OpeningCents int64
	ClosingCents int64
	EntryCount   int
}

// CardStatus is the lifecycle state of a payment card.
type CardStatus string

const (
	CardActive CardStatus = "active"
	CardLocked CardStatus = "locked"
)

// Card is a payment card linked to an account.
type Card struct {
	ID          string
	AccountID   string
	MaskedPAN   string
	Network     string
	Status      CardStatus
	LimitCents  int64
	ExpiryMonth string // "09/28"
}

// Beneficiary is a saved transfer recipient.
type Beneficiary struct {
	ID            string
	Name          string
	AccountNumber string
	BankName      string
}

// TransferRequest describes a transfer the user wants to make.
type TransferRequest struct {
	FromAccountID string
	BeneficiaryID string
	AmountCents   int64
	Reference     string
}

// TransferReceipt is the record of a completed transfer.
type TransferReceipt struct {
	ID          string
	Request     TransferRequest
	CompletedAt time.Time
}

// Notice is a bank notice or offer shown on the home tab. Body is
// markdown, rendered by the UI layer.
type Notice struct {
	ID          string
	Title       string
	Body        string
	PublishedAt time.Time
}

// Profile is the account holder's contact record.
type Profile struct {
	Name  string
	Email string
	Phone string
}
