// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import "time"

// Fixtures is the seed data shared by the mock services. Construct
// custom fixtures in tests; production uses [DefaultFixtures].
type Fixtures struct {
	Accounts      []Account
	Transactions  map[string][]Transaction
	Statements    map[string][]Statement
	Cards         []Card
	Beneficiaries []Beneficiary
	Notices       []Notice

	Credentials map[string]string
	OTPCode     string
	Profile     Profile
}

// DefaultFixtures returns the demo dataset the app ships with.
func DefaultFixtures() Fixtures {
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 8, d, hour, 0, 0, 0, time.UTC)
	}

	return Fixtures{
		Accounts: []Account{
			{ID: "ACC001", Name: "Everyday Checking", Number: "****2201", Currency: "USD", BalanceCents: 482_350},
			{ID: "ACC002", Name: "Rainy Day Savings", Number: "****7730", Currency: "USD", BalanceCents: 1_265_000},
			{ID: "ACC003", Name: "Travel Fund", Number: "****1145", Currency: "EUR", BalanceCents: 94_020},
		},
		Transactions: map[string][]Transaction{
			"ACC001": {
				{ID: "TXN1001", AccountID: "ACC001", Description: "Corner Grocer", Category: "groceries", AmountCents: -5_423, PostedAt: day(20, 18)},
				{ID: "TXN1002", AccountID: "ACC001", Description: "Monthly salary", Category: "income", AmountCents: 420_000, PostedAt: day(15, 9)},
				{ID: "TXN1003", AccountID: "ACC001", Description: "Transit pass", Category: "transport", AmountCents: -9_900, PostedAt: day(14, 7)},
				{ID: "TXN1004", AccountID: "ACC001", Description: "Caffè Aurora", Category: "dining", AmountCents: -780, PostedAt: day(12, 8)},
			},
			"ACC002": {
				{ID: "TXN2001", AccountID: "ACC002", Description: "Interest credit", Category: "interest", AmountCents: 2_104, PostedAt: day(1, 0)},
				{ID: "TXN2002", AccountID: "ACC002", Description: "Scheduled saving", Category: "transfer", AmountCents: 50_000, PostedAt: day(1, 6)},
			},
			"ACC003": {
				{ID: "TXN3001", AccountID: "ACC003", Description: "Hotel deposit refund", Category: "travel", AmountCents: 15_000, PostedAt: day(8, 14)},
			},
		},
		Statements: map[string][]Statement{
			"ACC001": {
				{AccountID: "ACC001", Month: "2026-07", OpeningCents: 310_450, ClosingCents: 478_453, EntryCount: 42},
				{AccountID: "ACC001", Month: "2026-06", OpeningCents: 295_120, ClosingCents: 310_450, EntryCount: 37},
			},
			"ACC002": {
				{AccountID: "ACC002", Month: "2026-07", OpeningCents: 1_212_896, ClosingCents: 1_265_000, EntryCount: 2},
			},
		},
		Cards: []Card{
			{ID: "CARD001", AccountID: "ACC001", MaskedPAN: "4921 **** **** 0042", Network: "Visa", Status: CardActive, LimitCents: 250_000, ExpiryMonth: "09/28"},
			{ID: "CARD002", AccountID: "ACC001", MaskedPAN: "5310 **** **** 7811", Network: "Mastercard", Status: CardLocked, LimitCents: 100_000, ExpiryMonth: "01/27"},
		},
		Beneficiaries: []Beneficiary{
			{ID: "BEN001", Name: "Maya Lindqvist", AccountNumber: "SE45 5000 0000 0583 9825 7466", BankName: "Nordbanken"},
			{ID: "BEN002", Name: "Tom Okafor", AccountNumber: "GB29 NWBK 6016 1331 9268 19", BankName: "NatWest"},
		},
		Notices: []Notice{
			{
				ID:    "N001",
				Title: "Scheduled maintenance this weekend",
				Body: "## Scheduled maintenance\n\nOnline banking will be unavailable on **Sunday 06:00–08:00 UTC** " +
					"while we upgrade our core systems.\n\n- Card payments are unaffected\n- Scheduled transfers run after the window\n",
				PublishedAt: day(21, 10),
			},
			{
				ID:    "N002",
				Title: "New savings rate from September",
				Body: "## Savings rate change\n\nFrom **1 September** the Rainy Day Savings rate rises to `2.4%` APY. " +
					"No action needed — the new rate applies automatically.\n",
				PublishedAt: day(18, 9),
			},
			{
				ID:    "N003",
				Title: "Travel notice reminder",
				Body: "Heading abroad? Set a travel notice in *More → Security* so card payments " +
					"aren't flagged while you're away.\n",
				PublishedAt: day(5, 12),
			},
		},
		Credentials: map[string]string{"demo": "1234"},
		OTPCode:     "000000",
		Profile: Profile{
			Name:  "Alex Riverton",
			Email: "alex.riverton@example.com",
			Phone: "+1 555 0147",
		},
	}
}
