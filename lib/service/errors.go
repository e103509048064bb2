// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

// Closed error sets, one small group per service. Screens treat them
// as opaque "failed, offer retry" signals; only tests and mock logic
// distinguish the cases.
var (
	ErrAccountNotFound     = errors.New("service: account not found")
	ErrTransactionNotFound = errors.New("service: transaction not found")

	ErrCardNotFound = errors.New("service: card not found")
	ErrCardLocked   = errors.New("service: card is locked")

	ErrBeneficiaryNotFound = errors.New("service: beneficiary not found")
	ErrTransferNotFound    = errors.New("service: transfer not found")
	ErrInsufficientFunds   = errors.New("service: insufficient funds")
	ErrInvalidAmount       = errors.New("service: invalid amount")

	ErrNoticeNotFound = errors.New("service: notice not found")

	ErrInvalidCredentials = errors.New("service: invalid credentials")
	ErrInvalidOTP         = errors.New("service: invalid one-time code")
	ErrNotAuthenticated   = errors.New("service: not authenticated")
	ErrBiometricDisabled  = errors.New("service: biometric login disabled")
)
