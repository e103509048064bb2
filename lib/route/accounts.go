// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

// AccountDetail shows a single account's balance and summary.
type AccountDetail struct {
	AccountID string
}

func (r AccountDetail) RouteID() string    { return "accountDetail-" + r.AccountID }
func (r AccountDetail) Segments() []string { return []string{r.AccountID} }
func (AccountDetail) Tab() Tab             { return TabAccounts }
func (AccountDetail) isRoute()             {}

// AccountTransactions shows the transaction history of an account.
type AccountTransactions struct {
	AccountID string
}

func (r AccountTransactions) RouteID() string { return "accountTransactions-" + r.AccountID }
func (r AccountTransactions) Segments() []string {
	return []string{r.AccountID, "transactions"}
}
func (AccountTransactions) Tab() Tab { return TabAccounts }
func (AccountTransactions) isRoute() {}

// TransactionDetail shows one transaction of an account.
type TransactionDetail struct {
	AccountID     string
	TransactionID string
}

func (r TransactionDetail) RouteID() string {
	return "transactionDetail-" + r.AccountID + "-" + r.TransactionID
}
func (r TransactionDetail) Segments() []string {
	return []string{r.AccountID, "transactions", r.TransactionID}
}
func (TransactionDetail) Tab() Tab { return TabAccounts }
func (TransactionDetail) isRoute() {}

// AccountStatements shows the monthly statements of an account.
type AccountStatements struct {
	AccountID string
}

func (r AccountStatements) RouteID() string { return "accountStatements-" + r.AccountID }
func (r AccountStatements) Segments() []string {
	return []string{r.AccountID, "statements"}
}
func (AccountStatements) Tab() Tab { return TabAccounts }
func (AccountStatements) isRoute() {}
