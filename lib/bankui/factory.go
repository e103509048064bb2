// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"fmt"

	"github.com/oakline-app/oakline/lib/nav"
	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/tui"
)

// Factory builds screens for navigation items. The route set is
// closed, so Build is total: every route case maps to exactly one
// screen type.
type Factory struct {
	Services Services
	Theme    tui.Theme
}

// Build returns the screen for a pushed or presented item.
func (f *Factory) Build(item nav.Item) Screen {
	base := screenBase{id: item.ID}
	switch r := item.Route.(type) {
	case route.NoticeList:
		return &noticeListScreen{screenBase: base, f: f}
	case route.NoticeDetail:
		return &noticeDetailScreen{screenBase: base, f: f, noticeID: r.NoticeID}

	case route.AccountDetail:
		return &accountDetailScreen{screenBase: base, f: f, accountID: r.AccountID}
	case route.AccountTransactions:
		return &transactionListScreen{screenBase: base, f: f, accountID: r.AccountID}
	case route.TransactionDetail:
		return &transactionDetailScreen{
			screenBase:    base,
			f:             f,
			accountID:     r.AccountID,
			transactionID: r.TransactionID,
		}
	case route.AccountStatements:
		return &statementListScreen{screenBase: base, f: f, accountID: r.AccountID}

	case route.NewTransfer:
		return newTransferForm(item.ID, f, r.BeneficiaryID)
	case route.TransferConfirmation:
		return &transferConfirmationScreen{screenBase: base, f: f, transferID: r.TransferID}
	case route.BeneficiaryList:
		return &beneficiaryListScreen{screenBase: base, f: f}
	case route.AddBeneficiary:
		return newAddBeneficiaryForm(item.ID, f)

	case route.CardDetail:
		return &cardDetailScreen{screenBase: base, f: f, cardID: r.CardID}
	case route.CardSettings:
		return newCardSettingsForm(item.ID, f, r.CardID)
	case route.CardPINChange:
		return newCardPINForm(item.ID, f, r.CardID)

	case route.Profile:
		return &profileScreen{screenBase: base, f: f}
	case route.Settings:
		return &settingsScreen{screenBase: base, f: f}
	case route.Security:
		return &securityScreen{screenBase: base, f: f}
	case route.About:
		return &aboutScreen{screenBase: base, f: f}

	case route.Login:
		return newLoginScreen(item.ID, f)
	case route.OTPVerify:
		return newOTPScreen(item.ID, f)
	case route.ChangePassword:
		return newChangePINScreen(item.ID, f)
	}
	panic(fmt.Sprintf("bankui: no screen for route %T", item.Route))
}

// BuildRoot returns a tab's root screen. Roots are not navigation
// items; they use stable per-tab IDs so fetch results route correctly
// across logout resets.
func (f *Factory) BuildRoot(tab route.Tab) Screen {
	base := screenBase{id: "root:" + tab.Name()}
	switch tab {
	case route.TabHome:
		return &homeRootScreen{screenBase: base, f: f}
	case route.TabAccounts:
		return &accountListScreen{screenBase: base, f: f}
	case route.TabTransfer:
		return &transferRootScreen{screenBase: base, f: f}
	case route.TabCards:
		return &cardListScreen{screenBase: base, f: f}
	case route.TabMore:
		return &moreRootScreen{screenBase: base, f: f}
	case route.TabAuth:
		return newLoginScreen(base.id, f)
	}
	panic(fmt.Sprintf("bankui: no root screen for tab %v", tab))
}
