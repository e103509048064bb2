// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"testing"

	"github.com/oakline-app/oakline/lib/clock"
	"github.com/oakline-app/oakline/lib/nav"
	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/service"
	"github.com/oakline-app/oakline/lib/tui"
)

func newTestFactory() *Factory {
	clk := clock.Real()
	fixtures := service.DefaultFixtures()
	accounts := service.NewAccounts(clk, 0, fixtures)
	return &Factory{
		Services: Services{
			Accounts:  accounts,
			Transfers: service.NewTransfers(clk, 0, accounts, fixtures),
			Cards:     service.NewCards(clk, 0, fixtures),
			Notices:   service.NewNotices(clk, 0, fixtures),
			Auth:      service.NewAuth(clk, 0, 0, fixtures, func() bool { return false }),
		},
		Theme: tui.DefaultTheme,
	}
}

// Build must be total over the route set: a route case without a
// screen would panic at navigation time.
func TestBuildCoversEveryRoute(t *testing.T) {
	routes := []route.Route{
		route.NoticeList{},
		route.NoticeDetail{NoticeID: "N001"},
		route.AccountDetail{AccountID: "ACC001"},
		route.AccountTransactions{AccountID: "ACC001"},
		route.TransactionDetail{AccountID: "ACC001", TransactionID: "TXN1001"},
		route.AccountStatements{AccountID: "ACC001"},
		route.NewTransfer{},
		route.NewTransfer{BeneficiaryID: "BEN001"},
		route.TransferConfirmation{TransferID: "TRF001"},
		route.BeneficiaryList{},
		route.AddBeneficiary{},
		route.CardDetail{CardID: "CARD001"},
		route.CardSettings{CardID: "CARD001"},
		route.CardPINChange{CardID: "CARD001"},
		route.Profile{},
		route.Settings{},
		route.Security{},
		route.About{},
		route.Login{},
		route.OTPVerify{},
		route.ChangePassword{},
	}

	factory := newTestFactory()
	for _, r := range routes {
		item := nav.NewItem(r)
		screen := factory.Build(item)
		if screen == nil {
			t.Fatalf("Build(%T) returned nil", r)
		}
		if screen.ID() != item.ID {
			t.Fatalf("Build(%T) screen ID = %q, want item ID %q", r, screen.ID(), item.ID)
		}
		if screen.Title() == "" {
			t.Fatalf("Build(%T) has an empty title", r)
		}
	}
}

func TestBuildRootCoversEveryTab(t *testing.T) {
	factory := newTestFactory()
	tabs := []route.Tab{
		route.TabHome, route.TabAccounts, route.TabTransfer,
		route.TabCards, route.TabMore, route.TabAuth,
	}
	seen := make(map[string]route.Tab)
	for _, tab := range tabs {
		screen := factory.BuildRoot(tab)
		if screen == nil {
			t.Fatalf("BuildRoot(%v) returned nil", tab)
		}
		if other, dup := seen[screen.ID()]; dup {
			t.Fatalf("tabs %v and %v share root ID %q", other, tab, screen.ID())
		}
		seen[screen.ID()] = tab
	}
}
