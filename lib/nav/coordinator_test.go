// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"testing"

	"github.com/oakline-app/oakline/lib/route"
)

func routeIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.Route.RouteID()
	}
	return ids
}

func expectStack(t *testing.T, c *Coordinator, want ...route.Route) {
	t.Helper()
	items := c.Items()
	if len(items) != len(want) {
		t.Fatalf("stack depth = %d (%v), want %d", len(items), routeIDs(items), len(want))
	}
	for i := range want {
		if items[i].Route.RouteID() != want[i].RouteID() {
			t.Errorf("stack[%d] = %s, want %s", i, items[i].Route.RouteID(), want[i].RouteID())
		}
	}
}

func TestPushPop(t *testing.T) {
	c := NewCoordinator(route.TabAccounts, nil)

	c.Push(route.AccountDetail{AccountID: "X"})
	c.Push(route.AccountTransactions{AccountID: "Y"})
	c.Pop()
	expectStack(t, c, route.AccountDetail{AccountID: "X"})

	c.Pop()
	expectStack(t, c)

	// Pop on an empty stack is a silent no-op.
	c.Pop()
	expectStack(t, c)
}

func TestPopToRootIdempotent(t *testing.T) {
	c := NewCoordinator(route.TabCards, nil)
	c.Push(route.CardDetail{CardID: "C1"})
	c.Push(route.CardSettings{CardID: "C1"})
	c.Push(route.CardPINChange{CardID: "C1"})

	c.PopToRoot()
	expectStack(t, c)

	c.PopToRoot()
	expectStack(t, c)
}

func TestSameRouteTwice(t *testing.T) {
	// The same route may appear twice; the items carry distinct
	// identities.
	c := NewCoordinator(route.TabAccounts, nil)
	detail := route.AccountDetail{AccountID: "A"}
	c.Push(detail)
	c.Push(detail)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("depth = %d, want 2", len(items))
	}
	if items[0].ID == items[1].ID {
		t.Error("two pushes of the same route should produce distinct item IDs")
	}
	if items[0].Route != items[1].Route {
		t.Error("both items should carry the same route value")
	}
}

func TestTruncate(t *testing.T) {
	a := route.AccountDetail{AccountID: "A"}
	b := route.AccountTransactions{AccountID: "A"}
	d := route.TransactionDetail{AccountID: "A", TransactionID: "T"}

	c := NewCoordinator(route.TabAccounts, nil)
	c.Push(a)
	c.Push(b)
	c.Push(d)

	// Stack [A, B, C]; truncate to depth 1 leaves [A].
	c.Truncate(1)
	expectStack(t, c, a)

	// Truncating to a satisfied depth is a no-op.
	c.Truncate(1)
	expectStack(t, c, a)
	c.Truncate(5)
	expectStack(t, c, a)

	c.Truncate(0)
	expectStack(t, c)
	c.Truncate(-1)
	expectStack(t, c)
}

func TestTruncatePreservesPrefixIdentity(t *testing.T) {
	c := NewCoordinator(route.TabAccounts, nil)
	c.Push(route.AccountDetail{AccountID: "A"})
	c.Push(route.AccountTransactions{AccountID: "A"})
	kept := c.Items()[0]

	c.Truncate(1)
	top, ok := c.Top()
	if !ok || top.ID != kept.ID {
		t.Error("truncation must keep the existing prefix items, not rebuild them")
	}
}

func TestPresentAndDismiss(t *testing.T) {
	c := NewCoordinator(route.TabTransfer, nil)
	c.Push(route.NewTransfer{})

	c.Present(route.BeneficiaryList{}, false)
	if _, ok := c.Sheet(); !ok {
		t.Fatal("sheet slot should be occupied")
	}
	if _, ok := c.FullScreen(); ok {
		t.Fatal("full-screen slot should be empty")
	}

	// Presenting over an occupied slot replaces silently.
	c.Present(route.AddBeneficiary{}, false)
	sheet, _ := c.Sheet()
	if sheet.Route.RouteID() != (route.AddBeneficiary{}).RouteID() {
		t.Errorf("sheet = %s, want addBeneficiary", sheet.Route.RouteID())
	}

	// Slots are independent of each other and of the stack.
	c.Present(route.TransferConfirmation{TransferID: "X"}, true)
	if _, ok := c.Sheet(); !ok {
		t.Error("presenting full-screen must not clear the sheet")
	}
	expectStack(t, c, route.NewTransfer{})

	c.Dismiss()
	if _, ok := c.Sheet(); ok {
		t.Error("dismiss should clear the sheet slot")
	}
	if _, ok := c.FullScreen(); ok {
		t.Error("dismiss should clear the full-screen slot")
	}
	expectStack(t, c, route.NewTransfer{})

	// Dismiss with nothing presented is a no-op.
	c.Dismiss()
}

func TestHandleRouteRebuildsAncestry(t *testing.T) {
	c := NewCoordinator(route.TabAccounts, nil)
	c.Push(route.AccountDetail{AccountID: "OLD"})

	// Deep link to oakline://accounts/ACC1/transactions: the stack
	// becomes [detail(ACC1), transactions(ACC1)].
	c.HandleRoute(route.AccountTransactions{AccountID: "ACC1"})
	expectStack(t, c,
		route.AccountDetail{AccountID: "ACC1"},
		route.AccountTransactions{AccountID: "ACC1"},
	)

	// A third-level target yields a 3-element stack in ancestor-then-
	// leaf order.
	c.HandleRoute(route.TransactionDetail{AccountID: "ACC1", TransactionID: "T7"})
	expectStack(t, c,
		route.AccountDetail{AccountID: "ACC1"},
		route.AccountTransactions{AccountID: "ACC1"},
		route.TransactionDetail{AccountID: "ACC1", TransactionID: "T7"},
	)

	// A top-level target yields a single-element stack.
	c.HandleRoute(route.AccountDetail{AccountID: "ACC2"})
	expectStack(t, c, route.AccountDetail{AccountID: "ACC2"})
}

func TestReset(t *testing.T) {
	c := NewCoordinator(route.TabCards, nil)
	c.Push(route.CardDetail{CardID: "C"})
	c.Present(route.CardSettings{CardID: "C"}, false)
	c.Present(route.CardPINChange{CardID: "C"}, true)

	c.Reset()
	expectStack(t, c)
	if _, ok := c.Sheet(); ok {
		t.Error("reset should clear the sheet")
	}
	if _, ok := c.FullScreen(); ok {
		t.Error("reset should clear the full-screen slot")
	}
}
