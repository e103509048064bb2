// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

import "testing"

func TestRouteIDStability(t *testing.T) {
	// Equal associated values must produce equal IDs; the same case
	// with different values must not.
	a := AccountDetail{AccountID: "ACC123"}
	b := AccountDetail{AccountID: "ACC123"}
	c := AccountDetail{AccountID: "ACC999"}

	if a.RouteID() != b.RouteID() {
		t.Errorf("equal routes produced different IDs: %q vs %q", a.RouteID(), b.RouteID())
	}
	if a.RouteID() == c.RouteID() {
		t.Errorf("distinct routes share ID %q", a.RouteID())
	}
	if a != b {
		t.Error("routes with equal values should compare equal")
	}
}

func TestRouteIDUniqueAcrossCases(t *testing.T) {
	routes := []Route{
		NoticeList{},
		NoticeDetail{NoticeID: "N1"},
		AccountDetail{AccountID: "A1"},
		AccountTransactions{AccountID: "A1"},
		TransactionDetail{AccountID: "A1", TransactionID: "T1"},
		AccountStatements{AccountID: "A1"},
		NewTransfer{},
		NewTransfer{BeneficiaryID: "B1"},
		TransferConfirmation{TransferID: "X1"},
		BeneficiaryList{},
		AddBeneficiary{},
		CardDetail{CardID: "C1"},
		CardSettings{CardID: "C1"},
		CardPINChange{CardID: "C1"},
		Profile{},
		Settings{},
		Security{},
		About{},
		Login{},
		OTPVerify{},
		ChangePassword{},
	}

	seen := make(map[string]Route, len(routes))
	for _, r := range routes {
		id := r.RouteID()
		if prior, dup := seen[id]; dup {
			t.Errorf("RouteID %q shared by %T and %T", id, prior, r)
		}
		seen[id] = r
	}
}

func TestTabNames(t *testing.T) {
	for _, tab := range []Tab{TabHome, TabAccounts, TabTransfer, TabCards, TabMore, TabAuth} {
		resolved, ok := TabFromName(tab.Name())
		if !ok {
			t.Errorf("TabFromName(%q) not recognized", tab.Name())
			continue
		}
		if resolved != tab {
			t.Errorf("TabFromName(%q) = %v, want %v", tab.Name(), resolved, tab)
		}
	}
	if _, ok := TabFromName("Accounts"); ok {
		t.Error("feature names are case-sensitive; 'Accounts' should not resolve")
	}
	if _, ok := TabFromName("loans"); ok {
		t.Error("unknown feature name should not resolve")
	}
}

func TestAncestors(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		want  []Route
	}{
		{"top-level detail", AccountDetail{AccountID: "A1"}, nil},
		{"transactions", AccountTransactions{AccountID: "A1"},
			[]Route{AccountDetail{AccountID: "A1"}}},
		{"transaction detail", TransactionDetail{AccountID: "A1", TransactionID: "T9"},
			[]Route{AccountDetail{AccountID: "A1"}, AccountTransactions{AccountID: "A1"}}},
		{"statements", AccountStatements{AccountID: "A1"},
			[]Route{AccountDetail{AccountID: "A1"}}},
		{"notice detail", NoticeDetail{NoticeID: "N1"}, []Route{NoticeList{}}},
		{"add beneficiary", AddBeneficiary{}, []Route{BeneficiaryList{}}},
		{"card settings", CardSettings{CardID: "C1"}, []Route{CardDetail{CardID: "C1"}}},
		{"card pin", CardPINChange{CardID: "C1"}, []Route{CardDetail{CardID: "C1"}}},
		{"confirmation is top-level", TransferConfirmation{TransferID: "X"}, nil},
	}

	for _, test := range tests {
		got := Ancestors(test.route)
		if len(got) != len(test.want) {
			t.Errorf("%s: Ancestors returned %d routes, want %d", test.name, len(got), len(test.want))
			continue
		}
		for i := range got {
			if got[i].RouteID() != test.want[i].RouteID() {
				t.Errorf("%s: ancestor[%d] = %s, want %s", test.name, i, got[i].RouteID(), test.want[i].RouteID())
			}
		}
	}
}

func TestAppEqual(t *testing.T) {
	a := App{Tab: TabAccounts, Route: AccountDetail{AccountID: "A1"}}
	b := App{Tab: TabAccounts, Route: AccountDetail{AccountID: "A1"}}
	if !a.Equal(b) {
		t.Error("identical app routes should be equal")
	}
	if a.Equal(App{Tab: TabAccounts}) {
		t.Error("route vs tab-only should differ")
	}
	if !(App{Tab: TabCards}).Equal(App{Tab: TabCards}) {
		t.Error("tab-only app routes with same tab should be equal")
	}
	if (App{Tab: TabCards}).Equal(App{Tab: TabMore}) {
		t.Error("different tabs should differ")
	}
}
