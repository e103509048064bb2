// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

// Tab identifies one of the app's top-level feature areas. The first
// five are user-visible tabs; Auth owns the login/verification flow
// shown while unauthenticated.
type Tab int

const (
	TabHome Tab = iota
	TabAccounts
	TabTransfer
	TabCards
	TabMore
	TabAuth
)

// tabNames are the feature names used as the first deep-link path
// component. Case-sensitive ASCII, per the URL format.
var tabNames = [...]string{"home", "accounts", "transfer", "cards", "more", "auth"}

// Name returns the feature name used in deep-link URLs.
func (t Tab) Name() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "unknown"
	}
	return tabNames[t]
}

func (t Tab) String() string { return t.Name() }

// TabFromName resolves a deep-link feature name to its tab. The second
// return value is false for unrecognized names.
func TabFromName(name string) (Tab, bool) {
	for i, n := range tabNames {
		if n == name {
			return Tab(i), true
		}
	}
	return 0, false
}

// Route is a typed navigation destination. The set of implementations
// is closed: every route case lives in this package and identifies
// exactly one screen.
type Route interface {
	// RouteID is a stable identifier derived from the case name and
	// its associated values. Routes with equal associated values have
	// equal RouteIDs.
	RouteID() string

	// Segments is the URL-path representation of the route, relative
	// to its feature name. Parse(Build) round-trips through these.
	Segments() []string

	// Tab is the feature area the route belongs to.
	Tab() Tab

	// isRoute seals the interface to this package.
	isRoute()
}

// App pairs a tab with an optional feature destination. A nil Route
// means "switch to the tab, push nothing" — the tab's root screen.
type App struct {
	Tab   Tab
	Route Route
}

// Equal reports whether two App routes identify the same destination.
func (a App) Equal(other App) bool {
	if a.Tab != other.Tab {
		return false
	}
	if a.Route == nil || other.Route == nil {
		return a.Route == nil && other.Route == nil
	}
	return a.Route.RouteID() == other.Route.RouteID()
}

// Ancestors returns the routes that must exist beneath r on a
// navigation stack, in root-to-leaf order, for the user to reach r by
// pressing back repeatedly. Top-level screens return nil.
func Ancestors(r Route) []Route {
	switch v := r.(type) {
	case NoticeDetail:
		return []Route{NoticeList{}}
	case AccountTransactions:
		return []Route{AccountDetail{AccountID: v.AccountID}}
	case TransactionDetail:
		return []Route{
			AccountDetail{AccountID: v.AccountID},
			AccountTransactions{AccountID: v.AccountID},
		}
	case AccountStatements:
		return []Route{AccountDetail{AccountID: v.AccountID}}
	case AddBeneficiary:
		return []Route{BeneficiaryList{}}
	case CardSettings:
		return []Route{CardDetail{CardID: v.CardID}}
	case CardPINChange:
		return []Route{CardDetail{CardID: v.CardID}}
	default:
		return nil
	}
}
