// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakline-app/oakline/lib/clock"
	"github.com/oakline-app/oakline/lib/deeplink"
	"github.com/oakline-app/oakline/lib/nav"
	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/service"
	"github.com/oakline-app/oakline/lib/testutil"
	"github.com/oakline-app/oakline/lib/tui"
)

// newTestApp builds a model over instant services (zero latency, no
// session expiry) and delivers the initial window size.
func newTestApp(t *testing.T) (tea.Model, *nav.App, Services) {
	t.Helper()
	clk := clock.Real()
	fixtures := service.DefaultFixtures()
	accounts := service.NewAccounts(clk, 0, fixtures)
	services := Services{
		Accounts:  accounts,
		Transfers: service.NewTransfers(clk, 0, accounts, fixtures),
		Cards:     service.NewCards(clk, 0, fixtures),
		Notices:   service.NewNotices(clk, 0, fixtures),
		Auth:      service.NewAuth(clk, 0, 0, fixtures, func() bool { return false }),
	}
	navApp := nav.NewApp(deeplink.New(deeplink.DefaultScheme), nil)
	factory := &Factory{Services: services, Theme: tui.DefaultTheme}

	var m tea.Model = NewModel(navApp, factory, nil)
	m = drive(t, m, func() tea.Msg { return tea.WindowSizeMsg{Width: 100, Height: 32} })
	return m, navApp, services
}

// drive executes a command queue against the model, feeding
// navigation, fetch, and auth messages back in. Component messages
// (cursor blinks) are dropped so tests stay deterministic, and
// commands that block longer than a second (the auth change listener)
// are abandoned.
func drive(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := runCommand(next).(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case pushMsg, presentMsg, dismissMsg, popMsg, navigateMsg,
			fetchResultMsg, authChangedMsg, tea.WindowSizeMsg:
			var followup tea.Cmd
			m, followup = m.Update(msg)
			queue = append(queue, followup)
		}
	}
	return m
}

// runCommand executes a tea.Cmd with a deadline so a blocking channel
// listener cannot hang the test.
func runCommand(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(time.Second):
		return nil
	}
}

// press sends key events. Multi-character strings that aren't named
// keys are delivered as a single rune batch, which text inputs insert
// verbatim.
func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m = drive(t, m, cmd)
	}
	return m
}

// signIn walks the full two-step login with the demo fixtures and
// pumps the resulting auth change into the model.
func signIn(t *testing.T, m tea.Model, services Services) tea.Model {
	t.Helper()
	m = press(t, m, "demo", "enter", "1234", "enter")
	m = press(t, m, "000000", "enter")

	authenticated := testutil.RequireReceive(t, services.Auth.Changes(), time.Second,
		"auth change after OTP verification")
	if !authenticated {
		t.Fatal("expected session to open after OTP verification")
	}
	var cmd tea.Cmd
	m, cmd = m.Update(authChangedMsg{authenticated: true})
	return drive(t, m, cmd)
}

func requireContains(t *testing.T, view, want string) {
	t.Helper()
	if !strings.Contains(view, want) {
		t.Fatalf("view does not contain %q:\n%s", want, view)
	}
}

func TestStartsAtLogin(t *testing.T) {
	m, navApp, _ := newTestApp(t)
	if navApp.Authenticated() {
		t.Fatal("expected unauthenticated start")
	}
	requireContains(t, m.View(), "Sign in")
}

func TestLoginFlowReachesHome(t *testing.T) {
	m, navApp, services := newTestApp(t)
	m = signIn(t, m, services)

	if !navApp.Authenticated() {
		t.Fatal("expected authenticated after sign-in")
	}
	if navApp.ActiveTab() != route.TabHome {
		t.Fatalf("active tab = %v, want home", navApp.ActiveTab())
	}
	view := m.View()
	requireContains(t, view, "Welcome back, Alex Riverton")
	requireContains(t, view, "1:home")
}

func TestWrongPINStaysOnLogin(t *testing.T) {
	m, navApp, _ := newTestApp(t)
	m = press(t, m, "demo", "enter", "9999", "enter")

	if navApp.Authenticated() {
		t.Fatal("wrong PIN must not open a session")
	}
	requireContains(t, m.View(), service.ErrInvalidCredentials.Error())
}

func TestStackNavigation(t *testing.T) {
	m, navApp, services := newTestApp(t)
	m = signIn(t, m, services)

	m = press(t, m, "2")
	if navApp.ActiveTab() != route.TabAccounts {
		t.Fatalf("active tab = %v, want accounts", navApp.ActiveTab())
	}
	requireContains(t, m.View(), "Everyday Checking")

	// Enter the first account, then its transactions.
	m = press(t, m, "enter")
	coordinator := navApp.Coordinator(route.TabAccounts)
	if coordinator.Depth() != 1 {
		t.Fatalf("depth = %d after push, want 1", coordinator.Depth())
	}
	requireContains(t, m.View(), "Balance")

	m = press(t, m, "t")
	if coordinator.Depth() != 2 {
		t.Fatalf("depth = %d after transactions, want 2", coordinator.Depth())
	}
	requireContains(t, m.View(), "Monthly salary")

	// Back twice returns to the account list root.
	m = press(t, m, "esc", "esc")
	if coordinator.Depth() != 0 {
		t.Fatalf("depth = %d after backing out, want 0", coordinator.Depth())
	}
	requireContains(t, m.View(), "Your accounts")
}

func TestSheetPresentAndDismiss(t *testing.T) {
	m, navApp, services := newTestApp(t)
	m = signIn(t, m, services)

	m = press(t, m, "4", "enter", "p")
	coordinator := navApp.Coordinator(route.TabCards)
	if _, ok := coordinator.Sheet(); !ok {
		t.Fatal("expected PIN change sheet to be presented")
	}
	requireContains(t, m.View(), "Change card PIN")

	m = press(t, m, "esc")
	if _, ok := coordinator.Sheet(); ok {
		t.Fatal("expected sheet dismissed")
	}
	if coordinator.Depth() != 1 {
		t.Fatalf("depth = %d, dismiss must not pop the stack", coordinator.Depth())
	}
}

func TestDeferredDeepLinkOpensAfterLogin(t *testing.T) {
	m, navApp, services := newTestApp(t)

	// Link arrives before sign-in (the --open startup path).
	navApp.HandleDeepLink("oakline://accounts/ACC001/transactions")
	if navApp.PendingDeepLink() == "" {
		t.Fatal("expected link stored while unauthenticated")
	}
	requireContains(t, m.View(), "link saved for after sign-in")

	m = signIn(t, m, services)

	if navApp.PendingDeepLink() != "" {
		t.Fatal("pending link must be consumed by sign-in")
	}
	if navApp.ActiveTab() != route.TabAccounts {
		t.Fatalf("active tab = %v, want accounts", navApp.ActiveTab())
	}
	coordinator := navApp.Coordinator(route.TabAccounts)
	if coordinator.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 (account detail + transactions)", coordinator.Depth())
	}
	requireContains(t, m.View(), "Monthly salary")
}

func TestDeepLinkPromptWhileAuthenticated(t *testing.T) {
	m, navApp, services := newTestApp(t)
	m = signIn(t, m, services)

	m = press(t, m, "g")
	requireContains(t, m.View(), "open link")
	m = press(t, m, "oakline://cards/CARD001", "enter")

	if navApp.ActiveTab() != route.TabCards {
		t.Fatalf("active tab = %v, want cards", navApp.ActiveTab())
	}
	if navApp.Coordinator(route.TabCards).Depth() != 1 {
		t.Fatal("expected card detail pushed")
	}
	requireContains(t, m.View(), "4921 **** **** 0042")
}

func TestMalformedLinkLeavesStateUntouched(t *testing.T) {
	m, navApp, services := newTestApp(t)
	m = signIn(t, m, services)

	m = press(t, m, "g", "oakline://Accounts/ACC001", "enter")

	if navApp.ActiveTab() != route.TabHome {
		t.Fatalf("active tab = %v, want home (link must be dropped)", navApp.ActiveTab())
	}
	for _, tab := range []route.Tab{route.TabHome, route.TabAccounts} {
		if navApp.Coordinator(tab).Depth() != 0 {
			t.Fatalf("tab %v not empty after malformed link", tab)
		}
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	m, navApp, services := newTestApp(t)
	m = signIn(t, m, services)

	// Build up state: accounts stack and a sheet on cards.
	m = press(t, m, "2", "enter", "t")
	m = press(t, m, "4", "enter", "p")

	// Logout from the more tab. The sheet belongs to cards, so "5"
	// first dismisses nothing — switch happens under the sheet's tab
	// only after it is closed.
	m = press(t, m, "esc", "5", "L")

	authenticated := testutil.RequireReceive(t, services.Auth.Changes(), time.Second,
		"auth change after logout")
	if authenticated {
		t.Fatal("expected logout event")
	}
	var cmd tea.Cmd
	m, cmd = m.Update(authChangedMsg{authenticated: false})
	m = drive(t, m, cmd)

	if navApp.Authenticated() {
		t.Fatal("expected unauthenticated after logout")
	}
	for _, tab := range []route.Tab{
		route.TabHome, route.TabAccounts, route.TabTransfer,
		route.TabCards, route.TabMore, route.TabAuth,
	} {
		c := navApp.Coordinator(tab)
		if c.Depth() != 0 {
			t.Fatalf("tab %v depth = %d after logout, want 0", tab, c.Depth())
		}
		if _, ok := c.Sheet(); ok {
			t.Fatalf("tab %v still has a sheet after logout", tab)
		}
	}
	requireContains(t, m.View(), "Sign in")
}

func TestStaleFetchResultDropped(t *testing.T) {
	m, _, services := newTestApp(t)
	m = signIn(t, m, services)

	before := m.View()
	var cmd tea.Cmd
	m, cmd = m.Update(fetchResultMsg{screenID: "gone", payload: nil, err: nil})
	if cmd != nil {
		t.Fatal("stale result must not produce a command")
	}
	if m.View() != before {
		t.Fatal("stale result must not change the view")
	}
}

func TestTransferFlowShowsConfirmation(t *testing.T) {
	m, navApp, services := newTestApp(t)
	m = signIn(t, m, services)

	// Transfer tab → new transfer form. Focus starts on the account
	// selector; tab down to the amount field.
	m = press(t, m, "3", "enter")
	m = press(t, m, "tab", "tab", "25.00")
	// Skip reference, land on submit, send.
	m = press(t, m, "tab", "tab", "enter")

	coordinator := navApp.Coordinator(route.TabTransfer)
	if coordinator.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 (form + confirmation)", coordinator.Depth())
	}
	view := m.View()
	requireContains(t, view, "Transfer complete")
	requireContains(t, view, "25.00")
}
