// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"log/slog"

	"github.com/oakline-app/oakline/lib/deeplink"
	"github.com/oakline-app/oakline/lib/route"
)

// userTabs are the tabs shown in the tab bar while authenticated.
// Auth has a coordinator too, but its screens are reached through the
// authentication gate rather than the tab bar.
var userTabs = [...]route.Tab{
	route.TabHome, route.TabAccounts, route.TabTransfer, route.TabCards, route.TabMore,
}

// App is the root coordinator. It owns the six feature coordinators
// for the process lifetime, the selected tab, the authenticated flag,
// and at most one pending deep link captured while unauthenticated.
//
// Like the feature coordinators, App is confined to the UI update
// goroutine; external events (session expiry, OS-delivered URLs) reach
// it as messages on that goroutine.
type App struct {
	logger *slog.Logger
	parser *deeplink.Parser

	coordinators  map[route.Tab]*Coordinator
	activeTab     route.Tab
	defaultTab    route.Tab
	authenticated bool

	// pendingLink holds the raw URL of a deep link that arrived while
	// unauthenticated. Consumed exactly once on the next transition to
	// authenticated.
	pendingLink string
}

// NewApp creates the root coordinator with all six feature
// coordinators in their initial state (empty stack, no presentation)
// and the default tab selected.
func NewApp(parser *deeplink.Parser, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{
		logger:       logger,
		parser:       parser,
		coordinators: make(map[route.Tab]*Coordinator, len(userTabs)+1),
		activeTab:    route.TabHome,
		defaultTab:   route.TabHome,
	}
	for _, tab := range userTabs {
		app.coordinators[tab] = NewCoordinator(tab, app)
	}
	app.coordinators[route.TabAuth] = NewCoordinator(route.TabAuth, app)
	return app
}

// Coordinator returns the feature coordinator for a tab.
func (a *App) Coordinator(tab route.Tab) *Coordinator {
	return a.coordinators[tab]
}

// ActiveTab returns the currently selected tab.
func (a *App) ActiveTab() route.Tab { return a.activeTab }

// Authenticated reports the authentication flag.
func (a *App) Authenticated() bool { return a.authenticated }

// PendingDeepLink returns the stored deep link awaiting
// authentication, or "" when the slot is empty.
func (a *App) PendingDeepLink() string { return a.pendingLink }

// SetDefaultTab changes the tab selected at startup and restored on
// logout. Call at construction time, before any session opens.
func (a *App) SetDefaultTab(tab route.Tab) {
	if _, ok := a.coordinators[tab]; !ok {
		return
	}
	a.defaultTab = tab
	if !a.authenticated {
		a.activeTab = tab
	}
}

// SwitchTab selects a tab. Pure state mutation; the tab container
// observes it on the next render.
func (a *App) SwitchTab(tab route.Tab) {
	if _, ok := a.coordinators[tab]; !ok {
		return
	}
	a.activeTab = tab
}

// Navigate performs a cross-feature jump: switch to the route's tab,
// then push its route (if any) onto that tab's coordinator. Two
// sequential mutations; the final state does not depend on a renderer
// observing the intermediate one.
func (a *App) Navigate(app route.App) {
	a.SwitchTab(app.Tab)
	if app.Route != nil {
		a.coordinators[app.Tab].Push(app.Route)
	}
}

// HandleDeepLink parses and dispatches an external URL. Parse failures
// are logged and dropped — a malformed link never crashes dispatch and
// leaves all navigation state untouched. While unauthenticated the
// link is stored (last one wins) and dispatched after the next
// successful authentication.
func (a *App) HandleDeepLink(raw string) {
	app, err := a.parser.Parse(raw)
	if err != nil {
		a.logger.Warn("ignoring deep link", "url", raw, "error", err)
		return
	}

	if !a.authenticated {
		a.logger.Info("deferring deep link until authentication", "url", raw)
		a.pendingLink = raw
		return
	}

	a.SwitchTab(app.Tab)
	if app.Route != nil {
		a.coordinators[app.Tab].HandleRoute(app.Route)
	}
}

// SetAuthenticated applies an authentication transition from the auth
// service. The flag may flip from direct user action (login, logout)
// or asynchronously (session expiry); both take the same path.
//
// On transition to authenticated, a pending deep link is dispatched
// exactly once: the slot is cleared before dispatch so rapid repeated
// transitions cannot double-dispatch. On transition to
// unauthenticated, every coordinator is reset and the default tab
// restored before the flag flips, so an observer of the flag never
// sees a partially reset session.
func (a *App) SetAuthenticated(authenticated bool) {
	if authenticated == a.authenticated {
		return
	}
	if !authenticated {
		a.resetAll()
		a.activeTab = a.defaultTab
		a.authenticated = false
		return
	}

	a.authenticated = true
	if a.pendingLink != "" {
		link := a.pendingLink
		a.pendingLink = ""
		a.HandleDeepLink(link)
	}
}

// Logout resets every feature coordinator, returns to the default tab,
// and flips authenticated to false.
func (a *App) Logout() {
	a.SetAuthenticated(false)
}

func (a *App) resetAll() {
	for _, coordinator := range a.coordinators {
		coordinator.Reset()
	}
}
