// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakline-app/oakline/lib/route"
)

// pushMsg pushes a route onto the active coordinator's stack.
type pushMsg struct {
	route route.Route
}

// presentMsg opens a route as a modal on the active coordinator.
type presentMsg struct {
	route      route.Route
	fullScreen bool
}

// dismissMsg closes the visible modal, if any.
type dismissMsg struct{}

// popMsg removes the top screen from the active coordinator's stack.
type popMsg struct{}

// navigateMsg jumps to a destination that may live on another tab.
type navigateMsg struct {
	dest route.App
}

// fetchResultMsg carries the result of an asynchronous service call
// back to the screen that requested it. screenID is the navigation
// item ID of the requesting screen; results for screens that were
// popped in the meantime are dropped by the model.
type fetchResultMsg struct {
	screenID string
	payload  any
	err      error
}

// authChangedMsg is delivered whenever the auth service's session
// state flips, including session expiry from the service's own timer.
type authChangedMsg struct {
	authenticated bool
}

// push returns a command that pushes the given route.
func push(r route.Route) tea.Cmd {
	return func() tea.Msg { return pushMsg{route: r} }
}

// present returns a command that opens the route as a modal.
func present(r route.Route, fullScreen bool) tea.Cmd {
	return func() tea.Msg { return presentMsg{route: r, fullScreen: fullScreen} }
}

// navigate returns a command that jumps to a cross-tab destination.
func navigate(dest route.App) tea.Cmd {
	return func() tea.Msg { return navigateMsg{dest: dest} }
}

// pop returns a command that pops the top screen.
func pop() tea.Cmd {
	return func() tea.Msg { return popMsg{} }
}

// dismiss returns a command that closes the visible modal.
func dismiss() tea.Cmd {
	return func() tea.Msg { return dismissMsg{} }
}

// fetch runs load off the update loop and delivers the result tagged
// with the requesting screen's ID.
func fetch(screenID string, load func() (any, error)) tea.Cmd {
	return func() tea.Msg {
		payload, err := load()
		return fetchResultMsg{screenID: screenID, payload: payload, err: err}
	}
}

// listenAuthChanges blocks on the auth service's change channel and
// converts the next flip into an authChangedMsg. The model re-issues
// this command after each delivery.
func listenAuthChanges(changes <-chan bool) tea.Cmd {
	return func() tea.Msg {
		authenticated, ok := <-changes
		if !ok {
			return nil
		}
		return authChangedMsg{authenticated: authenticated}
	}
}
