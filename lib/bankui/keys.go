// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global key bindings for the banking TUI. Screens
// with focused text inputs capture printable keys; the bindings here
// apply everywhere else.
type KeyMap struct {
	// List movement within the visible screen.
	Up   key.Binding
	Down key.Binding

	// Select the highlighted row / confirm a form.
	Select key.Binding

	// Back pops one screen, or dismisses the visible modal.
	Back key.Binding

	// Tab switching (authenticated only).
	TabHome     key.Binding
	TabAccounts key.Binding
	TabTransfer key.Binding
	TabCards    key.Binding
	TabMore     key.Binding

	// OpenLink starts the deep-link prompt in the footer.
	OpenLink key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// (j/k) alongside arrow keys; tabs on the number row.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	TabHome: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	TabAccounts: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "accounts"),
	),
	TabTransfer: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "transfer"),
	),
	TabCards: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "cards"),
	),
	TabMore: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "more"),
	),
	OpenLink: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "open link"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
