// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one view in a coordinator's stack (or a tab root, or a
// modal). Screens are pointer types owned by the model's screen cache;
// Update mutates the screen in place and may return a command.
type Screen interface {
	// ID is the navigation item ID the screen was built for. Fetch
	// results are routed by this ID.
	ID() string

	// Title is shown in the header while the screen is visible.
	Title() string

	// Init starts the screen's initial data fetch, if any.
	Init() tea.Cmd

	// Update handles messages forwarded by the model: key presses
	// while the screen is visible, its own fetch results, and
	// component ticks.
	Update(msg tea.Msg) tea.Cmd

	// View renders the screen into the given content area.
	View(width, height int) string

	// CapturesInput reports whether a text input on the screen is
	// focused. While true the model forwards printable keys to the
	// screen instead of treating them as global bindings.
	CapturesInput() bool
}

// screenBase carries the fields every screen needs: its owning item ID
// and the load/error state shared by all fetching screens.
type screenBase struct {
	id      string
	loading bool
	err     error
}

func (b *screenBase) ID() string          { return b.id }
func (b *screenBase) CapturesInput() bool { return false }

func (b *screenBase) failed(err error) {
	b.loading = false
	b.err = err
}

func (b *screenBase) loaded() {
	b.loading = false
	b.err = nil
}
