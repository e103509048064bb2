// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"slices"

	"github.com/oakline-app/oakline/lib/route"
)

// Parent is the coordinator's non-owning handle to the app
// coordinator. Children request tab switches and cross-feature pushes
// through it instead of holding the app coordinator directly, so a
// feature coordinator never extends the root's lifetime or reaches
// into another feature's state.
type Parent interface {
	// SwitchTab changes the selected tab.
	SwitchTab(tab route.Tab)

	// Navigate switches to the route's tab and pushes its route (if
	// any) onto that tab's coordinator.
	Navigate(app route.App)
}

// Coordinator owns one feature's navigation state: an ordered stack of
// items (index 0 = first pushed, last = top / currently visible) plus
// one sheet slot and one full-screen slot. The three pieces are
// independent: presenting does not disturb the stack and vice versa.
type Coordinator struct {
	tab        route.Tab
	stack      []Item
	sheet      *Item
	fullscreen *Item
	parent     Parent
}

// NewCoordinator returns an empty coordinator for the given tab.
// parent may be nil for coordinators that never request cross-feature
// navigation (and in tests).
func NewCoordinator(tab route.Tab, parent Parent) *Coordinator {
	return &Coordinator{tab: tab, parent: parent}
}

// Tab returns the feature this coordinator navigates.
func (c *Coordinator) Tab() route.Tab { return c.tab }

// Parent returns the app-coordinator handle for cross-feature
// requests. Nil when the coordinator is detached.
func (c *Coordinator) Parent() Parent { return c.parent }

// Push appends a new item for the route. Depth is unbounded.
func (c *Coordinator) Push(r route.Route) {
	c.stack = append(c.stack, NewItem(r))
}

// Pop removes the top item. Popping an empty stack is a silent no-op.
func (c *Coordinator) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// PopToRoot clears the stack. Idempotent.
func (c *Coordinator) PopToRoot() {
	c.stack = c.stack[:0]
}

// Present wraps the route and assigns it to the full-screen slot when
// fullScreen is true, else the sheet slot. An occupied slot is
// replaced: last call wins, there is no queueing.
func (c *Coordinator) Present(r route.Route, fullScreen bool) {
	item := NewItem(r)
	if fullScreen {
		c.fullscreen = &item
	} else {
		c.sheet = &item
	}
}

// Dismiss clears both modal slots unconditionally.
func (c *Coordinator) Dismiss() {
	c.sheet = nil
	c.fullscreen = nil
}

// HandleRoute rebuilds the stack for a deep-link target: pop to root,
// then push every ancestor screen followed by the target itself, so
// each level remains reachable by back-navigation.
func (c *Coordinator) HandleRoute(r route.Route) {
	c.PopToRoot()
	for _, ancestor := range route.Ancestors(r) {
		c.Push(ancestor)
	}
	c.Push(r)
}

// Truncate synchronizes the stack with an externally observed back
// navigation: the user is now viewing the screen at the given depth,
// so the stack becomes exactly its first depth elements. Truncating to
// a depth the stack already satisfies is a no-op, and the same
// truncation applied twice yields the same stack.
func (c *Coordinator) Truncate(depth int) {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(c.stack) {
		return
	}
	c.stack = c.stack[:depth]
}

// Reset returns the coordinator to its initial state: empty stack, no
// presentation.
func (c *Coordinator) Reset() {
	c.PopToRoot()
	c.Dismiss()
}

// Depth returns the current stack depth.
func (c *Coordinator) Depth() int { return len(c.stack) }

// Items returns a copy of the stack in push order.
func (c *Coordinator) Items() []Item {
	return slices.Clone(c.stack)
}

// Top returns the top (visible) item, if any.
func (c *Coordinator) Top() (Item, bool) {
	if len(c.stack) == 0 {
		return Item{}, false
	}
	return c.stack[len(c.stack)-1], true
}

// Sheet returns the presented sheet item, if any.
func (c *Coordinator) Sheet() (Item, bool) {
	if c.sheet == nil {
		return Item{}, false
	}
	return *c.sheet, true
}

// FullScreen returns the presented full-screen item, if any.
func (c *Coordinator) FullScreen() (Item, bool) {
	if c.fullscreen == nil {
		return Item{}, false
	}
	return *c.fullscreen, true
}
