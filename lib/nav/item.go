// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"github.com/google/uuid"

	"github.com/oakline-app/oakline/lib/route"
)

// Item wraps one route with a freshly generated identity so the same
// route can appear on a stack twice (pushing detail screens for two
// different entities, or the same entity twice). Items are owned
// exclusively by a coordinator's stack and modal slots and are
// discarded when popped, replaced, or dismissed.
type Item struct {
	// ID is unique per wrap, independent of the route's own RouteID.
	ID string

	// Route identifies the destination this item renders.
	Route route.Route
}

// NewItem wraps a route with a new unique identity.
func NewItem(r route.Route) Item {
	return Item{ID: uuid.NewString(), Route: r}
}
