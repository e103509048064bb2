// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

// CardDetail shows a single card with its status and limits.
type CardDetail struct {
	CardID string
}

func (r CardDetail) RouteID() string    { return "cardDetail-" + r.CardID }
func (r CardDetail) Segments() []string { return []string{r.CardID} }
func (CardDetail) Tab() Tab             { return TabCards }
func (CardDetail) isRoute()             {}

// CardSettings shows the lock/limit controls for a card.
type CardSettings struct {
	CardID string
}

func (r CardSettings) RouteID() string    { return "cardSettings-" + r.CardID }
func (r CardSettings) Segments() []string { return []string{r.CardID, "settings"} }
func (CardSettings) Tab() Tab             { return TabCards }
func (CardSettings) isRoute()             {}

// CardPINChange opens the PIN change flow for a card.
type CardPINChange struct {
	CardID string
}

func (r CardPINChange) RouteID() string    { return "cardPINChange-" + r.CardID }
func (r CardPINChange) Segments() []string { return []string{r.CardID, "pin"} }
func (CardPINChange) Tab() Tab             { return TabCards }
func (CardPINChange) isRoute()             {}
