// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the Oakline terminal UI. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Money amounts.
	AmountCredit lipgloss.Color
	AmountDebit  lipgloss.Color

	// Card status.
	CardActive lipgloss.Color
	CardLocked lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	TabActive        lipgloss.Color
	TabInactive      lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Error and loading states.
	ErrorText   lipgloss.Color
	SpinnerText lipgloss.Color

	// Modal sheets.
	SheetBorder     lipgloss.Color
	SheetBackground lipgloss.Color
}

// AmountColor returns the color for a signed amount in cents.
func (theme Theme) AmountColor(amountCents int64) lipgloss.Color {
	if amountCents < 0 {
		return theme.AmountDebit
	}
	return theme.AmountCredit
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	AmountCredit: lipgloss.Color("114"), // green
	AmountDebit:  lipgloss.Color("203"), // soft red

	CardActive: lipgloss.Color("114"), // green
	CardLocked: lipgloss.Color("196"), // red

	HeaderForeground: lipgloss.Color("255"),
	TabActive:        lipgloss.Color("220"), // amber
	TabInactive:      lipgloss.Color("245"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ErrorText:   lipgloss.Color("196"),
	SpinnerText: lipgloss.Color("220"),

	SheetBorder:     lipgloss.Color("245"),
	SheetBackground: lipgloss.Color("236"),
}
