// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-app/oakline/lib/tui"
)

// listCursor tracks the highlighted row of a simple list screen.
type listCursor struct {
	index int
	count int
}

func (c *listCursor) up() {
	if c.index > 0 {
		c.index--
	}
}

func (c *listCursor) down() {
	if c.index < c.count-1 {
		c.index++
	}
}

// setCount clamps the cursor after the backing list changes size.
func (c *listCursor) setCount(count int) {
	c.count = count
	if c.index >= count {
		c.index = count - 1
	}
	if c.index < 0 {
		c.index = 0
	}
}

// renderRow renders one list row, highlighting it when selected.
func renderRow(theme tui.Theme, selected bool, text string, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.NormalText)
	if selected {
		style = style.
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground).
			Bold(true)
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(" " + text)
}

// renderLoading is the placeholder shown while a screen's fetch is in
// flight.
func renderLoading(theme tui.Theme) string {
	return lipgloss.NewStyle().Foreground(theme.SpinnerText).Render("Loading…")
}

// renderError shows a fetch failure with the retry hint. Screens that
// support retry handle the "r" key.
func renderError(theme tui.Theme, err error) string {
	message := lipgloss.NewStyle().Foreground(theme.ErrorText).Render("Error: " + err.Error())
	hint := lipgloss.NewStyle().Foreground(theme.HelpText).Render("press r to retry")
	return message + "\n" + hint
}

// renderField renders a "Label  value" detail line with a faint label.
func renderField(theme tui.Theme, label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(14)
	return labelStyle.Render(label) + lipgloss.NewStyle().Foreground(theme.NormalText).Render(value)
}

// renderTitle renders a screen section heading.
func renderTitle(theme tui.Theme, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(text)
}

// renderHint renders a footer-style key hint inside a screen body.
func renderHint(theme tui.Theme, text string) string {
	return lipgloss.NewStyle().Foreground(theme.HelpText).Render(text)
}

// joinLines drops trailing blank lines and joins the rest.
func joinLines(lines []string) string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
