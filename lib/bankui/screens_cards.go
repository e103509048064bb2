// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/service"
	"github.com/oakline-app/oakline/lib/tui"
)

// cardListScreen is the cards tab root.
type cardListScreen struct {
	screenBase
	f *Factory

	cards  []service.Card
	cursor listCursor
}

func (s *cardListScreen) Title() string { return "Cards" }

func (s *cardListScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return services.Cards.List(context.Background())
	})
}

func (s *cardListScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.cards = msg.payload.([]service.Card)
		s.cursor.setCount(len(s.cards))
		s.loaded()
	case tea.KeyMsg:
		switch {
		case msg.String() == "r" && s.err != nil:
			return s.Init()
		case key.Matches(msg, DefaultKeyMap.Up):
			s.cursor.up()
		case key.Matches(msg, DefaultKeyMap.Down):
			s.cursor.down()
		case key.Matches(msg, DefaultKeyMap.Select):
			if s.cursor.count > 0 {
				return push(route.CardDetail{CardID: s.cards[s.cursor.index].ID})
			}
		}
	}
	return nil
}

func (s *cardListScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{renderTitle(theme, "Your cards"), ""}
	for i, card := range s.cards {
		row := fmt.Sprintf("%-8s %s  %s", card.Network, card.MaskedPAN, cardStatusBadge(theme, card.Status))
		lines = append(lines, renderRow(theme, i == s.cursor.index, row, width))
	}
	return joinLines(lines)
}

func cardStatusBadge(theme tui.Theme, status service.CardStatus) string {
	if status == service.CardLocked {
		return lipgloss.NewStyle().Foreground(theme.CardLocked).Render("locked")
	}
	return lipgloss.NewStyle().Foreground(theme.CardActive).Render("active")
}

// cardDetailScreen shows one card. "l" toggles the lock, "s" opens
// settings, "p" opens the PIN change form as a sheet.
type cardDetailScreen struct {
	screenBase
	f      *Factory
	cardID string

	card     service.Card
	mutating bool
}

func (s *cardDetailScreen) Title() string { return "Card" }

func (s *cardDetailScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	cardID := s.cardID
	return fetch(s.id, func() (any, error) {
		return services.Cards.Get(context.Background(), cardID)
	})
}

func (s *cardDetailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		s.mutating = false
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.card = msg.payload.(service.Card)
		s.loaded()
	case tea.KeyMsg:
		if s.loading || s.mutating {
			return nil
		}
		switch msg.String() {
		case "r":
			if s.err != nil {
				return s.Init()
			}
		case "l":
			return s.toggleLock()
		case "s":
			return push(route.CardSettings{CardID: s.cardID})
		case "p":
			return present(route.CardPINChange{CardID: s.cardID}, false)
		}
	}
	return nil
}

func (s *cardDetailScreen) toggleLock() tea.Cmd {
	s.mutating = true
	services := s.f.Services
	cardID := s.cardID
	lock := s.card.Status == service.CardActive
	return fetch(s.id, func() (any, error) {
		return services.Cards.SetLocked(context.Background(), cardID, lock)
	})
}

func (s *cardDetailScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{
		renderTitle(theme, s.card.Network+" "+s.card.MaskedPAN),
		"",
		renderField(theme, "Status", cardStatusBadge(theme, s.card.Status)),
		renderField(theme, "Expiry", s.card.ExpiryMonth),
		renderField(theme, "Limit", formatCents(s.card.LimitCents)),
		renderField(theme, "Account", s.card.AccountID),
		"",
		renderHint(theme, "l lock/unlock · s settings · p change pin"),
	}
	if s.mutating {
		lines = append(lines, "", renderLoading(theme))
	}
	return joinLines(lines)
}

// cardSettingsScreen adjusts the card's spending limit and lock state.
type cardSettingsScreen struct {
	screenBase
	f      *Factory
	cardID string

	card       service.Card
	limit      textinput.Model
	submitting bool
	submitErr  error
}

func newCardSettingsForm(id string, f *Factory, cardID string) *cardSettingsScreen {
	limit := textinput.New()
	limit.Placeholder = "0.00"
	limit.CharLimit = 12
	limit.Width = 16
	return &cardSettingsScreen{
		screenBase: screenBase{id: id},
		f:          f,
		cardID:     cardID,
		limit:      limit,
	}
}

func (s *cardSettingsScreen) Title() string { return "Card settings" }

func (s *cardSettingsScreen) CapturesInput() bool { return s.limit.Focused() }

func (s *cardSettingsScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	cardID := s.cardID
	return fetch(s.id, func() (any, error) {
		return services.Cards.Get(context.Background(), cardID)
	})
}

func (s *cardSettingsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if s.submitting {
			s.submitting = false
			if msg.err != nil {
				s.submitErr = msg.err
				return nil
			}
		} else if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.card = msg.payload.(service.Card)
		s.limit.SetValue(formatCents(s.card.LimitCents))
		s.loaded()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *cardSettingsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.loading || s.submitting {
		return nil
	}
	if s.err != nil {
		if msg.String() == "r" {
			return s.Init()
		}
		return nil
	}
	if s.limit.Focused() {
		switch msg.String() {
		case "enter":
			s.limit.Blur()
			return s.submitLimit()
		case "esc":
			s.limit.Blur()
			s.limit.SetValue(formatCents(s.card.LimitCents))
			return nil
		}
		var cmd tea.Cmd
		s.limit, cmd = s.limit.Update(msg)
		return cmd
	}
	switch msg.String() {
	case "l":
		s.submitting = true
		services := s.f.Services
		cardID := s.cardID
		lock := s.card.Status == service.CardActive
		return fetch(s.id, func() (any, error) {
			return services.Cards.SetLocked(context.Background(), cardID, lock)
		})
	case "e":
		s.limit.Focus()
		return textinput.Blink
	}
	return nil
}

func (s *cardSettingsScreen) submitLimit() tea.Cmd {
	raw := strings.ReplaceAll(s.limit.Value(), ",", "")
	limitCents, err := parseAmount(raw)
	if err != nil {
		s.submitErr = err
		return nil
	}
	s.submitting = true
	s.submitErr = nil
	services := s.f.Services
	cardID := s.cardID
	return fetch(s.id, func() (any, error) {
		return services.Cards.SetLimit(context.Background(), cardID, limitCents)
	})
}

func (s *cardSettingsScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{
		renderTitle(theme, "Settings · "+s.card.MaskedPAN),
		"",
		renderField(theme, "Status", cardStatusBadge(theme, s.card.Status)),
		renderField(theme, "Limit", s.limit.View()),
		"",
		renderHint(theme, "l lock/unlock · e edit limit"),
	}
	if s.submitting {
		lines = append(lines, "", renderLoading(theme))
	}
	if s.submitErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.submitErr.Error()))
	}
	return joinLines(lines)
}

// cardPINScreen is the PIN change sheet. The mock services don't hold
// card PINs, so this form validates locally and confirms.
type cardPINScreen struct {
	screenBase
	f      *Factory
	cardID string

	pin     textinput.Model
	confirm textinput.Model
	focus   int
	done    bool
	formErr string
}

func newCardPINForm(id string, f *Factory, cardID string) *cardPINScreen {
	pin := textinput.New()
	pin.Placeholder = "new PIN"
	pin.CharLimit = 4
	pin.Width = 8
	pin.EchoMode = textinput.EchoPassword
	pin.Focus()

	confirm := textinput.New()
	confirm.Placeholder = "repeat"
	confirm.CharLimit = 4
	confirm.Width = 8
	confirm.EchoMode = textinput.EchoPassword

	return &cardPINScreen{
		screenBase: screenBase{id: id},
		f:          f,
		cardID:     cardID,
		pin:        pin,
		confirm:    confirm,
	}
}

func (s *cardPINScreen) Title() string { return "Change PIN" }

func (s *cardPINScreen) CapturesInput() bool {
	return s.pin.Focused() || s.confirm.Focused()
}

func (s *cardPINScreen) Init() tea.Cmd { return textinput.Blink }

func (s *cardPINScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if s.done {
		if keyMsg.String() == "enter" {
			return dismiss()
		}
		return nil
	}
	switch keyMsg.String() {
	case "tab", "down", "up", "shift+tab":
		s.focus = 1 - s.focus
		if s.focus == 0 {
			s.pin.Focus()
			s.confirm.Blur()
		} else {
			s.pin.Blur()
			s.confirm.Focus()
		}
		return textinput.Blink
	case "enter":
		if s.focus == 0 {
			s.focus = 1
			s.pin.Blur()
			s.confirm.Focus()
			return textinput.Blink
		}
		s.submit()
		return nil
	}
	var cmd tea.Cmd
	if s.focus == 0 {
		s.pin, cmd = s.pin.Update(keyMsg)
	} else {
		s.confirm, cmd = s.confirm.Update(keyMsg)
	}
	return cmd
}

func (s *cardPINScreen) submit() {
	pin := s.pin.Value()
	if len(pin) != 4 {
		s.formErr = "PIN must be 4 digits"
		return
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			s.formErr = "PIN must be 4 digits"
			return
		}
	}
	if pin != s.confirm.Value() {
		s.formErr = "PINs do not match"
		return
	}
	s.formErr = ""
	s.done = true
	s.pin.Blur()
	s.confirm.Blur()
}

func (s *cardPINScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.done {
		ok := lipgloss.NewStyle().Foreground(theme.CardActive).Bold(true)
		return ok.Render("✓ PIN updated") + "\n\n" + renderHint(theme, "enter to close")
	}
	lines := []string{
		renderTitle(theme, "Change card PIN"),
		"",
		renderField(theme, "New PIN", s.pin.View()),
		renderField(theme, "Confirm", s.confirm.View()),
	}
	if s.formErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.formErr))
	}
	return joinLines(lines)
}
