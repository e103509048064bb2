// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-app/oakline/lib/route"
)

// loginScreen is the auth flow root: username and PIN, or biometric
// login when the preference is enabled. A successful credential check
// pushes the OTP step; the session only opens after OTP verification.
type loginScreen struct {
	screenBase
	f *Factory

	username   textinput.Model
	pin        textinput.Model
	focus      int
	submitting bool
	biometric  bool // current submit is a biometric attempt
	loginErr   error
}

func newLoginScreen(id string, f *Factory) *loginScreen {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 32
	username.Width = 24
	username.Focus()

	pin := textinput.New()
	pin.Placeholder = "PIN"
	pin.CharLimit = 8
	pin.Width = 24
	pin.EchoMode = textinput.EchoPassword

	return &loginScreen{
		screenBase: screenBase{id: id},
		f:          f,
		username:   username,
		pin:        pin,
	}
}

func (s *loginScreen) Title() string { return "Sign in" }

func (s *loginScreen) CapturesInput() bool {
	return s.username.Focused() || s.pin.Focused()
}

func (s *loginScreen) Init() tea.Cmd { return textinput.Blink }

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		s.submitting = false
		if msg.err != nil {
			s.loginErr = msg.err
			return nil
		}
		if s.biometric {
			// Session opens via the auth change channel.
			return nil
		}
		return push(route.OTPVerify{})
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *loginScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.submitting {
		return nil
	}
	switch msg.String() {
	case "tab", "down", "up", "shift+tab":
		s.focus = 1 - s.focus
		if s.focus == 0 {
			s.username.Focus()
			s.pin.Blur()
		} else {
			s.username.Blur()
			s.pin.Focus()
		}
		return textinput.Blink
	case "enter":
		if s.focus == 0 {
			s.focus = 1
			s.username.Blur()
			s.pin.Focus()
			return textinput.Blink
		}
		return s.submit()
	case "ctrl+b":
		return s.submitBiometric()
	}
	var cmd tea.Cmd
	if s.focus == 0 {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.pin, cmd = s.pin.Update(msg)
	}
	return cmd
}

func (s *loginScreen) submit() tea.Cmd {
	s.submitting = true
	s.biometric = false
	s.loginErr = nil
	services := s.f.Services
	username, pin := s.username.Value(), s.pin.Value()
	return fetch(s.id, func() (any, error) {
		return nil, services.Auth.Login(context.Background(), username, pin)
	})
}

func (s *loginScreen) submitBiometric() tea.Cmd {
	s.submitting = true
	s.biometric = true
	s.loginErr = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return nil, services.Auth.BiometricLogin(context.Background())
	})
}

func (s *loginScreen) View(width, height int) string {
	theme := s.f.Theme
	row := func(focus int, label, value string) string {
		marker := "  "
		if s.focus == focus {
			marker = lipgloss.NewStyle().Foreground(theme.TabActive).Render("> ")
		}
		labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(11)
		return marker + labelStyle.Render(label) + value
	}
	lines := []string{
		renderTitle(theme, "Oakline · Sign in"),
		"",
		row(0, "Username", s.username.View()),
		row(1, "PIN", s.pin.View()),
		"",
		renderHint(theme, "enter sign in · ctrl+b biometric"),
	}
	if s.submitting {
		lines = append(lines, "", renderLoading(theme))
	}
	if s.loginErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.loginErr.Error()))
	}
	return joinLines(lines)
}

// otpScreen is the second auth step. A verified code opens the
// session; the model observes that through the auth change channel.
type otpScreen struct {
	screenBase
	f *Factory

	code       textinput.Model
	submitting bool
	verifyErr  error
}

func newOTPScreen(id string, f *Factory) *otpScreen {
	code := textinput.New()
	code.Placeholder = "6-digit code"
	code.CharLimit = 6
	code.Width = 16
	code.Focus()
	return &otpScreen{
		screenBase: screenBase{id: id},
		f:          f,
		code:       code,
	}
}

func (s *otpScreen) Title() string { return "Verify" }

func (s *otpScreen) CapturesInput() bool { return s.code.Focused() }

func (s *otpScreen) Init() tea.Cmd { return textinput.Blink }

func (s *otpScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		s.submitting = false
		s.verifyErr = msg.err
		return nil
	case tea.KeyMsg:
		if s.submitting {
			return nil
		}
		if msg.String() == "enter" {
			s.submitting = true
			s.verifyErr = nil
			services := s.f.Services
			code := s.code.Value()
			return fetch(s.id, func() (any, error) {
				return nil, services.Auth.VerifyOTP(context.Background(), code)
			})
		}
		var cmd tea.Cmd
		s.code, cmd = s.code.Update(msg)
		return cmd
	}
	return nil
}

func (s *otpScreen) View(width, height int) string {
	theme := s.f.Theme
	lines := []string{
		renderTitle(theme, "One-time code"),
		"",
		renderHint(theme, "enter the code from your authenticator"),
		"",
		"  " + s.code.View(),
	}
	if s.submitting {
		lines = append(lines, "", renderLoading(theme))
	}
	if s.verifyErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.verifyErr.Error()))
	}
	return joinLines(lines)
}

// changePINScreen rotates the login PIN. Opened as a sheet from the
// security screen, or directly via a deep link.
type changePINScreen struct {
	screenBase
	f *Factory

	username   textinput.Model
	oldPIN     textinput.Model
	newPIN     textinput.Model
	focus      int
	submitting bool
	done       bool
	changeErr  error
}

func newChangePINScreen(id string, f *Factory) *changePINScreen {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 32
	username.Width = 24
	username.Focus()

	oldPIN := textinput.New()
	oldPIN.Placeholder = "current PIN"
	oldPIN.CharLimit = 8
	oldPIN.Width = 24
	oldPIN.EchoMode = textinput.EchoPassword

	newPIN := textinput.New()
	newPIN.Placeholder = "new PIN"
	newPIN.CharLimit = 8
	newPIN.Width = 24
	newPIN.EchoMode = textinput.EchoPassword

	return &changePINScreen{
		screenBase: screenBase{id: id},
		f:          f,
		username:   username,
		oldPIN:     oldPIN,
		newPIN:     newPIN,
	}
}

func (s *changePINScreen) Title() string { return "Change PIN" }

func (s *changePINScreen) CapturesInput() bool {
	return s.username.Focused() || s.oldPIN.Focused() || s.newPIN.Focused()
}

func (s *changePINScreen) Init() tea.Cmd { return textinput.Blink }

func (s *changePINScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		s.submitting = false
		if msg.err != nil {
			s.changeErr = msg.err
			return nil
		}
		s.done = true
		s.username.Blur()
		s.oldPIN.Blur()
		s.newPIN.Blur()
		return nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *changePINScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.submitting {
		return nil
	}
	if s.done {
		if msg.String() == "enter" {
			return dismiss()
		}
		return nil
	}
	inputs := []*textinput.Model{&s.username, &s.oldPIN, &s.newPIN}
	switch msg.String() {
	case "tab", "down":
		s.focus = cycle(s.focus+1, len(inputs))
	case "shift+tab", "up":
		s.focus = cycle(s.focus-1, len(inputs))
	case "enter":
		if s.focus == len(inputs)-1 {
			return s.submit()
		}
		s.focus++
	default:
		var cmd tea.Cmd
		*inputs[s.focus], cmd = inputs[s.focus].Update(msg)
		return cmd
	}
	for i, input := range inputs {
		if i == s.focus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
	return textinput.Blink
}

func (s *changePINScreen) submit() tea.Cmd {
	s.submitting = true
	s.changeErr = nil
	services := s.f.Services
	username, oldPIN, newPIN := s.username.Value(), s.oldPIN.Value(), s.newPIN.Value()
	return fetch(s.id, func() (any, error) {
		return nil, services.Auth.ChangePIN(context.Background(), username, oldPIN, newPIN)
	})
}

func (s *changePINScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.done {
		ok := lipgloss.NewStyle().Foreground(theme.CardActive).Bold(true)
		return ok.Render("✓ PIN changed") + "\n\n" + renderHint(theme, "enter to close")
	}
	row := func(focus int, label, value string) string {
		marker := "  "
		if s.focus == focus {
			marker = lipgloss.NewStyle().Foreground(theme.TabActive).Render("> ")
		}
		labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(13)
		return marker + labelStyle.Render(label) + value
	}
	lines := []string{
		renderTitle(theme, "Change login PIN"),
		"",
		row(0, "Username", s.username.View()),
		row(1, "Current PIN", s.oldPIN.View()),
		row(2, "New PIN", s.newPIN.View()),
	}
	if s.submitting {
		lines = append(lines, "", renderLoading(theme))
	}
	if s.changeErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.changeErr.Error()))
	}
	return joinLines(lines)
}
