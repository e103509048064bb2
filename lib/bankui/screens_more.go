// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/service"
)

// moreRootScreen is the more tab root menu.
type moreRootScreen struct {
	screenBase
	f *Factory

	cursor listCursor
}

var moreMenu = []struct {
	label string
	route route.Route
}{
	{"Profile", route.Profile{}},
	{"Settings", route.Settings{}},
	{"Security", route.Security{}},
	{"About Oakline", route.About{}},
}

func (s *moreRootScreen) Title() string { return "More" }

func (s *moreRootScreen) Init() tea.Cmd {
	s.cursor.setCount(len(moreMenu))
	return nil
}

func (s *moreRootScreen) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			s.cursor.up()
		case key.Matches(msg, DefaultKeyMap.Down):
			s.cursor.down()
		case key.Matches(msg, DefaultKeyMap.Select):
			return push(moreMenu[s.cursor.index].route)
		case msg.String() == "L":
			s.f.Services.Auth.Logout()
		}
	}
	return nil
}

func (s *moreRootScreen) View(width, height int) string {
	theme := s.f.Theme
	lines := []string{renderTitle(theme, "More"), ""}
	for i, entry := range moreMenu {
		lines = append(lines, renderRow(theme, i == s.cursor.index, entry.label, width))
	}
	lines = append(lines, "", renderHint(theme, "shift+l log out"))
	return joinLines(lines)
}

// profileScreen shows the account holder's contact record.
type profileScreen struct {
	screenBase
	f *Factory

	profile service.Profile
}

func (s *profileScreen) Title() string { return "Profile" }

func (s *profileScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return services.Auth.Profile(context.Background())
	})
}

func (s *profileScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.profile = msg.payload.(service.Profile)
		s.loaded()
	case tea.KeyMsg:
		if msg.String() == "r" && s.err != nil {
			return s.Init()
		}
	}
	return nil
}

func (s *profileScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{
		renderTitle(theme, s.profile.Name),
		"",
		renderField(theme, "Email", s.profile.Email),
		renderField(theme, "Phone", s.profile.Phone),
	}
	return joinLines(lines)
}

// settingsScreen holds the biometric login toggle, persisted through
// the preferences store.
type settingsScreen struct {
	screenBase
	f *Factory

	saveErr error
}

func (s *settingsScreen) Title() string { return "Settings" }

func (s *settingsScreen) Init() tea.Cmd { return nil }

func (s *settingsScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || s.f.Services.Prefs == nil {
		return nil
	}
	if keyMsg.String() == "b" {
		prefs := s.f.Services.Prefs
		s.saveErr = prefs.SetBiometricEnabled(!prefs.BiometricEnabled())
	}
	return nil
}

func (s *settingsScreen) View(width, height int) string {
	theme := s.f.Theme
	lines := []string{renderTitle(theme, "Settings"), ""}
	if s.f.Services.Prefs == nil {
		lines = append(lines, renderHint(theme, "no preferences file configured"))
		return joinLines(lines)
	}
	state := "off"
	if s.f.Services.Prefs.BiometricEnabled() {
		state = "on"
	}
	lines = append(lines,
		renderField(theme, "Biometric", state),
		"",
		renderHint(theme, "b toggle biometric login"),
	)
	if s.saveErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.saveErr.Error()))
	}
	return joinLines(lines)
}

// securityScreen offers the login PIN change, opened as a sheet.
type securityScreen struct {
	screenBase
	f *Factory
}

func (s *securityScreen) Title() string { return "Security" }

func (s *securityScreen) Init() tea.Cmd { return nil }

func (s *securityScreen) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "p" {
		return present(route.ChangePassword{}, false)
	}
	return nil
}

func (s *securityScreen) View(width, height int) string {
	theme := s.f.Theme
	lines := []string{
		renderTitle(theme, "Security"),
		"",
		renderField(theme, "Login PIN", "****"),
		"",
		renderHint(theme, "p change login PIN"),
	}
	return joinLines(lines)
}

const aboutBody = `Oakline is a demonstration banking client. All data is
simulated: accounts, cards, and transfers live in memory and reset on
restart.

## Deep links

Screens can be reached directly with ` + "`oakline://`" + ` URLs, for
example:

- ` + "`oakline://accounts/ACC123/transactions`" + `
- ` + "`oakline://transfer/confirmation/TRF88`" + `

Links received while signed out are kept and opened after the next
successful sign-in.`

// aboutScreen renders the static about text as markdown.
type aboutScreen struct {
	screenBase
	f *Factory
}

func (s *aboutScreen) Title() string { return "About" }

func (s *aboutScreen) Init() tea.Cmd { return nil }

func (s *aboutScreen) Update(msg tea.Msg) tea.Cmd { return nil }

func (s *aboutScreen) View(width, height int) string {
	theme := s.f.Theme
	return renderTitle(theme, "About Oakline") + "\n\n" +
		renderNoticeMarkdown(aboutBody, theme, width)
}
