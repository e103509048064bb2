// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-app/oakline/lib/nav"
	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/tui"
)

// userTabs drives the tab bar, in display order.
var userTabs = [...]route.Tab{
	route.TabHome,
	route.TabAccounts,
	route.TabTransfer,
	route.TabCards,
	route.TabMore,
}

// Model is the top-level bubbletea model. It owns the navigation
// state and a cache of screens keyed by navigation item ID. All
// mutation happens on the update loop; the only concurrency is the
// auth change channel, which is pumped back in as authChangedMsg.
type Model struct {
	navApp  *nav.App
	factory *Factory
	keys    KeyMap
	logger  *slog.Logger

	width  int
	height int

	// screens caches stack and modal screens by item ID; roots caches
	// per-tab root screens. Both are rebuilt lazily after resets.
	screens map[string]Screen
	roots   map[route.Tab]Screen

	// Deep-link prompt shown in the footer on "g".
	linkInput  textinput.Model
	linkPrompt bool
}

// NewModel wires the model. The nav.App carries any deep link given
// on the command line as pending state already.
func NewModel(navApp *nav.App, factory *Factory, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	linkInput := textinput.New()
	linkInput.Placeholder = "oakline://accounts/ACC001"
	linkInput.CharLimit = 128
	linkInput.Width = 48

	return Model{
		navApp:    navApp,
		factory:   factory,
		keys:      DefaultKeyMap,
		logger:    logger,
		screens:   make(map[string]Screen),
		roots:     make(map[route.Tab]Screen),
		linkInput: linkInput,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.ensureVisible(),
		listenAuthChanges(m.factory.Services.Auth.Changes()),
	)
}

// currentTab is the coordinator the UI is showing: the auth flow
// while signed out, the active tab otherwise.
func (m Model) currentTab() route.Tab {
	if !m.navApp.Authenticated() {
		return route.TabAuth
	}
	return m.navApp.ActiveTab()
}

func (m Model) coordinator() *nav.Coordinator {
	return m.navApp.Coordinator(m.currentTab())
}

// visibleItem resolves what the user is looking at: a full-screen
// modal wins over a sheet, a sheet over the stack top. ok is false
// when the tab is at its root.
func (m Model) visibleItem() (nav.Item, bool) {
	c := m.coordinator()
	if item, ok := c.FullScreen(); ok {
		return item, true
	}
	if item, ok := c.Sheet(); ok {
		return item, true
	}
	return c.Top()
}

// screenFor returns the cached screen for an item, building it if
// needed. The second return is the new screen's Init command.
func (m Model) screenFor(item nav.Item) (Screen, tea.Cmd) {
	if screen, ok := m.screens[item.ID]; ok {
		return screen, nil
	}
	screen := m.factory.Build(item)
	m.screens[item.ID] = screen
	return screen, screen.Init()
}

// rootFor returns a tab's root screen, building it on first visit.
func (m Model) rootFor(tab route.Tab) (Screen, tea.Cmd) {
	if screen, ok := m.roots[tab]; ok {
		return screen, nil
	}
	screen := m.factory.BuildRoot(tab)
	m.roots[tab] = screen
	return screen, screen.Init()
}

// visibleScreen resolves (and lazily builds) the screen being shown.
func (m Model) visibleScreen() (Screen, tea.Cmd) {
	if item, ok := m.visibleItem(); ok {
		return m.screenFor(item)
	}
	return m.rootFor(m.currentTab())
}

// ensureVisible builds the visible screen if needed and returns its
// Init command.
func (m Model) ensureVisible() tea.Cmd {
	_, cmd := m.visibleScreen()
	return cmd
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authChangedMsg:
		return m.handleAuthChanged(msg)

	case fetchResultMsg:
		return m.routeFetchResult(msg)

	case pushMsg:
		m.coordinator().Push(msg.route)
		return m, m.ensureVisible()

	case presentMsg:
		m.coordinator().Present(msg.route, msg.fullScreen)
		return m, m.ensureVisible()

	case dismissMsg:
		return m.dismissModal()

	case popMsg:
		return m.popOne()

	case navigateMsg:
		m.navApp.Navigate(msg.dest)
		return m, m.ensureVisible()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Component ticks (cursor blink) go to the visible screen.
	screen, initCmd := m.visibleScreen()
	return m, tea.Batch(initCmd, screen.Update(message))
}

// handleAuthChanged applies a session flip from the auth service.
// Logout (including expiry) drops every cached screen alongside the
// navigation reset; login resets the auth flow and lets the pending
// deep link, if any, rebuild its screens lazily.
func (m Model) handleAuthChanged(msg authChangedMsg) (tea.Model, tea.Cmd) {
	m.navApp.SetAuthenticated(msg.authenticated)
	clear(m.screens)
	if !msg.authenticated {
		clear(m.roots)
	} else {
		m.navApp.Coordinator(route.TabAuth).Reset()
	}
	return m, tea.Batch(
		m.ensureVisible(),
		listenAuthChanges(m.factory.Services.Auth.Changes()),
	)
}

// routeFetchResult delivers a service result to the screen that asked
// for it. Results for screens popped in the meantime are dropped.
func (m Model) routeFetchResult(msg fetchResultMsg) (tea.Model, tea.Cmd) {
	if screen, ok := m.screens[msg.screenID]; ok {
		return m, screen.Update(msg)
	}
	for _, screen := range m.roots {
		if screen.ID() == msg.screenID {
			return m, screen.Update(msg)
		}
	}
	m.logger.Debug("dropping stale fetch result", "screen_id", msg.screenID)
	return m, nil
}

// dismissModal closes the visible sheet or full-screen modal and
// evicts its screen.
func (m Model) dismissModal() (tea.Model, tea.Cmd) {
	c := m.coordinator()
	if item, ok := c.FullScreen(); ok {
		delete(m.screens, item.ID)
	}
	if item, ok := c.Sheet(); ok {
		delete(m.screens, item.ID)
	}
	c.Dismiss()
	return m, nil
}

// popOne removes the top stack entry and refreshes the revealed
// screen so it reflects any mutation made above it.
func (m Model) popOne() (tea.Model, tea.Cmd) {
	c := m.coordinator()
	if item, ok := c.Top(); ok {
		delete(m.screens, item.ID)
	}
	c.Truncate(c.Depth() - 1)
	screen, initCmd := m.visibleScreen()
	if initCmd != nil {
		return m, initCmd
	}
	return m, screen.Init()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.navApp.Authenticated() {
		m.factory.Services.Auth.ExtendSession()
	}

	if m.linkPrompt {
		return m.handleLinkPromptKey(msg)
	}

	screen, initCmd := m.visibleScreen()

	if screen.CapturesInput() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.back()
		}
		return m, tea.Batch(initCmd, screen.Update(msg))
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.back()
	case key.Matches(msg, m.keys.OpenLink):
		m.linkPrompt = true
		m.linkInput.SetValue("")
		m.linkInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.TabHome):
		return m.switchTab(route.TabHome)
	case key.Matches(msg, m.keys.TabAccounts):
		return m.switchTab(route.TabAccounts)
	case key.Matches(msg, m.keys.TabTransfer):
		return m.switchTab(route.TabTransfer)
	case key.Matches(msg, m.keys.TabCards):
		return m.switchTab(route.TabCards)
	case key.Matches(msg, m.keys.TabMore):
		return m.switchTab(route.TabMore)
	}

	return m, tea.Batch(initCmd, screen.Update(msg))
}

func (m Model) handleLinkPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.linkPrompt = false
		m.linkInput.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.linkInput.Value())
		m.linkPrompt = false
		m.linkInput.Blur()
		if raw != "" {
			m.navApp.HandleDeepLink(raw)
		}
		return m, m.ensureVisible()
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.linkInput, cmd = m.linkInput.Update(msg)
	return m, cmd
}

// back dismisses the visible modal, or pops one screen off the stack.
// At a tab root it does nothing.
func (m Model) back() (tea.Model, tea.Cmd) {
	c := m.coordinator()
	if _, ok := c.FullScreen(); ok {
		return m.dismissModal()
	}
	if _, ok := c.Sheet(); ok {
		return m.dismissModal()
	}
	if c.Depth() > 0 {
		return m.popOne()
	}
	return m, nil
}

// switchTab changes the active tab. Ignored while signed out.
func (m Model) switchTab(tab route.Tab) (tea.Model, tea.Cmd) {
	if !m.navApp.Authenticated() {
		return m, nil
	}
	m.navApp.SwitchTab(tab)
	return m, m.ensureVisible()
}

func (m Model) View() string {
	if m.width == 0 {
		return "initializing…"
	}
	theme := m.factory.Theme

	screen, _ := m.visibleScreen()
	header := m.renderHeader(screen.Title())
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	c := m.coordinator()
	_, hasFullScreen := c.FullScreen()
	_, hasSheet := c.Sheet()

	var body string
	if hasSheet && !hasFullScreen {
		// Render the screen under the sheet, then splice the sheet in.
		under, _ := m.underlyingScreen()
		base := lipgloss.NewStyle().Width(m.width).Height(bodyHeight).
			Render(under.View(m.width-2, bodyHeight))
		sheetWidth := m.width * 2 / 3
		if sheetWidth < 30 {
			sheetWidth = m.width - 4
		}
		content := screen.View(sheetWidth-4, bodyHeight-4)
		body = tui.Sheet(base, content, m.width, bodyHeight, theme)
	} else {
		body = lipgloss.NewStyle().Width(m.width).Height(bodyHeight).
			Render(screen.View(m.width-2, bodyHeight))
	}

	return header + "\n" + body + "\n" + footer
}

// underlyingScreen is the stack top (or root) beneath a sheet.
func (m Model) underlyingScreen() (Screen, tea.Cmd) {
	c := m.coordinator()
	if item, ok := c.Top(); ok {
		return m.screenFor(item)
	}
	return m.rootFor(m.currentTab())
}

func (m Model) renderHeader(title string) string {
	theme := m.factory.Theme
	brand := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(" Oakline ")
	titleText := lipgloss.NewStyle().Foreground(theme.FaintText).Render(title)

	if !m.navApp.Authenticated() {
		return brand + "· " + titleText
	}

	var tabs []string
	for i, tab := range userTabs {
		style := lipgloss.NewStyle().Foreground(theme.TabInactive)
		if tab == m.navApp.ActiveTab() {
			style = lipgloss.NewStyle().Foreground(theme.TabActive).Bold(true)
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d:%s", i+1, tab.Name())))
	}
	return brand + "· " + titleText + "\n " + strings.Join(tabs, "  ")
}

func (m Model) renderFooter() string {
	theme := m.factory.Theme
	if m.linkPrompt {
		label := lipgloss.NewStyle().Foreground(theme.TabActive).Render(" open link ")
		return label + m.linkInput.View()
	}
	help := "esc back · g open link · q quit"
	if m.navApp.Authenticated() {
		help = "1-5 tabs · " + help
	}
	if m.navApp.PendingDeepLink() != "" {
		help = "link saved for after sign-in · " + help
	}
	return lipgloss.NewStyle().Foreground(theme.HelpText).Render(" " + help)
}
