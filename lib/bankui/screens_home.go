// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/service"
)

// homeRootScreen is the home tab's root: a greeting plus the latest
// notices. Enter opens the highlighted notice, "n" opens the full
// notice list.
type homeRootScreen struct {
	screenBase
	f *Factory

	profile service.Profile
	notices []service.Notice
	cursor  listCursor
}

type homeData struct {
	profile service.Profile
	notices []service.Notice
}

func (s *homeRootScreen) Title() string { return "Home" }

func (s *homeRootScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		ctx := context.Background()
		profile, err := services.Auth.Profile(ctx)
		if err != nil {
			return nil, err
		}
		notices, err := services.Notices.List(ctx)
		if err != nil {
			return nil, err
		}
		return homeData{profile: profile, notices: notices}, nil
	})
}

func (s *homeRootScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		data := msg.payload.(homeData)
		s.profile = data.profile
		s.notices = data.notices
		s.cursor.setCount(len(s.notices))
		s.loaded()
	case tea.KeyMsg:
		switch {
		case msg.String() == "r" && s.err != nil:
			return s.Init()
		case key.Matches(msg, DefaultKeyMap.Up):
			s.cursor.up()
		case key.Matches(msg, DefaultKeyMap.Down):
			s.cursor.down()
		case msg.String() == "n":
			return push(route.NoticeList{})
		case key.Matches(msg, DefaultKeyMap.Select):
			if s.cursor.count > 0 {
				return push(route.NoticeDetail{NoticeID: s.notices[s.cursor.index].ID})
			}
		}
	}
	return nil
}

func (s *homeRootScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{
		renderTitle(theme, "Welcome back, "+s.profile.Name),
		"",
		renderTitle(theme, "Notices"),
	}
	for i, notice := range s.notices {
		row := notice.PublishedAt.Format("Jan 02") + "  " + notice.Title
		lines = append(lines, renderRow(theme, i == s.cursor.index, row, width))
	}
	lines = append(lines, "", renderHint(theme, "enter open · n all notices"))
	return joinLines(lines)
}

// noticeListScreen shows every notice, newest first.
type noticeListScreen struct {
	screenBase
	f *Factory

	notices []service.Notice
	cursor  listCursor
}

func (s *noticeListScreen) Title() string { return "Notices" }

func (s *noticeListScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return services.Notices.List(context.Background())
	})
}

func (s *noticeListScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.notices = msg.payload.([]service.Notice)
		s.cursor.setCount(len(s.notices))
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
				return push(route.NoticeDetail{NoticeID: s.notices[s.cursor.index].ID})
			}
		}
	}
	return nil
}

func (s *noticeListScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{renderTitle(theme, "All notices"), ""}
	for i, notice := range s.notices {
		row := notice.PublishedAt.Format("2006-01-02") + "  " + notice.Title
		lines = append(lines, renderRow(theme, i == s.cursor.index, row, width))
	}
	return joinLines(lines)
}

// noticeDetailScreen renders one notice's markdown body.
type noticeDetailScreen struct {
	screenBase
	f        *Factory
	noticeID string

	notice service.Notice
}

func (s *noticeDetailScreen) Title() string { return "Notice" }

func (s *noticeDetailScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	noticeID := s.noticeID
	return fetch(s.id, func() (any, error) {
		return services.Notices.Get(context.Background(), noticeID)
	})
}

func (s *noticeDetailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.notice = msg.payload.(service.Notice)
		s.loaded()
	case tea.KeyMsg:
		if msg.String() == "r" && s.err != nil {
			return s.Init()
		}
	}
	return nil
}

func (s *noticeDetailScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	header := renderTitle(theme, s.notice.Title) + "\n" +
		renderHint(theme, s.notice.PublishedAt.Format("January 2, 2006"))
	return header + "\n\n" + renderNoticeMarkdown(s.notice.Body, theme, width)
}
