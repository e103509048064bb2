// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/service"
)

// accountListScreen is the accounts tab root.
type accountListScreen struct {
	screenBase
	f *Factory

	accounts []service.Account
	cursor   listCursor
}

func (s *accountListScreen) Title() string { return "Accounts" }

func (s *accountListScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return services.Accounts.List(context.Background())
	})
}

func (s *accountListScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.accounts = msg.payload.([]service.Account)
		s.cursor.setCount(len(s.accounts))
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
				return push(route.AccountDetail{AccountID: s.accounts[s.cursor.index].ID})
			}
		}
	}
	return nil
}

func (s *accountListScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{renderTitle(theme, "Your accounts"), ""}
	for i, account := range s.accounts {
		row := fmt.Sprintf("%-22s %s  %s",
			account.Name, account.Number, formatAmount(account.BalanceCents, account.Currency))
		lines = append(lines, renderRow(theme, i == s.cursor.index, row, width))
	}
	return joinLines(lines)
}

// accountDetailScreen shows one account with shortcuts to its
// transactions and statements.
type accountDetailScreen struct {
	screenBase
	f         *Factory
	accountID string

	account service.Account
}

func (s *accountDetailScreen) Title() string { return "Account" }

func (s *accountDetailScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	accountID := s.accountID
	return fetch(s.id, func() (any, error) {
		return services.Accounts.Get(context.Background(), accountID)
	})
}

func (s *accountDetailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.account = msg.payload.(service.Account)
		s.loaded()
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if s.err != nil {
				return s.Init()
			}
		case "t":
			return push(route.AccountTransactions{AccountID: s.accountID})
		case "s":
			return push(route.AccountStatements{AccountID: s.accountID})
		}
	}
	return nil
}

func (s *accountDetailScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	balance := lipgloss.NewStyle().
		Foreground(theme.AmountColor(s.account.BalanceCents)).
		Bold(true).
		Render(formatAmount(s.account.BalanceCents, s.account.Currency))
	lines := []string{
		renderTitle(theme, s.account.Name),
		"",
		renderField(theme, "Number", s.account.Number),
		renderField(theme, "Currency", s.account.Currency),
		renderField(theme, "Balance", balance),
		"",
		renderHint(theme, "t transactions · s statements"),
	}
	return joinLines(lines)
}

// transactionListScreen lists an account's transactions, newest first.
type transactionListScreen struct {
	screenBase
	f         *Factory
	accountID string

	transactions []service.Transaction
	cursor       listCursor
}

func (s *transactionListScreen) Title() string { return "Transactions" }

func (s *transactionListScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	accountID := s.accountID
	return fetch(s.id, func() (any, error) {
		return services.Accounts.Transactions(context.Background(), accountID)
	})
}

func (s *transactionListScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.transactions = msg.payload.([]service.Transaction)
		s.cursor.setCount(len(s.transactions))
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
				tx := s.transactions[s.cursor.index]
				return push(route.TransactionDetail{AccountID: s.accountID, TransactionID: tx.ID})
			}
		}
	}
	return nil
}

func (s *transactionListScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{renderTitle(theme, "Transactions"), ""}
	for i, tx := range s.transactions {
		amount := lipgloss.NewStyle().
			Foreground(theme.AmountColor(tx.AmountCents)).
			Render(formatCents(tx.AmountCents))
		row := fmt.Sprintf("%s  %-28s %s", tx.PostedAt.Format("Jan 02"), tx.Description, amount)
		lines = append(lines, renderRow(theme, i == s.cursor.index, row, width))
	}
	if len(s.transactions) == 0 {
		lines = append(lines, renderHint(theme, "no transactions"))
	}
	return joinLines(lines)
}

// transactionDetailScreen shows one transaction.
type transactionDetailScreen struct {
	screenBase
	f             *Factory
	accountID     string
	transactionID string

	transaction service.Transaction
}

func (s *transactionDetailScreen) Title() string { return "Transaction" }

func (s *transactionDetailScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	accountID, transactionID := s.accountID, s.transactionID
	return fetch(s.id, func() (any, error) {
		return services.Accounts.Transaction(context.Background(), accountID, transactionID)
	})
}

func (s *transactionDetailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.transaction = msg.payload.(service.Transaction)
		s.loaded()
	case tea.KeyMsg:
		if msg.String() == "r" && s.err != nil {
			return s.Init()
		}
	}
	return nil
}

func (s *transactionDetailScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	amount := lipgloss.NewStyle().
		Foreground(theme.AmountColor(s.transaction.AmountCents)).
		Bold(true).
		Render(formatCents(s.transaction.AmountCents))
	lines := []string{
		renderTitle(theme, s.transaction.Description),
		"",
		renderField(theme, "Amount", amount),
		renderField(theme, "Category", s.transaction.Category),
		renderField(theme, "Posted", s.transaction.PostedAt.Format("January 2, 2006 15:04")),
		renderField(theme, "Reference", s.transaction.ID),
	}
	return joinLines(lines)
}

// statementListScreen lists an account's monthly statements.
type statementListScreen struct {
	screenBase
	f         *Factory
	accountID string

	statements []service.Statement
	cursor     listCursor
}

func (s *statementListScreen) Title() string { return "Statements" }

func (s *statementListScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	accountID := s.accountID
	return fetch(s.id, func() (any, error) {
		return services.Accounts.Statements(context.Background(), accountID)
	})
}

func (s *statementListScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.statements = msg.payload.([]service.Statement)
		s.cursor.setCount(len(s.statements))
		s.loaded()
	case tea.KeyMsg:
		switch {
		case msg.String() == "r" && s.err != nil:
			return s.Init()
		case key.Matches(msg, DefaultKeyMap.Up):
			s.cursor.up()
		case key.Matches(msg, DefaultKeyMap.Down):
			s.cursor.down()
		}
	}
	return nil
}

func (s *statementListScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{renderTitle(theme, "Statements"), ""}
	for i, statement := range s.statements {
		row := fmt.Sprintf("%s  %d entries  closing %s",
			statement.Month, statement.EntryCount, formatCents(statement.ClosingCents))
		lines = append(lines, renderRow(theme, i == s.cursor.index, row, width))
	}
	if len(s.statements) == 0 {
		lines = append(lines, renderHint(theme, "no statements yet"))
	}
	return joinLines(lines)
}
