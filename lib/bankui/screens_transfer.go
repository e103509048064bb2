// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-app/oakline/lib/route"
	"github.com/oakline-app/oakline/lib/service"
)

// transferRootScreen is the transfer tab root menu.
type transferRootScreen struct {
	screenBase
	f *Factory

	cursor listCursor
}

var transferMenu = []struct {
	label string
	route route.Route
}{
	{"New transfer", route.NewTransfer{}},
	{"Beneficiaries", route.BeneficiaryList{}},
}

func (s *transferRootScreen) Title() string { return "Transfer" }

func (s *transferRootScreen) Init() tea.Cmd {
	s.cursor.setCount(len(transferMenu))
	return nil
}

func (s *transferRootScreen) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			s.cursor.up()
		case key.Matches(msg, DefaultKeyMap.Down):
			s.cursor.down()
		case key.Matches(msg, DefaultKeyMap.Select):
			return push(transferMenu[s.cursor.index].route)
		}
	}
	return nil
}

func (s *transferRootScreen) View(width, height int) string {
	theme := s.f.Theme
	lines := []string{renderTitle(theme, "Money transfer"), ""}
	for i, entry := range transferMenu {
		lines = append(lines, renderRow(theme, i == s.cursor.index, entry.label, width))
	}
	return joinLines(lines)
}

// transferFormData is the initial load for the transfer form.
type transferFormData struct {
	accounts      []service.Account
	beneficiaries []service.Beneficiary
}

// Form focus order for newTransferScreen.
const (
	focusAccount = iota
	focusBeneficiary
	focusAmount
	focusReference
	focusSubmit
)

// newTransferScreen is the transfer form. Account and beneficiary are
// cycled with ←/→; amount and reference are text inputs.
type newTransferScreen struct {
	screenBase
	f             *Factory
	beneficiaryID string // pre-selection from the route, may be empty

	accounts      []service.Account
	beneficiaries []service.Beneficiary
	accountIndex  int
	benIndex      int
	amount        textinput.Model
	reference     textinput.Model
	focus         int
	submitting    bool
	submitErr     error
}

func newTransferForm(id string, f *Factory, beneficiaryID string) *newTransferScreen {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 16

	reference := textinput.New()
	reference.Placeholder = "optional"
	reference.CharLimit = 64
	reference.Width = 32

	return &newTransferScreen{
		screenBase:    screenBase{id: id},
		f:             f,
		beneficiaryID: beneficiaryID,
		amount:        amount,
		reference:     reference,
	}
}

func (s *newTransferScreen) Title() string { return "New transfer" }

func (s *newTransferScreen) CapturesInput() bool {
	return s.amount.Focused() || s.reference.Focused()
}

func (s *newTransferScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		ctx := context.Background()
		accounts, err := services.Accounts.List(ctx)
		if err != nil {
			return nil, err
		}
		beneficiaries, err := services.Transfers.Beneficiaries(ctx)
		if err != nil {
			return nil, err
		}
		return transferFormData{accounts: accounts, beneficiaries: beneficiaries}, nil
	})
}

func (s *newTransferScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if s.submitting {
			s.submitting = false
			if msg.err != nil {
				s.submitErr = msg.err
				return nil
			}
			receipt := msg.payload.(service.TransferReceipt)
			return push(route.TransferConfirmation{TransferID: receipt.ID})
		}
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		data := msg.payload.(transferFormData)
		s.accounts = data.accounts
		s.beneficiaries = data.beneficiaries
		for i, b := range s.beneficiaries {
			if b.ID == s.beneficiaryID {
				s.benIndex = i
			}
		}
		s.loaded()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *newTransferScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.err != nil {
		if msg.String() == "r" {
			return s.Init()
		}
		return nil
	}
	if s.loading || s.submitting {
		return nil
	}

	switch msg.String() {
	case "tab", "down":
		s.setFocus(s.focus + 1)
		return nil
	case "shift+tab", "up":
		s.setFocus(s.focus - 1)
		return nil
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch s.focus {
		case focusAccount:
			s.accountIndex = cycle(s.accountIndex+delta, len(s.accounts))
		case focusBeneficiary:
			s.benIndex = cycle(s.benIndex+delta, len(s.beneficiaries))
		}
		return nil
	case "enter":
		if s.focus == focusSubmit {
			return s.submit()
		}
		s.setFocus(s.focus + 1)
		return nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusAmount:
		s.amount, cmd = s.amount.Update(msg)
	case focusReference:
		s.reference, cmd = s.reference.Update(msg)
	}
	return cmd
}

func (s *newTransferScreen) setFocus(focus int) {
	if focus < focusAccount {
		focus = focusAccount
	}
	if focus > focusSubmit {
		focus = focusSubmit
	}
	s.focus = focus
	s.amount.Blur()
	s.reference.Blur()
	switch focus {
	case focusAmount:
		s.amount.Focus()
	case focusReference:
		s.reference.Focus()
	}
}

func (s *newTransferScreen) submit() tea.Cmd {
	if len(s.accounts) == 0 || len(s.beneficiaries) == 0 {
		s.submitErr = service.ErrBeneficiaryNotFound
		return nil
	}
	amountCents, err := parseAmount(s.amount.Value())
	if err != nil {
		s.submitErr = err
		return nil
	}
	request := service.TransferRequest{
		FromAccountID: s.accounts[s.accountIndex].ID,
		BeneficiaryID: s.beneficiaries[s.benIndex].ID,
		AmountCents:   amountCents,
		Reference:     strings.TrimSpace(s.reference.Value()),
	}
	s.submitting = true
	s.submitErr = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return services.Transfers.Submit(context.Background(), request)
	})
}

func (s *newTransferScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}

	account := "(no accounts)"
	if len(s.accounts) > 0 {
		a := s.accounts[s.accountIndex]
		account = fmt.Sprintf("%s  %s", a.Name, formatAmount(a.BalanceCents, a.Currency))
	}
	beneficiary := "(no beneficiaries)"
	if len(s.beneficiaries) > 0 {
		b := s.beneficiaries[s.benIndex]
		beneficiary = fmt.Sprintf("%s  %s", b.Name, b.BankName)
	}

	lines := []string{
		renderTitle(theme, "New transfer"),
		"",
		s.formRow(focusAccount, "From", account),
		s.formRow(focusBeneficiary, "To", beneficiary),
		s.formRow(focusAmount, "Amount", s.amount.View()),
		s.formRow(focusReference, "Reference", s.reference.View()),
		"",
		s.formRow(focusSubmit, "", "[ Send transfer ]"),
	}
	if s.submitting {
		lines = append(lines, "", renderLoading(theme))
	}
	if s.submitErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.submitErr.Error()))
	}
	lines = append(lines, "", renderHint(theme, "tab next field · ←/→ change selection · enter send"))
	return joinLines(lines)
}

// formRow renders a label/value pair, marking the focused row.
func (s *newTransferScreen) formRow(focus int, label, value string) string {
	theme := s.f.Theme
	marker := "  "
	valueStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	if s.focus == focus {
		marker = lipgloss.NewStyle().Foreground(theme.TabActive).Render("> ")
		valueStyle = valueStyle.Bold(true)
	}
	if label == "" {
		return marker + valueStyle.Render(value)
	}
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(11)
	return marker + labelStyle.Render(label) + valueStyle.Render(value)
}

// cycle wraps an index into [0, count).
func cycle(index, count int) int {
	if count == 0 {
		return 0
	}
	index %= count
	if index < 0 {
		index += count
	}
	return index
}

// parseAmount converts a "12.34" style decimal string to cents.
func parseAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	whole, fraction, _ := strings.Cut(raw, ".")
	if whole == "" {
		return 0, service.ErrInvalidAmount
	}
	wholeValue, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || wholeValue < 0 {
		return 0, service.ErrInvalidAmount
	}
	cents := wholeValue * 100
	if fraction != "" {
		if len(fraction) > 2 {
			return 0, service.ErrInvalidAmount
		}
		for len(fraction) < 2 {
			fraction += "0"
		}
		fractionValue, err := strconv.ParseInt(fraction, 10, 64)
		if err != nil || fractionValue < 0 {
			return 0, service.ErrInvalidAmount
		}
		cents += fractionValue
	}
	if cents <= 0 {
		return 0, service.ErrInvalidAmount
	}
	return cents, nil
}

// transferConfirmationScreen shows a completed transfer's receipt,
// loaded by ID so deep links can open it directly.
type transferConfirmationScreen struct {
	screenBase
	f          *Factory
	transferID string

	receipt service.TransferReceipt
}

func (s *transferConfirmationScreen) Title() string { return "Transfer sent" }

func (s *transferConfirmationScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	transferID := s.transferID
	return fetch(s.id, func() (any, error) {
		return services.Transfers.Receipt(context.Background(), transferID)
	})
}

func (s *transferConfirmationScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.receipt = msg.payload.(service.TransferReceipt)
		s.loaded()
	case tea.KeyMsg:
		if msg.String() == "r" && s.err != nil {
			return s.Init()
		}
	}
	return nil
}

func (s *transferConfirmationScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	ok := lipgloss.NewStyle().Foreground(theme.AmountCredit).Bold(true)
	lines := []string{
		ok.Render("✓ Transfer complete"),
		"",
		renderField(theme, "Reference", s.receipt.ID),
		renderField(theme, "Amount", formatCents(s.receipt.Request.AmountCents)),
		renderField(theme, "From", s.receipt.Request.FromAccountID),
		renderField(theme, "To", s.receipt.Request.BeneficiaryID),
		renderField(theme, "Completed", s.receipt.CompletedAt.Format("January 2, 2006 15:04")),
	}
	if s.receipt.Request.Reference != "" {
		lines = append(lines, renderField(theme, "Note", s.receipt.Request.Reference))
	}
	return joinLines(lines)
}

// beneficiaryListScreen lists saved recipients. Enter starts a
// transfer to the highlighted recipient, "a" adds a new one.
type beneficiaryListScreen struct {
	screenBase
	f *Factory

	beneficiaries []service.Beneficiary
	cursor        listCursor
}

func (s *beneficiaryListScreen) Title() string { return "Beneficiaries" }

func (s *beneficiaryListScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return services.Transfers.Beneficiaries(context.Background())
	})
}

func (s *beneficiaryListScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			s.failed(msg.err)
			return nil
		}
		s.beneficiaries = msg.payload.([]service.Beneficiary)
		s.cursor.setCount(len(s.beneficiaries))
		s.loaded()
	case tea.KeyMsg:
		switch {
		case msg.String() == "r" && s.err != nil:
			return s.Init()
		case key.Matches(msg, DefaultKeyMap.Up):
			s.cursor.up()
		case key.Matches(msg, DefaultKeyMap.Down):
			s.cursor.down()
		case msg.String() == "a":
			return push(route.AddBeneficiary{})
		case key.Matches(msg, DefaultKeyMap.Select):
			if s.cursor.count > 0 {
				return push(route.NewTransfer{BeneficiaryID: s.beneficiaries[s.cursor.index].ID})
			}
		}
	}
	return nil
}

func (s *beneficiaryListScreen) View(width, height int) string {
	theme := s.f.Theme
	if s.loading {
		return renderLoading(theme)
	}
	if s.err != nil {
		return renderError(theme, s.err)
	}
	lines := []string{renderTitle(theme, "Beneficiaries"), ""}
	for i, b := range s.beneficiaries {
		row := fmt.Sprintf("%-20s %s  %s", b.Name, b.AccountNumber, b.BankName)
		lines = append(lines, renderRow(theme, i == s.cursor.index, row, width))
	}
	lines = append(lines, "", renderHint(theme, "enter transfer · a add"))
	return joinLines(lines)
}

// addBeneficiaryScreen is the new-recipient form.
type addBeneficiaryScreen struct {
	screenBase
	f *Factory

	name       textinput.Model
	number     textinput.Model
	bank       textinput.Model
	focus      int
	submitting bool
	submitErr  error
}

func newAddBeneficiaryForm(id string, f *Factory) *addBeneficiaryScreen {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 64
	name.Width = 32
	name.Focus()

	number := textinput.New()
	number.Placeholder = "Account number"
	number.CharLimit = 34
	number.Width = 32

	bank := textinput.New()
	bank.Placeholder = "Bank name"
	bank.CharLimit = 64
	bank.Width = 32

	return &addBeneficiaryScreen{
		screenBase: screenBase{id: id},
		f:          f,
		name:       name,
		number:     number,
		bank:       bank,
	}
}

func (s *addBeneficiaryScreen) Title() string { return "Add beneficiary" }

func (s *addBeneficiaryScreen) CapturesInput() bool {
	return s.name.Focused() || s.number.Focused() || s.bank.Focused()
}

func (s *addBeneficiaryScreen) Init() tea.Cmd { return textinput.Blink }

func (s *addBeneficiaryScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fetchResultMsg:
		s.submitting = false
		if msg.err != nil {
			s.submitErr = msg.err
			return nil
		}
		return pop()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	cmds = append(cmds, cmd)
	s.number, cmd = s.number.Update(msg)
	cmds = append(cmds, cmd)
	s.bank, cmd = s.bank.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (s *addBeneficiaryScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.submitting {
		return nil
	}
	inputs := []*textinput.Model{&s.name, &s.number, &s.bank}

	switch msg.String() {
	case "tab", "down":
		s.focus = cycle(s.focus+1, len(inputs)+1)
	case "shift+tab", "up":
		s.focus = cycle(s.focus-1, len(inputs)+1)
	case "enter":
		if s.focus == len(inputs) {
			return s.submit()
		}
		s.focus++
	default:
		if s.focus < len(inputs) {
			var cmd tea.Cmd
			*inputs[s.focus], cmd = inputs[s.focus].Update(msg)
			return cmd
		}
		return nil
	}

	for i, input := range inputs {
		if i == s.focus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
	return nil
}

func (s *addBeneficiaryScreen) submit() tea.Cmd {
	beneficiary := service.Beneficiary{
		Name:          strings.TrimSpace(s.name.Value()),
		AccountNumber: strings.TrimSpace(s.number.Value()),
		BankName:      strings.TrimSpace(s.bank.Value()),
	}
	if beneficiary.Name == "" || beneficiary.AccountNumber == "" {
		s.submitErr = errors.New("name and account number are required")
		return nil
	}
	s.submitting = true
	s.submitErr = nil
	services := s.f.Services
	return fetch(s.id, func() (any, error) {
		return services.Transfers.AddBeneficiary(context.Background(), beneficiary)
	})
}

func (s *addBeneficiaryScreen) View(width, height int) string {
	theme := s.f.Theme
	row := func(focus int, label, value string) string {
		marker := "  "
		if s.focus == focus {
			marker = lipgloss.NewStyle().Foreground(theme.TabActive).Render("> ")
		}
		if label == "" {
			return marker + value
		}
		labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(11)
		return marker + labelStyle.Render(label) + value
	}
	lines := []string{
		renderTitle(theme, "Add beneficiary"),
		"",
		row(0, "Name", s.name.View()),
		row(1, "Account", s.number.View()),
		row(2, "Bank", s.bank.View()),
		"",
		row(3, "", "[ Save ]"),
	}
	if s.submitErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		lines = append(lines, "", errStyle.Render(s.submitErr.Error()))
	}
	return joinLines(lines)
}
