// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package deeplink

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oakline-app/oakline/lib/route"
)

// DefaultScheme is the custom URL scheme the app registers.
const DefaultScheme = "oakline"

var (
	// ErrInvalidScheme means the URL's scheme is not the app's scheme.
	ErrInvalidScheme = errors.New("deeplink: invalid scheme")

	// ErrInvalidPath means the feature or segment shape is not
	// registered in the dispatch table.
	ErrInvalidPath = errors.New("deeplink: invalid path")
)

// featureParser maps the path segments after the feature name to a
// route. A nil route with a nil error means "switch to the tab only".
type featureParser func(segments []string) (route.Route, error)

// featureParsers is the fixed dispatch table: feature name to parser.
// Every entry must accept the empty segment list (tab-only link).
var featureParsers = map[string]featureParser{
	"home":     parseHome,
	"accounts": parseAccounts,
	"transfer": parseTransfer,
	"cards":    parseCards,
	"more":     parseMore,
	"auth":     parseAuth,
}

// Parser parses and builds deep-link URLs for one configured scheme.
type Parser struct {
	scheme string
}

// New returns a Parser for the given scheme. An empty scheme selects
// [DefaultScheme].
func New(scheme string) *Parser {
	if scheme == "" {
		scheme = DefaultScheme
	}
	return &Parser{scheme: scheme}
}

// Parse maps a raw URL to a typed app route. It is pure: no side
// effects, and every failure is a wrapped [ErrInvalidScheme] or
// [ErrInvalidPath].
//
// The URL is decomposed by hand rather than via net/url: net/url
// lowercases the authority component, and deep-link segments —
// including the feature name in authority position — are defined as
// case-sensitive ASCII.
func (p *Parser) Parse(raw string) (route.App, error) {
	scheme, rest, found := strings.Cut(raw, "://")
	if !found {
		return route.App{}, fmt.Errorf("%w: %q has no scheme separator", ErrInvalidScheme, raw)
	}
	if scheme != p.scheme {
		return route.App{}, fmt.Errorf("%w: got %q, want %q", ErrInvalidScheme, scheme, p.scheme)
	}

	feature, path, _ := strings.Cut(rest, "/")
	if feature == "" {
		return route.App{}, fmt.Errorf("%w: missing feature component", ErrInvalidPath)
	}

	tab, ok := route.TabFromName(feature)
	if !ok {
		return route.App{}, fmt.Errorf("%w: unknown feature %q", ErrInvalidPath, feature)
	}

	segments, err := splitSegments(path)
	if err != nil {
		return route.App{}, err
	}

	sub, err := featureParsers[feature](segments)
	if err != nil {
		return route.App{}, err
	}
	return route.App{Tab: tab, Route: sub}, nil
}

// Build renders the deep-link URL for an app route. It is the inverse
// of Parse for every representable route.
func (p *Parser) Build(app route.App) string {
	var builder strings.Builder
	builder.WriteString(p.scheme)
	builder.WriteString("://")
	builder.WriteString(app.Tab.Name())
	if app.Route != nil {
		for _, segment := range app.Route.Segments() {
			builder.WriteByte('/')
			builder.WriteString(segment)
		}
	}
	return builder.String()
}

// splitSegments decomposes the path after the feature name into its
// slash-separated components. Empty components (doubled slashes) are
// invalid rather than silently dropped: shapes must match exactly.
func splitSegments(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segments := strings.Split(path, "/")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty path segment in %q", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

func parseHome(segments []string) (route.Route, error) {
	switch {
	case len(segments) == 0:
		return nil, nil
	case len(segments) == 1 && segments[0] == "notices":
		return route.NoticeList{}, nil
	case len(segments) == 2 && segments[0] == "notices":
		return route.NoticeDetail{NoticeID: segments[1]}, nil
	}
	return nil, shapeError("home", segments)
}

func parseAccounts(segments []string) (route.Route, error) {
	switch len(segments) {
	case 0:
		return nil, nil
	case 1:
		return route.AccountDetail{AccountID: segments[0]}, nil
	case 2:
		switch segments[1] {
		case "transactions":
			return route.AccountTransactions{AccountID: segments[0]}, nil
		case "statements":
			return route.AccountStatements{AccountID: segments[0]}, nil
		}
	case 3:
		if segments[1] == "transactions" {
			return route.TransactionDetail{AccountID: segments[0], TransactionID: segments[2]}, nil
		}
	}
	return nil, shapeError("accounts", segments)
}

func parseTransfer(segments []string) (route.Route, error) {
	switch {
	case len(segments) == 0:
		return nil, nil
	case len(segments) == 1 && segments[0] == "new":
		return route.NewTransfer{}, nil
	case len(segments) == 2 && segments[0] == "new":
		return route.NewTransfer{BeneficiaryID: segments[1]}, nil
	case len(segments) == 2 && segments[0] == "confirmation":
		return route.TransferConfirmation{TransferID: segments[1]}, nil
	case len(segments) == 1 && segments[0] == "beneficiaries":
		return route.BeneficiaryList{}, nil
	case len(segments) == 2 && segments[0] == "beneficiaries" && segments[1] == "add":
		return route.AddBeneficiary{}, nil
	}
	return nil, shapeError("transfer", segments)
}

func parseCards(segments []string) (route.Route, error) {
	switch len(segments) {
	case 0:
		return nil, nil
	case 1:
		return route.CardDetail{CardID: segments[0]}, nil
	case 2:
		switch segments[1] {
		case "settings":
			return route.CardSettings{CardID: segments[0]}, nil
		case "pin":
			return route.CardPINChange{CardID: segments[0]}, nil
		}
	}
	return nil, shapeError("cards", segments)
}

func parseMore(segments []string) (route.Route, error) {
	if len(segments) == 0 {
		return nil, nil
	}
	if len(segments) == 1 {
		switch segments[0] {
		case "profile":
			return route.Profile{}, nil
		case "settings":
			return route.Settings{}, nil
		case "security":
			return route.Security{}, nil
		case "about":
			return route.About{}, nil
		}
	}
	return nil, shapeError("more", segments)
}

func parseAuth(segments []string) (route.Route, error) {
	if len(segments) == 0 {
		return nil, nil
	}
	if len(segments) == 1 {
		switch segments[0] {
		case "login":
			return route.Login{}, nil
		case "otp":
			return route.OTPVerify{}, nil
		case "password":
			return route.ChangePassword{}, nil
		}
	}
	return nil, shapeError("auth", segments)
}

func shapeError(feature string, segments []string) error {
	return fmt.Errorf("%w: unrecognized %s path %q", ErrInvalidPath, feature, strings.Join(segments, "/"))
}
