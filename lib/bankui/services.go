// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"github.com/oakline-app/oakline/lib/prefstore"
	"github.com/oakline-app/oakline/lib/service"
)

// Services bundles the backends the screens draw from. All fields are
// required except Prefs, which may be nil when no preferences file is
// configured (the settings screen then hides the biometric toggle).
type Services struct {
	Accounts  *service.Accounts
	Transfers *service.Transfers
	Cards     *service.Cards
	Notices   *service.Notices
	Auth      *service.Auth
	Prefs     *prefstore.Store
}
