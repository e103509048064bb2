// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

// Profile shows the account holder's contact details.
type Profile struct{}

func (Profile) RouteID() string    { return "profile" }
func (Profile) Segments() []string { return []string{"profile"} }
func (Profile) Tab() Tab           { return TabMore }
func (Profile) isRoute()           {}

// Settings shows app preferences.
type Settings struct{}

func (Settings) RouteID() string    { return "settings" }
func (Settings) Segments() []string { return []string{"settings"} }
func (Settings) Tab() Tab           { return TabMore }
func (Settings) isRoute()           {}

// Security shows the biometric-login toggle and PIN controls.
type Security struct{}

func (Security) RouteID() string    { return "security" }
func (Security) Segments() []string { return []string{"security"} }
func (Security) Tab() Tab           { return TabMore }
func (Security) isRoute()           {}

// About shows the app's about page.
type About struct{}

func (About) RouteID() string    { return "about" }
func (About) Segments() []string { return []string{"about"} }
func (About) Tab() Tab           { return TabMore }
func (About) isRoute()           {}
