// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"
	"time"

	"github.com/oakline-app/oakline/lib/clock"
)

// Auth owns the mock session. Login is two-step (credentials, then a
// one-time code); biometric login is single-step when the preference
// is enabled. A session-expiry timer can flip the authenticated flag
// without user action, so every state transition is published on the
// Changes channel and consumers must treat a false there as an
// asynchronous external event, not an echo of their own calls.
//
// Unlike the data services, Auth is internally locked: the expiry
// timer fires on its own goroutine.
type Auth struct {
	clock      clock.Clock
	latency    time.Duration
	sessionTTL time.Duration

	// biometricEnabled reads the persisted preference at call time;
	// the service never caches it.
	biometricEnabled func() bool

	mu            sync.Mutex
	authenticated bool
	otpPending    bool
	expiry        *clock.Timer

	credentials map[string]string // username -> PIN
	otpCode     string
	profile     Profile

	changes chan bool
}

// NewAuth returns an auth service with the fixture credentials. The
// sessionTTL bounds how long a session lives without ExtendSession
// calls; zero disables expiry. biometricEnabled may be nil, which
// reads as disabled.
func NewAuth(c clock.Clock, latency, sessionTTL time.Duration, fixtures Fixtures, biometricEnabled func() bool) *Auth {
	if biometricEnabled == nil {
		biometricEnabled = func() bool { return false }
	}
	return &Auth{
		clock:            c,
		latency:          latency,
		sessionTTL:       sessionTTL,
		biometricEnabled: biometricEnabled,
		credentials:      fixtures.Credentials,
		otpCode:          fixtures.OTPCode,
		profile:          fixtures.Profile,
		changes:          make(chan bool, 8),
	}
}

// Changes returns the subscription channel for authenticated-flag
// transitions. Buffered; intended for a single consumer (the UI event
// pump). If the consumer falls behind, transitions are dropped rather
// than blocking the expiry timer.
func (s *Auth) Changes() <-chan bool { return s.changes }

// Authenticated reports the current flag.
func (s *Auth) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Login checks the username and PIN. On success the session is NOT yet
// authenticated: a one-time code must be verified next.
func (s *Auth) Login(ctx context.Context, username, pin string) error {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if expected, ok := s.credentials[username]; !ok || expected != pin {
		return ErrInvalidCredentials
	}
	s.otpPending = true
	return nil
}

// VerifyOTP completes a two-step login.
func (s *Auth) VerifyOTP(ctx context.Context, code string) error {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.otpPending || code != s.otpCode {
		return ErrInvalidOTP
	}
	s.otpPending = false
	s.setAuthenticatedLocked(true)
	return nil
}

// BiometricLogin authenticates in one step when the persisted
// biometric preference is enabled.
func (s *Auth) BiometricLogin(ctx context.Context) error {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return err
	}
	if !s.biometricEnabled() {
		return ErrBiometricDisabled
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setAuthenticatedLocked(true)
	return nil
}

// ChangePIN replaces the PIN for the signed-in user's credentials.
func (s *Auth) ChangePIN(ctx context.Context, username, oldPIN, newPIN string) error {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	if expected, ok := s.credentials[username]; !ok || expected != oldPIN {
		return ErrInvalidCredentials
	}
	s.credentials[username] = newPIN
	return nil
}

// Profile returns the account holder's contact record.
func (s *Auth) Profile(ctx context.Context) (Profile, error) {
	if err := simulate(ctx, s.clock, s.latency); err != nil {
		return Profile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return Profile{}, ErrNotAuthenticated
	}
	return s.profile, nil
}

// Logout ends the session immediately.
func (s *Auth) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otpPending = false
	s.setAuthenticatedLocked(false)
}

// ExtendSession pushes the expiry deadline out by another session TTL.
// Called on user activity. No-op while unauthenticated or when expiry
// is disabled.
func (s *Auth) ExtendSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated || s.expiry == nil {
		return
	}
	s.expiry.Reset(s.sessionTTL)
}

// setAuthenticatedLocked flips the flag, manages the expiry timer, and
// publishes the transition. Publishing only happens on an actual
// change, so repeated logins or logouts produce one event each.
func (s *Auth) setAuthenticatedLocked(authenticated bool) {
	if s.authenticated == authenticated {
		return
	}
	s.authenticated = authenticated

	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}
	if authenticated && s.sessionTTL > 0 {
		s.expiry = s.clock.AfterFunc(s.sessionTTL, s.expire)
	}

	select {
	case s.changes <- authenticated:
	default:
	}
}

// expire is the session timer callback.
func (s *Auth) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setAuthenticatedLocked(false)
}
