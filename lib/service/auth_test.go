// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oakline-app/oakline/lib/clock"
	"github.com/oakline-app/oakline/lib/testutil"
)

func newTestAuth(fake *clock.FakeClock, sessionTTL time.Duration, biometric bool) *Auth {
	return NewAuth(fake, 0, sessionTTL, DefaultFixtures(), func() bool { return biometric })
}

func login(t *testing.T, auth *Auth) {
	t.Helper()
	ctx := context.Background()
	if err := auth.Login(ctx, "demo", "1234"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := auth.VerifyOTP(ctx, "000000"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
}

func TestLoginTwoStep(t *testing.T) {
	auth := newTestAuth(clock.Fake(serviceEpoch), 0, false)
	ctx := context.Background()

	if err := auth.Login(ctx, "demo", "9999"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad PIN error = %v, want ErrInvalidCredentials", err)
	}
	if auth.Authenticated() {
		t.Error("failed login must not authenticate")
	}

	if err := auth.Login(ctx, "demo", "1234"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if auth.Authenticated() {
		t.Error("login alone must not authenticate; OTP is still pending")
	}

	if err := auth.VerifyOTP(ctx, "111111"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("bad OTP error = %v, want ErrInvalidOTP", err)
	}
	if err := auth.VerifyOTP(ctx, "000000"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if !auth.Authenticated() {
		t.Error("OTP verification should authenticate")
	}

	// The transition was published.
	if got := testutil.RequireReceive(t, auth.Changes(), time.Second, "auth change"); !got {
		t.Error("published transition should be true")
	}
}

func TestOTPWithoutLogin(t *testing.T) {
	auth := newTestAuth(clock.Fake(serviceEpoch), 0, false)
	if err := auth.VerifyOTP(context.Background(), "000000"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("OTP with no pending login error = %v, want ErrInvalidOTP", err)
	}
}

func TestBiometricLogin(t *testing.T) {
	disabled := newTestAuth(clock.Fake(serviceEpoch), 0, false)
	if err := disabled.BiometricLogin(context.Background()); !errors.Is(err, ErrBiometricDisabled) {
		t.Errorf("error = %v, want ErrBiometricDisabled", err)
	}

	enabled := newTestAuth(clock.Fake(serviceEpoch), 0, true)
	if err := enabled.BiometricLogin(context.Background()); err != nil {
		t.Fatalf("BiometricLogin: %v", err)
	}
	if !enabled.Authenticated() {
		t.Error("biometric login should authenticate")
	}
}

func TestLogoutPublishesOnce(t *testing.T) {
	auth := newTestAuth(clock.Fake(serviceEpoch), 0, true)
	if err := auth.BiometricLogin(context.Background()); err != nil {
		t.Fatalf("BiometricLogin: %v", err)
	}
	testutil.RequireReceive(t, auth.Changes(), time.Second, "login transition")

	auth.Logout()
	auth.Logout() // repeated logout publishes nothing new

	if got := testutil.RequireReceive(t, auth.Changes(), time.Second, "logout transition"); got {
		t.Error("published transition should be false")
	}
	select {
	case extra := <-auth.Changes():
		t.Errorf("unexpected extra transition %v", extra)
	default:
	}
}

func TestSessionExpiry(t *testing.T) {
	fake := clock.Fake(serviceEpoch)
	auth := newTestAuth(fake, 5*time.Minute, false)
	login(t, auth)
	testutil.RequireReceive(t, auth.Changes(), time.Second, "login transition")

	fake.Advance(5 * time.Minute)

	if auth.Authenticated() {
		t.Error("session should have expired")
	}
	if got := testutil.RequireReceive(t, auth.Changes(), time.Second, "expiry transition"); got {
		t.Error("expiry should publish false")
	}
}

func TestExtendSessionDefersExpiry(t *testing.T) {
	fake := clock.Fake(serviceEpoch)
	auth := newTestAuth(fake, 5*time.Minute, false)
	login(t, auth)

	fake.Advance(4 * time.Minute)
	auth.ExtendSession()
	fake.Advance(4 * time.Minute)

	if !auth.Authenticated() {
		t.Error("extended session should still be live")
	}

	fake.Advance(time.Minute)
	if auth.Authenticated() {
		t.Error("session should expire one TTL after the last extension")
	}
}

func TestChangePIN(t *testing.T) {
	auth := newTestAuth(clock.Fake(serviceEpoch), 0, false)
	ctx := context.Background()

	if err := auth.ChangePIN(ctx, "demo", "1234", "4321"); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("unauthenticated ChangePIN error = %v, want ErrNotAuthenticated", err)
	}

	login(t, auth)
	if err := auth.ChangePIN(ctx, "demo", "0000", "4321"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong old PIN error = %v, want ErrInvalidCredentials", err)
	}
	if err := auth.ChangePIN(ctx, "demo", "1234", "4321"); err != nil {
		t.Fatalf("ChangePIN: %v", err)
	}

	// The new PIN is live for the next login.
	auth.Logout()
	if err := auth.Login(ctx, "demo", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old PIN should be rejected, got %v", err)
	}
	if err := auth.Login(ctx, "demo", "4321"); err != nil {
		t.Errorf("new PIN rejected: %v", err)
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	auth := newTestAuth(clock.Fake(serviceEpoch), 0, true)
	if _, err := auth.Profile(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("error = %v, want ErrNotAuthenticated", err)
	}
	if err := auth.BiometricLogin(context.Background()); err != nil {
		t.Fatalf("BiometricLogin: %v", err)
	}
	profile, err := auth.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Name == "" {
		t.Error("profile should carry fixture data")
	}
}
