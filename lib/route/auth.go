// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

// Login is the username/PIN login screen.
type Login struct{}

func (Login) RouteID() string    { return "login" }
func (Login) Segments() []string { return []string{"login"} }
func (Login) Tab() Tab           { return TabAuth }
func (Login) isRoute()           {}

// OTPVerify is the one-time-passcode verification screen.
type OTPVerify struct{}

func (OTPVerify) RouteID() string    { return "otpVerify" }
func (OTPVerify) Segments() []string { return []string{"otp"} }
func (OTPVerify) Tab() Tab           { return TabAuth }
func (OTPVerify) isRoute()           {}

// ChangePassword is the password/PIN change screen.
type ChangePassword struct{}

func (ChangePassword) RouteID() string    { return "changePassword" }
func (ChangePassword) Segments() []string { return []string{"password"} }
func (ChangePassword) Tab() Tab           { return TabAuth }
func (ChangePassword) isRoute()           {}
