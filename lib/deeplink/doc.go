// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package deeplink parses external URLs of the form
//
//	oakline://feature[/segment]*
//
// into typed [route.App] values, and builds such URLs back from
// routes. Parsing is a pure function: the first path component selects
// a per-feature sub-parser from a fixed dispatch table, and each
// sub-parser recognizes exact segment shapes only — there are no
// partial matches.
//
// Failures are non-fatal by contract: callers log and drop them, they
// never abort dispatch. The two failure modes are [ErrInvalidScheme]
// (URL scheme does not match the configured one) and [ErrInvalidPath]
// (unknown feature or unrecognized segment shape).
package deeplink
