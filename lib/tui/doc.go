// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface pieces for the
// Oakline app: the color theme and ANSI-aware overlay splicing used to
// draw modal sheets over a rendered frame.
//
// The screen models in lib/bankui import this package for a consistent
// look: same palette, same sheet mechanics. They own their own layout
// and domain rendering.
package tui
