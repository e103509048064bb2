// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

// oakline is a terminal banking client backed by simulated services.
// It demonstrates stack-based navigation with typed routes: each tab
// owns a navigation stack plus modal slots, and any screen can be
// reached directly through an oakline:// deep link, including links
// received before sign-in.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/oakline-app/oakline/lib/bankui"
	"github.com/oakline-app/oakline/lib/clock"
	"github.com/oakline-app/oakline/lib/config"
	"github.com/oakline-app/oakline/lib/deeplink"
	"github.com/oakline-app/oakline/lib/nav"
	"github.com/oakline-app/oakline/lib/prefstore"
	"github.com/oakline-app/oakline/lib/service"
	"github.com/oakline-app/oakline/lib/tui"
	"github.com/oakline-app/oakline/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var openLink string
	var logOutput string

	flagSet := pflag.NewFlagSet("oakline", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $OAKLINE_CONFIG, else built-in defaults)")
	flagSet.StringVar(&openLink, "open", "", "deep link to open at startup, e.g. oakline://accounts/ACC001")
	flagSet.StringVar(&logOutput, "log-output", "", "write log records to this file instead of stderr")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("oakline")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(logOutput)
	if err != nil {
		return err
	}
	defer closeLog()

	// Preferences persist across runs; everything else is in-memory.
	prefsPath := cfg.PreferencesPath
	if prefsPath == "" {
		prefsPath, err = prefstore.DefaultPath()
		if err != nil {
			logger.Warn("no user config dir, preferences will not persist", "error", err)
		}
	}
	var prefs *prefstore.Store
	if prefsPath != "" {
		prefs = prefstore.New(prefsPath)
	}

	clk := clock.Real()
	fixtures := service.DefaultFixtures()
	latency := time.Duration(cfg.SimulatedLatency)

	accounts := service.NewAccounts(clk, latency, fixtures)
	biometricEnabled := func() bool { return prefs != nil && prefs.BiometricEnabled() }
	services := bankui.Services{
		Accounts:  accounts,
		Transfers: service.NewTransfers(clk, latency, accounts, fixtures),
		Cards:     service.NewCards(clk, latency, fixtures),
		Notices:   service.NewNotices(clk, latency, fixtures),
		Auth:      service.NewAuth(clk, latency, time.Duration(cfg.SessionTTL), fixtures, biometricEnabled),
		Prefs:     prefs,
	}

	parser := deeplink.New(cfg.Scheme)
	navApp := nav.NewApp(parser, logger)
	navApp.SetDefaultTab(cfg.Tab())
	if openLink != "" {
		// Stored as pending: the session is closed at startup, so the
		// link opens right after the first successful sign-in.
		navApp.HandleDeepLink(openLink)
	}

	factory := &bankui.Factory{Services: services, Theme: tui.DefaultTheme}
	model := bankui.NewModel(navApp, factory, logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newLogger builds the slog logger. TUI output owns the terminal, so
// by default records go to stderr where they surface after exit;
// --log-output redirects them to a file.
func newLogger(logOutput string) (*slog.Logger, func(), error) {
	var sink io.Writer = os.Stderr
	closeLog := func() {}
	if logOutput != "" {
		file, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log output: %w", err)
		}
		sink = file
		closeLog = func() { file.Close() }
	}
	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, closeLog, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Oakline — terminal banking client with simulated services.

Sign in with the demo account (username "demo", PIN "1234", one-time
code "000000"). Tabs are on the number row; "g" opens a deep-link
prompt. Links entered while signed out open after the next sign-in.

Usage:
  oakline [flags]

Flags:
%s`, flagSet.FlagUsages())
}
