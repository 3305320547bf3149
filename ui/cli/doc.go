// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Pocketkit using Cobra.
// It loads configuration, sets up logging and i18n, and provides commands
// that delegate to the calc, password and tape packages. Running without a
// subcommand starts the TUI.
package cli
