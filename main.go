// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Pocketkit.
//
// Usage:
//
//	go run . [flags]
//	./pocketkit [flags]
//
// This launches the Pocketkit CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/pocketkit/ui/cli"
)

// main is the entrypoint for the Pocketkit CLI. Cobra has already printed
// the error by the time Execute returns it.
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
