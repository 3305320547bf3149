// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/atotto/clipboard"

// clipboardWriteAll allows tests to replace the system clipboard.
var clipboardWriteAll = clipboard.WriteAll
