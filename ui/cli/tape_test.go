// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/pocketkit/internal/tape"
)

// tapeArgs prepends the flags pointing every command at dsn.
func tapeArgs(dsn string, args ...string) []string {
	return append([]string{"--database.type", "sqlite", "--database.dsn", dsn}, args...)
}

func TestTapeCmd_RoundTrip(t *testing.T) {
	dir := setupTestEnv(t)
	t.Setenv("POCKETKIT_TAPE_ENABLED", "true")
	dsn := filepath.Join(dir, "tape.db")

	run := func(args ...string) string {
		t.Helper()
		out, err := executeCommand(t, nil, tapeArgs(dsn, args...)...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out
	}

	run("calc", "1", "+", "2", "×", "4", "=")
	out := run("tape", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 tape entries, got %q", out)
	}
	// Newest first.
	if !strings.HasSuffix(lines[0], "3 × 4 = 12") || !strings.HasSuffix(lines[1], "1 + 2 = 3") {
		t.Fatalf("unexpected tape listing %q", out)
	}

	if out := run("tape", "list", "-n", "1"); strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Fatalf("--limit 1 should print one entry, got %q", out)
	}

	if out := run("tape", "export", "backup.json"); !strings.Contains(out, "Exported 2 tape entries to backup.json.zst") {
		t.Fatalf("unexpected export output %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "backup.json.zst")); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	if out := run("tape", "clear"); !strings.Contains(out, "Cleared 2 tape entries.") {
		t.Fatalf("unexpected clear output %q", out)
	}
	if out := run("tape", "list"); strings.TrimSpace(out) != "The tape is empty." {
		t.Fatalf("expected empty tape, got %q", out)
	}

	if out := run("tape", "import", "backup.json.zst"); !strings.Contains(out, "Imported 2 tape entries") {
		t.Fatalf("unexpected import output %q", out)
	}
	out = run("tape", "list")
	if !strings.Contains(out, "1 + 2 = 3") || !strings.Contains(out, "3 × 4 = 12") {
		t.Fatalf("imported entries missing: %q", out)
	}
}

func TestTapeCmd_DisabledDoesNotRecord(t *testing.T) {
	dir := setupTestEnv(t)
	dsn := filepath.Join(dir, "tape.db")

	if _, err := executeCommand(t, nil, tapeArgs(dsn, "calc", "2", "+", "2", "=")...); err != nil {
		t.Fatalf("calc: %v", err)
	}
	out, err := executeCommand(t, nil, tapeArgs(dsn, "tape", "list")...)
	if err != nil {
		t.Fatalf("tape list: %v", err)
	}
	if !strings.Contains(out, "The tape is empty.") || !strings.Contains(out, "tape.enabled") {
		t.Fatalf("expected empty tape with a hint, got %q", out)
	}
}

func TestTapeCmd_OpenError(t *testing.T) {
	setupTestEnv(t)
	prev := openTapeFunc
	openTapeFunc = func(context.Context, string, string) (*tape.Store, error) {
		return nil, errors.New("connection refused")
	}
	defer func() { openTapeFunc = prev }()

	_, err := executeCommand(t, nil, "tape", "list")
	if err == nil || !strings.Contains(err.Error(), "Could not open tape database: connection refused") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestTapeCmd_ImportMissingFile(t *testing.T) {
	dir := setupTestEnv(t)
	_, err := executeCommand(t, nil, tapeArgs(filepath.Join(dir, "tape.db"), "tape", "import", "nope.zst")...)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
