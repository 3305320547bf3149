// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/pocketkit/internal/password"
)

func TestPasswordCmd_Defaults(t *testing.T) {
	setupTestEnv(t)
	out, err := executeCommand(t, nil, "password")
	if err != nil {
		t.Fatalf("password: %v", err)
	}
	pw := strings.TrimSpace(out)
	if len(pw) != password.DefaultLength {
		t.Fatalf("expected %d characters, got %q", password.DefaultLength, pw)
	}
}

func TestPasswordCmd_Flags(t *testing.T) {
	setupTestEnv(t)
	out, err := executeCommand(t, nil, "password", "--length", "20", "--no-symbols", "--no-upper", "--count", "3")
	if err != nil {
		t.Fatalf("password: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 passwords, got %q", out)
	}
	allowed := password.LowercaseSet + password.DigitSet
	for _, pw := range lines {
		if len(pw) != 20 {
			t.Fatalf("expected 20 characters, got %q", pw)
		}
		for _, r := range pw {
			if !strings.ContainsRune(allowed, r) {
				t.Fatalf("unexpected character %q in %q", r, pw)
			}
		}
	}
}

func TestPasswordCmd_Strength(t *testing.T) {
	setupTestEnv(t)
	out, err := executeCommand(t, nil, "password", "-s", "-l", "16")
	if err != nil {
		t.Fatalf("password: %v", err)
	}
	pw, rating, ok := strings.Cut(strings.TrimSpace(out), "\t")
	if !ok || len(pw) != 16 || !strings.HasSuffix(rating, "/100)") {
		t.Fatalf("unexpected strength output %q", out)
	}
}

func TestPasswordCmd_Errors(t *testing.T) {
	setupTestEnv(t)

	_, err := executeCommand(t, nil, "password", "--no-upper", "--no-lower", "--no-digits", "--no-symbols")
	if err == nil || err.Error() != "Please select at least one character type!" {
		t.Fatalf("expected no-sets error, got %v", err)
	}

	_, err = executeCommand(t, nil, "password", "--length", "3")
	if !errors.Is(err, password.ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}

	_, err = executeCommand(t, nil, "password", "--count", "0")
	if err == nil {
		t.Fatalf("expected an error for --count 0")
	}
}

func TestPasswordCmd_Copy(t *testing.T) {
	setupTestEnv(t)
	var copied string
	prev := clipboardWriteAll
	clipboardWriteAll = func(s string) error { copied = s; return nil }
	defer func() { clipboardWriteAll = prev }()

	out, err := executeCommand(t, nil, "password", "--copy", "-n", "2")
	if err != nil {
		t.Fatalf("password: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Two passwords followed by the confirmation.
	if len(lines) != 3 || lines[2] != "Copied to clipboard." {
		t.Fatalf("unexpected output %q", out)
	}
	if copied != lines[0]+"\n"+lines[1] {
		t.Fatalf("clipboard %q does not match output", copied)
	}

	clipboardWriteAll = func(string) error { return errors.New("no display") }
	if _, err := executeCommand(t, nil, "password", "--copy"); err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("expected clipboard error, got %v", err)
	}
}
