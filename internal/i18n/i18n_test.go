// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
	if got := SortedLocales(); len(got) < 2 || got[0] != "de" || got[1] != "en" {
		t.Fatalf("unexpected locale order: %v", got)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("calc.error_divide_by_zero"); got != "Cannot divide by zero!" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("password.strength_value", "Strong", 72); got != "Strong (72/100)" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("unknown ids should fall back to the id, got %q", got)
	}
}

func TestSetLang_German(t *testing.T) {
	SetLang("de")
	defer SetLang("en")
	if got := T("calc.error_invalid"); got != "Ungültige Berechnung" {
		t.Fatalf("expected German translation, got %q", got)
	}
	if GetLang() != "de" {
		t.Fatalf("expected de, got %q", GetLang())
	}
}
