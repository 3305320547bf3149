// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package password

import (
	"strings"
	"unicode"
)

// Strength scores pw from 0 to 100.
//
// Length earns 10 points each at 8, 12 and 16 characters. Each character
// class present (lower, upper, digit, symbol) earns 10 more. The share of
// unique characters contributes up to 30.
func Strength(pw string) int {
	runes := []rune(pw)
	if len(runes) == 0 {
		return 0
	}

	score := 0
	for _, threshold := range []int{8, 12, 16} {
		if len(runes) >= threshold {
			score += 10
		}
	}

	var lower, upper, digit, symbol bool
	unique := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		unique[r] = struct{}{}
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
		if strings.ContainsRune(SymbolSet, r) {
			symbol = true
		}
	}
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			score += 10
		}
	}

	score += int(float64(len(unique)) / float64(len(runes)) * 30)
	return min(score, 100)
}

// Level is a coarse strength band.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

// Rating describes a strength score for display.
type Rating struct {
	Level Level
	// MessageID is the i18n id of the level's label.
	MessageID string
	// Color is a hex colour suitable for a progress bar.
	Color string
}

var ratings = []Rating{
	{VeryWeak, "password.strength.very_weak", "#e74c3c"},
	{Weak, "password.strength.weak", "#f39c12"},
	{Moderate, "password.strength.moderate", "#f1c40f"},
	{Strong, "password.strength.strong", "#27ae60"},
	{VeryStrong, "password.strength.very_strong", "#2ecc71"},
}

// Rate maps a score onto its band: below 30 very weak, below 50 weak,
// below 70 moderate, below 85 strong, otherwise very strong.
func Rate(score int) Rating {
	switch {
	case score < 30:
		return ratings[VeryWeak]
	case score < 50:
		return ratings[Weak]
	case score < 70:
		return ratings[Moderate]
	case score < 85:
		return ratings[Strong]
	}
	return ratings[VeryStrong]
}
