// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlignFooter returns a single line with left at the start and right pushed
// to column width. Widths are measured in terminal cells, so styled strings
// line up. If width is too small a single space separates the two.
func AlignFooter(left, right string, width int) string {
	if right == "" {
		return left
	}
	spaces := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}
