// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/pocketkit/internal/i18n"
)

// calculatorKeyMap lists the bindings shown in the calculator's help line.
// Digits, operators and the other calculator keys are handled by
// calc.ParseKey and are not listed individually.
type calculatorKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Copy  key.Binding
	Back  key.Binding
	Help  key.Binding
}

func newCalculatorKeyMap() calculatorKeyMap {
	return calculatorKeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", i18n.T("key.up"))),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", i18n.T("key.down"))),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", i18n.T("key.left"))),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", i18n.T("key.right"))),
		Press: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", i18n.T("key.press"))),
		Copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", i18n.T("key.copy"))),
		Back:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", i18n.T("key.back"))),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", i18n.T("key.help"))),
	}
}

// ShortHelp implements help.KeyMap.
func (k calculatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Copy, k.Back, k.Help}
}

// FullHelp implements help.KeyMap.
func (k calculatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Copy},
		{k.Back, k.Help},
	}
}

type passwordKeyMap struct {
	Shorter  key.Binding
	Longer   key.Binding
	Toggle   key.Binding
	Generate key.Binding
	Copy     key.Binding
	Back     key.Binding
	Help     key.Binding
}

func newPasswordKeyMap() passwordKeyMap {
	return passwordKeyMap{
		Shorter:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", i18n.T("key.length"))),
		Longer:   key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", i18n.T("key.length"))),
		Toggle:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", i18n.T("key.toggle"))),
		Generate: key.NewBinding(key.WithKeys("g", "f5", "ctrl+g"), key.WithHelp("g/F5", i18n.T("key.generate"))),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", i18n.T("key.copy"))),
		Back:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", i18n.T("key.back"))),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", i18n.T("key.help"))),
	}
}

// ShortHelp implements help.KeyMap.
func (k passwordKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Back, k.Help}
}

// FullHelp implements help.KeyMap.
func (k passwordKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shorter, k.Longer, k.Toggle},
		{k.Generate, k.Copy},
		{k.Back, k.Help},
	}
}
