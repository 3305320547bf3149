// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pocketkit/internal/i18n"
	"github.com/toeirei/pocketkit/internal/logging"
	"github.com/toeirei/pocketkit/internal/password"
)

// statusTimeout is how long transient status messages stay visible.
const statusTimeout = 2 * time.Second

// statusExpiredMsg clears the status message with the same sequence number.
type statusExpiredMsg struct{ seq int }

// passwordModel is the password generator view.
type passwordModel struct {
	opts      password.Options
	gen       *password.Generator
	password  string
	score     int
	rating    password.Rating
	bar       progress.Model
	errMsg    string
	status    string
	statusSeq int

	keys passwordKeyMap
	help help.Model
}

func newPasswordModel(opts password.Options) *passwordModel {
	opts.Length = password.ClampLength(opts.Length)
	return &passwordModel{
		opts:   opts,
		gen:    password.NewGenerator(nil),
		rating: password.Rate(0),
		bar:    newStrengthBar(password.Rate(0)),
		keys:   newPasswordKeyMap(),
		help:   help.New(),
	}
}

func newStrengthBar(r password.Rating) progress.Model {
	return progress.New(progress.WithSolidFill(r.Color), progress.WithoutPercentage(), progress.WithWidth(40))
}

// Init generates the first password, as the view opens.
func (m *passwordModel) Init() tea.Cmd {
	return m.generate()
}

func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return backToMenuMsg{} }
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Shorter):
			return m, m.setLength(m.opts.Length - 1)
		case key.Matches(msg, m.keys.Longer):
			return m, m.setLength(m.opts.Length + 1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggle(msg.String())
			return m, m.settingsChanged()
		case key.Matches(msg, m.keys.Generate):
			return m, m.generate()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copy()
		}
	}
	return m, nil
}

func (m *passwordModel) setLength(n int) tea.Cmd {
	n = password.ClampLength(n)
	if n == m.opts.Length {
		return nil
	}
	m.opts.Length = n
	return m.settingsChanged()
}

func (m *passwordModel) toggle(k string) {
	switch k {
	case "1":
		m.opts.Uppercase = !m.opts.Uppercase
	case "2":
		m.opts.Lowercase = !m.opts.Lowercase
	case "3":
		m.opts.Digits = !m.opts.Digits
	case "4":
		m.opts.Symbols = !m.opts.Symbols
	}
}

// settingsChanged regenerates once a password has been shown, so the output
// always matches the current settings.
func (m *passwordModel) settingsChanged() tea.Cmd {
	if m.password == "" {
		return nil
	}
	return m.generate()
}

func (m *passwordModel) generate() tea.Cmd {
	pw, err := m.gen.Generate(m.opts)
	if err != nil {
		if errors.Is(err, password.ErrNoCharacterSet) {
			m.errMsg = i18n.T("password.error_no_sets")
		} else {
			m.errMsg = err.Error()
		}
		logging.Debugf("password: generate failed: %v", err)
		return nil
	}
	m.errMsg = ""
	m.password = pw
	m.score = password.Strength(pw)
	m.rating = password.Rate(m.score)
	logging.Debugf("password: generated %v (%d chars, score %d)", password.Secret(pw), len(pw), m.score)
	m.bar = newStrengthBar(m.rating)
	return m.flash(i18n.T("password.generated_status"))
}

func (m *passwordModel) copy() tea.Cmd {
	if m.password == "" {
		return m.flash(i18n.T("password.nothing_to_copy"))
	}
	if err := clipboardWriteAll(m.password); err != nil {
		return m.flash(i18n.T("password.copy_failed", err))
	}
	return m.flash(i18n.T("password.copied"))
}

// flash shows s and returns a command that hides it after statusTimeout.
func (m *passwordModel) flash(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return statusExpiredMsg{seq: seq} })
}

func (m *passwordModel) View() string {
	title := mainTitleStyle.Render("🔐 " + i18n.T("password.title"))
	section := lipgloss.NewStyle().Bold(true)

	checkbox := func(n int, on bool, label string) string {
		mark := "[ ]"
		if on {
			mark = selectedItemStyle.Render("[x]")
		}
		return fmt.Sprintf("%d %s %s", n, mark, label)
	}

	lines := []string{
		section.Render(i18n.T("password.length", m.opts.Length)),
		helpStyle.Render(fmt.Sprintf("%d ◂ %s ▸ %d", password.MinLength, lengthSlider(m.opts.Length), password.MaxLength)),
		"",
		section.Render(i18n.T("password.types")),
		checkbox(1, m.opts.Uppercase, i18n.T("password.uppercase")),
		checkbox(2, m.opts.Lowercase, i18n.T("password.lowercase")),
		checkbox(3, m.opts.Digits, i18n.T("password.digits")),
		checkbox(4, m.opts.Symbols, i18n.T("password.symbols")),
		"",
		section.Render(i18n.T("password.generated")),
		passwordStyle.Render(m.password),
		"",
		section.Render(i18n.T("password.strength_title")),
		m.bar.ViewAs(float64(m.score) / 100),
		i18n.T("password.strength_value", i18n.T(m.rating.MessageID), m.score),
	}
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}

	parts := []string{title, paneStyle.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))}
	if m.status != "" {
		parts = append(parts, "", statusMessageStyle.Render(m.status))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// lengthSlider draws a 24 cell track with a knob at the current length.
func lengthSlider(length int) string {
	const cells = 24
	pos := (length - password.MinLength) * (cells - 1) / (password.MaxLength - password.MinLength)
	track := []rune{}
	for i := 0; i < cells; i++ {
		if i == pos {
			track = append(track, '●')
		} else {
			track = append(track, '─')
		}
	}
	return string(track)
}
