// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Pocketkit.
// This file contains the calculator view: a display line, the button grid and,
// when enabled, the most recent tape entries.
package tui // import "github.com/toeirei/pocketkit/internal/tui"

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pocketkit/internal/calc"
	"github.com/toeirei/pocketkit/internal/i18n"
	"github.com/toeirei/pocketkit/internal/logging"
	"github.com/toeirei/pocketkit/internal/tape"
)

// tapeStore is the part of tape.Store the TUI uses.
type tapeStore interface {
	Record(ctx context.Context, c calc.Calculation) (tape.Entry, error)
	List(ctx context.Context, limit int) ([]tape.Entry, error)
}

// tapeTimeout bounds every tape operation started from the TUI.
const tapeTimeout = 5 * time.Second

// tapeRecordedMsg reports the outcome of writing calculations to the tape.
type tapeRecordedMsg struct {
	entries []tape.Entry
	err     error
}

// tapeLoadedMsg carries the entries read when the calculator opens.
type tapeLoadedMsg struct {
	entries []tape.Entry
	err     error
}

// calculatorModel drives a calc.Engine from key presses.
type calculatorModel struct {
	engine  *calc.Engine
	display string
	// cursor position on calc.ButtonRows
	row, col int
	// errMsg is shown in a modal until the next key press.
	errMsg string
	status string

	// pending collects calculations reported by the engine until they are
	// handed to the tape in a command.
	pending     []calc.Calculation
	tape        tapeStore
	tapeLimit   int
	tapeEntries []tape.Entry

	keys   calculatorKeyMap
	help   help.Model
	width  int
	height int
}

func newCalculatorModel(store tapeStore, tapeLimit int) *calculatorModel {
	m := &calculatorModel{
		display:   "0",
		tape:      store,
		tapeLimit: tapeLimit,
		keys:      newCalculatorKeyMap(),
		help:      help.New(),
	}
	m.engine = calc.New(calc.WithObserver(calc.ObserverFunc(func(c calc.Calculation) {
		m.pending = append(m.pending, c)
	})))
	return m
}

// Init loads the most recent tape entries, if a tape is configured.
func (m *calculatorModel) Init() tea.Cmd {
	if m.tape == nil {
		return nil
	}
	store, limit := m.tape, m.tapeLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), tapeTimeout)
		defer cancel()
		entries, err := store.List(ctx, limit)
		return tapeLoadedMsg{entries: entries, err: err}
	}
}

func (m *calculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tapeLoadedMsg:
		if msg.err != nil {
			logging.Warnf("tape: could not load entries: %v", msg.err)
			return m, nil
		}
		m.tapeEntries = msg.entries
		return m, nil

	case tapeRecordedMsg:
		if msg.err != nil {
			logging.Warnf("tape: could not record: %v", msg.err)
		}
		m.pushTape(msg.entries...)
		return m, nil

	case tea.KeyMsg:
		// Any key dismisses the error dialog.
		if m.errMsg != "" {
			m.errMsg = ""
			return m, nil
		}
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return backToMenuMsg{} }
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)
			return m, nil
		case key.Matches(msg, m.keys.Press):
			return m, m.pressButton(calc.ButtonRows[m.row][m.col])
		case key.Matches(msg, m.keys.Copy):
			m.copyDisplay()
			return m, nil
		}
		if t, ok := calc.ParseKey(msg.String()); ok {
			return m, m.apply(t)
		}
	}
	return m, nil
}

// moveCursor moves the button cursor, clamped to the grid.
func (m *calculatorModel) moveCursor(dRow, dCol int) {
	m.row = max(0, min(len(calc.ButtonRows)-1, m.row+dRow))
	m.col = max(0, min(len(calc.ButtonRows[m.row])-1, m.col+dCol))
}

// pressButton applies the tokens of a button label.
func (m *calculatorModel) pressButton(label string) tea.Cmd {
	toks, err := calc.ParseLabel(label)
	if err != nil {
		logging.Errorf("calculator: %v", err)
		return nil
	}
	return m.apply(toks...)
}

// apply feeds tokens to the engine, updates the display and, when the engine
// produced calculations, returns a command recording them on the tape.
func (m *calculatorModel) apply(toks ...calc.Token) tea.Cmd {
	for _, t := range toks {
		display, err := m.engine.HandleToken(t)
		m.display = display
		if err != nil {
			m.errMsg = errorMessage(err)
			logging.Debugf("calculator: token %v: %v", t, err)
			break
		}
	}
	return m.flushPending()
}

func (m *calculatorModel) flushPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	pending := m.pending
	m.pending = nil
	if m.tape == nil {
		return nil
	}
	store := m.tape
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), tapeTimeout)
		defer cancel()
		var recorded []tape.Entry
		for _, c := range pending {
			e, err := store.Record(ctx, c)
			if err != nil {
				return tapeRecordedMsg{entries: recorded, err: err}
			}
			recorded = append(recorded, e)
		}
		return tapeRecordedMsg{entries: recorded}
	}
}

// pushTape adds newly recorded entries to the visible tape, newest first.
func (m *calculatorModel) pushTape(entries ...tape.Entry) {
	for _, e := range entries {
		m.tapeEntries = append([]tape.Entry{e}, m.tapeEntries...)
	}
	if m.tapeLimit > 0 && len(m.tapeEntries) > m.tapeLimit {
		m.tapeEntries = m.tapeEntries[:m.tapeLimit]
	}
}

func (m *calculatorModel) copyDisplay() {
	if err := clipboardWriteAll(m.display); err != nil {
		m.status = errorStyle.Render(i18n.T("password.copy_failed", err))
		return
	}
	m.status = successStyle.Render(i18n.T("calc.copied", m.display))
}

// errorMessage turns an engine error into the text shown to the user.
func errorMessage(err error) string {
	var ce *calc.Error
	if errors.As(err, &ce) {
		return i18n.T(ce.MessageID)
	}
	return err.Error()
}

func (m *calculatorModel) View() string {
	title := mainTitleStyle.Render("🧮 " + i18n.T("calc.title"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		displayStyle.Width(34).Render(m.display),
		"",
		m.gridView(),
	)
	if m.errMsg != "" {
		body = lipgloss.JoinVertical(lipgloss.Left,
			displayStyle.Width(34).Render(m.display),
			"",
			m.errorView(),
		)
	}
	main := paneStyle.Render(body)
	if len(m.tapeEntries) > 0 {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, paneStyle.MarginLeft(2).Render(m.tapeView()))
	}

	parts := []string{title, main}
	if m.status != "" {
		parts = append(parts, "", m.status)
	}
	parts = append(parts, "", m.help.View(m.keys))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *calculatorModel) gridView() string {
	rows := make([]string, 0, len(calc.ButtonRows))
	for r, row := range calc.ButtonRows {
		keys := make([]string, 0, len(row))
		for c, label := range row {
			keys = append(keys, buttonStyle(label, r == m.row && c == m.col).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...), "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// buttonStyle picks the key colour the way the button grid groups keys.
func buttonStyle(label string, selected bool) lipgloss.Style {
	if selected {
		return calcSelectedKeyStyle
	}
	switch label {
	case "+", "-", "×", "÷", "=":
		return calcOperatorKeyStyle
	case "C", "±", "%":
		return calcFunctionKeyStyle
	}
	return calcKeyStyle
}

func (m *calculatorModel) errorView() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Bold(true).Render(i18n.T("calc.error_title")),
		"",
		m.errMsg,
		"",
		helpStyle.Render(i18n.T("calc.error_dismiss")),
	)
	return dialogBoxStyle.Render(content)
}

func (m *calculatorModel) tapeView() string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(i18n.T("calc.tape_title")), ""}
	for _, e := range m.tapeEntries {
		lines = append(lines, helpStyle.Render(e.Expression+" =")+" "+e.Result)
	}
	return strings.Join(lines, "\n")
}
