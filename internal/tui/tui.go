// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Pocketkit.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/toeirei/pocketkit/internal/tui"

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pocketkit/internal/i18n"
	"github.com/toeirei/pocketkit/internal/logging"
	"github.com/toeirei/pocketkit/internal/password"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main navigation menu.
	menuView viewState = iota
	calculatorView
	passwordView
	languageView
)

// backToMenuMsg is sent by sub-views to return to the main menu.
type backToMenuMsg struct{}

// languageChangedMsg is a message to signal that the language has changed and the UI should be re-initialized.
type languageChangedMsg struct{}

// Options carries everything the TUI needs from its caller.
type Options struct {
	// Password holds the generator's initial settings.
	Password password.Options
	// Tape, if non-nil, receives every finished calculation.
	Tape      tapeStore
	TapeLimit int
	// SaveLanguage persists a language picked in the TUI. May be nil.
	SaveLanguage func(lang string) error
	// LogFile receives log output while the TUI owns the terminal. Empty
	// discards it.
	LogFile string
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active sub-model.
type mainModel struct {
	opts       Options
	state      viewState
	menu       menuModel
	calculator *calculatorModel
	password   *passwordModel
	language   languageModel
	width      int
	height     int
	err        error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel(opts Options) mainModel {
	return mainModel{
		opts:  opts,
		state: menuView,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.calculator"),
				i18n.T("menu.password"),
				i18n.T("menu.language"),
				i18n.T("menu.quit"),
			},
		},
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. It handles global keys and window size
// changes and delegates everything else to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case backToMenuMsg:
		m.state = menuView
		return m, nil
	case languageChangedMsg:
		// Re-initialize the entire model to apply new translations everywhere.
		newModel := initialModel(m.opts)
		newModel.width = m.width
		newModel.height = m.height
		newModel.err = m.err
		return newModel, nil
	}

	switch m.state {
	case calculatorView:
		_, cmd = m.calculator.Update(msg)
	case passwordView:
		_, cmd = m.password.Update(msg)
		if m.password != nil {
			// Keep settings across visits within the session.
			m.opts.Password = m.password.opts
		}
	case languageView:
		return m.updateLanguage(msg)
	default: // menuView
		return m.updateMenu(msg)
	}
	return m, cmd
}

func (m mainModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.menu.choices)-1 {
			m.menu.cursor++
		}
	case "enter":
		switch m.menu.cursor {
		case 0: // Calculator
			return m.openCalculator()
		case 1: // Password Generator
			return m.openPassword()
		case 2: // Language
			m.state = languageView
			m.language = newLanguageModel()
		case 3: // Quit
			return m, tea.Quit
		}
	case "L":
		m.state = languageView
		m.language = newLanguageModel()
	}
	return m, nil
}

// openCalculator switches to the calculator. The engine is created once per
// session so its state survives trips back to the menu.
func (m mainModel) openCalculator() (tea.Model, tea.Cmd) {
	m.state = calculatorView
	if m.calculator != nil {
		return m, nil
	}
	m.calculator = newCalculatorModel(m.opts.Tape, m.opts.TapeLimit)
	m.calculator.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return m, m.calculator.Init()
}

func (m mainModel) openPassword() (tea.Model, tea.Cmd) {
	m.state = passwordView
	m.password = newPasswordModel(m.opts.Password)
	m.password.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return m, m.password.Init()
}

func (m mainModel) updateLanguage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "esc":
		m.state = menuView
	case "up", "k":
		if m.language.cursor > 0 {
			m.language.cursor--
		}
	case "down", "j":
		if m.language.cursor < len(m.language.orderedKeys)-1 {
			m.language.cursor++
		}
	case "enter":
		if len(m.language.orderedKeys) == 0 {
			return m, nil
		}
		langCode := m.language.orderedKeys[m.language.cursor]
		i18n.SetLang(langCode)
		if m.opts.SaveLanguage != nil {
			if err := m.opts.SaveLanguage(langCode); err != nil {
				m.err = fmt.Errorf("failed to save config: %w", err)
				logging.Warnf("%v", m.err)
			}
		}
		// Signal that the language has changed so the entire UI can be re-initialized.
		return m, func() tea.Msg { return languageChangedMsg{} }
	}
	return m, nil
}

// View renders the TUI by delegating to the currently active view.
func (m mainModel) View() string {
	switch m.state {
	case calculatorView:
		return m.calculator.View()
	case passwordView:
		return m.password.View()
	case languageView:
		return m.language.View()
	default: // menuView
		return m.menu.View(m.width, m.err)
	}
}

// View renders the main menu.
func (m menuModel) View(width int, err error) string {
	title := mainTitleStyle.Render("🧰 " + i18n.T("app.title"))
	subTitle := helpStyle.Render(i18n.T("app.subtitle"))

	var items []string
	for i, choice := range m.choices {
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+choice))
		} else {
			items = append(items, itemStyle.Render("  "+choice))
		}
	}
	pane := paneStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	parts := []string{title, subTitle, "", pane}
	if err != nil {
		parts = append(parts, "", errorStyle.Render(err.Error()))
	}
	if width <= 0 {
		width = 60
	}
	parts = append(parts, "", footerStyle.Render(AlignFooter(i18n.T("menu.help"), "", width-4)))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// newLanguageModel creates a new model for the language selection view.
func newLanguageModel() languageModel {
	lm := languageModel{
		choices:     i18n.GetAvailableLocales(),
		orderedKeys: i18n.SortedLocales(),
	}
	for i, code := range lm.orderedKeys {
		if code == i18n.GetLang() {
			lm.cursor = i
		}
	}
	return lm
}

// View for languageModel.
func (m languageModel) View() string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("menu.language"))

	var listItems []string
	listItems = append(listItems, titleStyle.Render(i18n.T("language.title")), "")
	for i, langCode := range m.orderedKeys {
		displayName := m.choices[langCode]
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+displayName))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+displayName))
		}
	}

	listPane := paneStyle.Width(60).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))
	helpLine := footerStyle.Render(AlignFooter(i18n.T("language.help"), "", 60))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine))
}

// Run is the main entrypoint for the TUI. It initializes and runs the Bubble
// Tea program until the user quits.
func Run(opts Options) error {
	// Anything written to stderr would tear the alt screen.
	if opts.LogFile == "" {
		logging.SetOutput(io.Discard)
	} else {
		f, err := tea.LogToFile(opts.LogFile, "pocketkit")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logging.SetOutput(f)
	}
	defer logging.SetOutput(os.Stderr)

	if _, err := tea.NewProgram(initialModel(opts), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
