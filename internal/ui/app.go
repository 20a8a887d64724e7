package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/stockpile/internal/prefs"
	"github.com/five82/stockpile/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Machine   *state.Machine
	ThemeName string
	PrefsPath string
	DataPath  string
	Backend   string
	Logger    zerolog.Logger
}

// Model is the root application state for Bubble Tea. The inventory state
// lives in the machine; the model only adds terminal concerns.
type Model struct {
	// Configuration
	machine   *state.Machine
	keys      keyMap
	prefsPath string
	dataPath  string
	backend   string
	log       zerolog.Logger

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// Message log
	messageViewport viewport.Model
	messageCount    int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		machine:   opts.Machine,
		keys:      DefaultKeyMap(),
		prefsPath: prefsPath,
		dataPath:  opts.DataPath,
		backend:   opts.Backend,
		log:       opts.Logger,
		theme:     GetTheme(themeName),
	}
	m.snapshot = m.machine.Snapshot()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initMessageViewport()
		}
		m.ready = true
		m.machine.SetHistoryRows(m.historyTableRows())
		m.snapshot = m.machine.Snapshot()
		m.syncMessages()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. ctrl+c always quits; every other key
// goes through the state machine unless it is a UI-only binding.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	editing := m.machine.Editing()
	if !editing {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil

		case key.Matches(msg, m.keys.CycleTheme):
			m.cycleTheme()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.MessagesUp):
		m.messageViewport.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.MessagesDown):
		m.messageViewport.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.MessagesBottom):
		m.messageViewport.GotoBottom()
		return m, nil
	}

	for _, k := range m.keys.translate(msg, editing) {
		if m.machine.Handle(k) {
			m.log.Info().Msg("quit requested")
			return m, tea.Quit
		}
	}
	m.snapshot = m.machine.Snapshot()
	m.syncMessages()
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences")
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
