package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/stockpile/internal/state"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	ForceQuit  key.Binding
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Cancel     key.Binding

	// Mode switching
	Register key.Binding
	Search   key.Binding
	History  key.Binding
	Chart    key.Binding

	// Selection
	Confirm key.Binding
	Buy     key.Binding
	Sell    key.Binding

	// History
	HistorySearch key.Binding
	PrevTab       key.Binding
	NextTab       key.Binding

	// Navigation
	Up             key.Binding
	Down           key.Binding
	MessagesUp     key.Binding
	MessagesDown   key.Binding
	MessagesBottom key.Binding

	// Text input
	Backspace key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel selection"),
		),

		// Mode switching
		Register: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "Register item"),
		),
		Search: key.NewBinding(
			key.WithKeys("b", "B"),
			key.WithHelp("b", "Search items"),
		),
		History: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "History"),
		),
		Chart: key.NewBinding(
			key.WithKeys("g", "G"),
			key.WithHelp("g", "Chart"),
		),

		// Selection
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select / confirm"),
		),
		Buy: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "Buy selected"),
		),
		Sell: key.NewBinding(
			key.WithKeys("v", "V"),
			key.WithHelp("v", "Sell selected"),
		),

		// History
		HistorySearch: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "Search history"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next tab"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		MessagesUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll messages up"),
		),
		MessagesDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll messages down"),
		),
		MessagesBottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Latest messages"),
		),

		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "Delete character"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Register, k.Search, k.History, k.Chart},
		{k.Confirm, k.Buy, k.Sell, k.Cancel},
		{k.HistorySearch, k.PrevTab, k.NextTab},
		{k.Up, k.Down, k.MessagesUp, k.MessagesDown, k.MessagesBottom},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// commandKeys maps bindings that only apply outside text input to logical
// keys, in match order.
func (k keyMap) commandKeys() []struct {
	binding key.Binding
	kind    state.KeyKind
} {
	return []struct {
		binding key.Binding
		kind    state.KeyKind
	}{
		{k.Quit, state.KeyQuit},
		{k.Cancel, state.KeyCancel},
		{k.Register, state.KeyEnterRegister},
		{k.Search, state.KeyEnterSearch},
		{k.History, state.KeyEnterHistory},
		{k.Chart, state.KeyEnterChart},
		{k.Confirm, state.KeyConfirm},
		{k.Buy, state.KeyBuyOp},
		{k.Sell, state.KeySellOp},
		{k.HistorySearch, state.KeyToggleSearch},
		{k.PrevTab, state.KeyLeft},
		{k.NextTab, state.KeyRight},
		{k.Up, state.KeyUp},
		{k.Down, state.KeyDown},
	}
}

// translate decodes a terminal key into logical keys. While editing, letters
// are text and only enter, esc, backspace and the arrows keep their meaning.
// A paste can yield several characters.
func (k keyMap) translate(msg tea.KeyMsg, editing bool) []state.Key {
	if editing {
		switch {
		case key.Matches(msg, k.Confirm):
			return []state.Key{state.Press(state.KeyConfirm)}
		case key.Matches(msg, k.Cancel):
			return []state.Key{state.Press(state.KeyCancel)}
		case key.Matches(msg, k.Backspace):
			return []state.Key{state.Press(state.KeyBackspace)}
		case key.Matches(msg, k.Up):
			return []state.Key{state.Press(state.KeyUp)}
		case key.Matches(msg, k.Down):
			return []state.Key{state.Press(state.KeyDown)}
		case key.Matches(msg, k.PrevTab):
			return []state.Key{state.Press(state.KeyLeft)}
		case key.Matches(msg, k.NextTab):
			return []state.Key{state.Press(state.KeyRight)}
		}
		switch msg.Type {
		case tea.KeySpace:
			return []state.Key{state.Char(' ')}
		case tea.KeyRunes:
			keys := make([]state.Key, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				keys = append(keys, state.Char(r))
			}
			return keys
		}
		return nil
	}

	for _, c := range k.commandKeys() {
		if key.Matches(msg, c.binding) {
			return []state.Key{state.Press(c.kind)}
		}
	}
	return nil
}
