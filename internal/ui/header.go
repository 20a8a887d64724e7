package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockpile/internal/state"
)

// renderHeader renders the one-line status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("stockpile", styles.Logo),
		bg.Render(strings.ToUpper(m.snapshot.Mode.String()), styles.AccentText.Bold(true)),
	}
	if m.snapshot.Editing {
		parts = append(parts, bg.Render("EDITING", styles.WarningText.Bold(true)))
	}
	parts = append(parts,
		bg.Render("Items:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Items)), styles.Text),
	)
	if sel := m.snapshot.Selection; sel != nil {
		parts = append(parts,
			bg.Render("Selected:", styles.MutedText)+bg.Space()+
				bg.Render(sel.Code, styles.WarningText.Bold(true)))
	}
	if m.width >= LayoutCompactWidth && m.dataPath != "" {
		parts = append(parts,
			bg.Render(m.backend, styles.FaintText)+bg.Space()+
				bg.Render(truncateMiddle(m.dataPath, 40), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

type hotkey struct {
	key, desc string
	// active marks the hotkey for the chosen operation.
	active bool
}

// hotkeys lists the keys for the side panel. The chosen code and operation
// are folded into the buy and sell lines.
func (m Model) hotkeys() []hotkey {
	snap := m.snapshot
	var chosenOp state.Operation
	if snap.Selection != nil {
		chosenOp = snap.Selection.Op
	}

	buy := hotkey{key: "A", desc: "Buy"}
	sell := hotkey{key: "V", desc: "Sell"}
	switch chosenOp {
	case state.OpBuy:
		buy = hotkey{key: "A", desc: "Buy -> " + snap.Selection.Code, active: true}
	case state.OpSell:
		sell = hotkey{key: "V", desc: "Sell -> " + snap.Selection.Code, active: true}
	}

	keys := []hotkey{
		{key: "C", desc: "Register"},
		{key: "B", desc: "Search"},
		{key: "H", desc: "History (↑/↓, ←/→ tabs)"},
		{key: "G", desc: "Chart"},
	}
	if snap.Mode == state.ModeHistory {
		keys = append(keys, hotkey{key: "P", desc: "Search history"})
	}
	keys = append(keys,
		hotkey{key: "Enter", desc: "Select item", active: snap.Selection != nil && chosenOp == state.OpNone},
		buy,
		sell,
		hotkey{key: "Esc", desc: "Cancel selection"},
		hotkey{key: "T", desc: "Theme: " + m.theme.Name},
		hotkey{key: "?", desc: "Help"},
		hotkey{key: "X", desc: "Quit"},
	)
	return keys
}

func (m Model) renderHotkeys(height int) string {
	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.hotkeys()))
	for _, h := range m.hotkeys() {
		keyStyle, descStyle := styles.AccentText, styles.Text
		if h.active {
			keyStyle = styles.WarningText.Bold(true)
			descStyle = styles.WarningText.Bold(true)
		}
		lines = append(lines, keyStyle.Render(padRight("["+h.key+"]", 8))+descStyle.Render(h.desc))
	}
	return m.renderTitledBox("Hotkeys", strings.Join(lines, "\n"), HotkeysWidth, height, false)
}

// renderMain lays out header, main view beside hotkeys, then the message
// panels.
func (m Model) renderMain() string {
	mainHeight := m.mainHeight()

	mainWidth := m.width
	showHotkeys := m.width >= LayoutCompactWidth
	if showHotkeys {
		mainWidth = m.width - HotkeysWidth
	}

	body := m.renderMainView(mainWidth, mainHeight)
	body = lipgloss.NewStyle().Width(mainWidth).Height(mainHeight).Render(body)
	if showHotkeys {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderHotkeys(mainHeight))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderRecentMessages(),
		m.renderMessageLog(),
	)
}

// mainHeight is the height left for the main view once the header and both
// message panels are placed.
func (m Model) mainHeight() int {
	return max(m.height-1-(RecentMessages+2)-(MessagePanelRows+2), MinMainRows)
}

// historyBoxHeight is the height of the history table box below the tabs.
func historyBoxHeight(mainHeight int) int {
	return max(mainHeight-InputPanelRows, 3)
}

// historyTableRows is how many history rows fit in the table box after its
// borders and column header.
func (m Model) historyTableRows() int {
	return max(historyBoxHeight(m.mainHeight())-3, 1)
}
