package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Modes",
			items: []helpItem{
				{"c", "Register item (code quantity)"},
				{"b", "Search items by code"},
				{"h", "History"},
				{"g", "Sales and purchases chart"},
				{"esc", "Back to stock, clear selection"},
			},
		},
		{
			title: "Stock",
			items: []helpItem{
				{"↑/↓", "Move"},
				{"enter", "Select highlighted item"},
				{"a", "Buy selected item"},
				{"v", "Sell selected item"},
			},
		},
		{
			title: "History",
			items: []helpItem{
				{"←/→", "Switch tab"},
				{"p", "Filter by code"},
				{"esc", "Clear filter while searching"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"pgup/pgdn", "Scroll all messages"},
				{"end", "Follow latest message"},
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"x/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
