package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) initMessageViewport() {
	m.messageViewport = viewport.New(max(m.width-2, 1), MessagePanelRows)
}

// syncMessages refreshes the full message panel and follows new messages
// unless the operator scrolled away from the bottom.
func (m *Model) syncMessages() {
	if m.messageViewport.Width == 0 {
		return
	}
	msgs := m.snapshot.Messages
	follow := m.messageViewport.AtBottom() || len(msgs) != m.messageCount
	m.messageViewport.Width = max(m.width-2, 1)
	m.messageViewport.Height = MessagePanelRows
	m.messageViewport.SetContent(strings.Join(msgs, "\n"))
	if follow {
		m.messageViewport.GotoBottom()
	}
	m.messageCount = len(msgs)
}

// Leading text of the messages the state machine emits, by outcome.
var (
	dangerPrefixes = []string{
		"Wrong format", "Invalid quantity", "Quantity too large",
		"Not enough stock", "No history found", "Error:",
	}
	successPrefixes = []string{"Added ", "Sold "}
	infoPrefixes    = []string{"Showing history", "Filter removed"}
)

// messageStyle colors a message by outcome. Messages with no outcome use
// fallback.
func messageStyle(styles Styles, msg string, fallback lipgloss.Style) lipgloss.Style {
	hasPrefix := func(prefixes []string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(msg, p) {
				return true
			}
		}
		return false
	}
	switch {
	case strings.HasPrefix(msg, "Warning:"):
		return styles.WarningText
	case hasPrefix(dangerPrefixes), strings.HasSuffix(msg, " not found!"):
		return styles.DangerText
	case hasPrefix(successPrefixes), strings.Contains(msg, " registered with "):
		return styles.SuccessText
	case hasPrefix(infoPrefixes):
		return styles.InfoText
	default:
		return fallback
	}
}

func (m Model) renderRecentMessages() string {
	styles := m.theme.Styles()
	recent := m.snapshot.Recent(RecentMessages)
	lines := make([]string, len(recent))
	for i, msg := range recent {
		fallback := styles.Text
		if i == len(recent)-1 {
			fallback = styles.AccentText
		}
		lines[i] = messageStyle(styles, msg, fallback).Render(msg)
	}
	return m.renderTitledBox("Latest messages", strings.Join(lines, "\n"), m.width, RecentMessages+2, false)
}

func (m Model) renderMessageLog() string {
	title := "All messages"
	if !m.messageViewport.AtBottom() {
		title += " (scrolled, End to follow)"
	}
	return m.renderTitledBox(title, m.messageViewport.View(), m.width, MessagePanelRows+2, false)
}
