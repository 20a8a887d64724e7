package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockpile/internal/cursor"
	"github.com/five82/stockpile/internal/history"
	"github.com/five82/stockpile/internal/state"
)

const caret = "█"

// renderMainView renders the view for the active mode into width x height.
func (m Model) renderMainView(width, height int) string {
	switch m.snapshot.Mode {
	case state.ModeRegister:
		return m.renderRegister(width, height)
	case state.ModeSearch:
		return m.renderSearch(width, height)
	case state.ModeHistory:
		return m.renderHistory(width, height)
	case state.ModeChart:
		return m.renderChart(width, height)
	case state.ModeBuy, state.ModeSell:
		return m.renderForm(width, height)
	default:
		return m.renderBrowse(width, height)
	}
}

// renderTable renders a header line and the cursor window of rows. The
// highlighted row uses the selection style and the chosen row, if any, the
// chosen style; other rows use rowStyle.
func (m Model) renderTable(header string, rows []string, cur cursor.Cursor, width, chosen int, rowStyle func(i int) lipgloss.Style) string {
	styles := m.theme.Styles()
	lines := []string{styles.MutedText.Bold(true).Render(padRight(header, width))}

	start, end := cur.Window(len(rows))
	for i := start; i < end; i++ {
		style := styles.Text
		if rowStyle != nil {
			style = rowStyle(i)
		}
		switch {
		case i == chosen:
			style = styles.Chosen
		case i == cur.Selected:
			style = styles.Selected
		}
		lines = append(lines, style.Width(width).Render(truncate(rows[i], width)))
	}
	return strings.Join(lines, "\n")
}

// columns splits width by percentages, giving the remainder to the last column.
func columns(width int, percents ...int) []int {
	out := make([]int, len(percents))
	used := 0
	for i, p := range percents {
		if i == len(percents)-1 {
			out[i] = max(width-used, 1)
			break
		}
		out[i] = max(width*p/100, 1)
		used += out[i]
	}
	return out
}

// formatRow lays values out in fixed-width columns.
func formatRow(widths []int, values ...string) string {
	var b strings.Builder
	for i, v := range values {
		if i == len(values)-1 {
			b.WriteString(truncate(v, widths[i]))
			break
		}
		b.WriteString(padRight(truncate(v, widths[i]-1), widths[i]))
	}
	return b.String()
}

func listTitle(title string, cur cursor.Cursor, n int) string {
	if n == 0 {
		return title
	}
	return fmt.Sprintf("%s (%d/%d)", title, cur.Selected+1, n)
}

func (m Model) chosenCode() string {
	if m.snapshot.Selection == nil {
		return ""
	}
	return m.snapshot.Selection.Code
}

func (m Model) emptyHint(text string) string {
	return m.theme.Styles().FaintText.Render(text)
}

func (m Model) renderBrowse(width, height int) string {
	snap := m.snapshot
	inner := width - 2
	widths := columns(inner, 70, 30)

	rows := make([]string, len(snap.Items))
	chosen := -1
	for i, item := range snap.Items {
		rows[i] = formatRow(widths, item.Code, strconv.Itoa(item.Quantity))
		if item.Code == m.chosenCode() {
			chosen = i
		}
	}

	header := formatRow(widths, "Code", "Quantity")
	content := m.renderTable(header, rows, snap.Browse, inner, chosen, nil)
	if len(rows) == 0 {
		content += "\n" + m.emptyHint("No items yet. Press C to register one.")
	}
	return m.renderTitledBox(listTitle("Stock", snap.Browse, len(rows)), content, width, height, true)
}

// renderInput renders a boxed single-line input with a prompt.
func (m Model) renderInput(title, prompt string, width int, editing bool) string {
	styles := m.theme.Styles()
	value := m.snapshot.Input
	line := styles.MutedText.Render(prompt+": ") + styles.Text.Render(value)
	if editing {
		line += styles.AccentText.Render(caret)
	}
	return m.renderTitledBox(title, line, width, InputPanelRows, editing)
}

func (m Model) renderRegister(width, height int) string {
	snap := m.snapshot
	input := m.renderInput("Register item", "Type code quantity, Enter to confirm, Esc to cancel", width, snap.Editing)

	inner := width - 2
	widths := columns(inner, 70, 30)
	rows := make([]string, len(snap.Items))
	for i, item := range snap.Items {
		rows[i] = formatRow(widths, item.Code, strconv.Itoa(item.Quantity))
	}
	list := m.renderTable(formatRow(widths, "Code", "Quantity"), rows, snap.Register, inner, -1, nil)
	listBox := m.renderTitledBox(listTitle("Registered items", snap.Register, len(rows)), list, width, max(height-InputPanelRows, 3), false)
	return lipgloss.JoinVertical(lipgloss.Left, input, listBox)
}

func (m Model) renderSearch(width, height int) string {
	snap := m.snapshot
	title := "Search"
	if !snap.Editing {
		title = "Search (frozen, Enter selects)"
	}
	input := m.renderInput(title, "Code", width, snap.Editing)

	inner := width - 2
	widths := columns(inner, 50, 20, 30)
	rows := make([]string, len(snap.Results))
	chosen := -1
	for i, r := range snap.Results {
		rows[i] = formatRow(widths, r.Code, strconv.Itoa(r.Quantity), strconv.Itoa(r.Distance))
		if r.Code == m.chosenCode() {
			chosen = i
		}
	}
	table := m.renderTable(formatRow(widths, "Code", "Quantity", "Distance"), rows, snap.Search, inner, chosen, nil)
	if len(rows) == 0 {
		table += "\n" + m.emptyHint("No items to search.")
	}
	results := m.renderTitledBox(listTitle("Results", snap.Search, len(rows)), table, width, max(height-InputPanelRows, 3), !snap.Editing)
	return lipgloss.JoinVertical(lipgloss.Left, input, results)
}

func (m Model) renderTabs(width int) string {
	styles := m.theme.Styles()
	snap := m.snapshot
	parts := make([]string, 0, len(history.Tabs())+1)
	for _, tab := range history.Tabs() {
		label := " " + tab.Title() + " "
		if tab == snap.Tab {
			parts = append(parts, styles.Selected.Bold(true).Render(label))
		} else {
			parts = append(parts, styles.MutedText.Render(label))
		}
	}
	line := strings.Join(parts, " ")
	if snap.Filter != "" {
		line += "  " + styles.WarningText.Render("code: "+snap.Filter)
	}
	return m.renderTitledBox("Filters", line, width, InputPanelRows, false)
}

func (m Model) renderHistory(width, height int) string {
	snap := m.snapshot
	tabs := m.renderTabs(width)
	rest := historyBoxHeight(height)

	if snap.Editing {
		input := m.renderInput("Search history", "Code", width, true)
		inner := width - 2
		widths := columns(inner, 70, 30)
		rows := make([]string, len(snap.Suggestions))
		for i, s := range snap.Suggestions {
			rows[i] = formatRow(widths, s.Code, strconv.Itoa(s.Distance))
		}
		table := m.renderTable(formatRow(widths, "Code", "Distance"), rows, snap.Suggest, inner, -1, nil)
		if len(rows) == 0 {
			table += "\n" + m.emptyHint("No history yet.")
		}
		suggestions := m.renderTitledBox("Suggestions", table, width, max(rest-InputPanelRows, 3), false)
		return lipgloss.JoinVertical(lipgloss.Left, tabs, input, suggestions)
	}

	styles := m.theme.Styles()
	inner := width - 2
	widths := columns(inner, 35, 15, 20, 30)
	rows := make([]string, len(snap.History))
	for i, e := range snap.History {
		rows[i] = formatRow(widths, e.Code, strconv.Itoa(e.Quantity), e.Kind.String(), e.Timestamp)
	}
	kindStyle := func(i int) lipgloss.Style {
		return styles.KindStyle(snap.History[i].Kind)
	}
	table := m.renderTable(formatRow(widths, "Code", "Quantity", "Operation", "Timestamp"), rows, snap.Rows, inner, -1, kindStyle)
	if len(rows) == 0 {
		table += "\n" + m.emptyHint("Nothing recorded for this tab.")
	}
	box := m.renderTitledBox(listTitle("History", snap.Rows, len(rows)), table, width, rest, true)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, box)
}

func (m Model) renderForm(width, height int) string {
	title := "Buy stock"
	if m.snapshot.Mode == state.ModeSell {
		title = "Sell item"
	}
	styles := m.theme.Styles()
	content := strings.Join([]string{
		styles.MutedText.Render("Type code quantity, Enter to confirm, Esc to cancel:"),
		styles.Text.Render(m.snapshot.Input) + styles.AccentText.Render(caret),
	}, "\n")
	return m.renderTitledBox(title, content, width, min(height, InputPanelRows+1), true)
}
