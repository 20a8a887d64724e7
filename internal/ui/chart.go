package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockpile/internal/history"
)

func (m Model) renderChart(width, height int) string {
	buckets := m.snapshot.Chart
	labels := make([]string, len(buckets))
	sales := make([]int, len(buckets))
	purchases := make([]int, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label()
		sales[i] = b.Sales
		purchases[i] = b.Purchases
	}

	left := width / 2
	right := width - left
	inner := max(height-2, 3)
	salesBox := m.renderTitledBox(
		fmt.Sprintf("Sales (last %d days)", history.ChartDays),
		m.renderBars(sales, labels, inner, m.theme.Danger),
		left, height, false)
	purchasesBox := m.renderTitledBox(
		fmt.Sprintf("Purchases (last %d days)", history.ChartDays),
		m.renderBars(purchases, labels, inner, m.theme.Success),
		right, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, salesBox, purchasesBox)
}

// renderBars draws a vertical bar chart, one bar per value, with the value
// above each bar and its label below. height counts every line.
func (m Model) renderBars(values []int, labels []string, height int, color string) string {
	styles := m.theme.Styles()
	if len(values) == 0 {
		return styles.FaintText.Render("No sales or purchases yet.")
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	valueStyle := styles.Text.Bold(true)
	gap := strings.Repeat(" ", barGap)

	rows := max(height-2, 1)
	peak := 1
	for _, v := range values {
		peak = max(peak, v)
	}
	filled := make([]int, len(values))
	for i, v := range values {
		filled[i] = barHeight(v, peak, rows)
	}

	lines := make([]string, 0, rows+2)
	var top strings.Builder
	for i, v := range values {
		if i > 0 {
			top.WriteString(gap)
		}
		top.WriteString(valueStyle.Render(center(strconv.Itoa(v), barWidth)))
	}
	lines = append(lines, top.String())

	block := strings.Repeat("█", barWidth)
	blank := strings.Repeat(" ", barWidth)
	for r := rows; r >= 1; r-- {
		var line strings.Builder
		for i := range values {
			if i > 0 {
				line.WriteString(gap)
			}
			if filled[i] >= r {
				line.WriteString(barStyle.Render(block))
			} else {
				line.WriteString(blank)
			}
		}
		lines = append(lines, line.String())
	}

	var bottom strings.Builder
	for i := range values {
		if i > 0 {
			bottom.WriteString(gap)
		}
		bottom.WriteString(styles.MutedText.Render(center(labels[i], barWidth)))
	}
	lines = append(lines, bottom.String())
	return strings.Join(lines, "\n")
}

// barHeight scales v against peak into rows cells. Any non-zero value gets
// at least one cell.
func barHeight(v, peak, rows int) int {
	if v <= 0 || peak <= 0 {
		return 0
	}
	h := v * rows / peak
	return max(h, 1)
}

