package state

import (
	"slices"

	"github.com/five82/stockpile/internal/cursor"
	"github.com/five82/stockpile/internal/fuzzy"
	"github.com/five82/stockpile/internal/history"
	"github.com/five82/stockpile/internal/inventory"
)

// Snapshot is a read-only view of the machine for one frame.
type Snapshot struct {
	Mode      Mode
	Editing   bool
	Input     string
	Selection *Selection

	Items    []inventory.Item
	Browse   cursor.Cursor
	Register cursor.Cursor

	Results []SearchResult
	Search  cursor.Cursor

	Suggestions []fuzzy.Match
	Suggest     cursor.Cursor

	Tab     history.Tab
	Filter  string
	History []inventory.Entry
	Rows    cursor.Cursor

	Chart    []history.DayBucket
	Messages []string
}

// Snapshot captures the current state. Slices are copies.
func (m *Machine) Snapshot() Snapshot {
	var sel *Selection
	if m.selection != nil {
		s := *m.selection
		sel = &s
	}
	return Snapshot{
		Mode:        m.mode,
		Editing:     m.editing,
		Input:       string(m.input),
		Selection:   sel,
		Items:       m.store.Items(),
		Browse:      m.browse,
		Register:    m.register,
		Results:     slices.Clone(m.results),
		Search:      m.search,
		Suggestions: slices.Clone(m.suggestions),
		Suggest:     m.suggest,
		Tab:         m.tab,
		Filter:      m.filter,
		History:     m.historyRows(),
		Rows:        m.rows,
		Chart:       history.Daily(m.store.History(), history.ChartDays),
		Messages:    slices.Clone(m.messages),
	}
}

// Recent returns at most n of the newest messages, oldest first.
func (s Snapshot) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}
