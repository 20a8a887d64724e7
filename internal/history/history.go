// Package history filters the inventory log by operation kind and buckets
// it by day for the activity chart.
package history

import (
	"slices"
	"strings"

	"github.com/five82/stockpile/internal/inventory"
)

// Tab is a history view filter.
type Tab int

const (
	TabAll Tab = iota
	TabPurchases
	TabSales
	TabRegistrations
)

var tabOrder = []Tab{TabAll, TabPurchases, TabSales, TabRegistrations}

var tabTitles = map[Tab]string{
	TabAll:           "All",
	TabPurchases:     "Purchases",
	TabSales:         "Sales",
	TabRegistrations: "Registrations",
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return slices.Clone(tabOrder)
}

func (t Tab) index() int {
	if i := slices.Index(tabOrder, t); i >= 0 {
		return i
	}
	return 0
}

// Next returns the following tab, wrapping to the first.
func (t Tab) Next() Tab {
	return tabOrder[(t.index()+1)%len(tabOrder)]
}

// Prev returns the preceding tab, wrapping to the last.
func (t Tab) Prev() Tab {
	n := len(tabOrder)
	return tabOrder[(t.index()-1+n)%n]
}

// Title returns the tab label.
func (t Tab) Title() string {
	if title, ok := tabTitles[t]; ok {
		return title
	}
	return tabTitles[TabAll]
}

// Matches reports whether an entry of kind k belongs on the tab.
func (t Tab) Matches(k inventory.Kind) bool {
	switch t {
	case TabPurchases:
		return k == inventory.KindPurchase
	case TabSales:
		return k == inventory.KindSale
	case TabRegistrations:
		return k == inventory.KindRegister
	default:
		return true
	}
}

// Filter returns the entries that belong on tab, preserving order.
func Filter(entries []inventory.Entry, tab Tab) []inventory.Entry {
	out := make([]inventory.Entry, 0, len(entries))
	for _, e := range entries {
		if tab.Matches(e.Kind) {
			out = append(out, e)
		}
	}
	return out
}

// ChartDays is the number of most recent active days shown on the chart.
const ChartDays = 7

// DayBucket counts the sales and purchases recorded on one calendar day.
type DayBucket struct {
	Date      string // YYYY-MM-DD
	Sales     int
	Purchases int
}

// Label returns the DD/MM form of the bucket date.
func (b DayBucket) Label() string {
	return ShortDate(b.Date)
}

// Daily groups entries by calendar day and returns at most limit buckets,
// the most recent ones, sorted ascending by date. Register entries create no
// counts, but their day still counts as active. Entries with a malformed
// timestamp are skipped.
func Daily(entries []inventory.Entry, limit int) []DayBucket {
	byDate := make(map[string]*DayBucket)
	for _, e := range entries {
		date, ok := e.Date()
		if !ok {
			continue
		}
		b, ok := byDate[date]
		if !ok {
			b = &DayBucket{Date: date}
			byDate[date] = b
		}
		switch e.Kind {
		case inventory.KindSale:
			b.Sales++
		case inventory.KindPurchase:
			b.Purchases++
		}
	}

	out := make([]DayBucket, 0, len(byDate))
	for _, b := range byDate {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b DayBucket) int {
		return strings.Compare(a.Date, b.Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// ShortDate turns "YYYY-MM-DD" into "DD/MM". Other inputs are returned as-is.
func ShortDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1]
}
