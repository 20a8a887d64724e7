package history

import (
	"fmt"
	"testing"

	"github.com/five82/stockpile/internal/inventory"
)

func entry(code string, kind inventory.Kind, ts string) inventory.Entry {
	return inventory.Entry{Code: code, Quantity: 1, Kind: kind, Timestamp: ts}
}

func TestTabCycle(t *testing.T) {
	tab := TabAll
	want := []Tab{TabPurchases, TabSales, TabRegistrations, TabAll}
	for i, w := range want {
		tab = tab.Next()
		if tab != w {
			t.Fatalf("Next step %d = %v, want %v", i, tab, w)
		}
	}
	if TabAll.Prev() != TabRegistrations {
		t.Fatalf("TabAll.Prev() = %v, want TabRegistrations", TabAll.Prev())
	}
	for _, tab := range Tabs() {
		if tab.Next().Prev() != tab {
			t.Fatalf("Next/Prev not inverse for %v", tab)
		}
	}
}

func TestTabTitles(t *testing.T) {
	cases := map[Tab]string{
		TabAll:           "All",
		TabPurchases:     "Purchases",
		TabSales:         "Sales",
		TabRegistrations: "Registrations",
		Tab(42):          "All",
	}
	for tab, want := range cases {
		if got := tab.Title(); got != want {
			t.Fatalf("Tab(%d).Title() = %q, want %q", tab, got, want)
		}
	}
}

func TestFilterPartitionsHistory(t *testing.T) {
	entries := []inventory.Entry{
		entry("A", inventory.KindRegister, "2025-01-01 10:00:00"),
		entry("A", inventory.KindPurchase, "2025-01-01 11:00:00"),
		entry("B", inventory.KindSale, "2025-01-02 10:00:00"),
		entry("B", inventory.KindPurchase, "2025-01-02 12:00:00"),
		entry("C", inventory.KindRegister, "2025-01-03 09:00:00"),
	}

	all := Filter(entries, TabAll)
	if len(all) != len(entries) {
		t.Fatalf("TabAll returned %d entries, want %d", len(all), len(entries))
	}

	counts := make(map[int]int)
	for _, tab := range []Tab{TabPurchases, TabSales, TabRegistrations} {
		for _, e := range Filter(entries, tab) {
			for i, orig := range entries {
				if orig == e {
					counts[i]++
				}
			}
		}
	}
	for i := range entries {
		if counts[i] != 1 {
			t.Fatalf("entry %d appeared in %d kind tabs, want exactly 1", i, counts[i])
		}
	}

	purchases := Filter(entries, TabPurchases)
	if len(purchases) != 2 || purchases[0].Code != "A" || purchases[1].Code != "B" {
		t.Fatalf("purchases = %+v, want A then B", purchases)
	}
}

func TestDailyCountsSalesAndPurchases(t *testing.T) {
	entries := []inventory.Entry{
		entry("A", inventory.KindRegister, "2025-02-01 08:00:00"),
		entry("A", inventory.KindSale, "2025-02-01 09:00:00"),
		entry("A", inventory.KindSale, "2025-02-01 10:00:00"),
		entry("A", inventory.KindPurchase, "2025-01-31 10:00:00"),
		entry("A", inventory.KindPurchase, "garbage"),
	}
	got := Daily(entries, ChartDays)
	if len(got) != 2 {
		t.Fatalf("Daily returned %d buckets, want 2: %+v", len(got), got)
	}
	if got[0].Date != "2025-01-31" || got[0].Purchases != 1 || got[0].Sales != 0 {
		t.Fatalf("bucket 0 = %+v", got[0])
	}
	if got[1].Date != "2025-02-01" || got[1].Sales != 2 || got[1].Purchases != 0 {
		t.Fatalf("bucket 1 = %+v", got[1])
	}
	if got[1].Label() != "01/02" {
		t.Fatalf("Label() = %q, want 01/02", got[1].Label())
	}
}

func TestDailyKeepsLastSevenDays(t *testing.T) {
	var entries []inventory.Entry
	for day := 10; day >= 1; day-- {
		entries = append(entries, entry("A", inventory.KindPurchase, fmt.Sprintf("2025-03-%02d 12:00:00", day)))
	}
	got := Daily(entries, ChartDays)
	if len(got) != ChartDays {
		t.Fatalf("Daily returned %d buckets, want %d", len(got), ChartDays)
	}
	if got[0].Date != "2025-03-04" || got[len(got)-1].Date != "2025-03-10" {
		t.Fatalf("buckets span %s..%s, want 2025-03-04..2025-03-10", got[0].Date, got[len(got)-1].Date)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date >= got[i].Date {
			t.Fatalf("buckets not strictly ascending at %d: %+v", i, got)
		}
	}
}

func TestShortDate(t *testing.T) {
	cases := map[string]string{
		"2025-12-31": "31/12",
		"2025-1":     "2025-1",
		"":           "",
	}
	for in, want := range cases {
		if got := ShortDate(in); got != want {
			t.Fatalf("ShortDate(%q) = %q, want %q", in, got, want)
		}
	}
}
