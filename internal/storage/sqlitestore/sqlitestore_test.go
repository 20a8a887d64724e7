package sqlitestore

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/five82/stockpile/internal/inventory"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stockpile.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestLoad_FreshDatabaseIsEmpty(t *testing.T) {
	s, _ := openTestStore(t)
	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Items) != 0 || len(data.History) != 0 {
		t.Fatalf("Load = %+v, want empty", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, path := openTestStore(t)
	want := inventory.Data{
		Items: []inventory.Item{{Code: "A1", Quantity: 15}, {Code: "B2", Quantity: 0}},
		History: []inventory.Entry{
			{Code: "B2", Quantity: 1, Kind: inventory.KindPurchase, Timestamp: "2025-04-01 10:00:00"},
			{Code: "A1", Quantity: 15, Kind: inventory.KindRegister, Timestamp: "2025-04-01 09:00:00"},
			{Code: "B2", Quantity: 1, Kind: inventory.KindSale, Timestamp: "2025-04-02 11:00:00"},
		},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}

	// A reopened handle sees the same data.
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err = reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("reopen mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveReplacesPreviousContents(t *testing.T) {
	s, _ := openTestStore(t)
	first := inventory.Data{
		Items:   []inventory.Item{{Code: "OLD", Quantity: 1}},
		History: []inventory.Entry{{Code: "OLD", Quantity: 1, Kind: inventory.KindRegister, Timestamp: "2025-01-01 00:00:00"}},
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(inventory.Data{}); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Items) != 0 || len(got.History) != 0 {
		t.Fatalf("Load = %+v, want empty after overwrite", got)
	}
}

func TestStoreBacksInventory(t *testing.T) {
	s, _ := openTestStore(t)
	inv := inventory.New(inventory.Data{}, s)
	if _, err := inv.Buy("A1", 3); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if _, err := inv.Sell("A1", 1); err != nil {
		t.Fatalf("Sell: %v", err)
	}
	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Items) != 1 || data.Items[0].Quantity != 2 {
		t.Fatalf("Items = %+v, want A1 with 2", data.Items)
	}
	if len(data.History) != 2 {
		t.Fatalf("History = %+v, want 2 entries", data.History)
	}
}
