package jsonstore

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/five82/stockpile/internal/inventory"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "estoque.json"))
	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Items) != 0 || len(data.History) != 0 {
		t.Fatalf("Load = %+v, want empty", data)
	}
}

func TestLoad_MalformedFileIsEmptyWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estoque.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := New(path).Load()
	if err == nil {
		t.Fatal("Load returned nil error for malformed file")
	}
	if len(data.Items) != 0 || len(data.History) != 0 {
		t.Fatalf("Load = %+v, want empty", data)
	}
}

func TestLoad_UnknownOperationIsSkippedAndKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estoque.json")
	doc := `{
  "relogios": [{"codigo": "A1", "quantidade": 7}, {"codigo": "B2", "quantidade": 2}],
  "historico": [
    {"codigo": "A1", "quantidade": 5, "operacao": "CADASTRO", "timestamp": "2025-01-01 08:00:00"},
    {"codigo": "A1", "quantidade": 2, "operacao": "AJUSTE", "timestamp": "2025-01-01 09:00:00"},
    {"codigo": "B2", "quantidade": 2, "operacao": "COMPRA", "timestamp": "2025-01-01 10:00:00"}
  ]
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var logBuf bytes.Buffer
	s := New(path, WithLogger(zerolog.New(&logBuf)))
	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Items) != 2 {
		t.Fatalf("Items = %+v, want A1 and B2", data.Items)
	}
	if len(data.History) != 2 || data.History[0].Kind != inventory.KindRegister || data.History[1].Kind != inventory.KindPurchase {
		t.Fatalf("History = %+v, want register then purchase", data.History)
	}
	if !strings.Contains(logBuf.String(), "AJUSTE") {
		t.Fatalf("log = %q, want a warning naming AJUSTE", logBuf.String())
	}

	data.History = append(data.History, inventory.Entry{
		Code: "B2", Quantity: 1, Kind: inventory.KindSale, Timestamp: "2025-01-02 08:00:00",
	})
	if err := s.Save(data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var saved document
	if err := json.Unmarshal(raw, &saved); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	var ops []string
	for _, r := range saved.History {
		ops = append(ops, r.Operation)
	}
	want := []string{"CADASTRO", "AJUSTE", "COMPRA", "VENDA"}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("saved operations = %v, want %v", ops, want)
	}
}

func TestLoad_ReadsLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estoque.json")
	doc := `{
  "relogios": [{"codigo": "R1", "quantidade": 3}],
  "historico": [
    {"codigo": "R1", "quantidade": 5, "operacao": "CADASTRO", "timestamp": "2024-11-02 10:00:00"},
    {"codigo": "R1", "quantidade": 2, "operacao": "VENDA", "timestamp": "2024-11-03 10:00:00"}
  ]
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Items) != 1 || data.Items[0] != (inventory.Item{Code: "R1", Quantity: 3}) {
		t.Fatalf("Items = %+v", data.Items)
	}
	if len(data.History) != 2 || data.History[1].Kind != inventory.KindSale {
		t.Fatalf("History = %+v", data.History)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "estoque.json")
	s := New(path)
	want := inventory.Data{
		Items: []inventory.Item{{Code: "A1", Quantity: 0}, {Code: "B2", Quantity: 9}},
		History: []inventory.Entry{
			{Code: "A1", Quantity: 4, Kind: inventory.KindRegister, Timestamp: "2025-05-01 08:00:00"},
			{Code: "B2", Quantity: 9, Kind: inventory.KindPurchase, Timestamp: "2025-05-01 09:00:00"},
			{Code: "A1", Quantity: 4, Kind: inventory.KindSale, Timestamp: "2025-05-02 10:30:00"},
		},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, field := range []string{`"relogios"`, `"historico"`, `"operacao": "VENDA"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("saved document missing %s:\n%s", field, raw)
		}
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}
