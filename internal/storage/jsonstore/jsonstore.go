// Package jsonstore persists the inventory as a single JSON document.
//
// The document keeps the field names of the estoque.json files written by
// earlier versions of the tool, so those files load unchanged:
//
//	{
//	  "relogios":  [{"codigo": "A1", "quantidade": 10}],
//	  "historico": [{"codigo": "A1", "quantidade": 10,
//	                 "operacao": "CADASTRO", "timestamp": "2025-01-02 15:04:05"}]
//	}
//
// History rows whose operacao this version does not recognise are left out
// of the loaded data and written back at their original position on the
// next save.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/five82/stockpile/internal/atomicfile"
	"github.com/five82/stockpile/internal/inventory"
)

// Wire values of the operacao field.
const (
	opRegister = "CADASTRO"
	opPurchase = "COMPRA"
	opSale     = "VENDA"
)

type document struct {
	Items   []itemRecord  `json:"relogios"`
	History []entryRecord `json:"historico"`
}

type itemRecord struct {
	Code     string `json:"codigo"`
	Quantity int    `json:"quantidade"`
}

type entryRecord struct {
	Code      string `json:"codigo"`
	Quantity  int    `json:"quantidade"`
	Operation string `json:"operacao"`
	Timestamp string `json:"timestamp"`
}

// skippedEntry is a history row kept verbatim because its operation is
// unknown. index is its position in the document's historico array.
type skippedEntry struct {
	index  int
	record entryRecord
}

// Store reads and writes one JSON file.
type Store struct {
	path    string
	log     zerolog.Logger
	skipped []skippedEntry
}

var _ inventory.Gateway = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New returns a gateway backed by the file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing file yields empty data and no error;
// a malformed file yields empty data and a descriptive error. History rows
// with an unknown operacao are skipped with a warning.
func (s *Store) Load() (inventory.Data, error) {
	s.skipped = nil
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return inventory.Data{}, nil
		}
		return inventory.Data{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return inventory.Data{}, fmt.Errorf("decode %s: %w", s.path, err)
	}

	data := inventory.Data{
		Items:   make([]inventory.Item, 0, len(doc.Items)),
		History: make([]inventory.Entry, 0, len(doc.History)),
	}
	for _, r := range doc.Items {
		data.Items = append(data.Items, inventory.Item{Code: r.Code, Quantity: r.Quantity})
	}
	for i, r := range doc.History {
		kind, err := parseOperation(r.Operation)
		if err != nil {
			s.log.Warn().
				Str("path", s.path).
				Int("index", i).
				Str("code", r.Code).
				Err(err).
				Msg("skipping history entry")
			s.skipped = append(s.skipped, skippedEntry{index: i, record: r})
			continue
		}
		data.History = append(data.History, inventory.Entry{
			Code:      r.Code,
			Quantity:  r.Quantity,
			Kind:      kind,
			Timestamp: r.Timestamp,
		})
	}
	return data, nil
}

// Save replaces the file with the full document. Rows skipped by the last
// Load are written back at their original index.
func (s *Store) Save(data inventory.Data) error {
	doc := document{
		Items:   make([]itemRecord, 0, len(data.Items)),
		History: make([]entryRecord, 0, len(data.History)+len(s.skipped)),
	}
	for _, item := range data.Items {
		doc.Items = append(doc.Items, itemRecord{Code: item.Code, Quantity: item.Quantity})
	}
	skipped := s.skipped
	for _, e := range data.History {
		for len(skipped) > 0 && skipped[0].index == len(doc.History) {
			doc.History = append(doc.History, skipped[0].record)
			skipped = skipped[1:]
		}
		doc.History = append(doc.History, entryRecord{
			Code:      e.Code,
			Quantity:  e.Quantity,
			Operation: formatOperation(e.Kind),
			Timestamp: e.Timestamp,
		})
	}
	for _, sk := range skipped {
		doc.History = append(doc.History, sk.record)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	if err := atomicfile.Write(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func parseOperation(op string) (inventory.Kind, error) {
	switch op {
	case opRegister:
		return inventory.KindRegister, nil
	case opPurchase:
		return inventory.KindPurchase, nil
	case opSale:
		return inventory.KindSale, nil
	default:
		return 0, fmt.Errorf("unknown operacao %q", op)
	}
}

func formatOperation(k inventory.Kind) string {
	switch k {
	case inventory.KindPurchase:
		return opPurchase
	case inventory.KindSale:
		return opSale
	default:
		return opRegister
	}
}
