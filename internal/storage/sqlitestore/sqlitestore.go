// Package sqlitestore persists the inventory in a SQLite database.
package sqlitestore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/five82/stockpile/internal/inventory"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	code     TEXT PRIMARY KEY,
	quantity INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS history (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	code      TEXT NOT NULL,
	quantity  INTEGER NOT NULL,
	kind      TEXT NOT NULL,
	timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_code ON history(code);
`

// Store keeps items and history in two tables. Save rewrites both inside one
// transaction, so a reader sees either the old or the new inventory.
type Store struct {
	db *sql.DB
}

var _ inventory.Gateway = (*Store)(nil)

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	connStr := path
	if path == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads every item and the history in insertion order.
func (s *Store) Load() (inventory.Data, error) {
	var data inventory.Data

	rows, err := s.db.Query(`SELECT code, quantity FROM items ORDER BY code`)
	if err != nil {
		return inventory.Data{}, fmt.Errorf("query items: %w", err)
	}
	for rows.Next() {
		var item inventory.Item
		if err := rows.Scan(&item.Code, &item.Quantity); err != nil {
			rows.Close()
			return inventory.Data{}, fmt.Errorf("scan item: %w", err)
		}
		data.Items = append(data.Items, item)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return inventory.Data{}, fmt.Errorf("iterate items: %w", err)
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT code, quantity, kind, timestamp FROM history ORDER BY seq`)
	if err != nil {
		return inventory.Data{}, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			e    inventory.Entry
			kind string
		)
		if err := rows.Scan(&e.Code, &e.Quantity, &kind, &e.Timestamp); err != nil {
			return inventory.Data{}, fmt.Errorf("scan history: %w", err)
		}
		k, err := parseKind(kind)
		if err != nil {
			return inventory.Data{}, err
		}
		e.Kind = k
		data.History = append(data.History, e)
	}
	if err := rows.Err(); err != nil {
		return inventory.Data{}, fmt.Errorf("iterate history: %w", err)
	}
	return data, nil
}

// Save replaces both tables with data.
func (s *Store) Save(data inventory.Data) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	itemStmt, err := tx.Prepare(`INSERT INTO items (code, quantity) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare items: %w", err)
	}
	defer itemStmt.Close()
	for _, item := range data.Items {
		if _, err := itemStmt.Exec(item.Code, item.Quantity); err != nil {
			return fmt.Errorf("insert item %s: %w", item.Code, err)
		}
	}

	histStmt, err := tx.Prepare(`INSERT INTO history (code, quantity, kind, timestamp) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare history: %w", err)
	}
	defer histStmt.Close()
	for _, e := range data.History {
		if _, err := histStmt.Exec(e.Code, e.Quantity, e.Kind.String(), e.Timestamp); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func parseKind(s string) (inventory.Kind, error) {
	for _, k := range []inventory.Kind{inventory.KindRegister, inventory.KindPurchase, inventory.KindSale} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown history kind %q", s)
}
