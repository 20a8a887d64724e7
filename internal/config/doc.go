// Package config loads stockpile's startup configuration.
//
// # Resolution Order
//
// Each setting is taken from the first source that provides it:
//
//  1. Command-line flags (applied by the caller through WithOverrides)
//  2. STOCKPILE_* environment variables
//  3. The TOML file (~/.config/stockpile/config.toml unless -config is given)
//  4. Built-in defaults
//
// A missing config file is not an error. An unreadable or invalid one is.
//
// # Defaults
//
//   - backend: json
//   - data_path: ~/.local/share/stockpile/estoque.json (stockpile.db for sqlite)
//   - log_path: ~/.local/state/stockpile/stockpile.log
//   - log_level: info
//   - list_rows: 5
//
// # TOML Format
//
//	backend = "sqlite"
//	data_path = "~/inventory/stock.db"
//	log_level = "debug"
//	list_rows = 8
//
// # Environment
//
//	STOCKPILE_DATA_PATH  STOCKPILE_BACKEND  STOCKPILE_LOG_PATH
//	STOCKPILE_LOG_LEVEL  STOCKPILE_LIST_ROWS
//
// Paths starting with ~ are expanded against the user's home directory and
// made absolute.
package config
