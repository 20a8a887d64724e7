// Package app is the composition root of stockpile.
//
// Run loads the configuration (file, then STOCKPILE_* environment, then
// command-line flags), opens the log file, opens the persistence gateway for
// the chosen backend, loads the inventory and hands a state machine over it
// to the terminal UI. It returns when the operator quits.
//
// Startup fails only for an invalid config file, an unknown backend or a
// SQLite database that cannot be opened. A missing or malformed data file
// starts an empty inventory, and a log file that cannot be opened falls back
// to discarding log output.
package app
