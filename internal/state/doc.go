// Package state holds the application state machine.
//
// A Machine owns the active Mode, the editing flag, the text input buffer,
// the optional Selection, one cursor per list and the message log. Keys are
// decoded by the UI into logical Key values and applied with Handle, one at a
// time; each call runs to completion, including any save triggered by a
// register, buy or sell. The renderer reads a Snapshot per frame and never
// mutates the machine.
//
// # Modes
//
//	browse   item table, select with Enter then A (buy) or V (sell)
//	register free text "<code> <quantity>"
//	search   free text ranked by edit distance against item codes
//	history  tabbed history, P opens a code search used as a filter
//	chart    sales and purchases for the last active days
//	buy/sell form prefilled with "<code> ", the operator types the quantity
//
// Every path back to browse goes through one helper that clears the input,
// the selection and the history filter.
//
// # Errors
//
// Malformed forms, invalid quantities, unknown codes and oversells become
// messages. A save failure keeps the change in memory and adds a warning.
// Handle never returns an error; it only reports whether the key asked to quit.
package state
