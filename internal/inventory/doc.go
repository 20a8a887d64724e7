// Package inventory owns the item table and the append-only history log.
//
// # Overview
//
// A Store maps item codes to on-hand quantities and records every accepted
// register, purchase and sale as an Entry. Entries are never edited or
// removed; their order is the order the operations were accepted.
//
// # Operations
//
//   - Register: set the quantity of a code, replacing any previous value
//   - Buy: add to a code, creating it when missing
//   - Sell: subtract from a code; rejected when the code is unknown or the
//     quantity on hand is too small
//
// Every accepted operation appends exactly one Entry and then writes the
// whole inventory through the Gateway. Rejected operations change nothing.
//
// # Persistence
//
// Gateway is the storage boundary. When Save fails the in-memory change is
// kept and the operation returns a *SaveError, so callers can tell "applied
// but not saved" apart from a business rejection:
//
//	item, err := store.Sell("A1", 3)
//	var saveErr *inventory.SaveError
//	switch {
//	case errors.As(err, &saveErr):
//		// sold, but the file is stale
//	case errors.Is(err, inventory.ErrInsufficientStock):
//		// nothing happened
//	}
//
// # Concurrency
//
// Store has no locks. The interactive loop processes one key at a time and
// is the only caller.
package inventory
