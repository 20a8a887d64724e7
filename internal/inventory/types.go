package inventory

import (
	"errors"
	"math"
	"strings"
)

// TimestampLayout is the wall-clock format stored on every history entry.
const TimestampLayout = "2006-01-02 15:04:05"

// Kind identifies the operation recorded by a history entry.
type Kind int

const (
	KindRegister Kind = iota
	KindPurchase
	KindSale
)

// String returns the upper-case label used in the history table.
func (k Kind) String() string {
	switch k {
	case KindRegister:
		return "REGISTER"
	case KindPurchase:
		return "PURCHASE"
	case KindSale:
		return "SALE"
	default:
		return "UNKNOWN"
	}
}

// Item is a tracked stock-keeping unit.
type Item struct {
	Code     string
	Quantity int
}

// Entry is one immutable register, purchase or sale event.
type Entry struct {
	Code      string
	Quantity  int
	Kind      Kind
	Timestamp string // TimestampLayout, local time
}

// Date returns the YYYY-MM-DD portion of the timestamp, or false when the
// timestamp has no date/time separator.
func (e Entry) Date() (string, bool) {
	date, _, ok := strings.Cut(e.Timestamp, " ")
	if !ok || date == "" {
		return "", false
	}
	return date, true
}

// Data is the durable record handed to and from a Gateway.
type Data struct {
	Items   []Item
	History []Entry
}

// Gateway loads and saves the full inventory record.
//
// Load must return an empty Data (and may return a non-nil error describing
// why) when the record is absent or unreadable; callers treat that as a
// fresh inventory. Save replaces the whole record.
type Gateway interface {
	Load() (Data, error)
	Save(Data) error
}

// MaxQuantity is the largest quantity a single operation accepts.
const MaxQuantity = math.MaxInt32

var (
	// ErrEmptyCode rejects operations without an item code.
	ErrEmptyCode = errors.New("item code is empty")
	// ErrInvalidQuantity rejects quantities outside 1..MaxQuantity.
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 2147483647")
	// ErrQuantityOverflow rejects a purchase whose total would not fit.
	ErrQuantityOverflow = errors.New("quantity on hand would overflow")
	// ErrUnknownCode rejects a sale of a code that was never registered or bought.
	ErrUnknownCode = errors.New("item not found")
	// ErrInsufficientStock rejects a sale larger than the quantity on hand.
	ErrInsufficientStock = errors.New("not enough stock")
)

// SaveError reports that a mutation was applied in memory but the gateway
// failed to persist it.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return "save inventory: " + e.Err.Error()
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
