package inventory

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Store owns every item and the append-only history. It is not safe for
// concurrent use; the interactive loop is its only caller.
type Store struct {
	items   map[string]Item
	history []Entry
	gateway Gateway
	now     func() time.Time
	log     zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New builds a store from previously loaded data. A nil gateway keeps the
// inventory in memory only.
func New(data Data, gateway Gateway, opts ...Option) *Store {
	s := &Store{
		items:   make(map[string]Item, len(data.Items)),
		history: slices.Clone(data.History),
		gateway: gateway,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, item := range data.Items {
		s.items[item.Code] = item
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register sets the quantity of code, replacing any previous quantity, and
// records a register entry.
func (s *Store) Register(code string, quantity int) (Item, error) {
	code, err := validate(code, quantity)
	if err != nil {
		return Item{}, err
	}
	item := Item{Code: code, Quantity: quantity}
	s.items[code] = item
	return item, s.commit(KindRegister, code, quantity, item)
}

// Buy adds quantity to code, creating the item when it does not exist yet.
func (s *Store) Buy(code string, quantity int) (Item, error) {
	code, err := validate(code, quantity)
	if err != nil {
		return Item{}, err
	}
	item := s.items[code]
	if item.Quantity > math.MaxInt-quantity {
		s.log.Info().Str("code", code).Int("quantity", quantity).Int("on_hand", item.Quantity).Msg("purchase rejected: overflow")
		return item, fmt.Errorf("%w: %s has %d, adding %d", ErrQuantityOverflow, code, item.Quantity, quantity)
	}
	item.Code = code
	item.Quantity += quantity
	s.items[code] = item
	return item, s.commit(KindPurchase, code, quantity, item)
}

// Sell removes quantity from code. Unknown codes and sales larger than the
// quantity on hand are rejected without touching the store.
func (s *Store) Sell(code string, quantity int) (Item, error) {
	code, err := validate(code, quantity)
	if err != nil {
		return Item{}, err
	}
	item, ok := s.items[code]
	if !ok {
		s.log.Info().Str("code", code).Int("quantity", quantity).Msg("sale rejected: unknown code")
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownCode, code)
	}
	if item.Quantity < quantity {
		s.log.Info().Str("code", code).Int("quantity", quantity).Int("on_hand", item.Quantity).Msg("sale rejected: insufficient stock")
		return item, fmt.Errorf("%w: %s has %d, requested %d", ErrInsufficientStock, code, item.Quantity, quantity)
	}
	item.Quantity -= quantity
	s.items[code] = item
	return item, s.commit(KindSale, code, quantity, item)
}

// Item returns the item stored under code.
func (s *Store) Item(code string) (Item, bool) {
	item, ok := s.items[code]
	return item, ok
}

// Items returns every item sorted by code.
func (s *Store) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b Item) int {
		return strings.Compare(a.Code, b.Code)
	})
	return out
}

// Codes returns every item code in ascending order.
func (s *Store) Codes() []string {
	codes := make([]string, 0, len(s.items))
	for code := range s.items {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// History returns a copy of the full history in chronological order.
func (s *Store) History() []Entry {
	return slices.Clone(s.history)
}

// HistoryFor returns the entries recorded for code, oldest first.
func (s *Store) HistoryFor(code string) []Entry {
	var out []Entry
	for _, e := range s.history {
		if e.Code == code {
			out = append(out, e)
		}
	}
	return out
}

// HistoryCodes returns the distinct codes that appear in the history, sorted.
func (s *Store) HistoryCodes() []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, e := range s.history {
		if _, ok := seen[e.Code]; ok {
			continue
		}
		seen[e.Code] = struct{}{}
		codes = append(codes, e.Code)
	}
	slices.Sort(codes)
	return codes
}

// Data returns the durable record: items sorted by code plus the history.
func (s *Store) Data() Data {
	return Data{Items: s.Items(), History: s.History()}
}

func (s *Store) commit(kind Kind, code string, quantity int, item Item) error {
	s.history = append(s.history, Entry{
		Code:      code,
		Quantity:  quantity,
		Kind:      kind,
		Timestamp: s.now().Format(TimestampLayout),
	})
	s.log.Info().
		Stringer("kind", kind).
		Str("code", code).
		Int("quantity", quantity).
		Int("on_hand", item.Quantity).
		Msg("inventory updated")

	if s.gateway == nil {
		return nil
	}
	if err := s.gateway.Save(s.Data()); err != nil {
		s.log.Error().Err(err).Msg("persist inventory")
		return &SaveError{Err: err}
	}
	return nil
}

func validate(code string, quantity int) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrEmptyCode
	}
	if quantity <= 0 || quantity > MaxQuantity {
		return "", fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	return code, nil
}
