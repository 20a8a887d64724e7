package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/stockpile/internal/cursor"
	"github.com/five82/stockpile/internal/fuzzy"
	"github.com/five82/stockpile/internal/history"
	"github.com/five82/stockpile/internal/inventory"
)

// Form input errors.
var (
	ErrWrongFormat = errors.New("wrong format, expected: code quantity")
	ErrBadQuantity = errors.New("invalid quantity")
)

const (
	welcomeMessage = "Welcome to stockpile!"
	historyHint    = "History: ↑/↓ scroll, ←/→ tabs, P to search, Enter to filter, Esc to leave."
)

// SearchResult is an item ranked against the search query.
type SearchResult struct {
	Code     string
	Quantity int
	Distance int
}

// Machine is the application state: mode, input buffer, selection, one
// cursor per list and the message log. It handles one key at a time.
type Machine struct {
	store *inventory.Store
	log   zerolog.Logger

	mode      Mode
	editing   bool
	input     []rune
	selection *Selection
	messages  []string

	browse   cursor.Cursor
	register cursor.Cursor
	search   cursor.Cursor
	rows     cursor.Cursor
	suggest  cursor.Cursor

	results     []SearchResult
	suggestions []fuzzy.Match
	tab         history.Tab
	filter      string
}

// Option configures a Machine.
type Option func(*Machine)

// WithListRows sets the visible height of the selection-driven lists.
func WithListRows(n int) Option {
	return func(m *Machine) {
		m.SetListRows(n)
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Machine) {
		m.log = log
	}
}

// New returns a machine in browse mode over store.
func New(store *inventory.Store, opts ...Option) *Machine {
	m := &Machine{
		store:    store,
		log:      zerolog.Nop(),
		mode:     ModeBrowse,
		messages: []string{welcomeMessage},
		browse:   cursor.New(cursor.DefaultHeight),
		register: cursor.New(cursor.DefaultHeight),
		search:   cursor.New(cursor.DefaultHeight),
		rows:     cursor.New(cursor.DefaultHeight),
		suggest:  cursor.New(cursor.DefaultHeight),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetListRows changes the height of every list cursor.
func (m *Machine) SetListRows(n int) {
	for _, c := range m.cursors() {
		c.SetHeight(n)
	}
}

// SetHistoryRows changes the height of the history table cursor only, so
// the table can follow the terminal while the other lists keep the
// configured height.
func (m *Machine) SetHistoryRows(n int) {
	m.rows.SetHeight(n)
	m.rows.Reclamp(len(m.historyRows()))
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode { return m.mode }

// Editing reports whether keys are being read as free text.
func (m *Machine) Editing() bool { return m.editing }

// Handle applies one key. It returns true when the key asks to quit.
func (m *Machine) Handle(k Key) bool {
	var quit bool
	if m.editing {
		m.handleEditing(k)
	} else {
		quit = m.handleCommand(k)
	}
	m.reclamp()
	return quit
}

func (m *Machine) handleEditing(k Key) {
	switch m.mode {
	case ModeRegister:
		switch k.Kind {
		case KeyConfirm:
			m.submitRegister()
			m.toBrowse()
		case KeyCancel:
			m.toBrowse()
		case KeyUp:
			m.register.Up()
		case KeyDown:
			m.register.Down(len(m.store.Items()))
		default:
			m.editInput(k)
		}

	case ModeSearch:
		switch k.Kind {
		case KeyConfirm:
			m.editing = false
		case KeyCancel:
			m.toBrowse()
		default:
			if m.editInput(k) {
				m.rankItems()
			}
		}

	case ModeHistory:
		switch k.Kind {
		case KeyConfirm:
			m.applyHistoryFilter()
		case KeyCancel:
			m.input = nil
			m.editing = false
			m.setFilter("")
		case KeyUp:
			m.suggest.Up()
		case KeyDown:
			m.suggest.Down(len(m.suggestions))
		default:
			if m.editInput(k) {
				m.rankHistoryCodes()
			}
		}

	case ModeBuy, ModeSell:
		switch k.Kind {
		case KeyConfirm:
			m.submitTrade()
			m.toBrowse()
		case KeyCancel:
			m.toBrowse()
		default:
			m.editInput(k)
		}

	default:
		// Browse and chart never read text.
		m.editing = false
	}
}

func (m *Machine) handleCommand(k Key) bool {
	switch k.Kind {
	case KeyQuit:
		return true

	case KeyCancel:
		if m.selection != nil {
			m.say("Selection cancelled.")
		}
		m.toBrowse()

	case KeyEnterRegister:
		m.setMode(ModeRegister)
		m.startEditing()

	case KeyEnterSearch:
		m.setMode(ModeSearch)
		m.startEditing()
		m.rankItems()

	case KeyEnterHistory:
		if m.mode != ModeHistory {
			m.say(historyHint)
		}
		m.setMode(ModeHistory)
		m.editing = false
		m.input = nil
		m.rows.Reset()

	case KeyEnterChart:
		m.setMode(ModeChart)

	case KeyToggleSearch:
		if m.mode == ModeHistory {
			m.editing = true
			m.input = nil
			m.rankHistoryCodes()
		}

	case KeyLeft, KeyRight:
		if m.mode == ModeHistory {
			if k.Kind == KeyLeft {
				m.tab = m.tab.Prev()
			} else {
				m.tab = m.tab.Next()
			}
			m.rows.Reset()
		}

	case KeyUp:
		if c := m.activeList(); c != nil {
			c.Up()
		}

	case KeyDown:
		if c := m.activeList(); c != nil {
			c.Down(m.activeListLen())
		}

	case KeyConfirm:
		m.selectHighlighted()

	case KeyBuyOp:
		m.chooseOperation(OpBuy)

	case KeySellOp:
		m.chooseOperation(OpSell)
	}
	return false
}

// editInput applies character and backspace keys to the buffer and reports
// whether the buffer changed.
func (m *Machine) editInput(k Key) bool {
	switch k.Kind {
	case KeyChar:
		m.input = append(m.input, k.Rune)
		return true
	case KeyBackspace:
		if len(m.input) == 0 {
			return false
		}
		m.input = m.input[:len(m.input)-1]
		return true
	}
	return false
}

func (m *Machine) startEditing() {
	m.editing = true
	m.input = nil
	m.filter = ""
}

// toBrowse is the single exit path back to browse mode. It clears the
// buffer, the selection and the history filter.
func (m *Machine) toBrowse() {
	m.setMode(ModeBrowse)
	m.editing = false
	m.input = nil
	m.selection = nil
	m.filter = ""
}

func (m *Machine) setMode(mode Mode) {
	if mode != m.mode {
		m.log.Debug().Stringer("from", m.mode).Stringer("to", mode).Msg("mode change")
	}
	m.mode = mode
}

func (m *Machine) say(format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	m.messages = append(m.messages, msg)
}

func (m *Machine) activeList() *cursor.Cursor {
	switch m.mode {
	case ModeBrowse:
		return &m.browse
	case ModeRegister:
		return &m.register
	case ModeSearch:
		return &m.search
	case ModeHistory:
		return &m.rows
	default:
		return nil
	}
}

func (m *Machine) activeListLen() int {
	switch m.mode {
	case ModeBrowse, ModeRegister:
		return len(m.store.Items())
	case ModeSearch:
		return len(m.results)
	case ModeHistory:
		return len(m.historyRows())
	default:
		return 0
	}
}

func (m *Machine) cursors() []*cursor.Cursor {
	return []*cursor.Cursor{&m.browse, &m.register, &m.search, &m.rows, &m.suggest}
}

func (m *Machine) reclamp() {
	items := len(m.store.Items())
	m.browse.Reclamp(items)
	m.register.Reclamp(items)
	m.search.Reclamp(len(m.results))
	m.rows.Reclamp(len(m.historyRows()))
	m.suggest.Reclamp(len(m.suggestions))
}

func (m *Machine) selectHighlighted() {
	var code string
	switch m.mode {
	case ModeBrowse:
		items := m.store.Items()
		if m.browse.Selected >= len(items) {
			return
		}
		code = items[m.browse.Selected].Code
	case ModeSearch:
		if m.search.Selected >= len(m.results) {
			return
		}
		code = m.results[m.search.Selected].Code
	default:
		return
	}
	m.selection = &Selection{Code: code}
	m.say("Item %s selected. Press A to buy or V to sell.", code)
}

func (m *Machine) chooseOperation(op Operation) {
	if m.selection == nil || (m.mode != ModeBrowse && m.mode != ModeSearch) {
		return
	}
	m.selection.Op = op
	m.say("Operation '%s' selected for %s", op, m.selection.Code)
	if op == OpBuy {
		m.setMode(ModeBuy)
	} else {
		m.setMode(ModeSell)
	}
	m.editing = true
	m.input = []rune(m.selection.Code + " ")
}

func (m *Machine) rankItems() {
	items := m.store.Items()
	quantities := make(map[string]int, len(items))
	codes := make([]string, len(items))
	for i, item := range items {
		quantities[item.Code] = item.Quantity
		codes[i] = item.Code
	}
	matches := fuzzy.Rank(codes, string(m.input))
	m.results = make([]SearchResult, len(matches))
	for i, match := range matches {
		m.results[i] = SearchResult{Code: match.Code, Quantity: quantities[match.Code], Distance: match.Distance}
	}
	m.search.Reclamp(len(m.results))
}

func (m *Machine) rankHistoryCodes() {
	m.suggestions = fuzzy.Rank(m.store.HistoryCodes(), strings.TrimSpace(string(m.input)))
	m.suggest.Reset()
}

func (m *Machine) applyHistoryFilter() {
	code := strings.TrimSpace(string(m.input))
	if len(m.suggestions) > 0 && m.suggest.Selected < len(m.suggestions) {
		code = m.suggestions[m.suggest.Selected].Code
	}
	m.setFilter(code)
	m.editing = false
	m.input = nil
}

func (m *Machine) setFilter(code string) {
	switch {
	case code == "":
		m.filter = ""
		m.say("Filter removed. Showing the full history.")
	case len(m.store.HistoryFor(code)) == 0:
		m.filter = ""
		m.say("No history found for %s!", code)
	default:
		m.filter = code
		m.say("Showing history for %s", code)
	}
	m.rows.Reset()
}

func (m *Machine) historyRows() []inventory.Entry {
	base := m.store.History()
	if m.filter != "" {
		base = m.store.HistoryFor(m.filter)
	}
	return history.Filter(base, m.tab)
}

func (m *Machine) submitRegister() {
	code, qty, err := parseForm(string(m.input))
	if err != nil {
		m.reportInputError(err)
		return
	}
	item, err := m.store.Register(code, qty)
	m.report(err, func() {
		m.say("Item %s registered with %d units", item.Code, item.Quantity)
	})
}

func (m *Machine) submitTrade() {
	code, qty, err := parseForm(string(m.input))
	if err != nil {
		m.reportInputError(err)
		return
	}
	if m.mode == ModeBuy {
		item, err := m.store.Buy(code, qty)
		m.report(err, func() {
			m.say("Added %d units of item %s", qty, item.Code)
		})
		return
	}
	item, err := m.store.Sell(code, qty)
	switch {
	case errors.Is(err, inventory.ErrUnknownCode):
		m.say("Item %s not found!", code)
	case errors.Is(err, inventory.ErrInsufficientStock):
		m.say("Not enough stock to sell %d of %s (on hand: %d)!", qty, code, item.Quantity)
	default:
		m.report(err, func() {
			m.say("Sold %d units of item %s", qty, item.Code)
		})
	}
}

// report emits the success message when err is nil or only a save failure,
// and a rejection message otherwise.
func (m *Machine) report(err error, success func()) {
	var saveErr *inventory.SaveError
	switch {
	case err == nil:
		success()
	case errors.As(err, &saveErr):
		success()
		m.say("Warning: changes kept in memory but not saved (%v)", saveErr.Err)
	default:
		m.reportInputError(err)
	}
}

func (m *Machine) reportInputError(err error) {
	switch {
	case errors.Is(err, ErrWrongFormat), errors.Is(err, inventory.ErrEmptyCode):
		m.say("Wrong format. Use: code quantity")
	case errors.Is(err, ErrBadQuantity), errors.Is(err, inventory.ErrInvalidQuantity):
		m.say("Invalid quantity! Use a whole number from 1 to %d.", inventory.MaxQuantity)
	case errors.Is(err, inventory.ErrQuantityOverflow):
		m.say("Quantity too large! %v", err)
	default:
		m.say("Error: %v", err)
	}
}

// parseForm splits "<code> <quantity>".
func parseForm(input string) (string, int, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return "", 0, ErrWrongFormat
	}
	qty, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrBadQuantity, fields[1])
	}
	return fields[0], qty, nil
}
