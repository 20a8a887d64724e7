package state

// Mode is the active screen of the application.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeRegister
	ModeSearch
	ModeHistory
	ModeChart
	ModeBuy
	ModeSell
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeRegister:
		return "register"
	case ModeSearch:
		return "search"
	case ModeHistory:
		return "history"
	case ModeChart:
		return "chart"
	case ModeBuy:
		return "buy"
	case ModeSell:
		return "sell"
	default:
		return "unknown"
	}
}

// Operation is the transaction chosen for a selected item.
type Operation int

const (
	OpNone Operation = iota
	OpBuy
	OpSell
)

func (o Operation) String() string {
	switch o {
	case OpBuy:
		return "BUY"
	case OpSell:
		return "SELL"
	default:
		return "NONE"
	}
}

// Selection is the item picked in browse or search, optionally with the
// operation chosen for it. A nil *Selection means nothing is selected.
type Selection struct {
	Code string
	Op   Operation
}
