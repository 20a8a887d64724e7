package state

// KeyKind is a logical key, already decoded from the terminal.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyBackspace
	KeyConfirm
	KeyCancel
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnterRegister
	KeyEnterSearch
	KeyEnterHistory
	KeyEnterChart
	KeyBuyOp
	KeySellOp
	KeyToggleSearch
	KeyQuit
)

// Key is one logical input event. Rune is set only for KeyChar.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Char returns a character key.
func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// Press returns a non-character key.
func Press(kind KeyKind) Key {
	return Key{Kind: kind}
}
