package ui

// Panel sizes in terminal cells.
const (
	// HotkeysWidth is the width of the hotkeys panel beside the main view.
	HotkeysWidth = 34

	// RecentMessages is how many of the newest messages the log panel shows.
	RecentMessages = 5

	// MessagePanelRows is the visible height of the full message history.
	MessagePanelRows = 5

	// InputPanelRows is the height of a boxed single-line input.
	InputPanelRows = 3

	// MinMainRows keeps the main view usable on short terminals.
	MinMainRows = 8

	// LayoutCompactWidth is the threshold below which the hotkeys panel is hidden.
	LayoutCompactWidth = 80
)

// Bar chart geometry.
const (
	barWidth = 5
	barGap   = 1
)
