// Package ui provides the Bubble Tea terminal interface for stockpile.
//
// # Architecture
//
// The Model wraps a state.Machine. Terminal keys are decoded by the keyMap
// into logical state.Key values and handed to the machine one at a time; the
// model then takes a fresh state.Snapshot and renders it. The model never
// changes inventory state itself.
//
// Keys handled by the UI alone:
//
//   - ctrl+c quits at any time, even while typing
//   - ? toggles the help overlay and T cycles the theme (saved to prefs)
//   - pgup/pgdown/end scroll the full message history
//
// # Layout
//
//	┌ header: mode, item count, selection, data file ─────────────┐
//	│ main view for the active mode          │ hotkeys            │
//	├ latest messages (5) ────────────────────────────────────────┤
//	└ all messages (scrollable viewport) ─────────────────────────┘
//
// Main views are the stock table, the register form with the item list, the
// ranked search, the tabbed history with its code search, the sales and
// purchases bar charts and the buy/sell forms.
//
// # Files
//
//   - app.go: Model, Options, Update/View and Run
//   - keys.go: key bindings and decoding into logical keys
//   - views.go, chart.go: per-mode rendering
//   - header.go: status bar, hotkeys panel and overall layout
//   - messages.go: latest and full message panels
//   - box.go, style_helpers.go, strings.go: drawing helpers
//   - theme.go: color themes
package ui
