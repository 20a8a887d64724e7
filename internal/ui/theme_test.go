package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockpile/internal/inventory"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" {
		t.Fatalf("ThemeNames()[0] = %q, want Nightfox", names[0])
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetThemeFallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestKindStyleColors(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles()

	tests := []struct {
		kind inventory.Kind
		want string
	}{
		{inventory.KindRegister, th.Info},
		{inventory.KindPurchase, th.Success},
		{inventory.KindSale, th.Danger},
		{inventory.Kind(99), th.Text},
	}
	for _, tt := range tests {
		got := styles.KindStyle(tt.kind).GetForeground()
		if got != lipgloss.Color(tt.want) {
			t.Fatalf("KindStyle(%v) foreground = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestWithBackgroundKeepsKindColors(t *testing.T) {
	th := GetTheme("Kanagawa")
	styles := th.Styles().WithBackground(th.Surface)
	if got := styles.KindStyle(inventory.KindSale).GetForeground(); got != lipgloss.Color(th.Danger) {
		t.Fatalf("sale foreground = %v, want %v", got, th.Danger)
	}
}

func TestMessageStyleByOutcome(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()
	fallback := styles.AccentText

	tests := []struct {
		msg  string
		want string
	}{
		{"Item A1 registered with 10 units", th.Success},
		{"Added 5 units of item A1", th.Success},
		{"Sold 2 units of item A1", th.Success},
		{"Wrong format. Use: code quantity", th.Danger},
		{"Invalid quantity! Use a whole number from 1 to 2147483647.", th.Danger},
		{"Item ZZ not found!", th.Danger},
		{"Not enough stock to sell 9 of A1 (on hand: 3)!", th.Danger},
		{"Warning: changes kept in memory but not saved (disk full)", th.Warning},
		{"Showing history for A1", th.Info},
		{"Item A1 selected. Press A to buy or V to sell.", th.Accent},
	}
	for _, tt := range tests {
		got := messageStyle(styles, tt.msg, fallback).GetForeground()
		if got != lipgloss.Color(tt.want) {
			t.Fatalf("messageStyle(%q) foreground = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
