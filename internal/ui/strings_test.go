package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  trimmed  ", 10, "trimmed"},
		{"exactly-10", 10, "exactly-10"},
		{"much longer value", 8, "much ..."},
		{"abcdef", 3, "abc"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("/home/user/.local/share/stockpile/estoque.json", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len([]rune(got)), got)
	}
	if got[:9] != "/home/use" {
		t.Fatalf("truncateMiddle prefix = %q", got)
	}
	if got := truncateMiddle("short", 20); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}

func TestPadding(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padLeft("ab", 5); got != "   ab" {
		t.Fatalf("padLeft = %q", got)
	}
	if got := center("ab", 6); got != "  ab  " {
		t.Fatalf("center = %q", got)
	}
	if got := center("toolong", 3); got != "toolong" {
		t.Fatalf("center overflow = %q", got)
	}
}
