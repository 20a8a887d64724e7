package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"A1", "A1", 0},
		{"A1", "A2", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"B9", "A1", 2},
		{"relógio", "relogio", 1},
	}
	for _, tc := range cases {
		t.Run(tc.a+"->"+tc.b, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.want {
				t.Fatalf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDistance_IdentityAndEmpty(t *testing.T) {
	for _, s := range []string{"", "x", "A1", "WATCH-042", "ação"} {
		if got := Distance(s, s); got != 0 {
			t.Fatalf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
		if got, want := Distance("", s), len([]rune(s)); got != want {
			t.Fatalf("Distance(\"\", %q) = %d, want %d", s, got, want)
		}
	}
}

func TestRank_OrdersByDistance(t *testing.T) {
	got := Rank([]string{"B9", "A2", "A1"}, "A1")
	if len(got) != 3 {
		t.Fatalf("Rank returned %d matches, want 3", len(got))
	}
	if got[0].Code != "A1" || got[0].Distance != 0 {
		t.Fatalf("first match = %+v, want A1 at distance 0", got[0])
	}
	if got[1].Code != "A2" || got[1].Distance != 1 {
		t.Fatalf("second match = %+v, want A2 at distance 1", got[1])
	}
	if got[2].Code != "B9" {
		t.Fatalf("third match = %+v, want B9", got[2])
	}
}

func TestRank_TiesBreakByCode(t *testing.T) {
	got := Rank([]string{"ZZ", "AA", "MM"}, "")
	want := []string{"AA", "MM", "ZZ"}
	for i, code := range want {
		if got[i].Code != code {
			t.Fatalf("Rank tie order = %+v, want %v", got, want)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []string{"b", "a"}
	_ = Rank(in, "a")
	if in[0] != "b" || in[1] != "a" {
		t.Fatalf("Rank mutated input: %v", in)
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil, "x"); got != nil {
		t.Fatalf("Rank(nil) = %v, want nil", got)
	}
}
