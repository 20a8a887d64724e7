package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_WritesSessionAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")
	log := l.Component("store")
	log.Info().Str("code", "A1").Msg("inventory updated")
	log.Debug().Msg("filtered out")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if rec["session"] != l.Session || l.Session == "" {
		t.Fatalf("session = %v, want %q", rec["session"], l.Session)
	}
	if rec["component"] != "store" || rec["code"] != "A1" {
		t.Fatalf("record = %v", rec)
	}
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stockpile.log")
	for i := 0; i < 2; i++ {
		l, err := Open(path, "info")
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		l.Info().Int("run", i).Msg("start")
		if err := l.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	lines, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Tail returned %d lines, want 2", len(lines))
	}
}

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var b strings.Builder
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Tail(path, 3)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if strings.Join(got, ",") != "line 5,line 6,line 7" {
		t.Fatalf("Tail = %v", got)
	}

	if got, _ := Tail(path, 0); got != nil {
		t.Fatalf("Tail(0) = %v, want nil", got)
	}
	if got, err := Tail(filepath.Join(t.TempDir(), "missing.log"), 5); err != nil || got != nil {
		t.Fatalf("Tail(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info().Msg("dropped")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
