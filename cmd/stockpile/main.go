package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/stockpile/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/stockpile/config.toml)")
	dataPath := flag.String("data", "", "inventory data path (optional)")
	backend := flag.String("backend", "", "storage backend: json or sqlite (optional)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional)")
	logLines := flag.Int("logs", 0, "print the last N log lines and exit")
	flag.Parse()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		DataPath:   *dataPath,
		Backend:    *backend,
	}

	if n := *logLines; n > 0 {
		if err := app.PrintLogs(os.Stdout, opts, n); err != nil {
			fmt.Fprintf(os.Stderr, "stockpile: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "stockpile: %v\n", err)
		return 1
	}
	return 0
}
