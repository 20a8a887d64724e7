package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/five82/stockpile/internal/config"
	"github.com/five82/stockpile/internal/inventory"
	"github.com/five82/stockpile/internal/logging"
	"github.com/five82/stockpile/internal/prefs"
	"github.com/five82/stockpile/internal/state"
	"github.com/five82/stockpile/internal/storage/jsonstore"
	"github.com/five82/stockpile/internal/storage/sqlitestore"
	"github.com/five82/stockpile/internal/ui"
)

// Options configure the stockpile application. Empty fields fall back to
// the config file, then to defaults.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stockpile/prefs.toml
	DataPath   string
	Backend    string
}

// Run boots the stockpile TUI until the operator quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		logger = logging.Discard()
	}
	defer logger.Close()
	log := logger.Component("app")
	log.Info().
		Str("backend", cfg.Backend).
		Str("data_path", cfg.DataPath).
		Msg("starting")

	gateway, closeGateway, err := openGateway(cfg, logger.Component("storage"))
	if err != nil {
		log.Error().Err(err).Msg("open storage")
		return err
	}
	defer func() {
		if err := closeGateway(); err != nil {
			log.Warn().Err(err).Msg("close storage")
		}
	}()

	store := inventory.New(loadData(gateway, log), gateway,
		inventory.WithLogger(logger.Component("inventory")))
	machine := state.New(store,
		state.WithListRows(cfg.ListRows),
		state.WithLogger(logger.Component("state")))

	userPrefs := prefs.Load(opts.PrefsPath)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Machine:   machine,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		DataPath:  cfg.DataPath,
		Backend:   cfg.Backend,
		Logger:    logger.Component("ui"),
	})
	log.Info().Err(err).Msg("exiting")
	return err
}

// PrintLogs writes the last n lines of the log file to w.
func PrintLogs(w io.Writer, opts Options, n int) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	lines, err := logging.Tail(cfg.LogPath, n)
	if err != nil {
		return fmt.Errorf("read log %s: %w", cfg.LogPath, err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err = cfg.WithOverrides(opts.DataPath, opts.Backend)
	if err != nil {
		return config.Config{}, fmt.Errorf("apply flags: %w", err)
	}
	return cfg, nil
}

// openGateway returns the persistence gateway for the configured backend and
// a function that releases it.
func openGateway(cfg config.Config, log zerolog.Logger) (inventory.Gateway, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sqlitestore.Open(cfg.DataPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return db, db.Close, nil
	default:
		return jsonstore.New(cfg.DataPath, jsonstore.WithLogger(log)), func() error { return nil }, nil
	}
}

// loadData reads the durable record. An unreadable or malformed record is
// logged and replaced by an empty inventory; the next save overwrites it.
func loadData(gateway inventory.Gateway, log zerolog.Logger) inventory.Data {
	data, err := gateway.Load()
	if err != nil {
		log.Warn().Err(err).Msg("load inventory failed, starting empty")
		return inventory.Data{}
	}
	log.Info().
		Int("items", len(data.Items)).
		Int("history", len(data.History)).
		Msg("inventory loaded")
	return data
}
