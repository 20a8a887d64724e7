package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config captures everything stockpile reads at startup.
type Config struct {
	DataPath string
	Backend  string
	LogPath  string
	LogLevel string
	ListRows int
}

const (
	defaultConfigPath = "~/.config/stockpile/config.toml"
	defaultDataDir    = "~/.local/share/stockpile"
	defaultLogPath    = "~/.local/state/stockpile/stockpile.log"
	defaultLogLevel   = "info"
	defaultListRows   = 5
)

// fileConfig mirrors config.toml.
type fileConfig struct {
	DataPath string `toml:"data_path"`
	Backend  string `toml:"backend"`
	LogPath  string `toml:"log_path"`
	LogLevel string `toml:"log_level"`
	ListRows int    `toml:"list_rows"`
}

// envConfig holds STOCKPILE_* overrides; unset variables stay zero.
type envConfig struct {
	DataPath string `env:"STOCKPILE_DATA_PATH"`
	Backend  string `env:"STOCKPILE_BACKEND"`
	LogPath  string `env:"STOCKPILE_LOG_PATH"`
	LogLevel string `env:"STOCKPILE_LOG_LEVEL"`
	ListRows int    `env:"STOCKPILE_LIST_ROWS"`
}

// Load reads the config file at path (or the default location), applies
// STOCKPILE_* environment overrides and fills defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		DataPath: firstNonEmpty(overrides.DataPath, raw.DataPath),
		Backend:  strings.ToLower(firstNonEmpty(overrides.Backend, raw.Backend, BackendJSON)),
		LogPath:  firstNonEmpty(overrides.LogPath, raw.LogPath, defaultLogPath),
		LogLevel: strings.ToLower(firstNonEmpty(overrides.LogLevel, raw.LogLevel, defaultLogLevel)),
		ListRows: firstPositive(overrides.ListRows, raw.ListRows, defaultListRows),
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithOverrides returns a copy with non-empty flag values applied on top.
func (c Config) WithOverrides(dataPath, backend string) (Config, error) {
	if strings.TrimSpace(backend) != "" {
		if strings.ToLower(strings.TrimSpace(backend)) != c.Backend && strings.TrimSpace(dataPath) == "" {
			c.DataPath = ""
		}
		c.Backend = strings.ToLower(strings.TrimSpace(backend))
	}
	if strings.TrimSpace(dataPath) != "" {
		c.DataPath = dataPath
	}
	if err := c.normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendJSON, BackendSQLite)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		c.DataPath = defaultDataPath(c.Backend)
	}
	c.DataPath = mustExpand(c.DataPath)
	c.LogPath = mustExpand(c.LogPath)
	return nil
}

func defaultDataPath(backend string) string {
	if backend == BackendSQLite {
		return defaultDataDir + "/stockpile.db"
	}
	return defaultDataDir + "/estoque.json"
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ against the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
