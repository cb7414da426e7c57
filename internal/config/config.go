package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Screen names accepted by UI.DefaultView
const (
	ViewFavorites = "favorites"
	ViewAll       = "all"
)

// Config holds the application configuration
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Speech  SpeechConfig  `toml:"speech"`
	Dialer  DialerConfig  `toml:"dialer"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

// UIConfig holds layout and scrolling settings for the carousel
type UIConfig struct {
	DefaultView string `toml:"default_view"`
	CardHeight  int    `toml:"card_height"`
	Spacing     int    `toml:"spacing"`
	SettleMS    int    `toml:"settle_ms"`
}

// SpeechConfig holds announcement settings
type SpeechConfig struct {
	Enabled  bool    `toml:"enabled"`
	Backend  string  `toml:"backend"` // empty picks the first available
	Language string  `toml:"language"`
	Rate     float64 `toml:"rate"`
}

// DialerConfig selects how phone numbers are handed to the system
type DialerConfig struct {
	Backend string `toml:"backend"`
}

// HistoryConfig holds call history database settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Dir returns the configuration directory
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "easy-contacts")
}

// DefaultPath returns the standard config file location
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		UI: UIConfig{
			DefaultView: ViewFavorites,
			CardHeight:  9,
			Spacing:     1,
			SettleMS:    150,
		},
		Speech: SpeechConfig{
			Enabled:  true,
			Language: "en",
			Rate:     0.9,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(Dir(), "history.db"),
		},
		Log: LogConfig{
			Path:  filepath.Join(Dir(), "easy-contacts.log"),
			Level: "info",
		},
	}
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(expandPath(configPath))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.History.Path = expandPath(cfg.History.Path)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch c.UI.DefaultView {
	case ViewFavorites, ViewAll:
	default:
		return fmt.Errorf("%w: ui.default_view %q (want %s or %s)", ErrInvalid, c.UI.DefaultView, ViewFavorites, ViewAll)
	}
	if c.UI.CardHeight < 5 {
		return fmt.Errorf("%w: ui.card_height must be at least 5", ErrInvalid)
	}
	if c.UI.Spacing < 0 {
		return fmt.Errorf("%w: ui.spacing must not be negative", ErrInvalid)
	}
	if c.UI.SettleMS <= 0 {
		return fmt.Errorf("%w: ui.settle_ms must be positive", ErrInvalid)
	}
	if c.Speech.Rate <= 0 {
		return fmt.Errorf("%w: speech.rate must be positive", ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	return c.SaveTo(DefaultPath())
}

// SaveTo atomically writes the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	configPath = expandPath(configPath)
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := atomic.WriteFile(configPath, &buf); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
