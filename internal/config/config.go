package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/store"
	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

// Environment variables that override the config file.
const (
	EnvStoreBackend = "GOALSHEET_STORE_BACKEND"
	EnvStorePath    = "GOALSHEET_STORE_PATH"
	EnvLogLevel     = "GOALSHEET_LOG_LEVEL"
)

// Config holds all goalsheet configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DefaultSheet is opened by the TUI on start when it exists.
	DefaultSheet string `toml:"default_sheet,omitempty"`
	DataDir      string `toml:"data_dir,omitempty"`
}

// StorageConfig selects where saved sheets live.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	// File overrides the TUI log file location.
	File string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: string(store.SQLiteBackend),
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalsheet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "goalsheet")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the store and log files.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalsheet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "goalsheet")
}

// LogFile returns the path the TUI logs to.
func (c Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir(), "goalsheet.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ApplyEnv overlays GOALSHEET_* environment variables onto cfg.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvStoreBackend)); v != "" {
		c.Storage.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorePath)); v != "" {
		c.Storage.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !store.Backend(c.Storage.Backend).IsValid() {
		return fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}
	if !theme.Exists(c.Appearance.Theme) {
		return fmt.Errorf("appearance.theme: unknown theme %q", c.Appearance.Theme)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
