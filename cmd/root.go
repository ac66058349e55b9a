package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
	"github.com/theirongolddev/goalsheet/internal/store"
)

var (
	flagBackend string
	flagStore   string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:          "goalsheet",
	Short:        "Savings goal planner",
	Long:         "Track monthly income and outgoings against a savings goal, and keep named sheets.",
	RunE:         runList,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Store backend (sqlite, file, memory)")
	rootCmd.PersistentFlags().StringVarP(&flagStore, "store", "s", "", "Store file path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
}

// loadConfig merges the config file, .env, GOALSHEET_* variables and flags,
// in increasing precedence.
func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagStore != "" {
		cfg.Storage.Path = flagStore
	}
	if flagQuiet {
		cfg.Log.Level = "error"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger used by non-interactive commands.
func newLogger(cfg config.Config) *log.Logger {
	lc := log.DefaultConfig()
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		lc.Level = level
	}
	return log.New(lc)
}

// openRegistry opens the configured store and loads the saved sheets.
// The returned store must be closed by the caller.
func openRegistry(cfg config.Config, logger *log.Logger) (*sheet.Registry, store.KV, error) {
	backend := store.Backend(cfg.Storage.Backend)
	kv, err := store.Open(backend, cfg.DataDir(), cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s store: %w", backend, err)
	}
	logger.WithComponent(log.ComponentStore).Debug("store opened",
		log.FieldBackend, string(backend), log.FieldPath, cfg.Storage.Path)

	reg := sheet.NewRegistry(kv, logger)
	reg.Load()
	return reg, kv, nil
}

// withRegistry runs fn against a loaded registry and closes the store after.
func withRegistry(fn func(cfg config.Config, reg *sheet.Registry, logger *log.Logger) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	reg, kv, err := openRegistry(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Warn("closing store", log.FieldError, err)
		}
	}()

	return fn(cfg, reg, logger)
}
