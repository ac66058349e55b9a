// Package cmd implements the goalsheet CLI commands.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	if cfg.General.DefaultSheet != "" {
		fmt.Printf("    Default sheet:  %s\n", cfg.General.DefaultSheet)
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("    Path:    %s\n", storePath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:    %s\n", cfg.Log.Level)
	fmt.Printf("    TUI file: %s\n", cfg.LogFile())
	fmt.Println()

	fmt.Println("  Run `goalsheet setup` to reconfigure.")
	return nil
}

func storePath(cfg config.Config) string {
	backend := store.Backend(cfg.Storage.Backend)
	switch {
	case backend == store.MemoryBackend:
		return "(in memory)"
	case cfg.Storage.Path != "":
		return cfg.Storage.Path
	default:
		return filepath.Join(cfg.DataDir(), backend.DefaultFilename())
	}
}
