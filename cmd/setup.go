package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/store"
	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Existing file values only; env and flags are not persisted.
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to goalsheet!")
	fmt.Println()

	if err := setupForm(&cfg).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `goalsheet setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func setupForm(cfg *config.Config) *huh.Form {
	backends := make([]huh.Option[string], 0, len(store.Backends))
	for _, b := range store.Backends {
		backends = append(backends, huh.NewOption(string(b), string(b)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should sheets be saved?").
				Options(backends...).
				Value(&cfg.Storage.Backend),
			huh.NewInput().
				Title("Store path").
				Description("Leave blank for the default location").
				Value(&cfg.Storage.Path),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&cfg.Appearance.Theme),
		),
	)
}
