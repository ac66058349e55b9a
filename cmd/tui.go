package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/tui"
	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive sheet editor",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Stderr would corrupt the alt screen.
	level, _ := log.ParseLevel(cfg.Log.Level)
	logger, logFile, err := log.OpenFile(cfg.LogFile(), level)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	reg, kv, err := openRegistry(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	// Force TrueColor so background styling is always emitted.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(reg, tui.Options{
		DefaultSheet: cfg.General.DefaultSheet,
		FirstRun:     !config.Exists(),
		Logger:       logger.WithComponent(log.ComponentTUI),
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
