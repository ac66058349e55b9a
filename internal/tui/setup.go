package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	theme        string
	defaultSheet string
}

func newSetupForm(vals *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to goalsheet!").
				Description("Plan monthly income and outgoings toward a savings goal.\nA couple of settings first."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
			huh.NewInput().
				Title("Sheet to open on start").
				Description("Optional; leave blank for a new sheet each time").
				Value(&vals.defaultSheet),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			a.logger.Warn("saving setup config failed", log.FieldError, err)
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig applies the setup answers and writes them to the config file.
func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()

	if theme.Exists(a.setupVals.theme) {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(cfg.Appearance.Theme)
	}
	cfg.General.DefaultSheet = a.setupVals.defaultSheet
	if cfg.General.DefaultSheet != "" {
		a.reg.Open(cfg.General.DefaultSheet, a.sheet)
	}

	return config.Save(cfg)
}
