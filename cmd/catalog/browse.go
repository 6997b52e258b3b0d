package main

import (
	"github.com/abelbrown/catalog/internal/logging"
	"github.com/abelbrown/catalog/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (a *app) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser",
		Args:  cobra.NoArgs,
		RunE:  a.runBrowse,
	}
}

func (a *app) runBrowse(cmd *cobra.Command, _ []string) error {
	cfg := a.cfg

	load := func() tea.Cmd {
		return func() tea.Msg {
			c, err := loadCatalog(cfg)
			return ui.CatalogLoaded{Catalog: c, Err: err}
		}
	}

	logging.Info("Browser started", "source", cfg.Data.Source)
	p := tea.NewProgram(ui.NewApp(load, uiOptions(cfg)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("Browser exited with error", "error", err)
		return err
	}
	logging.Info("Browser closed")
	return nil
}
