package main

import (
	"fmt"
	"os"

	"github.com/abelbrown/catalog/internal/catalog"
	"github.com/abelbrown/catalog/internal/config"
	"github.com/abelbrown/catalog/internal/fixture"
	"github.com/abelbrown/catalog/internal/store"
	"github.com/abelbrown/catalog/internal/ui"
)

// loadFixtures reads fixtures from the configured source.
func loadFixtures(cfg *config.Config) (fixture.Set, error) {
	switch cfg.Data.Source {
	case config.SourceFile:
		return fixture.LoadFile(cfg.Data.FixturesPath)
	case config.SourceSQLite:
		return loadFromDB(cfg.Data.DBPath)
	default:
		return fixture.Default()
	}
}

func loadFromDB(path string) (fixture.Set, error) {
	// Open would silently create an empty database.
	if _, err := os.Stat(path); err != nil {
		return fixture.Set{}, fmt.Errorf("fixture database: %w", err)
	}

	st, err := store.Open(path)
	if err != nil {
		return fixture.Set{}, err
	}
	defer st.Close()

	set, err := st.Load()
	if err != nil {
		return fixture.Set{}, err
	}
	if err := fixture.Validate(set); err != nil {
		return fixture.Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// loadCatalog loads fixtures and runs the join.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	set, err := loadFixtures(cfg)
	if err != nil {
		return nil, err
	}
	return catalog.New(set), nil
}

func uiOptions(cfg *config.Config) ui.Options {
	return ui.Options{
		NameWidth: cfg.UI.NameWidth,
		ShowIcons: cfg.UI.ShowIcons,
	}
}
