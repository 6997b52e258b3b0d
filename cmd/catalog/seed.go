package main

import (
	"errors"
	"fmt"

	"github.com/abelbrown/catalog/internal/fixture"
	"github.com/abelbrown/catalog/internal/logging"
	"github.com/abelbrown/catalog/internal/store"
	"github.com/spf13/cobra"
)

func (a *app) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write fixtures into a SQLite database",
		Long: `Write fixtures into the SQLite database given by --db, replacing its
contents. The source is --fixtures when set, otherwise the built-in data.`,
		Example: `  catalog seed --db catalog.db
  catalog seed --db catalog.db --fixtures shop.yaml`,
		Args: cobra.NoArgs,
		RunE: a.runSeed,
	}
}

func (a *app) runSeed(cmd *cobra.Command, _ []string) error {
	if a.flags.dbPath == "" {
		return errors.New("seed: --db is required")
	}

	var (
		set fixture.Set
		err error
	)
	if a.flags.fixtures != "" {
		set, err = fixture.LoadFile(a.flags.fixtures)
	} else {
		set, err = fixture.Default()
	}
	if err != nil {
		return err
	}

	st, err := store.Open(a.flags.dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Seed(set); err != nil {
		return fmt.Errorf("seed %s: %w", a.flags.dbPath, err)
	}

	counts, err := st.Counts()
	if err != nil {
		return err
	}
	logging.Info("Database seeded", "path", a.flags.dbPath, "products", counts.Products)
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d users, %d categories, %d products\n",
		a.flags.dbPath, counts.Users, counts.Categories, counts.Products)
	return nil
}
