// Command catalog browses a product catalog in the terminal.
//
// Usage:
//
//	catalog                      Interactive browser (same as "catalog browse")
//	catalog list [flags]         Print the filtered product table
//	catalog check                Report unresolved references in the fixtures
//	catalog seed --db FILE       Copy fixtures into a SQLite database
package main

import (
	"fmt"
	"os"

	"github.com/abelbrown/catalog/internal/config"
	"github.com/abelbrown/catalog/internal/logging"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	fixtures   string
	dbPath     string
	logLevel   string
	verbose    bool
}

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	flags globalFlags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Browse products by owner, name and category",
		Long: `catalog shows a static product catalog joined with its categories and
their owners, and narrows it with three filters: owning user, name search
and category selection.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logging.Close() },
		RunE:              a.runBrowse,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default ~/.catalog/config.json)")
	pf.StringVar(&a.flags.fixtures, "fixtures", "", "load fixtures from a YAML or JSON file")
	pf.StringVar(&a.flags.dbPath, "db", "", "SQLite fixture database")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log to stderr instead of the log file")

	root.AddCommand(
		a.newBrowseCmd(),
		a.newListCmd(),
		a.newCheckCmd(),
		a.newSeedCmd(),
	)
	return root
}

// setup loads config, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.flags.configPath != "" {
		a.cfg, err = config.LoadFrom(a.flags.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if a.flags.fixtures != "" {
		a.cfg.Data.Source = config.SourceFile
		a.cfg.Data.FixturesPath = a.flags.fixtures
	}
	if a.flags.dbPath != "" {
		a.cfg.Data.Source = config.SourceSQLite
		a.cfg.Data.DBPath = a.flags.dbPath
	}
	if a.flags.logLevel != "" {
		a.cfg.Logging.Level = a.flags.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if a.flags.verbose {
		logging.InitWriter(cmd.ErrOrStderr(), a.cfg.Logging.Level)
	} else if err := logging.Init(a.cfg.Logging.Dir, a.cfg.Logging.Level); err != nil {
		// Logging is best effort; the browser still works without a log file.
		fmt.Fprintf(cmd.ErrOrStderr(), "catalog: logging disabled: %v\n", err)
	}

	logging.Debug("Config loaded", "source", a.cfg.Data.Source, "command", cmd.Name())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
