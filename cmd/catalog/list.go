package main

import (
	"encoding/json"
	"fmt"

	"github.com/abelbrown/catalog/internal/filter"
	"github.com/abelbrown/catalog/internal/logging"
	"github.com/abelbrown/catalog/internal/ui"
	"github.com/spf13/cobra"
)

type listFlags struct {
	user       int
	query      string
	categories []int
	json       bool
	explain    bool
}

func (a *app) newListCmd() *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the products that pass the given filters",
		Long: `Print the products that pass the given filters.

Without flags every product is listed. --category may be repeated; each
occurrence toggles that category, so naming the same id twice deselects it.`,
		Example: `  catalog list --user 2
  catalog list --query " milk "
  catalog list --category 1 --category 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, f)
		},
	}

	cmd.Flags().IntVar(&f.user, "user", 0, "only products owned by this user id")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "case-insensitive name search")
	cmd.Flags().IntSliceVarP(&f.categories, "category", "c", nil, "toggle a category id (repeatable)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "print how many products survived each filter")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, f listFlags) error {
	c, err := loadCatalog(a.cfg)
	if err != nil {
		return err
	}

	st := filter.NewState(c.Categories)
	if cmd.Flags().Changed("user") {
		if _, ok := c.User(f.user); !ok {
			logging.Warn("Unknown user id", "user", f.user)
		}
		st.SelectUser(f.user)
	}
	st.SetQuery(f.query)
	for _, id := range f.categories {
		if _, ok := c.Category(id); !ok {
			logging.Warn("Unknown category id", "category", id)
		}
		st.ToggleCategory(id)
	}

	visible, trace := filter.Explain(c.Products, st)
	logging.Debug("List filtered", "trace", fmt.Sprintf("%+v", trace))

	out := cmd.OutOrStdout()

	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(visible); err != nil {
			return err
		}
	} else if len(visible) == 0 {
		fmt.Fprintln(out, ui.NoResultsText)
	} else {
		fmt.Fprintln(out, ui.ProductTable(visible, -1, uiOptions(a.cfg)))
	}

	if f.explain {
		fmt.Fprintf(cmd.ErrOrStderr(), "input=%d after_user=%d after_query=%d after_category=%d\n",
			trace.Input, trace.AfterUser, trace.AfterQuery, trace.AfterCategory)
	}
	return nil
}
