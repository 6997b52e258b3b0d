package main

import (
	"fmt"

	"github.com/abelbrown/catalog/internal/catalog"
	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report products and categories whose references do not resolve",
		Long: `Report products and categories whose references do not resolve.

Unresolved references are tolerated by the browser (the product is shown
without a category or owner), so this is a lint, not a load error. Exits 1
when anything is reported.`,
		Args: cobra.NoArgs,
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	set, err := loadFixtures(a.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	violations := catalog.Check(set)
	for _, v := range violations {
		fmt.Fprintln(out, v.String())
	}

	if len(violations) > 0 {
		return fmt.Errorf("%d unresolved reference(s)", len(violations))
	}
	fmt.Fprintf(out, "ok: %d users, %d categories, %d products\n",
		len(set.Users), len(set.Categories), len(set.Products))
	return nil
}
