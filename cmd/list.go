package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/bnema/pharmacy-intel-cli/internal/application"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var flags criteriaFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch one page of the pharmacy listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			criteria, err := flags.criteria(cmd)
			if err != nil {
				return err
			}

			ctrl := application.NewQueryController(app.registry, criteria)
			if err := ctrl.Run(cmd.Context(), ctrl.Start()); err != nil {
				return fmt.Errorf("fetch listing: %w", err)
			}

			page, _ := ctrl.Page()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NPI\tORGANIZATION\tCITY\tST\tZIP\tTYPE")
			for _, item := range page.Items {
				kind := "chain"
				if item.IsIndependent {
					kind = "independent"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					item.NPI, item.OrganizationName, strDeref(item.City), strDeref(item.State), strDeref(item.Zip), kind)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\npage %d of %d · %d results\n", page.Page, page.LastPage(), page.Total)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "share: ?%s\n", ctrl.ShareQuery())
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func strDeref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
