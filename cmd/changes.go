package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newChangesCmd(app *app) *cobra.Command {
	var changeType string
	var page int

	cmd := &cobra.Command{
		Use:   "changes",
		Short: "Show the registry change feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			feed, err := app.registry.ListChanges(cmd.Context(), changeType, page)
			if err != nil {
				return fmt.Errorf("fetch changes: %w", err)
			}

			if len(feed.Items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes detected yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "DETECTED\tNPI\tORGANIZATION\tCHANGE\tFIELD\tOLD\tNEW")
			for _, change := range feed.Items {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					strDeref(change.DetectedAt), change.NPI, change.OrganizationName,
					change.ChangeType, strDeref(change.FieldChanged),
					strDeref(change.OldValue), strDeref(change.NewValue))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\npage %d of %d · %d changes\n", feed.Page, feed.TotalPages, feed.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&changeType, "type", "", "Filter by change type (added, modified, removed)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")

	return cmd
}
