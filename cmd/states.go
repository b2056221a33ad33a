package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List states with pharmacy counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			states, err := app.registry.ListStates(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch states: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "STATE\tPHARMACIES")
			for _, state := range states {
				_, _ = fmt.Fprintf(w, "%s\t%d\n", state.State, state.Count)
			}
			return w.Flush()
		},
	}
}
