package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/pharmacy-intel-cli/internal/adapters/render/browse"
	"github.com/bnema/pharmacy-intel-cli/internal/application"
	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *app) *cobra.Command {
	var flags criteriaFlags
	var exportPath string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the pharmacy listing interactively",
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
			err = browse.Run(cmd.Context(), ctrl, app.export, app.sessions, browse.Options{
				Debounce:   app.debounce,
				ExportPath: exportPath,
			})
			if errors.Is(err, domain.ErrLoginRequired) {
				return fmt.Errorf("session expired: run `pmi login` again")
			}

			return err
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&exportPath, "export-path", "pharmacies_export.csv", "Destination for ctrl+e exports")

	return cmd
}
