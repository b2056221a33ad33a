package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var flags criteriaFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the filtered listing as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			criteria, err := flags.criteria(cmd)
			if err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer out.Close()

			written, err := app.export.Run(cmd.Context(), criteria, out)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes to %s\n", written, outPath)
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVar(&outPath, "out", "pharmacies_export.csv", "Destination file")

	return cmd
}
