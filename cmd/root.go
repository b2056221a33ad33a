package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pmi",
		Short:         "Pharmacy M&A Intelligence CLI (pmi): browse and export the pharmacy registry",
		Long:          "pmi (Pharmacy M&A Intelligence CLI) signs into the registry service, browses and filters the pharmacy listing with shareable query state, pulls record detail and change feeds, and exports filtered CSVs from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newBrowseCmd(app),
		newListCmd(app),
		newGetCmd(app),
		newStatesCmd(app),
		newChangesCmd(app),
		newDashboardCmd(app),
		newExportCmd(app),
		newPipelineCmd(app),
	)

	return rootCmd
}
