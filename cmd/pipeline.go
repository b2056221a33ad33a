package cmd

import (
	"fmt"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPipelineCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Inspect and trigger the data pipeline",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the most recent pipeline run",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.requireSession(cmd.Context()); err != nil {
					return err
				}

				status, err := app.registry.PipelineStatus(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetch pipeline status: %w", err)
				}

				writePipelineStatus(cmd, status)
				return nil
			},
		},
		&cobra.Command{
			Use:   "trigger",
			Short: "Start a pipeline run in the background",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.requireSession(cmd.Context()); err != nil {
					return err
				}

				status, err := app.registry.TriggerPipeline(cmd.Context())
				if err != nil {
					return fmt.Errorf("trigger pipeline: %w", err)
				}

				writePipelineStatus(cmd, status)
				return nil
			},
		},
	)

	return cmd
}

func writePipelineStatus(cmd *cobra.Command, status domain.PipelineStatus) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "status: %s\n", status.Status)
	if status.StartedAt != nil {
		_, _ = fmt.Fprintf(out, "started: %s\n", *status.StartedAt)
	}
	if status.CompletedAt != nil {
		_, _ = fmt.Fprintf(out, "completed: %s\n", *status.CompletedAt)
	}
	if status.RecordsProcessed > 0 {
		_, _ = fmt.Fprintf(out, "records processed: %d\n", status.RecordsProcessed)
	}
	if status.Message != "" {
		_, _ = fmt.Fprintln(out, status.Message)
	}
}
