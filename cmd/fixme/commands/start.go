package commands

import (
	"time"

	"github.com/spf13/cobra"

	"fixme/internal/app"
	"fixme/internal/duration"
)

func startCmd() *cobra.Command {
	var (
		dryRun bool
		budget duration.Flag
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the configured start command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Start(cmd.Context(), cmd.OutOrStdout(), app.StartOptions{
				DryRun: dryRun,
				Budget: time.Duration(budget.Seconds) * time.Second,
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "see what would happen without doing anything")
	cmd.Flags().Var(&budget, "duration", "time budget for the start command, for example 1m30s")
	return cmd
}
