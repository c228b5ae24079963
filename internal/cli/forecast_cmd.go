package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkorsten/foresight/internal/cli/formatter"
	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
)

func newForecastCmd(app *App) *cobra.Command {
	var targetType, project string
	var runs, lookback int
	var force bool

	cmd := &cobra.Command{
		Use:   "forecast TARGET",
		Short: "Run a Monte Carlo completion forecast",
		Long: `Run a Monte Carlo completion forecast for a project or a single work item.

For project targets TARGET is a project ID or name. For other target types
TARGET is a work item; pass --project to resolve it by title or ID prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !domain.ValidTargetTypes[targetType] {
				return fmt.Errorf("invalid target type %q", targetType)
			}

			targetID := args[0]
			if targetType == string(domain.TargetProject) {
				id, err := resolveProjectID(ctx, app, targetID)
				if err != nil {
					return err
				}
				targetID = id
			} else if project != "" {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				targetID, err = resolveWorkItemID(ctx, app, projectID, targetID)
				if err != nil {
					return err
				}
			}

			req := contract.NewForecastRequest(targetID, domain.TargetType(targetType))
			req.Runs = runs
			req.Force = force
			if lookback > 0 {
				req.LookbackPeriods = lookback
			}

			resp, err := app.Forecasts.Forecast(ctx, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatForecast(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&targetType, "type", string(domain.TargetProject), "Target type (task|sprint|milestone|feature_group|project)")
	cmd.Flags().StringVar(&project, "project", "", "Project for resolving work item targets")
	cmd.Flags().IntVar(&runs, "runs", 0, "Simulation runs (default 10000)")
	cmd.Flags().IntVar(&lookback, "lookback", 0, "Velocity periods to feed the estimate (default 12)")
	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even if a cached forecast is still valid")

	return cmd
}

func newSprintCmd(app *App) *cobra.Command {
	var project string
	var points float64

	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Check a sprint commitment against expected throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			view, err := app.Forecasts.SprintCapacity(ctx, projectID, points)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSprintCapacity(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().Float64Var(&points, "points", 0, "Planned story points for the sprint")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}
