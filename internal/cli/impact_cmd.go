package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkorsten/foresight/internal/cli/formatter"
	"github.com/mkorsten/foresight/internal/contract"
)

// itemTitles builds an ID-to-title lookup for rendering impact output.
func itemTitles(ctx context.Context, app *App, projectID string) map[string]string {
	titles := make(map[string]string)
	items, err := app.WorkItems.ListByProject(ctx, projectID)
	if err != nil {
		return titles
	}
	for _, w := range items {
		titles[w.ID] = w.Title
	}
	return titles
}

func newImpactCmd(app *App) *cobra.Command {
	var project string
	var days float64
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "impact ITEM",
		Short: "Analyze how a delay cascades through dependent work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveWorkItemID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			req := contract.NewImpactRequest(projectID, itemID, days)
			if dryRun {
				req.Persist = false
			}

			resp, err := app.Impact.AnalyzeDelay(ctx, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatImpact(resp.Chain, itemTitles(ctx, app, projectID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().Float64Var(&days, "days", 0, "Delay to propagate, in days")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Analyze without saving the dependency chain")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func newCriticalPathCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "critical-path",
		Short: "Show the longest dependency chains in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			resp, err := app.Impact.CriticalPaths(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatCriticalPaths(resp, itemTitles(ctx, app, projectID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
