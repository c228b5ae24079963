package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mkorsten/foresight/internal/cli/formatter"
	"github.com/mkorsten/foresight/internal/domain"
)

func newWorkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newWorkAddCmd(app),
		newWorkListCmd(app),
		newWorkUpdateCmd(app),
		newWorkDoneCmd(app),
	)

	return cmd
}

func newWorkAddCmd(app *App) *cobra.Command {
	var project, title, parent, status, assignee string
	var effort float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a work item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			w := &domain.WorkItem{
				ID:                   uuid.New().String(),
				ProjectID:            projectID,
				Title:                title,
				Status:               domain.WorkItemTodo,
				EstimatedEffortHours: effort,
				CreatedAt:            now,
				UpdatedAt:            now,
			}

			if parent != "" {
				parentID, err := resolveWorkItemID(ctx, app, projectID, parent)
				if err != nil {
					return err
				}
				w.ParentID = &parentID
			}
			if status != "" {
				if !domain.ValidWorkItemStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				w.Status = domain.WorkItemStatus(status)
			}
			if assignee != "" {
				w.AssigneeID = &assignee
			}

			if err := app.WorkItems.Create(ctx, w); err != nil {
				return err
			}

			fmt.Printf("Created work item %s [%s]\n", w.Title, w.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&title, "title", "", "Work item title")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent work item (dependency)")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo|in_progress|blocked|done|cancelled)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee")
	cmd.Flags().Float64Var(&effort, "effort", 8, "Estimated effort in hours")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newWorkListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's work items as a dependency tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			items, err := app.WorkItems.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println("No work items found.")
				return nil
			}
			fmt.Print(formatter.FormatWorkItemTree(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWorkUpdateCmd(app *App) *cobra.Command {
	var project, title, status, assignee string
	var effort float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a work item",
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
			w, err := app.WorkItems.GetByID(ctx, itemID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				w.Title = title
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidWorkItemStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				w.Status = domain.WorkItemStatus(status)
			}
			if cmd.Flags().Changed("assignee") {
				if assignee == "" {
					w.AssigneeID = nil
				} else {
					w.AssigneeID = &assignee
				}
			}
			if cmd.Flags().Changed("effort") {
				w.EstimatedEffortHours = effort
			}

			if err := app.WorkItems.Update(ctx, w); err != nil {
				return err
			}

			fmt.Printf("Updated work item %s [%s]\n", w.Title, w.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&title, "title", "", "Work item title")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo|in_progress|blocked|done|cancelled)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee (empty to clear)")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Estimated effort in hours")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWorkDoneCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a work item done",
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
			if err := app.WorkItems.MarkDone(ctx, itemID); err != nil {
				return err
			}
			fmt.Printf("Marked %s done\n", itemID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
