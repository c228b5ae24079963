package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkorsten/foresight/internal/cli/formatter"
	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Evaluate and manage what-if scenarios",
	}

	cmd.AddCommand(
		newScenarioEvalCmd(app),
		newScenarioListCmd(app),
		newScenarioActivateCmd(app),
	)

	return cmd
}

func newScenarioEvalCmd(app *App) *cobra.Command {
	var project, name string
	var addStaff, cutScope, boostVelocity, clearBlockers, overtime float64
	var runs int
	var activate bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compare a hypothetical plan change against the baseline forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			var changes []domain.ScenarioChange
			if cmd.Flags().Changed("add-staff") {
				changes = append(changes, domain.ScenarioChange{Type: domain.ChangeAddStaff, Value: addStaff})
			}
			if cmd.Flags().Changed("cut-scope") {
				changes = append(changes, domain.ScenarioChange{Type: domain.ChangeReduceScope, Value: cutScope})
			}
			if cmd.Flags().Changed("boost-velocity") {
				changes = append(changes, domain.ScenarioChange{Type: domain.ChangeIncreaseVelocity, Value: boostVelocity})
			}
			if cmd.Flags().Changed("clear-blockers") {
				changes = append(changes, domain.ScenarioChange{Type: domain.ChangeRemoveBlockers, Value: clearBlockers})
			}
			if cmd.Flags().Changed("overtime") {
				changes = append(changes, domain.ScenarioChange{Type: domain.ChangeExtendHours, Value: overtime})
			}

			// Fall back to the interactive wizard when no change flags are
			// given on a terminal.
			if len(changes) == 0 {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("at least one change flag is required (try --add-staff, --cut-scope, --boost-velocity, --clear-blockers, or --overtime)")
				}
				changes, name, activate, err = runScenarioWizard(name)
				if err != nil {
					return err
				}
			}

			if name == "" {
				name = "unnamed scenario"
			}

			req := contract.NewScenarioRequest(projectID, name)
			req.Changes = changes
			req.Runs = runs
			req.Activate = activate

			resp, err := app.Scenarios.Evaluate(ctx, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatScenarioComparison(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&name, "name", "", "Scenario name")
	cmd.Flags().Float64Var(&addStaff, "add-staff", 0, "Engineers to add")
	cmd.Flags().Float64Var(&cutScope, "cut-scope", 0, "Scope to cut, percent")
	cmd.Flags().Float64Var(&boostVelocity, "boost-velocity", 0, "Velocity increase, percent")
	cmd.Flags().Float64Var(&clearBlockers, "clear-blockers", 0, "External blockers to remove")
	cmd.Flags().Float64Var(&overtime, "overtime", 0, "Working hours extension, percent")
	cmd.Flags().IntVar(&runs, "runs", 0, "Simulation runs (default 10000)")
	cmd.Flags().BoolVar(&activate, "activate", false, "Save as the project's active plan")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newScenarioListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			scenarios, err := app.Scenarios.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if len(scenarios) == 0 {
				fmt.Println("No scenarios evaluated yet.")
				return nil
			}
			fmt.Print(formatter.FormatScenarioList(scenarios))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newScenarioActivateCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "activate ID",
		Short: "Mark a stored scenario as the active plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			if err := app.Scenarios.Activate(ctx, projectID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Activated scenario %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
