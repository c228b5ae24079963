package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkorsten/foresight/internal/cli/formatter"
	"github.com/mkorsten/foresight/internal/domain"
)

func newTrackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Record velocity and capacity history",
	}

	cmd.AddCommand(
		newTrackVelocityCmd(app),
		newTrackHistoryCmd(app),
		newTrackCapacitySetCmd(app),
		newTrackCapacityShowCmd(app),
	)

	return cmd
}

func newTrackVelocityCmd(app *App) *cobra.Command {
	var project, start, end string
	var points float64
	var teamSize int

	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Record a completed time-box of throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			periodStart, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			periodEnd, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			rec := &domain.VelocityRecord{
				ProjectID:       projectID,
				PeriodStart:     periodStart,
				PeriodEnd:       periodEnd,
				PointsCompleted: points,
				TeamSize:        teamSize,
			}
			if err := app.Tracking.RecordVelocity(ctx, rec); err != nil {
				return err
			}

			fmt.Printf("Recorded %.1f points for %s – %s\n", points, start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&points, "points", 0, "Story points completed")
	cmd.Flags().IntVar(&teamSize, "team", 1, "Team size during the period")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func newTrackHistoryCmd(app *App) *cobra.Command {
	var project string
	var lookback int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent velocity records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			records, err := app.Tracking.VelocityHistory(ctx, projectID, lookback)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("No velocity history recorded.")
				return nil
			}
			fmt.Print(formatter.FormatVelocityHistory(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().IntVar(&lookback, "lookback", 12, "Number of recent periods to show")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// parseMemberSpec parses "name:allocated:total[:burnout]" into a capacity record.
func parseMemberSpec(spec string) (domain.CapacityRecord, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return domain.CapacityRecord{}, fmt.Errorf("invalid --member %q, expected name:allocated:total[:burnout]", spec)
	}

	allocated, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.CapacityRecord{}, fmt.Errorf("invalid allocated hours in %q: %w", spec, err)
	}
	total, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return domain.CapacityRecord{}, fmt.Errorf("invalid total hours in %q: %w", spec, err)
	}
	var burnout float64
	if len(parts) == 4 {
		burnout, err = strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return domain.CapacityRecord{}, fmt.Errorf("invalid burnout score in %q: %w", spec, err)
		}
	}

	return domain.CapacityRecord{
		AssigneeID:         parts[0],
		AllocatedHours:     allocated,
		TotalCapacityHours: total,
		BurnoutRiskScore:   burnout,
	}, nil
}

func newTrackCapacitySetCmd(app *App) *cobra.Command {
	var project string
	var members []string

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Replace the team capacity snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			recs := make([]domain.CapacityRecord, 0, len(members))
			for _, spec := range members {
				rec, err := parseMemberSpec(spec)
				if err != nil {
					return err
				}
				recs = append(recs, rec)
			}

			if err := app.Tracking.ReplaceCapacity(ctx, projectID, recs); err != nil {
				return err
			}

			fmt.Printf("Capacity set for %d team member(s)\n", len(recs))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringArrayVar(&members, "member", nil, "Member allocation (name:allocated:total[:burnout]), repeatable")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("member")

	return cmd
}

func newTrackCapacityShowCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show the current capacity snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			records, err := app.Tracking.CapacitySnapshot(ctx, projectID)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("No capacity recorded.")
				return nil
			}
			fmt.Print(formatter.FormatCapacitySnapshot(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
