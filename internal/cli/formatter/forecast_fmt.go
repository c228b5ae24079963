package formatter

import (
	"fmt"
	"strings"

	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
)

// FormatForecast formats a forecast response into a styled report.
func FormatForecast(resp *contract.ForecastResponse) string {
	f := resp.Forecast
	var b strings.Builder

	title := fmt.Sprintf("Forecast: %s %s", f.TargetType, f.TargetID)

	headers := []string{"OUTCOME", "DATE", "WHEN"}
	rows := [][]string{
		{Dim("Best case"), HumanDate(f.BestCase), Dim(RelativeDate(f.BestCase))},
		{StyleFg.Render("50% likely by"), HumanDate(f.P50), Dim(RelativeDate(f.P50))},
		{Bold("70% likely by"), Bold(HumanDate(f.P70)), Dim(RelativeDate(f.P70))},
		{StyleFg.Render("85% likely by"), HumanDate(f.P85), Dim(RelativeDate(f.P85))},
		{StyleFg.Render("90% likely by"), HumanDate(f.P90), Dim(RelativeDate(f.P90))},
		{Dim("Worst case"), HumanDate(f.WorstCase), Dim(RelativeDate(f.WorstCase))},
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Most likely completion: %s\n", Bold(HumanDate(f.MostLikely))))
	b.WriteString(fmt.Sprintf("Confidence: %s\n", ConfidenceIndicator(f.Confidence)))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Assumptions: velocity %.1f ± %.1f pts/week, %d people, %s utilization, %d runs",
		f.VelocityMean, f.VelocityStdDev, f.TeamSize, FormatPercent(f.UtilizationRate), f.Runs)))
	b.WriteString("\n")

	if f.UsedFallback {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("WARNING: no usable history; forecast built from default assumptions") + "\n")
	}
	if resp.Cached {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Cached result from %s. Use --force to regenerate.", HumanDate(f.GeneratedAt))) + "\n")
	}

	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

// FormatSprintCapacity formats a sprint commitment check.
func FormatSprintCapacity(view *contract.SprintCapacityView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Planned:  %s pts\n", Bold(FormatPoints(view.PlannedPoints))))
	b.WriteString(fmt.Sprintf("Expected: %s pts at %s utilization\n",
		Bold(FormatPoints(view.ExpectedVelocity)), FormatPercent(view.UtilizationRate)))
	b.WriteString("\n")

	if view.Overcommitted {
		over := view.PlannedPoints - view.ExpectedVelocity
		b.WriteString(StyleRed.Render(fmt.Sprintf("■ OVERCOMMITTED by %s pts", FormatPoints(over))) + "\n")
	} else {
		b.WriteString(StyleGreen.Render("● Commitment fits expected throughput") + "\n")
	}

	return RenderBox("Sprint Capacity", strings.TrimRight(b.String(), "\n"))
}

// FormatVelocityHistory formats velocity records as a table, oldest first.
func FormatVelocityHistory(records []domain.VelocityRecord) string {
	headers := []string{"PERIOD", "POINTS", "TEAM"}
	rows := make([][]string, 0, len(records))

	var total float64
	for _, rec := range records {
		period := fmt.Sprintf("%s – %s",
			rec.PeriodStart.Format("Jan 2"), rec.PeriodEnd.Format("Jan 2, 2006"))
		rows = append(rows, []string{
			StyleFg.Render(period),
			Bold(FormatPoints(rec.PointsCompleted)),
			Dim(fmt.Sprintf("%d", rec.TeamSize)),
		})
		total += rec.PointsCompleted
	}

	out := RenderTable(headers, rows)
	if len(records) > 0 {
		out += "\n" + Dim(fmt.Sprintf("Mean velocity: %.1f pts over %d periods", total/float64(len(records)), len(records))) + "\n"
	}
	return out
}

// FormatCapacitySnapshot formats the current team capacity allocation.
func FormatCapacitySnapshot(records []domain.CapacityRecord) string {
	headers := []string{"ASSIGNEE", "ALLOCATED", "CAPACITY", "BURNOUT"}
	rows := make([][]string, 0, len(records))

	for _, rec := range records {
		burnout := StyleGreen.Render(fmt.Sprintf("%.0f", rec.BurnoutRiskScore))
		switch {
		case rec.BurnoutRiskScore >= 70:
			burnout = StyleRed.Render(fmt.Sprintf("%.0f", rec.BurnoutRiskScore))
		case rec.BurnoutRiskScore >= 40:
			burnout = StyleYellow.Render(fmt.Sprintf("%.0f", rec.BurnoutRiskScore))
		}
		rows = append(rows, []string{
			Bold(rec.AssigneeID),
			StyleFg.Render(FormatHours(rec.AllocatedHours)),
			StyleFg.Render(FormatHours(rec.TotalCapacityHours)),
			burnout,
		})
	}

	return RenderTable(headers, rows)
}
