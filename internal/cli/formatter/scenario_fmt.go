package formatter

import (
	"fmt"
	"strings"

	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
)

func changeLabel(c domain.ScenarioChange) string {
	switch c.Type {
	case domain.ChangeAddStaff:
		return fmt.Sprintf("add %.0f engineer(s)", c.Value)
	case domain.ChangeReduceScope:
		return fmt.Sprintf("cut scope by %.0f%%", c.Value)
	case domain.ChangeIncreaseVelocity:
		return fmt.Sprintf("raise velocity by %.0f%%", c.Value)
	case domain.ChangeRemoveBlockers:
		return fmt.Sprintf("clear %.0f blocker(s)", c.Value)
	case domain.ChangeExtendHours:
		return fmt.Sprintf("extend hours by %.0f%%", c.Value)
	case domain.ChangeRemoveDependency:
		return "remove a dependency"
	default:
		return string(c.Type)
	}
}

// FormatScenarioComparison formats a what-if evaluation against its baseline.
func FormatScenarioComparison(resp *contract.ScenarioResponse) string {
	rec := resp.Scenario
	var b strings.Builder

	changes := make([]string, 0, len(rec.Changes))
	for _, c := range rec.Changes {
		changes = append(changes, changeLabel(c))
	}
	b.WriteString(fmt.Sprintf("Changes: %s\n\n", StylePurple.Render(strings.Join(changes, ", "))))

	headers := []string{"", "BASELINE", "SCENARIO"}
	rows := [][]string{
		{Dim("P50"), HumanDate(resp.Baseline.P50), HumanDate(resp.Adjusted.P50)},
		{Bold("P70"), Bold(HumanDate(rec.BaselineP70)), Bold(HumanDate(rec.ScenarioP70))},
		{Dim("P90"), HumanDate(resp.Baseline.P90), HumanDate(resp.Adjusted.P90)},
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	switch {
	case rec.DaysSaved > 0:
		b.WriteString(StyleGreen.Render(fmt.Sprintf("Saves %.1f days", rec.DaysSaved)) + "\n")
	case rec.DaysSaved < 0:
		b.WriteString(StyleRed.Render(fmt.Sprintf("Loses %.1f days", -rec.DaysSaved)) + "\n")
	default:
		b.WriteString(Dim("No schedule change") + "\n")
	}
	b.WriteString(fmt.Sprintf("Cost impact: %s\n", Bold(FormatMoney(rec.CostImpact))))

	if rec.IsFeasible {
		b.WriteString(StyleGreen.Render("● Feasible") + "\n")
	} else {
		b.WriteString(StyleRed.Render("■ NOT FEASIBLE") + "\n")
	}
	for _, note := range rec.FeasibilityNotes {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", note)) + "\n")
	}

	if rec.IsActive {
		b.WriteString("\n" + Dim("Saved as the active plan.") + "\n")
	}

	return RenderBox(fmt.Sprintf("Scenario: %s", rec.Name), strings.TrimRight(b.String(), "\n"))
}

// FormatScenarioList formats stored scenarios as a table.
func FormatScenarioList(scenarios []*domain.ScenarioRecord) string {
	headers := []string{"ID", "NAME", "SAVES", "COST", "FEASIBLE", "ACTIVE"}
	rows := make([][]string, 0, len(scenarios))

	for _, s := range scenarios {
		feasible := StyleGreen.Render("yes")
		if !s.IsFeasible {
			feasible = StyleRed.Render("no")
		}
		active := Dim("")
		if s.IsActive {
			active = StyleGreen.Render("●")
		}
		saved := Dim("0d")
		if s.DaysSaved != 0 {
			saved = StyleFg.Render(fmt.Sprintf("%.1fd", s.DaysSaved))
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			saved,
			StyleFg.Render(FormatMoney(s.CostImpact)),
			feasible,
			active,
		})
	}

	return RenderTable(headers, rows)
}
