package formatter

import (
	"fmt"
	"strings"

	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
)

// FormatImpact formats a delay impact analysis into a styled report.
func FormatImpact(chain *domain.DependencyChain, titles map[string]string) string {
	var b strings.Builder

	root := titles[chain.RootItemID]
	if root == "" {
		root = chain.RootItemID
	}

	b.WriteString(fmt.Sprintf("Delaying %s by %s days\n", Bold(root), Bold(FormatPoints(chain.DelayDays))))
	b.WriteString(fmt.Sprintf("Risk: %s", RiskIndicator(chain.RiskScore)))
	if chain.OnCriticalPath {
		b.WriteString("  " + StyleRed.Render("on critical path"))
	}
	b.WriteString("\n\n")

	if len(chain.Affected) == 0 {
		b.WriteString(Dim("No downstream items are affected.") + "\n")
	} else {
		headers := []string{"AFFECTED ITEM", "SLIP", "NEW DATE", "CONFIDENCE"}
		rows := make([][]string, 0, len(chain.Affected))
		for _, a := range chain.Affected {
			title := a.Title
			if title == "" {
				title = a.ItemID
			}
			rows = append(rows, []string{
				StyleFg.Render(title),
				StyleYellow.Render(fmt.Sprintf("+%.1fd", a.DelayDays)),
				HumanDate(a.ProjectedDate),
				Dim(FormatPercent(a.Confidence)),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Total cascade: %s days across %d items\n",
			Bold(FormatPoints(chain.TotalDelayDays)), len(chain.Affected)))
	}

	if len(chain.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recommendations") + "\n")
		for _, rec := range chain.Recommendations {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("→"), rec))
		}
	}

	return RenderBox("Delay Impact", strings.TrimRight(b.String(), "\n"))
}

// FormatCriticalPaths formats the longest dependency chains of a project.
func FormatCriticalPaths(resp *contract.CriticalPathResponse, titles map[string]string) string {
	if len(resp.Paths) == 0 {
		return Dim("No incomplete work items; nothing on the critical path.")
	}

	var b strings.Builder
	for i, path := range resp.Paths {
		if i > 0 {
			b.WriteString("\n")
		}
		steps := make([]string, 0, len(path.Path))
		for _, id := range path.Path {
			title := titles[id]
			if title == "" {
				title = id
			}
			steps = append(steps, Bold(title))
		}
		b.WriteString(strings.Join(steps, Dim(" → ")))
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("  %.1f weeks of sequential work", path.LengthWeeks)) + "\n")
	}

	return RenderBox("Critical Path", strings.TrimRight(b.String(), "\n"))
}
