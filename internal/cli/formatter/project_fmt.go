package formatter

import (
	"fmt"
	"strings"

	"github.com/mkorsten/foresight/internal/domain"
)

// FormatProjectList formats projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "CREATED"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			Dim(HumanDate(p.CreatedAt)),
		})
	}

	return RenderTable(headers, rows)
}

// FormatWorkItemTree formats work items as an indented dependency tree.
// Items whose parent is missing from the list render as roots.
func FormatWorkItemTree(items []domain.WorkItem) string {
	byID := make(map[string]bool, len(items))
	children := make(map[string][]domain.WorkItem)
	var roots []domain.WorkItem

	for _, it := range items {
		byID[it.ID] = true
	}
	for _, it := range items {
		if it.ParentID != nil && byID[*it.ParentID] {
			children[*it.ParentID] = append(children[*it.ParentID], it)
		} else {
			roots = append(roots, it)
		}
	}

	var b strings.Builder
	var walk func(item domain.WorkItem, depth int)
	walk = func(item domain.WorkItem, depth int) {
		indent := strings.Repeat("  ", depth)
		assignee := Dim("--")
		if item.AssigneeID != nil {
			assignee = StylePurple.Render(*item.AssigneeID)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s  %s\n",
			indent,
			TruncID(item.ID),
			Bold(item.Title),
			WorkItemStatusPill(item.Status),
			Dim(FormatHours(item.EstimatedEffortHours)),
			assignee,
		))
		for _, child := range children[item.ID] {
			walk(child, depth+1)
		}
	}
	for _, root := range roots {
		walk(root, 0)
	}

	return b.String()
}

// FormatImportSummary formats the outcome of a project import.
func FormatImportSummary(name string, items, velocity, capacity int) string {
	return fmt.Sprintf("Imported project %s: %d work items, %d velocity records, %d capacity records",
		Bold(name), items, velocity, capacity)
}
